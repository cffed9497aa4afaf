package repository

import (
	"context"
	"time"

	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByWriter(ctx context.Context, writerID int64) ([]model.Order, error)
	ListByClient(ctx context.Context, clientID int64) ([]model.Order, error)

	// Complete settles the order in one transaction: the order must still be
	// in_progress or revision (ErrOrderNotActive otherwise), then the order and
	// its job move to completed, the writer balance is credited atomically and
	// a payment ledger entry is appended.
	Complete(ctx context.Context, orderID int64) (*model.Order, error)

	// SetRevision moves an in_progress order to revision and stores the
	// client's notes. Returns ErrOrderNotActive for terminal orders.
	SetRevision(ctx context.Context, orderID int64, notes string) error

	// ListOverdue returns active orders whose deadline passed before now.
	ListOverdue(ctx context.Context, now time.Time, limit int) ([]model.Order, error)
}

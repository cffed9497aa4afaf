package usecase

import (
	"context"
	"time"

	domainErrors "github.com/JohnMutemi/WritersHub-sub000/internal/domain/errors"
	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/model"
	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/repository"
)

// OrderUseCase encapsulates delivery lifecycle logic.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// List returns the orders the user participates in, by role.
func (u *OrderUseCase) List(ctx context.Context, user *model.User) ([]model.Order, error) {
	switch user.Role {
	case model.RoleWriter:
		return u.orders.ListByWriter(ctx, user.ID)
	case model.RoleClient:
		return u.orders.ListByClient(ctx, user.ID)
	default:
		return nil, domainErrors.ErrForbidden
	}
}

// Complete settles the order for its writer: order and job move to completed,
// the balance is credited and a payment ledger entry appended, all in one
// transaction. Completing a terminal order fails with ErrOrderNotActive.
func (u *OrderUseCase) Complete(ctx context.Context, writer *model.User, orderID int64) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.WriterID != writer.ID {
		return nil, domainErrors.ErrForbidden
	}
	return u.orders.Complete(ctx, orderID)
}

// RequestRevision moves an in-progress order to revision on behalf of its
// client, storing the notes.
func (u *OrderUseCase) RequestRevision(ctx context.Context, client *model.User, orderID int64, notes string) error {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.ClientID != client.ID {
		return domainErrors.ErrForbidden
	}
	return u.orders.SetRevision(ctx, orderID, notes)
}

// Overdue returns active orders whose deadline passed before now.
func (u *OrderUseCase) Overdue(ctx context.Context, now time.Time, limit int) ([]model.Order, error) {
	return u.orders.ListOverdue(ctx, now, limit)
}

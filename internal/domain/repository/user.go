package repository

import (
	"context"

	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/model"
)

// UserRepository describes persistence operations for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	ListWriters(ctx context.Context, status model.ApprovalStatus) ([]model.User, error)
	SetApproval(ctx context.Context, writerID int64, status model.ApprovalStatus) error
}

package repository

import (
	"context"

	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/model"
)

// JobRepository describes persistence operations with job postings.
type JobRepository interface {
	Create(ctx context.Context, job *model.Job) (*model.Job, error)
	GetByID(ctx context.Context, id int64) (*model.Job, error)
	ListOpen(ctx context.Context) ([]model.Job, error)
	ListByClient(ctx context.Context, clientID int64) ([]model.Job, error)

	// Cancel transitions an open job to cancelled and rejects its pending bids
	// in the same transaction. Returns ErrJobNotOpen when the job already left
	// the open state.
	Cancel(ctx context.Context, jobID int64) error
}

package repository

import (
	"context"

	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/model"
)

// BidRepository describes persistence operations with bids.
type BidRepository interface {
	// Create inserts a pending bid after re-checking that the job is still open
	// under a row lock. Returns ErrJobNotOpen otherwise.
	Create(ctx context.Context, bid *model.Bid) (*model.Bid, error)
	GetByID(ctx context.Context, id int64) (*model.Bid, error)
	ListByJob(ctx context.Context, jobID int64) ([]model.Bid, error)
	ListByWriter(ctx context.Context, writerID int64) ([]model.Bid, error)

	// Accept runs the whole acceptance workflow in one transaction: verify the
	// job is open and the bid pending under row locks, mark the bid accepted,
	// create the order with deadline = now + delivery days, move the job to
	// in_progress, and reject every sibling pending bid. Exactly one order is
	// produced per accepted bid; a racing second accept gets ErrJobNotOpen.
	Accept(ctx context.Context, bidID int64) (*model.Order, error)
}

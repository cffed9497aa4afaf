package usecase

import (
	"context"

	domainErrors "github.com/JohnMutemi/WritersHub-sub000/internal/domain/errors"
	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/model"
	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/repository"
)

// BidUseCase encapsulates proposal lifecycle logic, including the acceptance
// workflow that turns a bid into an order.
type BidUseCase struct {
	bids repository.BidRepository
	jobs repository.JobRepository
}

// NewBidUseCase constructs BidUseCase.
func NewBidUseCase(bids repository.BidRepository, jobs repository.JobRepository) *BidUseCase {
	return &BidUseCase{bids: bids, jobs: jobs}
}

// PlaceBidInput carries the fields of a new proposal.
type PlaceBidInput struct {
	JobID        int64
	Amount       float64
	DeliveryDays int
	CoverLetter  string
}

// Place creates a pending bid. Only approved writers may bid, and only on
// open jobs.
func (u *BidUseCase) Place(ctx context.Context, writer *model.User, input PlaceBidInput) (*model.Bid, error) {
	if writer.Role != model.RoleWriter {
		return nil, domainErrors.ErrForbidden
	}
	if writer.ApprovalStatus != model.ApprovalApproved {
		return nil, domainErrors.ErrWriterNotApproved
	}
	if input.Amount <= 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	if input.DeliveryDays < 1 {
		return nil, domainErrors.ErrInvalidDeadline
	}

	return u.bids.Create(ctx, &model.Bid{
		WriterID:     writer.ID,
		JobID:        input.JobID,
		Amount:       input.Amount,
		DeliveryDays: input.DeliveryDays,
		CoverLetter:  input.CoverLetter,
	})
}

// ListForJob returns every bid placed on the job. Restricted to the job owner
// and admins.
func (u *BidUseCase) ListForJob(ctx context.Context, actor *model.User, jobID int64) ([]model.Bid, error) {
	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if actor.Role != model.RoleAdmin && job.ClientID != actor.ID {
		return nil, domainErrors.ErrForbidden
	}
	return u.bids.ListByJob(ctx, jobID)
}

// ListForWriter returns the writer's own bids.
func (u *BidUseCase) ListForWriter(ctx context.Context, writerID int64) ([]model.Bid, error) {
	return u.bids.ListByWriter(ctx, writerID)
}

// Accept runs the acceptance workflow for the job owner. The storage layer
// re-verifies the job and bid states under row locks, so a racing second
// accept on the same job loses with ErrJobNotOpen.
func (u *BidUseCase) Accept(ctx context.Context, client *model.User, bidID int64) (*model.Order, error) {
	bid, err := u.bids.GetByID(ctx, bidID)
	if err != nil {
		return nil, err
	}
	job, err := u.jobs.GetByID(ctx, bid.JobID)
	if err != nil {
		return nil, err
	}
	if job.ClientID != client.ID {
		return nil, domainErrors.ErrForbidden
	}
	return u.bids.Accept(ctx, bidID)
}

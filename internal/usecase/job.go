package usecase

import (
	"context"

	domainErrors "github.com/JohnMutemi/WritersHub-sub000/internal/domain/errors"
	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/model"
	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/repository"
)

// JobUseCase encapsulates job posting lifecycle logic.
type JobUseCase struct {
	jobs      repository.JobRepository
	minBudget float64
}

// NewJobUseCase constructs JobUseCase.
func NewJobUseCase(jobs repository.JobRepository, minBudget float64) *JobUseCase {
	return &JobUseCase{jobs: jobs, minBudget: minBudget}
}

// CreateJobInput carries fields accepted when posting a job.
type CreateJobInput struct {
	Title        string
	Description  string
	Category     string
	Budget       float64
	DeadlineDays int
	Pages        int
	Attachments  string
}

// Create posts an open job for the client.
func (u *JobUseCase) Create(ctx context.Context, client *model.User, input CreateJobInput) (*model.Job, error) {
	if client.Role != model.RoleClient {
		return nil, domainErrors.ErrForbidden
	}
	if !ValidateJobTitle(input.Title) || !ValidateJobDescription(input.Description) {
		return nil, domainErrors.ErrInvalidInput
	}
	if input.Budget < u.minBudget {
		return nil, domainErrors.ErrInvalidAmount
	}
	if input.DeadlineDays < 1 {
		return nil, domainErrors.ErrInvalidDeadline
	}

	return u.jobs.Create(ctx, &model.Job{
		ClientID:     client.ID,
		Title:        input.Title,
		Description:  input.Description,
		Category:     input.Category,
		Budget:       input.Budget,
		DeadlineDays: input.DeadlineDays,
		Pages:        input.Pages,
		Attachments:  input.Attachments,
	})
}

// List returns the jobs visible to the user: clients see their own postings,
// writers and admins see the open board.
func (u *JobUseCase) List(ctx context.Context, user *model.User) ([]model.Job, error) {
	if user.Role == model.RoleClient {
		return u.jobs.ListByClient(ctx, user.ID)
	}
	return u.jobs.ListOpen(ctx)
}

// Get fetches a single job.
func (u *JobUseCase) Get(ctx context.Context, id int64) (*model.Job, error) {
	return u.jobs.GetByID(ctx, id)
}

// Cancel cancels an open job. Allowed for the owning client and for admins;
// pending bids are rejected in the same transaction.
func (u *JobUseCase) Cancel(ctx context.Context, actor *model.User, jobID int64) error {
	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if actor.Role != model.RoleAdmin && job.ClientID != actor.ID {
		return domainErrors.ErrForbidden
	}
	return u.jobs.Cancel(ctx, jobID)
}

package usecase

import (
	"context"

	domainErrors "github.com/JohnMutemi/WritersHub-sub000/internal/domain/errors"
	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/model"
	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/repository"
)

// Passing threshold for the writer vetting quiz, in percent.
const quizPassPercent = 70

// VettingUseCase covers writer vetting: quiz submissions and the admin
// approval gate.
type VettingUseCase struct {
	users   repository.UserRepository
	quizzes repository.QuizRepository
}

// NewVettingUseCase constructs VettingUseCase.
func NewVettingUseCase(users repository.UserRepository, quizzes repository.QuizRepository) *VettingUseCase {
	return &VettingUseCase{users: users, quizzes: quizzes}
}

// SubmitQuiz records a writer's quiz result. Passing does not approve the
// writer; admin approval stays a separate step.
func (u *VettingUseCase) SubmitQuiz(ctx context.Context, writer *model.User, score, total int) (*model.WriterQuiz, error) {
	if writer.Role != model.RoleWriter {
		return nil, domainErrors.ErrForbidden
	}
	if total <= 0 || score < 0 || score > total {
		return nil, domainErrors.ErrInvalidInput
	}

	return u.quizzes.Create(ctx, &model.WriterQuiz{
		WriterID: writer.ID,
		Score:    score,
		Total:    total,
		Passed:   score*100 >= quizPassPercent*total,
	})
}

// LatestQuiz returns the writer's most recent quiz submission.
func (u *VettingUseCase) LatestQuiz(ctx context.Context, writerID int64) (*model.WriterQuiz, error) {
	return u.quizzes.GetByWriter(ctx, writerID)
}

// SetWriterApproval overwrites the writer's approval status. Only approved and
// rejected are valid targets.
func (u *VettingUseCase) SetWriterApproval(ctx context.Context, writerID int64, status model.ApprovalStatus) error {
	if status != model.ApprovalApproved && status != model.ApprovalRejected {
		return domainErrors.ErrInvalidInput
	}
	return u.users.SetApproval(ctx, writerID, status)
}

// PendingWriters lists writers awaiting approval.
func (u *VettingUseCase) PendingWriters(ctx context.Context) ([]model.User, error) {
	return u.users.ListWriters(ctx, model.ApprovalPending)
}

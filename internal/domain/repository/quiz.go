package repository

import (
	"context"

	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/model"
)

// QuizRepository stores writer vetting quiz submissions.
type QuizRepository interface {
	Create(ctx context.Context, quiz *model.WriterQuiz) (*model.WriterQuiz, error)
	GetByWriter(ctx context.Context, writerID int64) (*model.WriterQuiz, error)
}

package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/JohnMutemi/WritersHub-sub000/internal/domain/errors"
	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/model"
)

func (r *quizRepository) Create(ctx context.Context, quiz *model.WriterQuiz) (*model.WriterQuiz, error) {
	const query = `INSERT INTO writer_quizzes (writer_id, score, total, passed)
                   VALUES ($1, $2, $3, $4)
                   RETURNING id, created_at`
	stored := *quiz
	err := r.storage.pool.QueryRow(ctx, query, quiz.WriterID, quiz.Score, quiz.Total, quiz.Passed).
		Scan(&stored.ID, &stored.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *quizRepository) GetByWriter(ctx context.Context, writerID int64) (*model.WriterQuiz, error) {
	const query = `SELECT id, writer_id, score, total, passed, created_at
                   FROM writer_quizzes WHERE writer_id=$1
                   ORDER BY created_at DESC LIMIT 1`
	var q model.WriterQuiz
	err := r.storage.pool.QueryRow(ctx, query, writerID).
		Scan(&q.ID, &q.WriterID, &q.Score, &q.Total, &q.Passed, &q.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &q, nil
}

package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/JohnMutemi/WritersHub-sub000/internal/domain/errors"
	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/model"
)

const jobColumns = `id, client_id, title, description, category, budget, deadline_days, pages, attachments, status, created_at`

func (r *jobRepository) Create(ctx context.Context, job *model.Job) (*model.Job, error) {
	const query = `INSERT INTO jobs (client_id, title, description, category, budget, deadline_days, pages, attachments, status)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
                   RETURNING id, created_at`
	stored := *job
	stored.Status = model.JobStatusOpen
	err := r.storage.pool.QueryRow(ctx, query,
		job.ClientID, job.Title, job.Description, job.Category,
		job.Budget, job.DeadlineDays, job.Pages, job.Attachments, model.JobStatusOpen,
	).Scan(&stored.ID, &stored.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *jobRepository) GetByID(ctx context.Context, id int64) (*model.Job, error) {
	const query = `SELECT ` + jobColumns + ` FROM jobs WHERE id=$1`
	var j model.Job
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&j.ID, &j.ClientID, &j.Title, &j.Description,
		&j.Category, &j.Budget, &j.DeadlineDays, &j.Pages, &j.Attachments, &j.Status, &j.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &j, nil
}

func (r *jobRepository) ListOpen(ctx context.Context) ([]model.Job, error) {
	const query = `SELECT ` + jobColumns + ` FROM jobs WHERE status=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, model.JobStatusOpen)
}

func (r *jobRepository) ListByClient(ctx context.Context, clientID int64) ([]model.Job, error) {
	const query = `SELECT ` + jobColumns + ` FROM jobs WHERE client_id=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, clientID)
}

func (r *jobRepository) list(ctx context.Context, query string, args ...any) ([]model.Job, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Job
	for rows.Next() {
		var j model.Job
		if err := rows.Scan(&j.ID, &j.ClientID, &j.Title, &j.Description, &j.Category,
			&j.Budget, &j.DeadlineDays, &j.Pages, &j.Attachments, &j.Status, &j.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *jobRepository) Cancel(ctx context.Context, jobID int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const selectJob = `SELECT status FROM jobs WHERE id=$1 FOR UPDATE`
		var status model.JobStatus
		if err := tx.QueryRow(ctx, selectJob, jobID).Scan(&status); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}
		if status != model.JobStatusOpen {
			return domainErrors.ErrJobNotOpen
		}

		if _, err := tx.Exec(ctx, `UPDATE jobs SET status=$1 WHERE id=$2`, model.JobStatusCancelled, jobID); err != nil {
			return err
		}

		const rejectBids = `UPDATE bids SET status=$1 WHERE job_id=$2 AND status=$3`
		if _, err := tx.Exec(ctx, rejectBids, model.BidStatusRejected, jobID, model.BidStatusPending); err != nil {
			return err
		}
		return nil
	})
}

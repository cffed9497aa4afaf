package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/JohnMutemi/WritersHub-sub000/internal/domain/errors"
	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/model"
)

const bidColumns = `id, writer_id, job_id, amount, delivery_days, cover_letter, status, created_at`

func (r *bidRepository) Create(ctx context.Context, bid *model.Bid) (*model.Bid, error) {
	stored := *bid
	stored.Status = model.BidStatusPending
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const selectJob = `SELECT status FROM jobs WHERE id=$1 FOR UPDATE`
		var status model.JobStatus
		if err := tx.QueryRow(ctx, selectJob, bid.JobID).Scan(&status); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}
		if status != model.JobStatusOpen {
			return domainErrors.ErrJobNotOpen
		}

		const insert = `INSERT INTO bids (writer_id, job_id, amount, delivery_days, cover_letter, status)
                        VALUES ($1, $2, $3, $4, $5, $6)
                        RETURNING id, created_at`
		return tx.QueryRow(ctx, insert,
			bid.WriterID, bid.JobID, bid.Amount, bid.DeliveryDays, bid.CoverLetter, model.BidStatusPending,
		).Scan(&stored.ID, &stored.CreatedAt)
	})
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *bidRepository) GetByID(ctx context.Context, id int64) (*model.Bid, error) {
	const query = `SELECT ` + bidColumns + ` FROM bids WHERE id=$1`
	var b model.Bid
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&b.ID, &b.WriterID, &b.JobID,
		&b.Amount, &b.DeliveryDays, &b.CoverLetter, &b.Status, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *bidRepository) ListByJob(ctx context.Context, jobID int64) ([]model.Bid, error) {
	const query = `SELECT ` + bidColumns + ` FROM bids WHERE job_id=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, jobID)
}

func (r *bidRepository) ListByWriter(ctx context.Context, writerID int64) ([]model.Bid, error) {
	const query = `SELECT ` + bidColumns + ` FROM bids WHERE writer_id=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, writerID)
}

func (r *bidRepository) list(ctx context.Context, query string, args ...any) ([]model.Bid, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Bid
	for rows.Next() {
		var b model.Bid
		if err := rows.Scan(&b.ID, &b.WriterID, &b.JobID, &b.Amount, &b.DeliveryDays,
			&b.CoverLetter, &b.Status, &b.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *bidRepository) Accept(ctx context.Context, bidID int64) (*model.Order, error) {
	var order model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const selectBid = `SELECT writer_id, job_id, amount, delivery_days, status FROM bids WHERE id=$1 FOR UPDATE`
		var bid model.Bid
		if err := tx.QueryRow(ctx, selectBid, bidID).Scan(&bid.WriterID, &bid.JobID, &bid.Amount, &bid.DeliveryDays, &bid.Status); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}
		if bid.Status != model.BidStatusPending {
			return domainErrors.ErrBidNotPending
		}

		// The job row lock serializes racing accepts on sibling bids; the loser
		// observes the in_progress status and stops here.
		const selectJob = `SELECT client_id, status FROM jobs WHERE id=$1 FOR UPDATE`
		var clientID int64
		var jobStatus model.JobStatus
		if err := tx.QueryRow(ctx, selectJob, bid.JobID).Scan(&clientID, &jobStatus); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}
		if jobStatus != model.JobStatusOpen {
			return domainErrors.ErrJobNotOpen
		}

		if _, err := tx.Exec(ctx, `UPDATE bids SET status=$1 WHERE id=$2`, model.BidStatusAccepted, bidID); err != nil {
			return err
		}

		const insertOrder = `INSERT INTO orders (job_id, bid_id, client_id, writer_id, amount, deadline, status)
                             VALUES ($1, $2, $3, $4, $5, NOW() + make_interval(days => $6), $7)
                             RETURNING id, deadline, created_at`
		order = model.Order{
			JobID:    bid.JobID,
			BidID:    bidID,
			ClientID: clientID,
			WriterID: bid.WriterID,
			Amount:   bid.Amount,
			Status:   model.OrderStatusInProgress,
		}
		if err := tx.QueryRow(ctx, insertOrder,
			bid.JobID, bidID, clientID, bid.WriterID, bid.Amount, bid.DeliveryDays, model.OrderStatusInProgress,
		).Scan(&order.ID, &order.Deadline, &order.CreatedAt); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `UPDATE jobs SET status=$1 WHERE id=$2`, model.JobStatusInProgress, bid.JobID); err != nil {
			return err
		}

		const rejectSiblings = `UPDATE bids SET status=$1 WHERE job_id=$2 AND status=$3`
		if _, err := tx.Exec(ctx, rejectSiblings, model.BidStatusRejected, bid.JobID, model.BidStatusPending); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

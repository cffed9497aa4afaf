package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/JohnMutemi/WritersHub-sub000/internal/domain/errors"
	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/model"
)

func (r *statsRepository) WriterStats(ctx context.Context, writerID int64) (*model.WriterStats, error) {
	const query = `SELECT
        (SELECT COUNT(*) FROM bids WHERE writer_id=$1 AND status=$2),
        (SELECT COUNT(*) FROM orders WHERE writer_id=$1 AND status IN ($3, $4)),
        (SELECT COUNT(*) FROM orders WHERE writer_id=$1 AND status=$5),
        (SELECT COALESCE(SUM(amount), 0) FROM orders WHERE writer_id=$1 AND status=$5),
        (SELECT balance FROM users WHERE id=$1)`
	var s model.WriterStats
	err := r.storage.pool.QueryRow(ctx, query, writerID,
		model.BidStatusPending, model.OrderStatusInProgress, model.OrderStatusRevision, model.OrderStatusCompleted,
	).Scan(&s.ActiveBids, &s.ActiveOrders, &s.CompletedOrders, &s.TotalEarned, &s.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *statsRepository) ClientStats(ctx context.Context, clientID int64) (*model.ClientStats, error) {
	const query = `SELECT
        (SELECT COUNT(*) FROM jobs WHERE client_id=$1 AND status=$2),
        (SELECT COUNT(*) FROM orders WHERE client_id=$1 AND status IN ($3, $4)),
        (SELECT COUNT(*) FROM orders WHERE client_id=$1 AND status=$5),
        (SELECT COALESCE(SUM(amount), 0) FROM orders WHERE client_id=$1 AND status=$5)`
	var s model.ClientStats
	err := r.storage.pool.QueryRow(ctx, query, clientID,
		model.JobStatusOpen, model.OrderStatusInProgress, model.OrderStatusRevision, model.OrderStatusCompleted,
	).Scan(&s.OpenJobs, &s.ActiveOrders, &s.CompletedOrders, &s.TotalSpent)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *statsRepository) AdminStats(ctx context.Context) (*model.AdminStats, error) {
	const query = `SELECT
        (SELECT COUNT(*) FROM users),
        (SELECT COUNT(*) FROM users WHERE role=$1 AND approval_status=$2),
        (SELECT COUNT(*) FROM jobs WHERE status=$3),
        (SELECT COUNT(*) FROM orders WHERE status IN ($4, $5)),
        (SELECT COUNT(*) FROM orders WHERE status=$6),
        (SELECT COALESCE(SUM(amount), 0) FROM orders WHERE status=$6)`
	var s model.AdminStats
	err := r.storage.pool.QueryRow(ctx, query,
		model.RoleWriter, model.ApprovalPending, model.JobStatusOpen,
		model.OrderStatusInProgress, model.OrderStatusRevision, model.OrderStatusCompleted,
	).Scan(&s.TotalUsers, &s.PendingWriters, &s.OpenJobs, &s.ActiveOrders, &s.CompletedOrders, &s.CompletedVolume)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/JohnMutemi/WritersHub-sub000/internal/domain/errors"
	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/model"
)

const orderColumns = `id, job_id, bid_id, client_id, writer_id, amount, deadline, status, revision_notes, completed_at, created_at`

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&o.ID, &o.JobID, &o.BidID, &o.ClientID, &o.WriterID,
		&o.Amount, &o.Deadline, &o.Status, &o.RevisionNotes, &o.CompletedAt, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) ListByWriter(ctx context.Context, writerID int64) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE writer_id=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, writerID)
}

func (r *orderRepository) ListByClient(ctx context.Context, clientID int64) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE client_id=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, clientID)
}

func (r *orderRepository) ListOverdue(ctx context.Context, now time.Time, limit int) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders
                   WHERE status IN ($1, $2) AND deadline < $3
                   ORDER BY deadline
                   LIMIT $4`
	return r.list(ctx, query, model.OrderStatusInProgress, model.OrderStatusRevision, now, limit)
}

func (r *orderRepository) list(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.JobID, &o.BidID, &o.ClientID, &o.WriterID, &o.Amount,
			&o.Deadline, &o.Status, &o.RevisionNotes, &o.CompletedAt, &o.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) Complete(ctx context.Context, orderID int64) (*model.Order, error) {
	var order model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const selectOrder = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1 FOR UPDATE`
		if err := tx.QueryRow(ctx, selectOrder, orderID).Scan(&order.ID, &order.JobID, &order.BidID,
			&order.ClientID, &order.WriterID, &order.Amount, &order.Deadline, &order.Status,
			&order.RevisionNotes, &order.CompletedAt, &order.CreatedAt); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}
		if !order.Status.Active() {
			return domainErrors.ErrOrderNotActive
		}

		const completeOrder = `UPDATE orders SET status=$1, completed_at=NOW() WHERE id=$2 RETURNING completed_at`
		if err := tx.QueryRow(ctx, completeOrder, model.OrderStatusCompleted, orderID).Scan(&order.CompletedAt); err != nil {
			return err
		}
		order.Status = model.OrderStatusCompleted

		if _, err := tx.Exec(ctx, `UPDATE jobs SET status=$1 WHERE id=$2`, model.JobStatusCompleted, order.JobID); err != nil {
			return err
		}

		// Atomic increment, not read-modify-write.
		if _, err := tx.Exec(ctx, `UPDATE users SET balance = balance + $1 WHERE id=$2`, order.Amount, order.WriterID); err != nil {
			return err
		}

		const insertPayment = `INSERT INTO transactions (user_id, amount, type, status, order_id)
                               VALUES ($1, $2, $3, $4, $5)`
		if _, err := tx.Exec(ctx, insertPayment,
			order.WriterID, order.Amount, model.TransactionPayment, model.TransactionStatusCompleted, orderID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) SetRevision(ctx context.Context, orderID int64, notes string) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const selectOrder = `SELECT status FROM orders WHERE id=$1 FOR UPDATE`
		var status model.OrderStatus
		if err := tx.QueryRow(ctx, selectOrder, orderID).Scan(&status); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}
		if status != model.OrderStatusInProgress {
			return domainErrors.ErrOrderNotActive
		}

		const update = `UPDATE orders SET status=$1, revision_notes=$2 WHERE id=$3`
		if _, err := tx.Exec(ctx, update, model.OrderStatusRevision, notes, orderID); err != nil {
			return err
		}
		return nil
	})
}

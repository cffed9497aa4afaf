package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/JohnMutemi/WritersHub-sub000/internal/domain/errors"
	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/model"
)

const transactionColumns = `id, user_id, amount, type, status, payment_method, order_id, payment_details, created_at`

func (r *transactionRepository) ListByUser(ctx context.Context, userID int64) ([]model.Transaction, error) {
	const query = `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Transaction
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Amount, &t.Type, &t.Status,
			&t.PaymentMethod, &t.OrderID, &t.PaymentDetails, &t.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *transactionRepository) Withdraw(ctx context.Context, userID int64, amount float64, method, details string) (*model.Transaction, error) {
	var entry model.Transaction
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const balanceQuery = `SELECT balance FROM users WHERE id=$1 FOR UPDATE`
		var balance float64
		if err := tx.QueryRow(ctx, balanceQuery, userID).Scan(&balance); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}
		if balance < amount {
			return domainErrors.ErrInsufficientBalance
		}

		if _, err := tx.Exec(ctx, `UPDATE users SET balance = balance - $1 WHERE id=$2`, amount, userID); err != nil {
			return err
		}

		const insert = `INSERT INTO transactions (user_id, amount, type, status, payment_method, payment_details)
                        VALUES ($1, $2, $3, $4, $5, $6)
                        RETURNING id, created_at`
		entry = model.Transaction{
			UserID: userID,
			Amount: -amount,
			Type:   model.TransactionWithdrawal,
			Status: model.TransactionStatusPending,
		}
		if method != "" {
			entry.PaymentMethod = &method
		}
		if details != "" {
			entry.PaymentDetails = &details
		}
		return tx.QueryRow(ctx, insert,
			userID, -amount, model.TransactionWithdrawal, model.TransactionStatusPending,
			entry.PaymentMethod, entry.PaymentDetails,
		).Scan(&entry.ID, &entry.CreatedAt)
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

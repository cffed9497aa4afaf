package repository

import (
	"context"

	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/model"
)

// TransactionRepository provides access to the append-only ledger.
type TransactionRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]model.Transaction, error)

	// Withdraw checks the balance under a row lock, debits it and appends a
	// pending withdrawal entry with a negative amount, all in one transaction.
	// Returns ErrInsufficientBalance without side effects when the balance does
	// not cover the amount.
	Withdraw(ctx context.Context, userID int64, amount float64, method, details string) (*model.Transaction, error)
}

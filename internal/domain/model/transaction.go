package model

import "time"

// TransactionType classifies ledger entries.
type TransactionType string

const (
	TransactionDeposit    TransactionType = "deposit"
	TransactionWithdrawal TransactionType = "withdrawal"
	TransactionPayment    TransactionType = "payment"
	TransactionRefund     TransactionType = "refund"
)

// TransactionStatus values used by the workflows. The column is free text.
const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
)

// Transaction is an immutable ledger entry affecting a user's balance.
// Positive amounts credit the account, negative amounts debit it.
type Transaction struct {
	ID             int64
	UserID         int64
	Amount         float64
	Type           TransactionType
	Status         string
	PaymentMethod  *string
	OrderID        *int64
	PaymentDetails *string
	CreatedAt      time.Time
}

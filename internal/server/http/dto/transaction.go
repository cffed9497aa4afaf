package dto

import "time"

// WithdrawRequest describes a withdrawal payload.
type WithdrawRequest struct {
	Amount  float64 `json:"amount" binding:"required,gt=0"`
	Method  string  `json:"paymentMethod" binding:"max=50"`
	Details string  `json:"paymentDetails" binding:"max=1000"`
}

// TransactionResponse describes a ledger entry.
type TransactionResponse struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"userId"`
	Amount         float64   `json:"amount"`
	Type           string    `json:"type"`
	Status         string    `json:"status"`
	PaymentMethod  *string   `json:"paymentMethod,omitempty"`
	OrderID        *int64    `json:"orderId,omitempty"`
	PaymentDetails *string   `json:"paymentDetails,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

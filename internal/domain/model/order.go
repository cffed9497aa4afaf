package model

import "time"

// OrderStatus describes the delivery lifecycle of an accepted bid.
type OrderStatus string

const (
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusRevision   OrderStatus = "revision"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Active reports whether the order still accepts delivery-side transitions.
func (s OrderStatus) Active() bool {
	return s == OrderStatusInProgress || s == OrderStatusRevision
}

// Order is the contract instantiated when a bid is accepted. Exactly one order
// exists per accepted bid; it is never created any other way.
type Order struct {
	ID            int64
	JobID         int64
	BidID         int64
	ClientID      int64
	WriterID      int64
	Amount        float64
	Deadline      time.Time
	Status        OrderStatus
	RevisionNotes string
	CompletedAt   *time.Time
	CreatedAt     time.Time
}

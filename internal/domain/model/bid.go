package model

import "time"

// BidStatus describes a proposal's lifecycle.
type BidStatus string

const (
	BidStatusPending  BidStatus = "pending"
	BidStatusAccepted BidStatus = "accepted"
	BidStatusRejected BidStatus = "rejected"
)

// Bid is a writer's priced, timed proposal against an open job.
type Bid struct {
	ID           int64
	WriterID     int64
	JobID        int64
	Amount       float64
	DeliveryDays int
	CoverLetter  string
	Status       BidStatus
	CreatedAt    time.Time
}

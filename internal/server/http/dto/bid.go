package dto

import "time"

// PlaceBidRequest describes a proposal payload.
type PlaceBidRequest struct {
	JobID        int64   `json:"jobId" binding:"required"`
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	DeliveryDays int     `json:"deliveryTime" binding:"required,min=1"`
	CoverLetter  string  `json:"coverLetter" binding:"max=5000"`
}

// BidResponse describes a proposal.
type BidResponse struct {
	ID           int64     `json:"id"`
	WriterID     int64     `json:"writerId"`
	JobID        int64     `json:"jobId"`
	Amount       float64   `json:"amount"`
	DeliveryDays int       `json:"deliveryTime"`
	CoverLetter  string    `json:"coverLetter"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

package dto

import "time"

// RevisionRequest carries client notes for a revision.
type RevisionRequest struct {
	Notes string `json:"notes" binding:"required,max=5000"`
}

// OrderResponse describes an order.
type OrderResponse struct {
	ID            int64      `json:"id"`
	JobID         int64      `json:"jobId"`
	BidID         int64      `json:"bidId"`
	ClientID      int64      `json:"clientId"`
	WriterID      int64      `json:"writerId"`
	Amount        float64    `json:"amount"`
	Deadline      time.Time  `json:"deadline"`
	Status        string     `json:"status"`
	RevisionNotes string     `json:"revisionNotes,omitempty"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

package dto

import "time"

// CreateJobRequest describes a job posting payload.
type CreateJobRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	Category     string  `json:"category" binding:"max=100"`
	Budget       float64 `json:"budget" binding:"required,gt=0"`
	DeadlineDays int     `json:"deadline" binding:"required,min=1"`
	Pages        int     `json:"pages" binding:"min=0"`
	Attachments  string  `json:"attachments"`
}

// JobResponse describes a job posting.
type JobResponse struct {
	ID           int64     `json:"id"`
	ClientID     int64     `json:"clientId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Budget       float64   `json:"budget"`
	DeadlineDays int       `json:"deadline"`
	Pages        int       `json:"pages"`
	Attachments  string    `json:"attachments"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

package model

import "time"

// JobStatus describes the posting lifecycle.
type JobStatus string

const (
	JobStatusOpen       JobStatus = "open"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"
)

// Job is a writing task posted by a client, open for bids until one is accepted.
//
// DeadlineDays is the day count promised at posting time; the absolute delivery
// deadline lives on the order once a bid is accepted.
type Job struct {
	ID           int64
	ClientID     int64
	Title        string
	Description  string
	Category     string
	Budget       float64
	DeadlineDays int
	Pages        int
	Attachments  string
	Status       JobStatus
	CreatedAt    time.Time
}

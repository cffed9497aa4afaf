package model

import "time"

// WriterQuiz records a writer vetting quiz submission. Admin approval remains a
// separate, manual step regardless of the score.
type WriterQuiz struct {
	ID        int64
	WriterID  int64
	Score     int
	Total     int
	Passed    bool
	CreatedAt time.Time
}

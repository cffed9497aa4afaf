package dto

import "time"

// QuizRequest carries a writer quiz submission.
type QuizRequest struct {
	Score int `json:"score" binding:"min=0"`
	Total int `json:"total" binding:"required,min=1"`
}

// QuizResponse describes a recorded quiz result.
type QuizResponse struct {
	ID        int64     `json:"id"`
	WriterID  int64     `json:"writerId"`
	Score     int       `json:"score"`
	Total     int       `json:"total"`
	Passed    bool      `json:"passed"`
	CreatedAt time.Time `json:"createdAt"`
}

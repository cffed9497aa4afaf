package dto

import "time"

// RegisterRequest describes the registration payload.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"fullName" binding:"max=100"`
	Role     string `json:"role" binding:"required,oneof=writer client admin"`
	Bio      string `json:"bio" binding:"max=1000"`
}

// LoginRequest describes the login payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse describes an account as exposed over the API.
type UserResponse struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	FullName       string    `json:"fullName"`
	Role           string    `json:"role"`
	Bio            string    `json:"bio"`
	ProfileImage   string    `json:"profileImage"`
	Balance        float64   `json:"balance"`
	ApprovalStatus string    `json:"approvalStatus"`
	CreatedAt      time.Time `json:"createdAt"`
}

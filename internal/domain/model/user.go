package model

import "time"

// Role describes which side of the marketplace an account acts on.
type Role string

const (
	RoleWriter Role = "writer"
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleWriter, RoleClient, RoleAdmin:
		return true
	}
	return false
}

// ApprovalStatus describes the admin vetting state of a writer account.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// User represents a registered marketplace account.
type User struct {
	ID             int64
	Username       string
	PasswordHash   string
	Email          string
	FullName       string
	Role           Role
	Bio            string
	ProfileImage   string
	Balance        float64
	ApprovalStatus ApprovalStatus
	CreatedAt      time.Time
}

package errors

import "errors"

var (
	ErrAlreadyExists       = errors.New("already exists")
	ErrNotFound            = errors.New("not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrForbidden           = errors.New("forbidden")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidDeadline     = errors.New("invalid deadline")
	ErrInvalidInput        = errors.New("invalid input")
	ErrJobNotOpen          = errors.New("job is not open")
	ErrBidNotPending       = errors.New("bid is not pending")
	ErrOrderNotActive      = errors.New("order is not active")
	ErrWriterNotApproved   = errors.New("writer is not approved")
)

package xerrors

import "errors"

// Common reusable application errors. Callers wrap these with
// fmt.Errorf("...: %w", err) and match with errors.Is.
var (
	ErrNotFound        = errors.New("resource not found")
	ErrUnauthorized    = errors.New("invalid credentials")
	ErrForbidden       = errors.New("account disabled")
	ErrInvalidInput    = errors.New("invalid input")
	ErrSessionMismatch = errors.New("session superseded by a newer login")
	ErrRateLimited     = errors.New("too many requests")
	ErrInternal        = errors.New("internal server error")
)

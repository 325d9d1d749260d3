package ports

import "errors"

// Standard application-level errors.
// Adapters should wrap underlying infrastructure errors with these standard errors.
var (
	// General Errors
	ErrUnknown            = errors.New("unknown error occurred")
	ErrInvalidRequest     = errors.New("invalid request parameters or format")
	ErrNotFound           = errors.New("resource not found")
	ErrTimeout            = errors.New("operation timed out")
	ErrConfigurationError = errors.New("invalid or missing configuration")

	// Order / Account Errors
	ErrRateLimited         = errors.New("API rate limit exceeded")
	ErrExchangeUnavailable = errors.New("exchange API is unavailable")
	ErrInsufficientFunds   = errors.New("insufficient funds for operation")
	ErrPositionNotFound    = errors.New("no open position to act on")
	ErrNoActivePeriod      = errors.New("no active trading period")
	ErrUnknownOrderStatus  = errors.New("order status outside the known set")

	// Database Specific Errors
	ErrDBConnection = errors.New("database connection error")
	ErrQueryFailed  = errors.New("database query failed")
)

package accrual

import "errors"

// Service errors
var (
	ErrUnknownTier      = errors.New("unknown subscription tier")
	ErrInvalidDailyRate = errors.New("daily rate must be positive")
)

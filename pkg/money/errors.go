package money

import "errors"

// Common money package errors
var (
	// ErrInvalidAmount is returned when the input is not a decimal number.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNegativeAmount is returned when an operation would result in a negative amount
	ErrNegativeAmount = errors.New("resulting amount cannot be negative")
)

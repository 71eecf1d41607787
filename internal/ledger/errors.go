package ledger

import "errors"

var (
	ErrLocked             = errors.New("not authenticated")
	ErrNonPositiveAmount  = errors.New("amount must be positive")
	ErrBelowMinimum       = errors.New("amount is below the minimum")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrInvalidDestination = errors.New("invalid destination account number")
	ErrParse              = errors.New("invalid amount")
	ErrAmountTooLarge     = errors.New("resulting balance is too large")
)

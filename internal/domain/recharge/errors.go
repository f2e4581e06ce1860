package recharge

import "errors"

var (
	// ErrInvalidAmount is returned when the requested amount is <= 0
	ErrInvalidAmount = errors.New("invalid amount: must be greater than 0")

	// ErrAlreadyProcessed is returned when approving or rejecting a request
	// that is missing or no longer pending
	ErrAlreadyProcessed = errors.New("recharge request already processed")

	// ErrCardNotFound is returned when the target card doesn't exist
	ErrCardNotFound = errors.New("card not found")
)

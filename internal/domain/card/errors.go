package card

import "errors"

var (
	// ErrNotFound is returned when a card (or a cart meal) doesn't exist
	ErrNotFound = errors.New("card not found")

	// ErrCardBlocked is returned when charging a blocked card
	ErrCardBlocked = errors.New("card is blocked")

	// ErrInsufficientFunds is returned when the balance cannot cover a charge
	ErrInsufficientFunds = errors.New("insufficient balance")

	// ErrInvalidAmount is returned for non-positive amounts or an empty cart
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidState is returned when a mutation would drive the balance negative
	ErrInvalidState = errors.New("balance would become negative")

	// ErrDuplicateCardNumber is returned when provisioning reuses a card number
	ErrDuplicateCardNumber = errors.New("card number already in use")
)

package apperrors

import (
	"errors"
	"fmt"
)

// Domain error sentinels. Services return these (possibly wrapped with
// context via fmt.Errorf and %w); handlers map them to HTTP status codes
// and the user-visible messages clients depend on.
var (
	// ErrInvalidInput covers malformed request data, e.g. a non-integer
	// or non-positive purchase quantity.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidDenomination is returned when a deposit amount is not one
	// of the accepted coin values.
	ErrInvalidDenomination = errors.New("invalid denomination")

	// ErrForbidden covers both wrong-role and not-the-owner failures; the
	// two are indistinguishable to the caller.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound is returned when the referenced record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUserNotFound marks a missing user record. It wraps ErrNotFound so
	// generic not-found checks still match, while the boundary can name
	// the right entity instead of reporting a missing product.
	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)

	// ErrInsufficientStock is returned when a purchase requests more units
	// than are available.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInsufficientFunds is returned when the buyer's deposit does not
	// cover the purchase cost.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

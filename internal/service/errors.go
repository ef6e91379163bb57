package service

import (
	"errors"
	"fmt"
)

// Checkout error taxonomy. The texts are part of the API contract and are
// rendered verbatim into the response envelope.
var (
	ErrInvalidAddress = errors.New("Address is required")
	ErrEmptyCart      = errors.New("Cart is empty")
	ErrForbidden      = errors.New("Access denied")
)

type ListingNotFoundError struct {
	PhoneID string
}

func (e *ListingNotFoundError) Error() string {
	return fmt.Sprintf("Phone not found: %s", e.PhoneID)
}

type InsufficientStockError struct {
	PhoneID string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock for phone %s", e.PhoneID)
}

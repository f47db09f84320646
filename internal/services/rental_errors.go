package services

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDateRange    = errors.New("end date must be after start date")
	ErrItemNotFound        = errors.New("item not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrSelfRental          = errors.New("owners cannot rent their own items")
	ErrDatesUnavailable    = errors.New("item is already booked for some of those dates")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrTransactionFailed   = errors.New("rental could not be completed, please retry")
)

func transactionFailed(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrTransactionFailed, op, err)
}

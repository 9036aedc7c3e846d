package repository

import (
	"context"

	"phonebook/internal/domain/entity"
	"phonebook/internal/errors"
)

// ErrNumberNotFound is returned when a number does not exist.
var ErrNumberNotFound = errors.New("phonebook number not found")

// NumberRepository defines persistence operations for phone numbers.
type NumberRepository interface {
	// Create inserts the number and assigns ID and timestamps.
	Create(ctx context.Context, number *entity.Number) error

	// FindWithOwner returns the number joined with its parent entry owner, or ErrNumberNotFound.
	FindWithOwner(ctx context.Context, id int64) (*entity.OwnedNumber, error)

	// Delete removes the number, or returns ErrNumberNotFound.
	Delete(ctx context.Context, id int64) error
}

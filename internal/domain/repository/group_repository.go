package repository

import (
	"context"

	"phonebook/internal/domain/entity"
	"phonebook/internal/errors"
)

// ErrGroupNotFound is returned when no group has the requested name.
var ErrGroupNotFound = errors.New("phonebook group not found")

// GroupRepository defines persistence operations for groups.
type GroupRepository interface {
	// GetOrCreate returns the group with the exact name, creating it when missing.
	// Concurrent callers with the same name observe one row.
	GetOrCreate(ctx context.Context, name string) (*entity.Group, error)

	// FindByName returns the group with the exact name, or ErrGroupNotFound.
	FindByName(ctx context.Context, name string) (*entity.Group, error)
}

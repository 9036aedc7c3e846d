// Package ownership decides whether a caller may mutate a resource.
package ownership

import (
	domainerrors "phonebook/internal/domain/errors"

	"github.com/google/uuid"
)

// Owned is anything with an owning user.
type Owned interface {
	Owner() *uuid.UUID
}

// Authorize returns ErrNotOwner unless caller is the owner of owned.
// A resource without an owner never authorizes anyone.
func Authorize(caller uuid.UUID, owned Owned) error {
	if owned == nil || caller == uuid.Nil {
		return domainerrors.ErrNotOwner
	}

	owner := owned.Owner()
	if owner == nil || *owner != caller {
		return domainerrors.ErrNotOwner
	}

	return nil
}

// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Column limits shared by validation and the persistence models.
const (
	MaxEntryNameLength    = 300
	MaxEntryAddressLength = 50
	MaxGroupNameLength    = 50
	MaxNumberLength       = 20
)

// EntryType classifies a phonebook entry.
type EntryType string

const (
	EntryTypePersonal   EntryType = "personal"
	EntryTypeEnterprise EntryType = "enterprise"
)

// IsValid reports whether t is one of the known entry types.
func (t EntryType) IsValid() bool {
	switch t {
	case EntryTypePersonal, EntryTypeEnterprise:
		return true
	default:
		return false
	}
}

// Entry is a contact record kept in a user's phonebook.
type Entry struct {
	ID         int64      // Internal numeric id, never exposed directly.
	Name       string     // Display name of the contact.
	City       string     // Address: city.
	Street     string     // Address: street and house number.
	PostalCode string     // Address: postal code.
	Country    string     // Address: country.
	Type       EntryType  // personal or enterprise.
	OwnerID    *uuid.UUID // User that created the entry; nil once the account is gone.
	Numbers    []*Number  // Phone numbers owned by the entry.
	Groups     []string   // Names of the groups the entry is attached to.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Owner returns the user allowed to mutate the entry.
func (e *Entry) Owner() *uuid.UUID {
	if e == nil {
		return nil
	}

	return e.OwnerID
}

// HasGroup reports whether the entry is attached to the named group.
func (e *Entry) HasGroup(name string) bool {
	for _, group := range e.Groups {
		if group == name {
			return true
		}
	}

	return false
}

// EntryView is an entry together with its read-time rating aggregate.
type EntryView struct {
	Entry  *Entry
	Rating RatingSummary
}

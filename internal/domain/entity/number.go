package entity

import (
	"time"

	"github.com/google/uuid"
)

// NumberType classifies a phone number.
type NumberType string

const (
	NumberTypeMobile   NumberType = "mobile"
	NumberTypeLandline NumberType = "landline"
)

// IsValid reports whether t is one of the known number types.
func (t NumberType) IsValid() bool {
	switch t {
	case NumberTypeMobile, NumberTypeLandline:
		return true
	default:
		return false
	}
}

// Number is a phone number that belongs to exactly one entry.
type Number struct {
	ID        int64
	EntryID   int64
	Number    *string // Nullable in storage.
	Type      NumberType
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnedNumber is a number joined with the owner of its parent entry.
// Numbers carry no owner of their own; mutation rights follow the entry.
type OwnedNumber struct {
	Number
	EntryOwnerID *uuid.UUID
}

// Owner returns the owner of the parent entry.
func (n *OwnedNumber) Owner() *uuid.UUID {
	if n == nil {
		return nil
	}

	return n.EntryOwnerID
}

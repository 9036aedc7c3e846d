// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"phonebook/internal/domain/entity"
	"phonebook/internal/errors"

	"github.com/google/uuid"
)

// ErrEntryNotFound is returned when an entry does not exist.
var ErrEntryNotFound = errors.New("phonebook entry not found")

// EntryField names an updatable entry column.
type EntryField string

const (
	EntryFieldName       EntryField = "name"
	EntryFieldCity       EntryField = "city"
	EntryFieldStreet     EntryField = "street"
	EntryFieldPostalCode EntryField = "postal_code"
	EntryFieldCountry    EntryField = "country"
	EntryFieldType       EntryField = "type"
)

// EntryFilter narrows an entry listing. Nil / empty fields do not filter.
type EntryFilter struct {
	Type    *entity.EntryType
	City    *string
	Search  string     // Case-insensitive substring of name, city or any group name.
	OwnerID *uuid.UUID // Restricts the listing to one owner.
}

// Page selects a window of an ordered listing.
type Page struct {
	Limit      int
	Offset     int
	Descending bool // Order by created_at descending instead of ascending.
}

// EntryRepository defines persistence operations for phonebook entries.
// Entries returned by finders carry their numbers and group names.
type EntryRepository interface {
	// Create inserts the entry row and assigns ID and timestamps. Numbers and groups are not written.
	Create(ctx context.Context, entry *entity.Entry) error

	// FindByID retrieves an entry, or ErrEntryNotFound.
	FindByID(ctx context.Context, id int64) (*entity.Entry, error)

	// FindByIDForUpdate retrieves an entry and locks its row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id int64) (*entity.Entry, error)

	// Update writes only the given columns of the entry and bumps updated_at.
	Update(ctx context.Context, entry *entity.Entry, fields []EntryField) error

	// Delete removes the entry together with its numbers, group links and ratings.
	Delete(ctx context.Context, id int64) error

	// List returns one page of matching entries and the total number of matches.
	List(ctx context.Context, filter EntryFilter, page Page) ([]*entity.Entry, int64, error)

	// AttachGroup links the entry to the group. Attaching twice is a no-op.
	AttachGroup(ctx context.Context, entryID, groupID int64) error

	// DetachGroup unlinks the entry from the group. Detaching a missing link is a no-op.
	DetachGroup(ctx context.Context, entryID, groupID int64) error
}

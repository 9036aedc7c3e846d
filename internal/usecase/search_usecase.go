package usecase

import (
	"context"

	"phonebook/internal/domain/entity"

	"github.com/google/uuid"
)

// Listing orders
const (
	OrderCreatedAtAsc  = "created_at"
	OrderCreatedAtDesc = "-created_at"
)

// ListEntriesInput filters and paginates an entry listing.
type ListEntriesInput struct {
	Type    *entity.EntryType `query:"type" validate:"omitnil,oneof=personal enterprise"`
	City    *string           `query:"city" validate:"omitnil,max=50"`
	Search  string            `query:"search" validate:"max=300"`
	OrderBy string            `query:"orderBy" validate:"omitempty,oneof=created_at -created_at"`
	Limit   int               `query:"limit" validate:"gte=0"` // 0 selects the configured default
	Offset  int               `query:"offset" validate:"gte=0"`
}

// EntryPage is one page of a listing.
type EntryPage struct {
	Items  []*entity.EntryView
	Total  int64 // Matches across all pages.
	Limit  int
	Offset int
}

// SearchUsecase defines the read-only phonebook operations.
type SearchUsecase interface {
	// List searches every entry.
	List(ctx context.Context, input ListEntriesInput) (*EntryPage, error)

	// ListMine searches the entries owned by the caller.
	ListMine(ctx context.Context, caller uuid.UUID, input ListEntriesInput) (*EntryPage, error)

	// Get returns an entry the caller owns. Entries of other users are reported as not found.
	Get(ctx context.Context, caller uuid.UUID, entryToken string) (*entity.EntryView, error)

	// ContactCard renders an owned entry as a vCard QR code PNG.
	ContactCard(ctx context.Context, caller uuid.UUID, entryToken string) ([]byte, error)
}

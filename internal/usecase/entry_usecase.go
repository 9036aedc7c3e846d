// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"phonebook/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// NumberInput describes a phone number to attach to an entry.
type NumberInput struct {
	Number *string           `json:"number" validate:"omitnil,max=20"`
	Type   entity.NumberType `json:"type" validate:"required,oneof=mobile landline"`
}

// CreateEntryInput defines the data required to create a phonebook entry.
type CreateEntryInput struct {
	Name       string           `json:"name" validate:"required,max=300"`
	City       string           `json:"city" validate:"required,max=50"`
	Street     string           `json:"street" validate:"required,max=50"`
	PostalCode string           `json:"postalCode" validate:"required,max=50"`
	Country    string           `json:"country" validate:"required,max=50"`
	Type       entity.EntryType `json:"type" validate:"required,oneof=personal enterprise"`
	Groups     []string         `json:"groups" validate:"dive,required,max=50"`
	Numbers    []NumberInput    `json:"numbers" validate:"dive"`
}

// UpdateEntryInput carries the fields to change. Nil fields are left untouched,
// an explicitly supplied empty string is rejected.
type UpdateEntryInput struct {
	Name       *string           `json:"name,omitempty" validate:"omitnil,min=1,max=300"`
	City       *string           `json:"city,omitempty" validate:"omitnil,min=1,max=50"`
	Street     *string           `json:"street,omitempty" validate:"omitnil,min=1,max=50"`
	PostalCode *string           `json:"postalCode,omitempty" validate:"omitnil,min=1,max=50"`
	Country    *string           `json:"country,omitempty" validate:"omitnil,min=1,max=50"`
	Type       *entity.EntryType `json:"type,omitempty" validate:"omitnil,oneof=personal enterprise"`
}

// IsEmpty reports whether no field was supplied.
func (in UpdateEntryInput) IsEmpty() bool {
	return in.Name == nil && in.City == nil && in.Street == nil &&
		in.PostalCode == nil && in.Country == nil && in.Type == nil
}

// EntryUsecase defines the mutating phonebook operations. Every operation is atomic
// and only the owner of an entry may change it; anyone may rate.
type EntryUsecase interface {
	Create(ctx context.Context, caller uuid.UUID, input CreateEntryInput) (*entity.EntryView, error)
	Update(ctx context.Context, caller uuid.UUID, entryToken string, input UpdateEntryInput) (*entity.EntryView, error)
	Delete(ctx context.Context, caller uuid.UUID, entryToken string) error
	AddToGroup(ctx context.Context, caller uuid.UUID, entryToken, groupName string) (*entity.EntryView, error)
	RemoveFromGroup(ctx context.Context, caller uuid.UUID, entryToken, groupName string) (*entity.EntryView, error)
	AddNumber(ctx context.Context, caller uuid.UUID, entryToken string, input NumberInput) (*entity.EntryView, error)
	RemoveNumber(ctx context.Context, caller uuid.UUID, numberToken string) (*entity.EntryView, error)
	AddRating(ctx context.Context, caller uuid.UUID, entryToken string, rate int) (*entity.EntryView, error)
}

package postgres

import (
	"context"
	"time"

	"phonebook/internal/domain/entity"
	domainerrors "phonebook/internal/domain/errors"
	"phonebook/internal/domain/repository"
	"phonebook/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// numberRepository implements the domain.NumberRepository interface.
type numberRepository struct {
	db *gorm.DB
}

// NewNumberRepository is the constructor for numberRepository.
func NewNumberRepository(db *gorm.DB) repository.NumberRepository {
	return &numberRepository{db: db}
}

// Create persists a new number.
func (repo *numberRepository) Create(ctx context.Context, number *entity.Number) error {
	numberM := fromNumberDomain(number)

	if err := repo.db.WithContext(ctx).Create(numberM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrEntryNotFound
		}
		if isInvalidDataViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("number rejected by store")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create number")
	}

	number.ID = numberM.ID
	number.CreatedAt = numberM.CreatedAt
	number.UpdatedAt = numberM.UpdatedAt

	return nil
}

type ownedNumberRow struct {
	ID           int64
	EntryID      int64
	Number       *string
	Type         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	EntryOwnerID *uuid.UUID
}

// FindWithOwner retrieves a number together with the owner of its entry.
func (repo *numberRepository) FindWithOwner(ctx context.Context, id int64) (*entity.OwnedNumber, error) {
	var rows []ownedNumberRow
	err := repo.db.WithContext(ctx).
		Table("phonebook_numbers AS n").
		Select("n.id, n.entry_id, n.number, n.type, n.created_at, n.updated_at, e.owner_id AS entry_owner_id").
		Joins("JOIN phonebook_entries e ON e.id = n.entry_id").
		Where("n.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find number by ID")
	}
	if len(rows) == 0 {
		return nil, repository.ErrNumberNotFound
	}

	row := rows[0]

	return &entity.OwnedNumber{
		Number: entity.Number{
			ID:        row.ID,
			EntryID:   row.EntryID,
			Number:    row.Number,
			Type:      entity.NumberType(row.Type),
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		},
		EntryOwnerID: row.EntryOwnerID,
	}, nil
}

// Delete removes a number.
func (repo *numberRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.NumberModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete number")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNumberNotFound
	}

	return nil
}

// toNumberDomain converts a NumberModel to a domain entity.
func toNumberDomain(data *model.NumberModel) *entity.Number {
	return &entity.Number{
		ID:        data.ID,
		EntryID:   data.EntryID,
		Number:    data.Number,
		Type:      entity.NumberType(data.Type),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromNumberDomain converts a domain entity to a NumberModel.
func fromNumberDomain(data *entity.Number) *model.NumberModel {
	return &model.NumberModel{
		ID:        data.ID,
		EntryID:   data.EntryID,
		Number:    data.Number,
		Type:      string(data.Type),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

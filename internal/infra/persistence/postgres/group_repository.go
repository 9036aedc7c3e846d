package postgres

import (
	"context"

	"phonebook/internal/domain/entity"
	domainerrors "phonebook/internal/domain/errors"
	"phonebook/internal/domain/repository"
	"phonebook/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// groupRepository implements the domain.GroupRepository interface.
type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository is the constructor for groupRepository.
func NewGroupRepository(db *gorm.DB) repository.GroupRepository {
	return &groupRepository{db: db}
}

// GetOrCreate inserts the group unless the name is taken and then reads the surviving row.
func (repo *groupRepository) GetOrCreate(ctx context.Context, name string) (*entity.Group, error) {
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&model.GroupModel{Name: name}).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create group")
	}

	group, err := repo.FindByName(ctx, name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read group after create")
	}

	return group, nil
}

// FindByName retrieves a group by its exact name.
func (repo *groupRepository) FindByName(ctx context.Context, name string) (*entity.Group, error) {
	var groupM model.GroupModel
	if err := repo.db.WithContext(ctx).Where("name = ?", name).Take(&groupM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGroupNotFound
		}

		return nil, errors.Wrap(err, "failed to find group by name")
	}

	return toGroupDomain(&groupM), nil
}

// toGroupDomain converts a GroupModel to a domain entity.
func toGroupDomain(data *model.GroupModel) *entity.Group {
	return &entity.Group{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

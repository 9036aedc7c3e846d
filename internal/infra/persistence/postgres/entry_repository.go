package postgres

import (
	"context"
	"strings"
	"time"

	"phonebook/internal/domain/entity"
	domainerrors "phonebook/internal/domain/errors"
	"phonebook/internal/domain/repository"
	"phonebook/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// searchCondition matches the lowered pattern against name, city or any attached group.
// EXISTS keeps an entry with several matching groups a single row.
const searchCondition = `(LOWER(phonebook_entries.name) LIKE ? ESCAPE '\' ` +
	`OR LOWER(phonebook_entries.city) LIKE ? ESCAPE '\' ` +
	`OR EXISTS (SELECT 1 FROM phonebook_entry_groups eg ` +
	`JOIN phonebook_groups g ON g.id = eg.group_id ` +
	`WHERE eg.entry_id = phonebook_entries.id AND LOWER(g.name) LIKE ? ESCAPE '\'))`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// entryRepository implements the domain.EntryRepository interface.
type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository is the constructor for entryRepository.
func NewEntryRepository(db *gorm.DB) repository.EntryRepository {
	return &entryRepository{db: db}
}

// Create persists the entry row.
func (repo *entryRepository) Create(ctx context.Context, entry *entity.Entry) error {
	entryM := fromEntryDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isInvalidDataViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("entry rejected by store")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt
	entry.UpdatedAt = entryM.UpdatedAt

	return nil
}

// FindByID retrieves an entry with its numbers and groups.
func (repo *entryRepository) FindByID(ctx context.Context, id int64) (*entity.Entry, error) {
	return repo.findByID(ctx, repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate retrieves an entry and holds a row lock on it.
func (repo *entryRepository) FindByIDForUpdate(ctx context.Context, id int64) (*entity.Entry, error) {
	return repo.findByID(ctx, repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (repo *entryRepository) findByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Entry, error) {
	var entryM model.EntryModel
	if err := db.Where("id = ?", id).Take(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find entry by ID")
	}

	entries, err := repo.withRelations(ctx, []*model.EntryModel{&entryM})
	if err != nil {
		return nil, err
	}

	return entries[0], nil
}

// Update writes the selected columns and refreshes updated_at.
func (repo *entryRepository) Update(ctx context.Context, entry *entity.Entry, fields []repository.EntryField) error {
	if len(fields) == 0 {
		return nil
	}

	entryM := fromEntryDomain(entry)
	values := make(map[string]any, len(fields)+1)
	for _, field := range fields {
		value, ok := entryColumnValue(entryM, field)
		if !ok {
			return errors.Errorf("unknown entry field %q", field)
		}
		values[string(field)] = value
	}
	now := time.Now()
	values["updated_at"] = now

	result := repo.db.WithContext(ctx).
		Model(&model.EntryModel{}).
		Where("id = ?", entry.ID).
		Updates(values)
	if result.Error != nil {
		if isInvalidDataViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("entry rejected by store")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEntryNotFound
	}

	entry.UpdatedAt = now

	return nil
}

// Delete removes the entry; numbers, group links and ratings go with it through ON DELETE CASCADE.
func (repo *entryRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.EntryModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEntryNotFound
	}

	return nil
}

// List returns a page of entries matching the filter and the unpaginated total.
func (repo *entryRepository) List(ctx context.Context, filter repository.EntryFilter, page repository.Page) ([]*entity.Entry, int64, error) {
	base := func() *gorm.DB {
		return applyEntryFilter(repo.db.WithContext(ctx).Model(&model.EntryModel{}), filter)
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count entries")
	}
	if total == 0 {
		return []*entity.Entry{}, 0, nil
	}

	order := "phonebook_entries.created_at ASC, phonebook_entries.id ASC"
	if page.Descending {
		order = "phonebook_entries.created_at DESC, phonebook_entries.id DESC"
	}

	query := base().Order(order).Offset(page.Offset)
	if page.Limit > 0 {
		query = query.Limit(page.Limit)
	}

	var entryModels []*model.EntryModel
	if err := query.Find(&entryModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list entries")
	}

	entries, err := repo.withRelations(ctx, entryModels)
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// AttachGroup links an entry to a group; an existing link is left alone.
func (repo *entryRepository) AttachGroup(ctx context.Context, entryID, groupID int64) error {
	link := &model.EntryGroupModel{EntryID: entryID, GroupID: groupID}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(link).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to attach group")
	}

	return nil
}

// DetachGroup removes the link between an entry and a group if present.
func (repo *entryRepository) DetachGroup(ctx context.Context, entryID, groupID int64) error {
	err := repo.db.WithContext(ctx).
		Where("entry_id = ? AND group_id = ?", entryID, groupID).
		Delete(&model.EntryGroupModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to detach group")
	}

	return nil
}

func applyEntryFilter(db *gorm.DB, filter repository.EntryFilter) *gorm.DB {
	if filter.Type != nil {
		db = db.Where("phonebook_entries.type = ?", string(*filter.Type))
	}
	if filter.City != nil {
		db = db.Where("phonebook_entries.city = ?", *filter.City)
	}
	if filter.OwnerID != nil {
		db = db.Where("phonebook_entries.owner_id = ?", *filter.OwnerID)
	}
	if filter.Search != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(filter.Search)) + "%"
		db = db.Where(searchCondition, pattern, pattern, pattern)
	}

	return db
}

type entryGroupName struct {
	EntryID int64
	Name    string
}

// withRelations loads numbers and group names for the given entries with one query each.
func (repo *entryRepository) withRelations(ctx context.Context, entryModels []*model.EntryModel) ([]*entity.Entry, error) {
	entries := make([]*entity.Entry, 0, len(entryModels))
	if len(entryModels) == 0 {
		return entries, nil
	}

	ids := make([]int64, 0, len(entryModels))
	byID := make(map[int64]*entity.Entry, len(entryModels))
	for _, entryM := range entryModels {
		entry := toEntryDomain(entryM)
		entries = append(entries, entry)
		ids = append(ids, entry.ID)
		byID[entry.ID] = entry
	}

	var numberModels []*model.NumberModel
	if err := repo.db.WithContext(ctx).Where("entry_id IN ?", ids).Order("id ASC").Find(&numberModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load entry numbers")
	}
	for _, numberM := range numberModels {
		if entry, ok := byID[numberM.EntryID]; ok {
			entry.Numbers = append(entry.Numbers, toNumberDomain(numberM))
		}
	}

	var groupRows []entryGroupName
	err := repo.db.WithContext(ctx).
		Table("phonebook_entry_groups AS eg").
		Select("eg.entry_id AS entry_id, g.name AS name").
		Joins("JOIN phonebook_groups g ON g.id = eg.group_id").
		Where("eg.entry_id IN ?", ids).
		Order("g.name ASC").
		Scan(&groupRows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load entry groups")
	}
	for _, row := range groupRows {
		if entry, ok := byID[row.EntryID]; ok {
			entry.Groups = append(entry.Groups, row.Name)
		}
	}

	return entries, nil
}

func entryColumnValue(entryM *model.EntryModel, field repository.EntryField) (any, bool) {
	switch field {
	case repository.EntryFieldName:
		return entryM.Name, true
	case repository.EntryFieldCity:
		return entryM.City, true
	case repository.EntryFieldStreet:
		return entryM.Street, true
	case repository.EntryFieldPostalCode:
		return entryM.PostalCode, true
	case repository.EntryFieldCountry:
		return entryM.Country, true
	case repository.EntryFieldType:
		return entryM.Type, true
	default:
		return nil, false
	}
}

// toEntryDomain converts an EntryModel to a domain entity; relations are filled by the caller.
func toEntryDomain(data *model.EntryModel) *entity.Entry {
	return &entity.Entry{
		ID:         data.ID,
		Name:       data.Name,
		City:       data.City,
		Street:     data.Street,
		PostalCode: data.PostalCode,
		Country:    data.Country,
		Type:       entity.EntryType(data.Type),
		OwnerID:    data.OwnerID,
		Numbers:    []*entity.Number{},
		Groups:     []string{},
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromEntryDomain converts a domain entity to an EntryModel.
func fromEntryDomain(data *entity.Entry) *model.EntryModel {
	return &model.EntryModel{
		ID:         data.ID,
		Name:       data.Name,
		City:       data.City,
		Street:     data.Street,
		PostalCode: data.PostalCode,
		Country:    data.Country,
		Type:       string(data.Type),
		OwnerID:    data.OwnerID,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

package postgres

import (
	"context"

	"phonebook/internal/domain/entity"
	domainerrors "phonebook/internal/domain/errors"
	"phonebook/internal/domain/repository"
	"phonebook/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ratingRepository implements the domain.RatingRepository interface.
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

// Create persists a new rating.
func (repo *ratingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	if rating.Rate > entity.MaxRate {
		return domainerrors.ErrValidationFailed.WrapMessage("rating exceeds the rate column")
	}
	ratingM := fromRatingDomain(rating)

	if err := repo.db.WithContext(ctx).Create(ratingM).Error; err != nil {
		if isInvalidDataViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("rating rejected by store")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create rating")
	}

	rating.ID = ratingM.ID
	rating.CreatedAt = ratingM.CreatedAt
	rating.UpdatedAt = ratingM.UpdatedAt

	return nil
}

type ratingSummaryRow struct {
	EntryID     int64
	RatingCount int64
	RatingSum   int64
}

// Summaries aggregates count and sum of rates per entry.
func (repo *ratingRepository) Summaries(ctx context.Context, entryIDs []int64) (map[int64]entity.RatingSummary, error) {
	summaries := make(map[int64]entity.RatingSummary, len(entryIDs))
	if len(entryIDs) == 0 {
		return summaries, nil
	}

	var rows []ratingSummaryRow
	err := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Select("entry_id, COUNT(*) AS rating_count, CAST(COALESCE(SUM(rate), 0) AS BIGINT) AS rating_sum").
		Where("entry_id IN ?", entryIDs).
		Group("entry_id").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate ratings")
	}

	for _, row := range rows {
		summaries[row.EntryID] = entity.RatingSummary{Count: row.RatingCount, Sum: row.RatingSum}
	}

	return summaries, nil
}

// fromRatingDomain converts a domain entity to a RatingModel.
func fromRatingDomain(data *entity.Rating) *model.RatingModel {
	return &model.RatingModel{
		ID:        data.ID,
		EntryID:   data.EntryID,
		Rate:      int32(data.Rate),
		CreatedBy: data.CreatedBy,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

package repository

import (
	"context"

	"phonebook/internal/domain/entity"
)

// RatingRepository defines persistence operations for ratings.
type RatingRepository interface {
	// Create inserts the rating and assigns ID and timestamps.
	Create(ctx context.Context, rating *entity.Rating) error

	// Summaries returns count and sum of rates per entry. Entries without ratings are absent.
	Summaries(ctx context.Context, entryIDs []int64) (map[int64]entity.RatingSummary, error)
}

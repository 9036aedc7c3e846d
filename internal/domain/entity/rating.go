package entity

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// MaxRate is the largest rate a rating may carry, the range of a 32-bit rate column.
const MaxRate = math.MaxInt32

// Rating is a single opinion about an entry. A user may rate the same entry many times.
type Rating struct {
	ID        int64
	EntryID   int64
	Rate      int
	CreatedBy *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RatingSummary aggregates every rating of one entry. It is computed at read time.
type RatingSummary struct {
	Count int64
	Sum   int64
}

// Average returns the mean rate rounded half-up to two decimal places, "0.00" without ratings.
func (s RatingSummary) Average() string {
	if s.Count <= 0 {
		return "0.00"
	}

	sum := s.Sum
	sign := ""
	if sum < 0 {
		sign = "-"
		sum = -sum
	}

	// whole and cents are kept apart so large sums never get multiplied
	whole, rest := sum/s.Count, sum%s.Count
	cents := (rest*200 + s.Count) / (2 * s.Count)
	if cents == 100 {
		whole, cents = whole+1, 0
	}
	if whole == 0 && cents == 0 {
		sign = ""
	}

	return fmt.Sprintf("%s%d.%02d", sign, whole, cents)
}

package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatingSummary_Average(t *testing.T) {
	tests := []struct {
		name  string
		rates []int64
		want  string
	}{
		{"no ratings", nil, "0.00"},
		{"single rating", []int64{4}, "4.00"},
		{"five zero three", []int64{5, 0, 3}, "2.67"},
		{"exact half", []int64{2, 3}, "2.50"},
		{"rounds half up", []int64{1, 0, 0, 0, 0, 0, 0, 0}, "0.13"},
		{"rounds down", []int64{1, 0, 0}, "0.33"},
		{"all zero", []int64{0, 0}, "0.00"},
		{"large values", []int64{1000000, 999999}, "999999.50"},
		{"max rates", []int64{MaxRate, MaxRate, MaxRate}, "2147483647.00"},
		{"max rate and zero", []int64{MaxRate, 0}, "1073741823.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := RatingSummary{}
			for _, rate := range tt.rates {
				summary.Count++
				summary.Sum += rate
			}
			assert.Equal(t, tt.want, summary.Average())
		})
	}
}

func TestRatingSummary_AverageLargeSums(t *testing.T) {
	assert.Equal(t, "100000000000000000.00", RatingSummary{Count: 1, Sum: 1e17}.Average())
	assert.Equal(t, "4611686018427387903.50", RatingSummary{Count: 2, Sum: math.MaxInt64}.Average())
	assert.Equal(t, "2147483647.00", RatingSummary{Count: 1 << 30, Sum: MaxRate << 30}.Average())
	assert.Equal(t, "1.00", RatingSummary{Count: 200, Sum: 199}.Average())
	assert.Equal(t, "-1.00", RatingSummary{Count: 200, Sum: -199}.Average())
}

func TestRatingSummary_AverageNegativeSum(t *testing.T) {
	assert.Equal(t, "-1.50", RatingSummary{Count: 2, Sum: -3}.Average())
	assert.Equal(t, "0.00", RatingSummary{Count: 1000, Sum: -1}.Average())
}

func TestEntryTypeAndNumberType(t *testing.T) {
	assert.True(t, EntryTypePersonal.IsValid())
	assert.True(t, EntryTypeEnterprise.IsValid())
	assert.False(t, EntryType("invalid_type").IsValid())

	assert.True(t, NumberTypeMobile.IsValid())
	assert.True(t, NumberTypeLandline.IsValid())
	assert.False(t, NumberType("fax").IsValid())
}

func TestKind(t *testing.T) {
	assert.Equal(t, "PhonebookEntry", KindEntry.String())
	assert.Equal(t, "PhonebookNumber", KindNumber.String())
	assert.False(t, KindUnknown.IsValid())
	assert.False(t, Kind(42).IsValid())
	assert.True(t, KindRating.IsValid())
}

func TestEntry_OwnerAndGroups(t *testing.T) {
	var nilEntry *Entry
	assert.Nil(t, nilEntry.Owner())

	entry := &Entry{Groups: []string{"Company", "Red"}}
	assert.True(t, entry.HasGroup("Red"))
	assert.False(t, entry.HasGroup("red"))
}

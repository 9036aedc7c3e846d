package model

import (
	"time"

	"github.com/google/uuid"
)

// RatingModel is the GORM-specific struct for the 'phonebook_ratings' table.
type RatingModel struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	EntryID   int64      `gorm:"not null;index:idx_phonebook_ratings_entry"`
	Rate      int32      `gorm:"type:integer;not null;check:chk_phonebook_ratings_rate,rate >= 0 AND rate <= 2147483647"`
	CreatedBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Entry *EntryModel `gorm:"foreignKey:EntryID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "phonebook_ratings"
}

package model

import "time"

// NumberModel is the GORM-specific struct for the 'phonebook_numbers' table.
type NumberModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	EntryID   int64   `gorm:"not null;index:idx_phonebook_numbers_entry"`
	Number    *string `gorm:"type:varchar(20)"`
	Type      string  `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Entry *EntryModel `gorm:"foreignKey:EntryID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (NumberModel) TableName() string {
	return "phonebook_numbers"
}

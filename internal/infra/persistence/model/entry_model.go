package model

import (
	"time"

	"github.com/google/uuid"
)

// EntryModel is the GORM-specific struct for the 'phonebook_entries' table.
type EntryModel struct {
	ID         int64      `gorm:"primaryKey;autoIncrement"`
	Name       string     `gorm:"type:varchar(300);not null"`
	City       string     `gorm:"type:varchar(50);not null;index:idx_phonebook_entries_city"`
	Street     string     `gorm:"type:varchar(50);not null"`
	PostalCode string     `gorm:"type:varchar(50);not null"`
	Country    string     `gorm:"type:varchar(50);not null"`
	Type       string     `gorm:"type:varchar(20);not null;index:idx_phonebook_entries_type"`
	OwnerID    *uuid.UUID `gorm:"type:uuid;index:idx_phonebook_entries_owner"`
	CreatedAt  time.Time  `gorm:"index:idx_phonebook_entries_created_at"`
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (EntryModel) TableName() string {
	return "phonebook_entries"
}

// EntryGroupModel is the join row between an entry and a group.
type EntryGroupModel struct {
	EntryID   int64 `gorm:"primaryKey;autoIncrement:false"`
	GroupID   int64 `gorm:"primaryKey;autoIncrement:false;index:idx_phonebook_entry_groups_group"`
	CreatedAt time.Time

	Entry *EntryModel `gorm:"foreignKey:EntryID;constraint:OnDelete:CASCADE"`
	Group *GroupModel `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (EntryGroupModel) TableName() string {
	return "phonebook_entry_groups"
}

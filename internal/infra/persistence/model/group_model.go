package model

import "time"

// GroupModel is the GORM-specific struct for the 'phonebook_groups' table.
type GroupModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(50);not null;uniqueIndex:idx_phonebook_groups_name"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (GroupModel) TableName() string {
	return "phonebook_groups"
}

package entity

import "time"

// Group is a shared label. Names are unique and case-sensitive.
type Group struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

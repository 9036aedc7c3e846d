package service

import (
	"context"
	"time"
)

// EntryEventType names what happened to an entry.
type EntryEventType string

const (
	EntryCreated       EntryEventType = "entry.created"
	EntryUpdated       EntryEventType = "entry.updated"
	EntryDeleted       EntryEventType = "entry.deleted"
	EntryGroupAdded    EntryEventType = "entry.group_added"
	EntryGroupRemoved  EntryEventType = "entry.group_removed"
	EntryNumberAdded   EntryEventType = "entry.number_added"
	EntryNumberRemoved EntryEventType = "entry.number_removed"
	EntryRated         EntryEventType = "entry.rated"
)

// EntryEvent is published after an entry mutation has been committed
type EntryEvent struct {
	RequestID  string         `json:"request_id,omitempty"` // For distributed tracing
	Type       EntryEventType `json:"type"`
	EntryID    string         `json:"entry_id"` // Opaque entry token, never the internal id
	ActorID    string         `json:"actor_id"`
	Group      string         `json:"group,omitempty"`
	NumberID   string         `json:"number_id,omitempty"`
	Rate       *int           `json:"rate,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishEntryEvent publishes an entry event to subscribers
	PublishEntryEvent(ctx context.Context, event *EntryEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

package pubsub

import (
	"context"
	"log/slog"

	"phonebook/internal/domain/service"
)

type noopPublisher struct {
	logger *slog.Logger
}

// NewNoopPublisher returns a publisher that drops every event.
func NewNoopPublisher(logger *slog.Logger) service.EventPublisher {
	return &noopPublisher{logger: logger}
}

func (p *noopPublisher) PublishEntryEvent(ctx context.Context, event *service.EntryEvent) error {
	p.logger.DebugContext(ctx, "Entry event dropped", logEvent(event)...)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

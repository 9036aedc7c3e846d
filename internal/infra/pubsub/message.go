package pubsub

import (
	"encoding/json"

	"phonebook/internal/domain/service"

	"github.com/pkg/errors"
)

// message is an entry event ready for the wire. Events of one entry share an ordering key.
type message struct {
	data        []byte
	attributes  map[string]string
	orderingKey string
}

func encodeEvent(event *service.EntryEvent) (*message, error) {
	if event == nil {
		return nil, errors.New("entry event is nil")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode %s event", event.Type)
	}

	// subscribers filter on these without decoding the payload
	attributes := map[string]string{
		"event_type": string(event.Type),
		"entry_id":   event.EntryID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return &message{data: data, attributes: attributes, orderingKey: event.EntryID}, nil
}

func logEvent(event *service.EntryEvent) []any {
	return []any{"type", string(event.Type), "entry_id", event.EntryID}
}

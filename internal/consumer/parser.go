package consumer

import (
	"encoding/json"
	"fmt"

	"github.com/Damatnic/astral-turf-fifa-sub012/internal/domain"
	"github.com/Damatnic/astral-turf-fifa-sub012/internal/queue"
)

// BatchParser implements MessageParser for JSON-encoded flushed batches
type BatchParser struct{}

// NewBatchParser creates a new batch parser
func NewBatchParser() *BatchParser {
	return &BatchParser{}
}

// Parse decodes a batch message body into session events. Events missing an
// id or type are rejected so malformed batches never reach the repository.
func (p *BatchParser) Parse(body []byte) ([]*domain.SessionEvent, error) {
	var msg queue.BatchMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal batch message: %w", err)
	}

	if len(msg.Events) == 0 {
		return nil, fmt.Errorf("batch message contains no events")
	}

	events := make([]*domain.SessionEvent, 0, len(msg.Events))
	for i := range msg.Events {
		event := msg.Events[i]

		if event.ID == "" {
			return nil, fmt.Errorf("event %d has no id", i)
		}
		if event.Type == "" {
			return nil, fmt.Errorf("event %s has no type", event.ID)
		}
		if event.Metadata.SessionID == "" {
			// Older producers set the session id only on the envelope.
			event.Metadata.SessionID = msg.SessionID
		}

		events = append(events, &event)
	}

	return events, nil
}

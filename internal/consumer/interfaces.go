package consumer

import (
	"github.com/Damatnic/astral-turf-fifa-sub012/internal/domain"
)

// MessageParser defines the interface for parsing raw message bytes into a
// batch of session events
type MessageParser interface {
	Parse(body []byte) ([]*domain.SessionEvent, error)
}

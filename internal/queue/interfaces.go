package queue

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/Damatnic/astral-turf-fifa-sub012/internal/domain"
)

// BatchPublisher defines the interface for publishing flushed event batches
// to a queue
type BatchPublisher interface {
	PublishBatch(ctx context.Context, sessionID string, events []domain.SessionEvent) error
}

// QueueConsumer defines the interface for consuming messages from a queue
type QueueConsumer interface {
	ReceiveMessages(ctx context.Context, input *sqs.ReceiveMessageInput) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, input *sqs.DeleteMessageInput) (*sqs.DeleteMessageOutput, error)
	QueueURL() string
}

// BatchMessage is the wire shape of one flushed batch.
type BatchMessage struct {
	SessionID string                `json:"session_id"`
	Events    []domain.SessionEvent `json:"events"`
}

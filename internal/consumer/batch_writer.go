package consumer

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Damatnic/astral-turf-fifa-sub012/internal/domain"
	"github.com/Damatnic/astral-turf-fifa-sub012/internal/repository"
)

// BatchWriterConfig configures the batch writer
type BatchWriterConfig struct {
	MaxBatchSize int
	FlushTimeout time.Duration
}

// BatchWriter accumulates envelopes and writes their events to the
// repository when the pending event count reaches the size threshold or the
// flush timeout elapses
type BatchWriter struct {
	repository repository.EventRepository
	config     BatchWriterConfig
	log        *zap.Logger
}

// NewBatchWriter creates a new batch writer
func NewBatchWriter(repo repository.EventRepository, config BatchWriterConfig, log *zap.Logger) *BatchWriter {
	return &BatchWriter{
		repository: repo,
		config:     config,
		log:        log,
	}
}

// Start begins processing envelopes, batching, and writing to the repository
func (w *BatchWriter) Start(ctx context.Context, in <-chan *Envelope) {
	ticker := time.NewTicker(w.config.FlushTimeout)
	defer ticker.Stop()

	var pending []*Envelope
	pendingEvents := 0

	for {
		select {
		case <-ctx.Done():
			w.log.Info("Batch writer shutting down")
			if len(pending) > 0 {
				w.log.Info("Flushing final batch", zap.Int("event_count", pendingEvents))
				w.processBatch(ctx, pending)
			}
			return

		case envelope, ok := <-in:
			if !ok {
				w.log.Info("Batch writer input channel closed")
				if len(pending) > 0 {
					w.log.Info("Flushing final batch", zap.Int("event_count", pendingEvents))
					w.processBatch(ctx, pending)
				}
				return
			}

			pending = append(pending, envelope)
			pendingEvents += len(envelope.Events)

			if pendingEvents >= w.config.MaxBatchSize {
				w.log.Info("Batch size threshold reached", zap.Int("event_count", pendingEvents))
				w.processBatch(ctx, pending)
				pending = nil
				pendingEvents = 0
				ticker.Reset(w.config.FlushTimeout)
			}

		case <-ticker.C:
			if len(pending) > 0 {
				w.log.Info("Batch timeout reached", zap.Int("event_count", pendingEvents))
				w.processBatch(ctx, pending)
				pending = nil
				pendingEvents = 0
			}
		}
	}
}

// processBatch handles the atomic transaction: insert + ack/nack
func (w *BatchWriter) processBatch(ctx context.Context, envelopes []*Envelope) {
	if len(envelopes) == 0 {
		return
	}

	var events []*domain.SessionEvent
	for _, env := range envelopes {
		events = append(events, env.Events...)
	}

	insertedCount, err := w.repository.InsertBatch(ctx, events)

	if err != nil {
		w.log.Error("Failed to insert batch",
			zap.Error(err),
			zap.Int("event_count", len(events)))
		w.nackAll(ctx, envelopes)
		return
	}

	if insertedCount != len(events) {
		w.log.Warn("Partial insert success",
			zap.Int("inserted", insertedCount),
			zap.Int("expected", len(events)))
		w.nackAll(ctx, envelopes)
		return
	}

	w.log.Info("Inserted events",
		zap.Int("count", insertedCount),
		zap.Int("batch_count", len(envelopes)))
	w.ackAll(ctx, envelopes)
}

// ackAll acknowledges all envelopes (deletes the messages from SQS)
func (w *BatchWriter) ackAll(ctx context.Context, envelopes []*Envelope) {
	for _, env := range envelopes {
		if err := env.Ack(ctx); err != nil {
			w.log.Error("Failed to ack envelope", zap.Error(err))
		}
	}
}

// nackAll negatively acknowledges all envelopes (leaves them in SQS for retry)
func (w *BatchWriter) nackAll(ctx context.Context, envelopes []*Envelope) {
	for _, env := range envelopes {
		if err := env.Nack(ctx); err != nil {
			w.log.Error("Failed to nack envelope", zap.Error(err))
		}
	}
}

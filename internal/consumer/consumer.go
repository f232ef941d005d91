package consumer

import (
	"context"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"github.com/Damatnic/astral-turf-fifa-sub012/internal/config"
	"github.com/Damatnic/astral-turf-fifa-sub012/internal/queue"
	"github.com/Damatnic/astral-turf-fifa-sub012/internal/repository"
)

// Channel depth between stages. Bounded so a slow ClickHouse insert applies
// backpressure to the receiver instead of growing memory.
const stageBuffer = 100

// Consumer wires the receive, parse and write stages into one pipeline that
// drains flushed session batches into the event store
type Consumer struct {
	receiver    *Receiver
	parser      *ParserStage
	batchWriter *BatchWriter
}

// NewConsumer builds the pipeline from configuration
func NewConsumer(cfg *config.Config, queueConsumer queue.QueueConsumer, repo repository.EventRepository, log *zap.Logger) *Consumer {
	return &Consumer{
		receiver: NewReceiver(queueConsumer, ReceiverConfig{
			MaxMessages:     10,
			WaitTimeSeconds: 20,
		}, log),
		parser: NewParserStage(queueConsumer, NewBatchParser(), log),
		batchWriter: NewBatchWriter(repo, BatchWriterConfig{
			MaxBatchSize: cfg.Consumer.BatchSizeMax,
			FlushTimeout: time.Duration(cfg.Consumer.BatchTimeoutSec) * time.Second,
		}, log),
	}
}

// Start runs all stages until the context is cancelled and every stage has
// drained
func (c *Consumer) Start(ctx context.Context) error {
	messages := make(chan types.Message, stageBuffer)
	envelopes := make(chan *Envelope, stageBuffer)

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		c.receiver.Start(ctx, messages)
	}()

	go func() {
		defer wg.Done()
		c.parser.Start(ctx, messages, envelopes)
	}()

	go func() {
		defer wg.Done()
		c.batchWriter.Start(ctx, envelopes)
	}()

	wg.Wait()
	return nil
}

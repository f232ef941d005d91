package consumer

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/Damatnic/astral-turf-fifa-sub012/internal/domain"
	"github.com/Damatnic/astral-turf-fifa-sub012/internal/repository"
)

// MockEventRepository is a mock implementation of repository.EventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) InsertBatch(ctx context.Context, events []*domain.SessionEvent) (int, error) {
	args := m.Called(ctx, events)
	return args.Int(0), args.Error(1)
}

func (m *MockEventRepository) InitSchema(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEventRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEventRepository) Close() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockEventRepository) GetSessionMetrics(ctx context.Context, query repository.SessionMetricsQuery) (*repository.SessionMetricsResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.SessionMetricsResult), args.Error(1)
}

// testEnvelope builds an envelope with n events and counters tracking
// ack/nack calls
func testEnvelope(n int, acked, nacked *atomic.Int32) *Envelope {
	events := make([]*domain.SessionEvent, 0, n)
	for i := 0; i < n; i++ {
		events = append(events, &domain.SessionEvent{
			ID:        fmt.Sprintf("evt-%d", i),
			Timestamp: time.Now().UnixMilli(),
			Type:      domain.EventPlayerMove,
			Category:  domain.CategoryTactical,
			Metadata:  domain.EventMetadata{SessionID: "sess-1"},
		})
	}
	ack := func(ctx context.Context) error {
		acked.Add(1)
		return nil
	}
	nack := func(ctx context.Context) error {
		nacked.Add(1)
		return nil
	}
	return NewEnvelope(events, ack, nack)
}

func TestBatchWriter_FlushOnSizeThreshold(t *testing.T) {
	mockRepo := new(MockEventRepository)
	mockRepo.On("InsertBatch", mock.Anything, mock.MatchedBy(func(events []*domain.SessionEvent) bool {
		return len(events) == 4
	})).Return(4, nil)

	writer := NewBatchWriter(mockRepo, BatchWriterConfig{
		MaxBatchSize: 4,
		FlushTimeout: 10 * time.Second,
	}, zap.NewNop())

	var acked, nacked atomic.Int32
	in := make(chan *Envelope, 2)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go writer.Start(ctx, in)

	in <- testEnvelope(2, &acked, &nacked)
	in <- testEnvelope(2, &acked, &nacked)

	time.Sleep(100 * time.Millisecond)

	mockRepo.AssertExpectations(t)
	assert.Equal(t, int32(2), acked.Load())
	assert.Equal(t, int32(0), nacked.Load())
}

func TestBatchWriter_FlushOnTimeout(t *testing.T) {
	mockRepo := new(MockEventRepository)
	mockRepo.On("InsertBatch", mock.Anything, mock.MatchedBy(func(events []*domain.SessionEvent) bool {
		return len(events) == 1
	})).Return(1, nil)

	writer := NewBatchWriter(mockRepo, BatchWriterConfig{
		MaxBatchSize: 100,
		FlushTimeout: 50 * time.Millisecond,
	}, zap.NewNop())

	var acked, nacked atomic.Int32
	in := make(chan *Envelope, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go writer.Start(ctx, in)

	in <- testEnvelope(1, &acked, &nacked)

	time.Sleep(150 * time.Millisecond)

	mockRepo.AssertExpectations(t)
	assert.Equal(t, int32(1), acked.Load())
}

func TestBatchWriter_NackOnInsertError(t *testing.T) {
	mockRepo := new(MockEventRepository)
	mockRepo.On("InsertBatch", mock.Anything, mock.Anything).
		Return(0, errors.New("clickhouse unavailable"))

	writer := NewBatchWriter(mockRepo, BatchWriterConfig{
		MaxBatchSize: 2,
		FlushTimeout: 10 * time.Second,
	}, zap.NewNop())

	var acked, nacked atomic.Int32
	in := make(chan *Envelope, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go writer.Start(ctx, in)

	in <- testEnvelope(2, &acked, &nacked)

	time.Sleep(100 * time.Millisecond)

	mockRepo.AssertExpectations(t)
	assert.Equal(t, int32(0), acked.Load())
	assert.Equal(t, int32(1), nacked.Load())
}

func TestBatchWriter_NackOnPartialInsert(t *testing.T) {
	mockRepo := new(MockEventRepository)
	mockRepo.On("InsertBatch", mock.Anything, mock.Anything).Return(1, nil)

	writer := NewBatchWriter(mockRepo, BatchWriterConfig{
		MaxBatchSize: 3,
		FlushTimeout: 10 * time.Second,
	}, zap.NewNop())

	var acked, nacked atomic.Int32
	in := make(chan *Envelope, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go writer.Start(ctx, in)

	in <- testEnvelope(3, &acked, &nacked)

	time.Sleep(100 * time.Millisecond)

	mockRepo.AssertExpectations(t)
	assert.Equal(t, int32(0), acked.Load())
	assert.Equal(t, int32(1), nacked.Load())
}

func TestBatchWriter_FlushOnChannelClose(t *testing.T) {
	mockRepo := new(MockEventRepository)
	mockRepo.On("InsertBatch", mock.Anything, mock.MatchedBy(func(events []*domain.SessionEvent) bool {
		return len(events) == 2
	})).Return(2, nil)

	writer := NewBatchWriter(mockRepo, BatchWriterConfig{
		MaxBatchSize: 100,
		FlushTimeout: 10 * time.Second,
	}, zap.NewNop())

	var acked, nacked atomic.Int32
	in := make(chan *Envelope, 1)

	done := make(chan struct{})
	go func() {
		writer.Start(context.Background(), in)
		close(done)
	}()

	in <- testEnvelope(2, &acked, &nacked)
	close(in)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("batch writer did not stop after channel close")
	}

	mockRepo.AssertExpectations(t)
	assert.Equal(t, int32(1), acked.Load())
}

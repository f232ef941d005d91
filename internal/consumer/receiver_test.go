package consumer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockQueueConsumer is a mock implementation of queue.QueueConsumer
type MockQueueConsumer struct {
	mock.Mock
}

func (m *MockQueueConsumer) ReceiveMessages(ctx context.Context, input *awssqs.ReceiveMessageInput) (*awssqs.ReceiveMessageOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*awssqs.ReceiveMessageOutput), args.Error(1)
}

func (m *MockQueueConsumer) DeleteMessage(ctx context.Context, input *awssqs.DeleteMessageInput) (*awssqs.DeleteMessageOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*awssqs.DeleteMessageOutput), args.Error(1)
}

func (m *MockQueueConsumer) QueueURL() string {
	args := m.Called()
	return args.String(0)
}

func TestReceiver_ForwardsMessages(t *testing.T) {
	mockConsumer := new(MockQueueConsumer)
	mockConsumer.On("QueueURL").Return("http://localhost:9324/queue/session-events")
	mockConsumer.On("ReceiveMessages", mock.Anything, mock.Anything).Return(&awssqs.ReceiveMessageOutput{
		Messages: []types.Message{
			{MessageId: aws.String("msg-1"), Body: aws.String("{}")},
			{MessageId: aws.String("msg-2"), Body: aws.String("{}")},
		},
	}, nil)

	receiver := NewReceiver(mockConsumer, ReceiverConfig{
		MaxMessages:     10,
		WaitTimeSeconds: 1,
	}, zap.NewNop())

	out := make(chan types.Message)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go receiver.Start(ctx, out)

	first := <-out
	second := <-out

	assert.Equal(t, "msg-1", aws.ToString(first.MessageId))
	assert.Equal(t, "msg-2", aws.ToString(second.MessageId))
}

func TestReceiver_ClosesOutputOnShutdown(t *testing.T) {
	mockConsumer := new(MockQueueConsumer)
	mockConsumer.On("QueueURL").Return("http://localhost:9324/queue/session-events")
	mockConsumer.On("ReceiveMessages", mock.Anything, mock.Anything).Return(&awssqs.ReceiveMessageOutput{}, nil)

	receiver := NewReceiver(mockConsumer, ReceiverConfig{
		MaxMessages:     10,
		WaitTimeSeconds: 1,
	}, zap.NewNop())

	out := make(chan types.Message)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		receiver.Start(ctx, out)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("receiver did not stop after context cancellation")
	}

	_, open := <-out
	assert.False(t, open)
}

func TestReceiver_ContinuesAfterReceiveError(t *testing.T) {
	mockConsumer := new(MockQueueConsumer)
	mockConsumer.On("QueueURL").Return("http://localhost:9324/queue/session-events")
	mockConsumer.On("ReceiveMessages", mock.Anything, mock.Anything).
		Return(nil, errors.New("network error")).Once()
	mockConsumer.On("ReceiveMessages", mock.Anything, mock.Anything).Return(&awssqs.ReceiveMessageOutput{
		Messages: []types.Message{
			{MessageId: aws.String("msg-1"), Body: aws.String("{}")},
		},
	}, nil)

	receiver := NewReceiver(mockConsumer, ReceiverConfig{
		MaxMessages:     10,
		WaitTimeSeconds: 1,
	}, zap.NewNop())

	out := make(chan types.Message)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go receiver.Start(ctx, out)

	select {
	case msg := <-out:
		assert.Equal(t, "msg-1", aws.ToString(msg.MessageId))
	case <-time.After(3 * time.Second):
		t.Fatal("receiver did not recover after receive error")
	}
}

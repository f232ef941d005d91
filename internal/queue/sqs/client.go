package sqs

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	envConfig "github.com/Damatnic/astral-turf-fifa-sub012/internal/config"
	"github.com/Damatnic/astral-turf-fifa-sub012/internal/domain"
	"github.com/Damatnic/astral-turf-fifa-sub012/internal/queue"
)

// Client represents an SQS client
type Client struct {
	client *sqs.Client
	config envConfig.SQS
	log    *zap.Logger
}

// NewClient creates a new SQS client
func NewClient(ctx context.Context, SQSConfig envConfig.SQS, log *zap.Logger) (*Client, error) {
	configOpts := []func(*config.LoadOptions) error{
		config.WithRegion(SQSConfig.Region),
	}

	var clientOpts []func(*sqs.Options)

	// Configure for local development with ElasticMQ
	if SQSConfig.Endpoint != "" {
		log.Info("Configuring SQS for local development",
			zap.String("endpoint", SQSConfig.Endpoint))
		configOpts = append(configOpts,
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("dummy", "dummy", "")))

		clientOpts = append(clientOpts, func(o *sqs.Options) {
			o.BaseEndpoint = aws.String(SQSConfig.Endpoint)
		})
	}

	cfg, err := config.LoadDefaultConfig(ctx, configOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	sqsClient := sqs.NewFromConfig(cfg, clientOpts...)

	log.Info("SQS client created",
		zap.String("region", SQSConfig.Region),
		zap.String("queue_url", SQSConfig.QueueURL))

	return &Client{
		client: sqsClient,
		config: SQSConfig,
		log:    log,
	}, nil
}

// ReceiveMessages receives messages from SQS
func (c *Client) ReceiveMessages(ctx context.Context, input *sqs.ReceiveMessageInput) (*sqs.ReceiveMessageOutput, error) {
	return c.client.ReceiveMessage(ctx, input)
}

// DeleteMessage deletes a message from SQS
func (c *Client) DeleteMessage(ctx context.Context, input *sqs.DeleteMessageInput) (*sqs.DeleteMessageOutput, error) {
	return c.client.DeleteMessage(ctx, input)
}

// QueueURL returns the configured queue URL
func (c *Client) QueueURL() string {
	return c.config.QueueURL
}

// PublishBatch publishes one flushed batch of session events as a single
// SQS message
func (c *Client) PublishBatch(ctx context.Context, sessionID string, events []domain.SessionEvent) error {
	if len(events) == 0 {
		return nil
	}

	bodyJSON, err := json.Marshal(queue.BatchMessage{
		SessionID: sessionID,
		Events:    events,
	})
	if err != nil {
		c.log.Error("Failed to marshal batch",
			zap.String("session_id", sessionID),
			zap.Int("event_count", len(events)),
			zap.Error(err))
		return fmt.Errorf("failed to marshal batch: %w", err)
	}

	_, err = c.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(c.config.QueueURL),
		MessageBody: aws.String(string(bodyJSON)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"SessionID": {
				DataType:    aws.String("String"),
				StringValue: aws.String(sessionID),
			},
			"EventCount": {
				DataType:    aws.String("Number"),
				StringValue: aws.String(strconv.Itoa(len(events))),
			},
		},
	})
	if err != nil {
		c.log.Error("Failed to send batch to SQS",
			zap.String("session_id", sessionID),
			zap.Int("event_count", len(events)),
			zap.Error(err))
		return fmt.Errorf("failed to send batch to SQS: %w", err)
	}

	c.log.Info("Batch published to SQS",
		zap.String("session_id", sessionID),
		zap.Int("event_count", len(events)))

	return nil
}

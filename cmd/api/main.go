package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Damatnic/astral-turf-fifa-sub012/docs"
	"github.com/Damatnic/astral-turf-fifa-sub012/internal/config"
	"github.com/Damatnic/astral-turf-fifa-sub012/internal/handler"
	"github.com/Damatnic/astral-turf-fifa-sub012/internal/logger"
	"github.com/Damatnic/astral-turf-fifa-sub012/internal/queue/sqs"
	"github.com/Damatnic/astral-turf-fifa-sub012/internal/recorder"
	"github.com/Damatnic/astral-turf-fifa-sub012/internal/repository/clickhouse"
	"github.com/Damatnic/astral-turf-fifa-sub012/internal/service"
)

// @title Session Analytics Service API
// @version 1.0
// @description API for recording tactics-board sessions and serving derived analytics
// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Service.Environment, "api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func(log *zap.Logger) {
		err := log.Sync()
		if err != nil {
			log.Error("Failed to sync logger", zap.Error(err))
		}
	}(log)

	log.Info("Starting API service",
		zap.String("environment", cfg.Service.Environment),
		zap.String("port", cfg.Service.APIPort))

	// Configure Swagger host dynamically
	docs.SwaggerInfo.Host = cfg.Service.Host

	ctx := context.Background()

	// Initialize SQS client (the recorder's flush sink)
	sqsClient, err := sqs.NewClient(ctx, cfg.SQS, log)
	if err != nil {
		log.Fatal("Failed to create SQS client", zap.Error(err))
	}

	// Initialize the session recorder; one per process, injected below
	rec := recorder.New(recorder.Config{
		BufferSize:    cfg.Recorder.BufferSize,
		FlushInterval: time.Duration(cfg.Recorder.FlushIntervalSec) * time.Second,
	}, recorder.SinkFunc(sqsClient.PublishBatch), log)

	// Initialize ClickHouse client and repository (archived metrics)
	clickhouseClient, err := clickhouse.NewClient(ctx, &cfg.ClickHouse, log)
	if err != nil {
		log.Fatal("Failed to create ClickHouse client", zap.Error(err))
	}
	defer func(clickhouseClient *clickhouse.Client) {
		if err := clickhouseClient.Close(); err != nil {
			log.Error("Failed to close ClickHouse client", zap.Error(err))
		}
	}(clickhouseClient)

	repo := clickhouse.NewRepository(clickhouseClient, log)

	// Initialize session service
	sessionService := service.NewSessionService(rec, repo, log)

	// Initialize handler
	h := handler.NewHandler(sessionService, log)

	addr := fmt.Sprintf(":%s", cfg.Service.APIPort)
	log.Info("API server starting", zap.String("address", addr))

	if err := http.ListenAndServe(addr, h); err != nil {
		log.Fatal("Failed to start API server", zap.Error(err))
	}
}

package service

import (
	"context"

	"github.com/Damatnic/astral-turf-fifa-sub012/internal/domain"
	"github.com/Damatnic/astral-turf-fifa-sub012/internal/dto"
)

// SessionServicer defines the interface for session recording operations
type SessionServicer interface {
	StartSession(req *dto.StartSessionRequest) *dto.SessionStatusResponse
	StopSession() domain.SessionSummary
	ResetSession() *dto.SessionStatusResponse
	RecordEvent(req *dto.RecordEventRequest) (*dto.RecordEventResponse, error)
	RecordBulkEvents(events []dto.RecordEventRequest) ([]string, []string)
	ListEvents(req *dto.ListEventsRequest) ([]domain.SessionEvent, error)
	Summary() domain.SessionSummary
	Timeline() []domain.TimelineEntry
	ExportJSON() (string, error)
	ExportCSV() (string, error)
	GetSessionMetrics(ctx context.Context, req *dto.GetSessionMetricsRequest) (*dto.SessionMetricsResponse, error)
}

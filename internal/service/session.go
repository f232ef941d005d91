package service

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/Damatnic/astral-turf-fifa-sub012/internal/domain"
	"github.com/Damatnic/astral-turf-fifa-sub012/internal/dto"
	"github.com/Damatnic/astral-turf-fifa-sub012/internal/recorder"
	"github.com/Damatnic/astral-turf-fifa-sub012/internal/repository"
)

var validCategories = func() map[domain.EventCategory]bool {
	m := make(map[domain.EventCategory]bool, len(domain.Categories))
	for _, c := range domain.Categories {
		m[c] = true
	}
	return m
}()

// SessionService validates requests and drives the recorder and the
// archived-metrics repository
type SessionService struct {
	recorder   *recorder.Recorder
	repository repository.EventRepository
	log        *zap.Logger
}

// NewSessionService creates a new session service
func NewSessionService(rec *recorder.Recorder, repo repository.EventRepository, log *zap.Logger) *SessionService {
	return &SessionService{
		recorder:   rec,
		repository: repo,
		log:        log,
	}
}

// StartSession begins a recording session. Starting while a session is in
// progress is tolerated and reported, never an error.
func (s *SessionService) StartSession(req *dto.StartSessionRequest) *dto.SessionStatusResponse {
	alreadyRecording := s.recorder.IsRecording()

	sessionID := s.recorder.StartRecording(recorder.ClientInfo{
		UserAgent: req.UserAgent,
		Viewport: domain.Viewport{
			Width:  req.Viewport.Width,
			Height: req.Viewport.Height,
		},
	})

	status := dto.StatusStarted
	if alreadyRecording {
		status = dto.StatusAlreadyRecording
	}

	return &dto.SessionStatusResponse{
		SessionID: sessionID,
		Status:    status,
	}
}

// StopSession ends the session and returns its summary.
func (s *SessionService) StopSession() domain.SessionSummary {
	return s.recorder.StopRecording()
}

// ResetSession clears stored events and starts a new logical session.
func (s *SessionService) ResetSession() *dto.SessionStatusResponse {
	return &dto.SessionStatusResponse{
		SessionID: s.recorder.Reset(),
		Status:    dto.StatusReset,
	}
}

// RecordEvent validates and records a single event. A "dropped" status (not
// an error) signals that no session was recording.
func (s *SessionService) RecordEvent(req *dto.RecordEventRequest) (*dto.RecordEventResponse, error) {
	if err := s.validateEvent(req); err != nil {
		return nil, err
	}

	event := s.recorder.RecordEvent(
		domain.EventType(req.Type),
		domain.EventCategory(req.Category),
		req.Data,
	)
	if event.IsZero() {
		return &dto.RecordEventResponse{Status: dto.StatusDropped}, nil
	}

	return &dto.RecordEventResponse{
		EventID: event.ID,
		Status:  dto.StatusRecorded,
	}, nil
}

// RecordBulkEvents validates and records multiple events, collecting
// per-event failures instead of aborting the batch.
func (s *SessionService) RecordBulkEvents(events []dto.RecordEventRequest) ([]string, []string) {
	var eventIDs []string
	var errors []string

	for i, req := range events {
		resp, err := s.RecordEvent(&req)
		if err != nil {
			errors = append(errors, err.Error())
			s.log.Warn("Failed to record event in bulk",
				zap.Int("index", i),
				zap.Error(err),
				zap.String("type", req.Type))
			continue
		}
		if resp.Status == dto.StatusDropped {
			errors = append(errors, fmt.Sprintf("event %d dropped: no active session", i))
			continue
		}
		eventIDs = append(eventIDs, resp.EventID)
	}

	return eventIDs, errors
}

// ListEvents returns the current session's events, optionally filtered by
// type, category or inclusive time range. Filters combine as an
// intersection.
func (s *SessionService) ListEvents(req *dto.ListEventsRequest) ([]domain.SessionEvent, error) {
	if req.Category != "" && !validCategories[domain.EventCategory(req.Category)] {
		return nil, fmt.Errorf("unknown category: %s", req.Category)
	}
	if req.From != 0 && req.To != 0 && req.From > req.To {
		return nil, fmt.Errorf("from timestamp must be less than or equal to to timestamp")
	}

	var events []domain.SessionEvent
	switch {
	case req.From != 0 || req.To != 0:
		to := req.To
		if to == 0 {
			to = math.MaxInt64
		}
		events = s.recorder.EventsByTimeRange(req.From, to)
	case req.Type != "":
		events = s.recorder.EventsByType(domain.EventType(req.Type))
	case req.Category != "":
		events = s.recorder.EventsByCategory(domain.EventCategory(req.Category))
	default:
		events = s.recorder.Events()
	}

	// Remaining filters intersect with whatever the accessor selected.
	return filterEvents(events, req), nil
}

func filterEvents(events []domain.SessionEvent, req *dto.ListEventsRequest) []domain.SessionEvent {
	out := events[:0:0]
	for _, e := range events {
		if req.Type != "" && e.Type != domain.EventType(req.Type) {
			continue
		}
		if req.Category != "" && e.Category != domain.EventCategory(req.Category) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Summary returns the derived summary of the current session.
func (s *SessionService) Summary() domain.SessionSummary {
	return s.recorder.Summary()
}

// Timeline returns the presentation-ready event timeline.
func (s *SessionService) Timeline() []domain.TimelineEntry {
	return s.recorder.Timeline()
}

// ExportJSON serializes the current session for download.
func (s *SessionService) ExportJSON() (string, error) {
	return s.recorder.ExportJSON()
}

// ExportCSV serializes the current session's events for download.
func (s *SessionService) ExportCSV() (string, error) {
	return s.recorder.ExportCSV()
}

// GetSessionMetrics aggregates an archived session from the repository.
func (s *SessionService) GetSessionMetrics(ctx context.Context, req *dto.GetSessionMetricsRequest) (*dto.SessionMetricsResponse, error) {
	if req.From != 0 && req.To != 0 && req.From > req.To {
		s.log.Warn("Invalid time range for session metrics",
			zap.Int64("from", req.From),
			zap.Int64("to", req.To))
		return nil, fmt.Errorf("from timestamp must be less than or equal to to timestamp")
	}

	result, err := s.repository.GetSessionMetrics(ctx, repository.SessionMetricsQuery{
		SessionID: req.SessionID,
		From:      req.From,
		To:        req.To,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get session metrics from repository: %w", err)
	}

	response := &dto.SessionMetricsResponse{
		SessionID:  result.SessionID,
		TotalCount: result.TotalCount,
		FirstSeen:  result.FirstSeen,
		LastSeen:   result.LastSeen,
		ByType:     make([]dto.BreakdownData, 0, len(result.ByType)),
		ByCategory: make([]dto.BreakdownData, 0, len(result.ByCategory)),
	}
	for _, tc := range result.ByType {
		response.ByType = append(response.ByType, dto.BreakdownData{Key: tc.Key, TotalCount: tc.TotalCount})
	}
	for _, tc := range result.ByCategory {
		response.ByCategory = append(response.ByCategory, dto.BreakdownData{Key: tc.Key, TotalCount: tc.TotalCount})
	}

	return response, nil
}

func (s *SessionService) validateEvent(req *dto.RecordEventRequest) error {
	if req.Type == "" {
		return fmt.Errorf("event type is required")
	}
	if !validCategories[domain.EventCategory(req.Category)] {
		return fmt.Errorf("unknown category: %s (supported: tactical, interaction, collaboration, ai, navigation, export, error, performance)", req.Category)
	}
	return nil
}

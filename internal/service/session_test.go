package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/Damatnic/astral-turf-fifa-sub012/internal/domain"
	"github.com/Damatnic/astral-turf-fifa-sub012/internal/dto"
	"github.com/Damatnic/astral-turf-fifa-sub012/internal/recorder"
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

func newTestService(repo repository.EventRepository) *SessionService {
	log := zap.NewNop()
	rec := recorder.New(recorder.Config{}, nil, log)
	return NewSessionService(rec, repo, log)
}

func startRequest() *dto.StartSessionRequest {
	return &dto.StartSessionRequest{
		UserAgent: "test-agent/1.0",
		Viewport:  dto.ViewportData{Width: 1280, Height: 720},
	}
}

func TestSessionService_StartSession(t *testing.T) {
	svc := newTestService(nil)

	resp := svc.StartSession(startRequest())

	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, dto.StatusStarted, resp.Status)

	svc.StopSession()
}

func TestSessionService_StartSession_AlreadyRecording(t *testing.T) {
	svc := newTestService(nil)

	first := svc.StartSession(startRequest())
	second := svc.StartSession(startRequest())

	assert.Equal(t, first.SessionID, second.SessionID)
	assert.Equal(t, dto.StatusAlreadyRecording, second.Status)

	svc.StopSession()
}

func TestSessionService_RecordEvent_Success(t *testing.T) {
	svc := newTestService(nil)
	svc.StartSession(startRequest())

	resp, err := svc.RecordEvent(&dto.RecordEventRequest{
		Type:     "player_move",
		Category: "tactical",
		Data:     map[string]interface{}{"playerId": "p1"},
	})

	assert.NoError(t, err)
	assert.Equal(t, dto.StatusRecorded, resp.Status)
	assert.NotEmpty(t, resp.EventID)

	svc.StopSession()
}

func TestSessionService_RecordEvent_UnknownCategory(t *testing.T) {
	svc := newTestService(nil)
	svc.StartSession(startRequest())

	resp, err := svc.RecordEvent(&dto.RecordEventRequest{
		Type:     "player_move",
		Category: "bogus",
	})

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "unknown category")

	svc.StopSession()
}

func TestSessionService_RecordEvent_DroppedWithoutSession(t *testing.T) {
	svc := newTestService(nil)

	resp, err := svc.RecordEvent(&dto.RecordEventRequest{
		Type:     "zoom",
		Category: "interaction",
	})

	assert.NoError(t, err)
	assert.Equal(t, dto.StatusDropped, resp.Status)
	assert.Empty(t, resp.EventID)
}

func TestSessionService_RecordBulkEvents_MixedResults(t *testing.T) {
	svc := newTestService(nil)
	svc.StartSession(startRequest())

	ids, errs := svc.RecordBulkEvents([]dto.RecordEventRequest{
		{Type: "player_move", Category: "tactical"},
		{Type: "zoom", Category: "bogus"},
		{Type: "pan", Category: "interaction"},
	})

	assert.Len(t, ids, 2)
	assert.Len(t, errs, 1)

	svc.StopSession()
}

func TestSessionService_ListEvents_Filters(t *testing.T) {
	svc := newTestService(nil)
	svc.StartSession(startRequest())

	svc.RecordEvent(&dto.RecordEventRequest{Type: "player_move", Category: "tactical"})
	svc.RecordEvent(&dto.RecordEventRequest{Type: "tactic_update", Category: "tactical"})
	svc.RecordEvent(&dto.RecordEventRequest{Type: "zoom", Category: "interaction"})

	byType, err := svc.ListEvents(&dto.ListEventsRequest{Type: "player_move"})
	assert.NoError(t, err)
	assert.Len(t, byType, 1)

	byCategory, err := svc.ListEvents(&dto.ListEventsRequest{Category: "tactical"})
	assert.NoError(t, err)
	assert.Len(t, byCategory, 2)

	all, err := svc.ListEvents(&dto.ListEventsRequest{})
	assert.NoError(t, err)
	assert.Len(t, all, 4) // includes the synthetic session_start event

	svc.StopSession()
}

func TestSessionService_ListEvents_InvalidRequests(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.ListEvents(&dto.ListEventsRequest{Category: "bogus"})
	assert.Error(t, err)

	_, err = svc.ListEvents(&dto.ListEventsRequest{From: 20, To: 10})
	assert.Error(t, err)
}

func TestSessionService_GetSessionMetrics_Success(t *testing.T) {
	mockRepo := new(MockEventRepository)
	svc := newTestService(mockRepo)

	query := repository.SessionMetricsQuery{SessionID: "sess-1"}
	mockRepo.On("GetSessionMetrics", mock.Anything, query).Return(&repository.SessionMetricsResult{
		SessionID:  "sess-1",
		TotalCount: 7,
		FirstSeen:  1000,
		LastSeen:   2000,
		ByType: []repository.TypeCount{
			{Key: "player_move", TotalCount: 4},
			{Key: "zoom", TotalCount: 3},
		},
		ByCategory: []repository.TypeCount{
			{Key: "tactical", TotalCount: 4},
			{Key: "interaction", TotalCount: 3},
		},
	}, nil)

	resp, err := svc.GetSessionMetrics(context.Background(), &dto.GetSessionMetricsRequest{
		SessionID: "sess-1",
	})

	assert.NoError(t, err)
	assert.Equal(t, uint64(7), resp.TotalCount)
	assert.Len(t, resp.ByType, 2)
	assert.Equal(t, "player_move", resp.ByType[0].Key)
	assert.Len(t, resp.ByCategory, 2)
	mockRepo.AssertExpectations(t)
}

func TestSessionService_GetSessionMetrics_InvalidRange(t *testing.T) {
	mockRepo := new(MockEventRepository)
	svc := newTestService(mockRepo)

	_, err := svc.GetSessionMetrics(context.Background(), &dto.GetSessionMetricsRequest{
		SessionID: "sess-1",
		From:      2000,
		To:        1000,
	})

	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "GetSessionMetrics")
}

func TestSessionService_GetSessionMetrics_RepositoryError(t *testing.T) {
	mockRepo := new(MockEventRepository)
	svc := newTestService(mockRepo)

	mockRepo.On("GetSessionMetrics", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	_, err := svc.GetSessionMetrics(context.Background(), &dto.GetSessionMetricsRequest{
		SessionID: "sess-1",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get session metrics")
}

func TestSessionService_ExportCSV_HeaderOnlyWhenEmpty(t *testing.T) {
	svc := newTestService(nil)

	out, err := svc.ExportCSV()

	assert.NoError(t, err)
	assert.Equal(t, "ID,Timestamp,Type,Category,Data,Session ID\n", out)
}

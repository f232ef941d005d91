package recorder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Damatnic/astral-turf-fifa-sub012/internal/domain"
)

func TestSummary_Idempotent(t *testing.T) {
	r := newTestRecorder(Config{})

	// Freeze the clock so EndTime is stable across calls.
	current := time.UnixMilli(1_766_702_551_000)
	r.now = func() time.Time { return current }

	r.StartRecording(testClient())
	r.RecordEvent(domain.EventPlayerMove, domain.CategoryTactical, nil)
	r.RecordEvent(domain.EventAISuggestionView, domain.CategoryAI, nil)

	first := r.Summary()
	second := r.Summary()

	assert.Equal(t, first, second)
	assert.Len(t, r.Events(), 3)

	r.StopRecording()
}

func TestSummary_CountConsistency(t *testing.T) {
	r := newTestRecorder(Config{})

	r.StartRecording(testClient())
	r.RecordEvent(domain.EventPlayerMove, domain.CategoryTactical, nil)
	r.RecordEvent(domain.EventTacticUpdate, domain.CategoryTactical, nil)
	r.RecordEvent(domain.EventZoom, domain.CategoryInteraction, nil)
	r.RecordEvent(domain.EventError, domain.CategoryError, nil)

	summary := r.Summary()

	byType := 0
	for _, n := range summary.EventsByType {
		byType += n
	}
	byCategory := 0
	for _, n := range summary.EventsByCategory {
		byCategory += n
	}

	assert.Equal(t, summary.TotalEvents, byType)
	assert.Equal(t, summary.TotalEvents, byCategory)

	r.StopRecording()
}

func TestSummary_DerivedFormulas(t *testing.T) {
	r := newTestRecorder(Config{})

	r.StartRecording(testClient())
	r.RecordEvent(domain.EventTacticUpdate, domain.CategoryTactical, nil)
	r.RecordEvent(domain.EventPlayerMove, domain.CategoryTactical, nil)
	r.RecordEvent(domain.EventPlayerMove, domain.CategoryTactical, nil)
	r.RecordEvent(domain.EventFormationChange, domain.CategoryTactical, nil)
	r.RecordEvent(domain.EventAISuggestionView, domain.CategoryAI, nil)
	r.RecordEvent(domain.EventAISuggestionAccept, domain.CategoryAI, nil)
	r.RecordEvent(domain.EventAISuggestionReject, domain.CategoryAI, nil)
	r.RecordEvent(domain.EventCollaborationJoin, domain.CategoryCollaboration, nil)
	r.RecordEvent(domain.EventCollaborationLeave, domain.CategoryCollaboration, nil)

	summary := r.Summary()

	assert.Equal(t, 3, summary.TacticalChanges) // tactic_update + 2x player_move
	assert.Equal(t, 1, summary.FormationChanges)
	assert.Equal(t, 3, summary.AIInteractions)
	assert.Equal(t, 2, summary.Collaborations)

	r.StopRecording()
}

func TestSummary_AverageResponseTime(t *testing.T) {
	r := newTestRecorder(Config{})

	r.StartRecording(testClient())
	r.RecordEvent(domain.EventPerformanceMetric, domain.CategoryPerformance,
		map[string]any{"responseTime": 100})
	r.RecordEvent(domain.EventPerformanceMetric, domain.CategoryPerformance,
		map[string]any{"responseTime": 250.0})
	// Performance event without the field must not skew the average.
	r.RecordEvent(domain.EventPerformanceMetric, domain.CategoryPerformance,
		map[string]any{"fps": 60})

	summary := r.Summary()
	assert.InDelta(t, 175.0, summary.Performance.AverageResponseTime, 0.001)

	r.StopRecording()
}

func TestSummary_AverageResponseTime_ZeroWhenAbsent(t *testing.T) {
	r := newTestRecorder(Config{})

	r.StartRecording(testClient())
	r.RecordEvent(domain.EventZoom, domain.CategoryInteraction, nil)

	summary := r.Summary()
	assert.Equal(t, 0.0, summary.Performance.AverageResponseTime)

	r.StopRecording()
}

func TestSummary_ErrorCountAndFeatures(t *testing.T) {
	r := newTestRecorder(Config{})

	r.StartRecording(testClient())
	r.RecordEvent(domain.EventError, domain.CategoryError,
		map[string]any{"message": "boom"})
	r.RecordEvent(domain.EventError, domain.CategoryError,
		map[string]any{"message": "bang"})
	r.RecordEvent(domain.EventFeatureUse, domain.CategoryInteraction,
		map[string]any{"feature": "heatmap"})
	r.RecordEvent(domain.EventFeatureUse, domain.CategoryInteraction,
		map[string]any{"feature": "heatmap"})
	r.RecordEvent(domain.EventFeatureUse, domain.CategoryInteraction,
		map[string]any{"feature": "playbook"})

	summary := r.Summary()

	assert.Equal(t, 2, summary.Performance.ErrorCount)
	assert.Equal(t, []string{"heatmap", "playbook"}, summary.Performance.FeaturesUsed)

	r.StopRecording()
}

func TestTimeline_MapsEveryEvent(t *testing.T) {
	r := newTestRecorder(Config{})

	r.StartRecording(testClient())
	r.RecordEvent(domain.EventPlayerMove, domain.CategoryTactical, nil)
	r.RecordEvent(domain.EventAISuggestionAccept, domain.CategoryAI, nil)

	timeline := r.Timeline()

	assert.Len(t, timeline, 3)
	assert.Equal(t, "Viewed a page", timeline[0].Description)
	assert.Equal(t, "Moved a player on the board", timeline[1].Description)
	assert.Equal(t, categoryIcons[domain.CategoryTactical], timeline[1].Icon)
	assert.Equal(t, categoryColors[domain.CategoryTactical], timeline[1].Color)
	assert.Equal(t, "Accepted an AI suggestion", timeline[2].Description)

	for i, entry := range timeline {
		assert.Equal(t, entry.Event.Timestamp, entry.Timestamp, "entry %d", i)
	}

	r.StopRecording()
}

func TestTimeline_FallbacksForUnknownValues(t *testing.T) {
	entry := timelineEntry(domain.SessionEvent{
		ID:       "e1",
		Type:     domain.EventType("mystery"),
		Category: domain.EventCategory("unmapped"),
	})

	assert.Equal(t, fallbackDescription, entry.Description)
	assert.Equal(t, fallbackIcon, entry.Icon)
	assert.Equal(t, fallbackColor, entry.Color)
}

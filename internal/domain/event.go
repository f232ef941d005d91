package domain

import "time"

// EventType identifies what happened on the tactics board.
type EventType string

const (
	EventPlayerMove         EventType = "player_move"
	EventFormationChange    EventType = "formation_change"
	EventTacticUpdate       EventType = "tactic_update"
	EventPlayerSelect       EventType = "player_select"
	EventDeselect           EventType = "deselect"
	EventMultiSelect        EventType = "multi_select"
	EventDragStart          EventType = "drag_start"
	EventDragEnd            EventType = "drag_end"
	EventZoom               EventType = "zoom"
	EventPan                EventType = "pan"
	EventPresetApply        EventType = "preset_apply"
	EventAISuggestionView   EventType = "ai_suggestion_view"
	EventAISuggestionAccept EventType = "ai_suggestion_accept"
	EventAISuggestionReject EventType = "ai_suggestion_reject"
	EventCollaborationJoin  EventType = "collaboration_join"
	EventCollaborationLeave EventType = "collaboration_leave"
	EventExport             EventType = "export"
	EventImport             EventType = "import"
	EventPageView           EventType = "page_view"
	EventFeatureUse         EventType = "feature_use"
	EventError              EventType = "error"
	EventPerformanceMetric  EventType = "performance_metric"
)

// EventCategory is the coarse grouping of an EventType.
type EventCategory string

const (
	CategoryTactical      EventCategory = "tactical"
	CategoryInteraction   EventCategory = "interaction"
	CategoryCollaboration EventCategory = "collaboration"
	CategoryAI            EventCategory = "ai"
	CategoryNavigation    EventCategory = "navigation"
	CategoryExport        EventCategory = "export"
	CategoryError         EventCategory = "error"
	CategoryPerformance   EventCategory = "performance"
)

// Categories lists every known event category.
var Categories = []EventCategory{
	CategoryTactical,
	CategoryInteraction,
	CategoryCollaboration,
	CategoryAI,
	CategoryNavigation,
	CategoryExport,
	CategoryError,
	CategoryPerformance,
}

// Viewport holds the client viewport dimensions at capture time.
type Viewport struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// EventMetadata is attached uniformly to every event of a session.
type EventMetadata struct {
	SessionID string   `json:"session_id"`
	UserAgent string   `json:"user_agent"`
	Viewport  Viewport `json:"viewport"`
}

// SessionEvent is a single captured interaction. Events are immutable once
// created; consumers must rely on capture order, not Timestamp, for exact
// sequencing (timestamps can tie within the same millisecond).
type SessionEvent struct {
	ID        string         `json:"id"`
	Timestamp int64          `json:"timestamp"` // unix milliseconds
	Type      EventType      `json:"type"`
	Category  EventCategory  `json:"category"`
	Data      map[string]any `json:"data"`
	Metadata  EventMetadata  `json:"metadata"`
}

// IsZero reports whether the event is the sentinel returned when no session
// is recording.
func (e SessionEvent) IsZero() bool {
	return e.ID == ""
}

// Time returns the capture time of the event.
func (e SessionEvent) Time() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// PerformanceMetrics aggregates the performance-category slice of a session.
type PerformanceMetrics struct {
	AverageResponseTime float64  `json:"average_response_time"`
	ErrorCount          int      `json:"error_count"`
	FeaturesUsed        []string `json:"features_used"`
}

// SessionSummary is derived on demand from the event list. It carries no
// independent state and is safe to recompute at any time.
type SessionSummary struct {
	SessionID        string                `json:"session_id"`
	StartTime        int64                 `json:"start_time"` // unix milliseconds
	EndTime          int64                 `json:"end_time"`   // unix milliseconds
	TotalEvents      int                   `json:"total_events"`
	EventsByType     map[EventType]int     `json:"events_by_type"`
	EventsByCategory map[EventCategory]int `json:"events_by_category"`
	TacticalChanges  int                   `json:"tactical_changes"`
	FormationChanges int                   `json:"formation_changes"`
	AIInteractions   int                   `json:"ai_interactions"`
	Collaborations   int                   `json:"collaborations"`
	Performance      PerformanceMetrics    `json:"performance"`
}

// TimelineEntry is a presentation-ready projection of one event.
type TimelineEntry struct {
	Timestamp   int64        `json:"timestamp"`
	Event       SessionEvent `json:"event"`
	Description string       `json:"description"`
	Icon        string       `json:"icon"`
	Color       string       `json:"color"`
}

package recorder

import (
	"github.com/Damatnic/astral-turf-fifa-sub012/internal/domain"
)

// Summary computes the aggregate view of the current session in a single
// pass over all events. It never mutates state and is safe to call at any
// time, including while recording.
func (r *Recorder) Summary() domain.SessionSummary {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.summaryLocked()
}

// summaryLocked derives the summary from committed + buffered events.
// Caller must hold mu.
func (r *Recorder) summaryLocked() domain.SessionSummary {
	summary := domain.SessionSummary{
		SessionID:        r.sessionID,
		EndTime:          r.now().UnixMilli(),
		EventsByType:     make(map[domain.EventType]int),
		EventsByCategory: make(map[domain.EventCategory]int),
	}
	if !r.sessionStart.IsZero() {
		summary.StartTime = r.sessionStart.UnixMilli()
	}

	var (
		responseTimeSum   float64
		responseTimeCount int
		featuresSeen      = make(map[string]bool)
		features          []string
	)

	tally := func(e domain.SessionEvent) {
		summary.TotalEvents++
		summary.EventsByType[e.Type]++
		summary.EventsByCategory[e.Category]++

		if e.Category == domain.CategoryPerformance {
			if rt, ok := numericField(e.Data, "responseTime"); ok {
				responseTimeSum += rt
				responseTimeCount++
			}
		}
		if e.Type == domain.EventError {
			summary.Performance.ErrorCount++
		}
		if e.Type == domain.EventFeatureUse {
			if name, ok := e.Data["feature"].(string); ok && !featuresSeen[name] {
				featuresSeen[name] = true
				features = append(features, name)
			}
		}
	}

	for _, e := range r.committed {
		tally(e)
	}
	for _, e := range r.buffer {
		tally(e)
	}

	summary.TacticalChanges = summary.EventsByType[domain.EventTacticUpdate] +
		summary.EventsByType[domain.EventPlayerMove]
	summary.FormationChanges = summary.EventsByType[domain.EventFormationChange]
	summary.AIInteractions = summary.EventsByType[domain.EventAISuggestionView] +
		summary.EventsByType[domain.EventAISuggestionAccept] +
		summary.EventsByType[domain.EventAISuggestionReject]
	summary.Collaborations = summary.EventsByType[domain.EventCollaborationJoin] +
		summary.EventsByType[domain.EventCollaborationLeave]

	if responseTimeCount > 0 {
		summary.Performance.AverageResponseTime = responseTimeSum / float64(responseTimeCount)
	}
	summary.Performance.FeaturesUsed = features

	return summary
}

// numericField extracts a numeric payload value. JSON decoding yields
// float64, but events recorded in-process may carry native int types.
func numericField(data map[string]any, key string) (float64, bool) {
	switch v := data[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

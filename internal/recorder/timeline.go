package recorder

import (
	"github.com/Damatnic/astral-turf-fifa-sub012/internal/domain"
)

var eventDescriptions = map[domain.EventType]string{
	domain.EventPlayerMove:         "Moved a player on the board",
	domain.EventFormationChange:    "Changed the formation",
	domain.EventTacticUpdate:       "Updated a tactic",
	domain.EventPlayerSelect:       "Selected a player",
	domain.EventDeselect:           "Cleared the selection",
	domain.EventMultiSelect:        "Selected multiple players",
	domain.EventDragStart:          "Started dragging",
	domain.EventDragEnd:            "Finished dragging",
	domain.EventZoom:               "Zoomed the board",
	domain.EventPan:                "Panned the board",
	domain.EventPresetApply:        "Applied a preset",
	domain.EventAISuggestionView:   "Viewed an AI suggestion",
	domain.EventAISuggestionAccept: "Accepted an AI suggestion",
	domain.EventAISuggestionReject: "Rejected an AI suggestion",
	domain.EventCollaborationJoin:  "A collaborator joined",
	domain.EventCollaborationLeave: "A collaborator left",
	domain.EventExport:             "Exported the board",
	domain.EventImport:             "Imported a board",
	domain.EventPageView:           "Viewed a page",
	domain.EventFeatureUse:         "Used a feature",
	domain.EventError:              "An error occurred",
	domain.EventPerformanceMetric:  "Performance metric captured",
}

var categoryIcons = map[domain.EventCategory]string{
	domain.CategoryTactical:      "⚽",
	domain.CategoryInteraction:   "👆",
	domain.CategoryCollaboration: "👥",
	domain.CategoryAI:            "🤖",
	domain.CategoryNavigation:    "🧭",
	domain.CategoryExport:        "📤",
	domain.CategoryError:         "⚠️",
	domain.CategoryPerformance:   "📊",
}

var categoryColors = map[domain.EventCategory]string{
	domain.CategoryTactical:      "#2196f3",
	domain.CategoryInteraction:   "#4caf50",
	domain.CategoryCollaboration: "#9c27b0",
	domain.CategoryAI:            "#ff9800",
	domain.CategoryNavigation:    "#607d8b",
	domain.CategoryExport:        "#795548",
	domain.CategoryError:         "#f44336",
	domain.CategoryPerformance:   "#00bcd4",
}

const (
	fallbackDescription = "Unknown action"
	fallbackIcon        = "•"
	fallbackColor       = "#9e9e9e"
)

// Timeline projects every event, in capture order, to a human-readable
// entry. Descriptions come from the event type, icon and color from the
// category; unmapped values fall back to neutral defaults.
func (r *Recorder) Timeline() []domain.TimelineEntry {
	events := r.Events()

	entries := make([]domain.TimelineEntry, 0, len(events))
	for _, e := range events {
		entries = append(entries, timelineEntry(e))
	}
	return entries
}

func timelineEntry(e domain.SessionEvent) domain.TimelineEntry {
	description, ok := eventDescriptions[e.Type]
	if !ok {
		description = fallbackDescription
	}
	icon, ok := categoryIcons[e.Category]
	if !ok {
		icon = fallbackIcon
	}
	color, ok := categoryColors[e.Category]
	if !ok {
		color = fallbackColor
	}

	return domain.TimelineEntry{
		Timestamp:   e.Timestamp,
		Event:       e,
		Description: description,
		Icon:        icon,
		Color:       color,
	}
}

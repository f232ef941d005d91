package recorder

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Damatnic/astral-turf-fifa-sub012/internal/domain"
)

const csvTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// SessionExport is the JSON export envelope.
type SessionExport struct {
	Summary  domain.SessionSummary  `json:"summary"`
	Events   []domain.SessionEvent  `json:"events"`
	Timeline []domain.TimelineEntry `json:"timeline"`
}

// ExportJSON serializes the summary, all events and the timeline as pretty
// JSON with two-space indentation. A non-serializable event payload is the
// only failure mode and is returned to the caller unwrapped.
func (r *Recorder) ExportJSON() (string, error) {
	export := SessionExport{
		Summary:  r.Summary(),
		Events:   r.Events(),
		Timeline: r.Timeline(),
	}

	out, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ExportCSV serializes all events as CSV, one row per event, with ISO-8601
// timestamps and the payload JSON-encoded in the Data cell. Cells are quoted
// per RFC 4180 when they contain commas, quotes or newlines, which in
// practice only the Data cell does.
func (r *Recorder) ExportCSV() (string, error) {
	events := r.Events()

	var b strings.Builder
	b.WriteString("ID,Timestamp,Type,Category,Data,Session ID\n")

	for _, e := range events {
		data, err := json.Marshal(e.Data)
		if err != nil {
			return "", fmt.Errorf("failed to encode event data for %s: %w", e.ID, err)
		}

		row := []string{
			e.ID,
			time.UnixMilli(e.Timestamp).UTC().Format(csvTimeLayout),
			string(e.Type),
			string(e.Category),
			string(data),
			e.Metadata.SessionID,
		}
		for i, cell := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(csvCell(cell))
		}
		b.WriteByte('\n')
	}

	return b.String(), nil
}

// csvCell applies RFC 4180 quoting when the cell needs it.
func csvCell(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

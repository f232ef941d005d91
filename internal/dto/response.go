package dto

// Session statuses returned by the session endpoints.
const (
	StatusStarted          = "started"
	StatusAlreadyRecording = "already_recording"
	StatusStopped          = "stopped"
	StatusReset            = "reset"
	StatusRecorded         = "recorded"
	StatusDropped          = "dropped"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"validation_error"`
	Message string `json:"message,omitempty" example:"category is required"`
}

// SessionStatusResponse is returned by start and reset
type SessionStatusResponse struct {
	SessionID string `json:"session_id" example:"4b1c0a6e-9d1f-4df0-8f51-2f2f6f9a2c11"`
	Status    string `json:"status" example:"started"`
}

// RecordEventResponse represents a record event response. Status is
// "dropped" when no session was recording.
type RecordEventResponse struct {
	EventID string `json:"event_id,omitempty" example:"1723475612000-a1b2c3d4e5"`
	Status  string `json:"status" example:"recorded"`
}

// RecordEventsBulkResponse represents a bulk record response
type RecordEventsBulkResponse struct {
	Accepted int      `json:"accepted" example:"5"`
	Rejected int      `json:"rejected" example:"0"`
	EventIDs []string `json:"event_ids,omitempty"`
	Errors   []string `json:"errors,omitempty"`
}

// BreakdownData is one row of a per-type or per-category breakdown
type BreakdownData struct {
	Key        string `json:"key" example:"player_move"`
	TotalCount uint64 `json:"total_count" example:"42"`
}

// SessionMetricsResponse represents archived session metrics
type SessionMetricsResponse struct {
	SessionID  string          `json:"session_id"`
	TotalCount uint64          `json:"total_count" example:"120"`
	FirstSeen  int64           `json:"first_seen" example:"1723475612000"`
	LastSeen   int64           `json:"last_seen" example:"1723479212000"`
	ByType     []BreakdownData `json:"by_type"`
	ByCategory []BreakdownData `json:"by_category"`
}

package dto

// ViewportData carries the client viewport dimensions.
type ViewportData struct {
	Width  int `json:"width" example:"1920"`
	Height int `json:"height" example:"1080"`
}

// StartSessionRequest represents a start session request. The user agent is
// taken from the User-Agent header when the body omits it.
type StartSessionRequest struct {
	UserAgent string       `json:"user_agent" example:"Mozilla/5.0"`
	Viewport  ViewportData `json:"viewport"`
}

// RecordEventRequest represents a record event request
type RecordEventRequest struct {
	Type     string                 `json:"type" binding:"required" example:"player_move"`
	Category string                 `json:"category" binding:"required" example:"tactical"`
	Data     map[string]interface{} `json:"data" swaggertype:"object,string" example:"playerId:p1,x:10,y:20"`
}

// RecordEventsBulkRequest represents a bulk record request
type RecordEventsBulkRequest struct {
	Events []RecordEventRequest `json:"events" binding:"required,min=1,max=1000,dive"`
}

// ListEventsRequest filters the current session's events
type ListEventsRequest struct {
	Type     string `form:"type" example:"player_move"`
	Category string `form:"category" example:"tactical"`
	From     int64  `form:"from" example:"1723475612000"`
	To       int64  `form:"to" example:"1723562012000"`
}

// GetSessionMetricsRequest queries an archived session
type GetSessionMetricsRequest struct {
	SessionID string `form:"session_id" binding:"required" example:"4b1c0a6e-9d1f-4df0-8f51-2f2f6f9a2c11"`
	From      int64  `form:"from" example:"1723475612000"`
	To        int64  `form:"to" example:"1723562012000"`
}

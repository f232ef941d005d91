package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/Damatnic/astral-turf-fifa-sub012/docs"
	"github.com/Damatnic/astral-turf-fifa-sub012/internal/dto"
	"github.com/Damatnic/astral-turf-fifa-sub012/internal/service"
)

type Handler struct {
	sessionService service.SessionServicer
	router         *gin.Engine
	log            *zap.Logger
}

func NewHandler(sessionService service.SessionServicer, log *zap.Logger) *Handler {
	h := &Handler{
		sessionService: sessionService,
		router:         gin.Default(),
		log:            log,
	}

	h.registerRoutes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/health", h.healthCheck)
	h.router.POST("/session/start", h.startSession)
	h.router.POST("/session/stop", h.stopSession)
	h.router.POST("/session/reset", h.resetSession)
	h.router.GET("/session/summary", h.getSummary)
	h.router.GET("/session/timeline", h.getTimeline)
	h.router.POST("/events", h.recordEvent)
	h.router.POST("/events/bulk", h.recordEventsBulk)
	h.router.GET("/events", h.listEvents)
	h.router.GET("/export/json", h.exportJSON)
	h.router.GET("/export/csv", h.exportCSV)
	h.router.GET("/metrics", h.getSessionMetrics)
	h.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheck handles health check requests
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// startSession handles POST /session/start
// @Summary Start a recording session
// @Description Begin recording interaction events; returns the session id. Starting while a session is in progress returns the current session id with status already_recording.
// @Tags session
// @Accept json
// @Produce json
// @Param session body dto.StartSessionRequest false "Client info"
// @Success 200 {object} dto.SessionStatusResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /session/start [post]
func (h *Handler) startSession(c *gin.Context) {
	var req dto.StartSessionRequest

	// The body is optional; an empty body starts a session with header
	// metadata only.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.log.Warn("Invalid start session request", zap.Error(err))
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   "validation_error",
				Message: err.Error(),
			})
			return
		}
	}

	if req.UserAgent == "" {
		req.UserAgent = c.Request.UserAgent()
	}

	resp := h.sessionService.StartSession(&req)

	h.log.Info("Session start requested",
		zap.String("session_id", resp.SessionID),
		zap.String("status", resp.Status))

	c.JSON(http.StatusOK, resp)
}

// stopSession handles POST /session/stop
// @Summary Stop the recording session
// @Description Stop recording and return the final session summary. Stopping without an active session returns a summary over whatever events exist.
// @Tags session
// @Produce json
// @Success 200 {object} domain.SessionSummary
// @Router /session/stop [post]
func (h *Handler) stopSession(c *gin.Context) {
	summary := h.sessionService.StopSession()

	h.log.Info("Session stopped",
		zap.String("session_id", summary.SessionID),
		zap.Int("total_events", summary.TotalEvents))

	c.JSON(http.StatusOK, summary)
}

// resetSession handles POST /session/reset
// @Summary Reset session storage
// @Description Clear all stored events and start a new logical session without stopping recording
// @Tags session
// @Produce json
// @Success 200 {object} dto.SessionStatusResponse
// @Router /session/reset [post]
func (h *Handler) resetSession(c *gin.Context) {
	c.JSON(http.StatusOK, h.sessionService.ResetSession())
}

// recordEvent handles POST /events
// @Summary Record a single event
// @Description Capture one interaction event in the current session. Returns status dropped when no session is recording.
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.RecordEventRequest true "Event data"
// @Success 202 {object} dto.RecordEventResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /events [post]
func (h *Handler) recordEvent(c *gin.Context) {
	var req dto.RecordEventRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid event request",
			zap.Error(err),
			zap.String("type", req.Type))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.sessionService.RecordEvent(&req)
	if err != nil {
		h.log.Warn("Failed to record event",
			zap.Error(err),
			zap.String("type", req.Type))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusAccepted, resp)
}

// recordEventsBulk handles POST /events/bulk
// @Summary Record multiple events
// @Description Capture multiple interaction events in one call
// @Tags events
// @Accept json
// @Produce json
// @Param events body dto.RecordEventsBulkRequest true "Bulk events data"
// @Success 202 {object} dto.RecordEventsBulkResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /events/bulk [post]
func (h *Handler) recordEventsBulk(c *gin.Context) {
	var req dto.RecordEventsBulkRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid bulk event request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	eventIDs, errors := h.sessionService.RecordBulkEvents(req.Events)

	h.log.Info("Bulk events processed",
		zap.Int("accepted", len(eventIDs)),
		zap.Int("rejected", len(errors)),
		zap.Int("total", len(req.Events)))

	c.JSON(http.StatusAccepted, dto.RecordEventsBulkResponse{
		Accepted: len(eventIDs),
		Rejected: len(errors),
		EventIDs: eventIDs,
		Errors:   errors,
	})
}

// listEvents handles GET /events
// @Summary List session events
// @Description List the current session's events, optionally filtered by type, category and inclusive time range (unix milliseconds)
// @Tags events
// @Produce json
// @Param type query string false "Event type" example:"player_move"
// @Param category query string false "Event category" Enums(tactical, interaction, collaboration, ai, navigation, export, error, performance)
// @Param from query int false "Range start (unix ms, inclusive)"
// @Param to query int false "Range end (unix ms, inclusive)"
// @Success 200 {array} domain.SessionEvent
// @Failure 400 {object} dto.ErrorResponse
// @Router /events [get]
func (h *Handler) listEvents(c *gin.Context) {
	var req dto.ListEventsRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		h.log.Warn("Invalid list events request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	events, err := h.sessionService.ListEvents(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, events)
}

// getSummary handles GET /session/summary
// @Summary Get the session summary
// @Description Derived aggregate view of the current session; safe to call while recording
// @Tags session
// @Produce json
// @Success 200 {object} domain.SessionSummary
// @Router /session/summary [get]
func (h *Handler) getSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.sessionService.Summary())
}

// getTimeline handles GET /session/timeline
// @Summary Get the session timeline
// @Description Presentation-ready projection of every event in capture order
// @Tags session
// @Produce json
// @Success 200 {array} domain.TimelineEntry
// @Router /session/timeline [get]
func (h *Handler) getTimeline(c *gin.Context) {
	c.JSON(http.StatusOK, h.sessionService.Timeline())
}

// exportJSON handles GET /export/json
// @Summary Export the session as JSON
// @Description Download summary, events and timeline as a pretty-printed JSON file
// @Tags export
// @Produce json
// @Success 200 {string} string
// @Failure 500 {object} dto.ErrorResponse
// @Router /export/json [get]
func (h *Handler) exportJSON(c *gin.Context) {
	out, err := h.sessionService.ExportJSON()
	if err != nil {
		h.log.Error("Failed to export JSON", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "export_error",
			Message: err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", exportFilename("json"))
	c.Data(http.StatusOK, "application/json", []byte(out))
}

// exportCSV handles GET /export/csv
// @Summary Export the session as CSV
// @Description Download all events as a CSV file
// @Tags export
// @Produce plain
// @Success 200 {string} string
// @Failure 500 {object} dto.ErrorResponse
// @Router /export/csv [get]
func (h *Handler) exportCSV(c *gin.Context) {
	out, err := h.sessionService.ExportCSV()
	if err != nil {
		h.log.Error("Failed to export CSV", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "export_error",
			Message: err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", exportFilename("csv"))
	c.Data(http.StatusOK, "text/csv", []byte(out))
}

// getSessionMetrics handles GET /metrics
// @Summary Get archived session metrics
// @Description Aggregate totals and per-type/per-category breakdowns for a session already flushed to the event store
// @Tags metrics
// @Produce json
// @Param session_id query string true "Session id"
// @Param from query int false "Range start (unix ms, inclusive)"
// @Param to query int false "Range end (unix ms, inclusive)"
// @Success 200 {object} dto.SessionMetricsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /metrics [get]
func (h *Handler) getSessionMetrics(c *gin.Context) {
	var req dto.GetSessionMetricsRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		h.log.Warn("Invalid session metrics request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.sessionService.GetSessionMetrics(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("Failed to get session metrics",
			zap.Error(err),
			zap.String("session_id", req.SessionID))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func exportFilename(ext string) string {
	return fmt.Sprintf(`attachment; filename="session-%s.%s"`,
		time.Now().UTC().Format("20060102-150405"), ext)
}

package recorder

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Damatnic/astral-turf-fifa-sub012/internal/domain"
)

const (
	defaultBufferSize    = 100
	defaultFlushInterval = 30 * time.Second
)

// FlushSink receives every flushed batch of events. In production this is
// the SQS publisher; tests inject a mock.
type FlushSink interface {
	FlushBatch(ctx context.Context, sessionID string, events []domain.SessionEvent) error
}

// SinkFunc adapts a plain function to a FlushSink.
type SinkFunc func(ctx context.Context, sessionID string, events []domain.SessionEvent) error

func (f SinkFunc) FlushBatch(ctx context.Context, sessionID string, events []domain.SessionEvent) error {
	return f(ctx, sessionID, events)
}

// Config tunes buffering and flush scheduling.
type Config struct {
	BufferSize    int
	FlushInterval time.Duration
}

// ClientInfo describes the client a session is recorded for.
type ClientInfo struct {
	UserAgent string
	Viewport  domain.Viewport
}

// Recorder captures timestamped interaction events for one session at a
// time. Recently recorded events sit in a small buffer that is moved into
// the committed list when it fills up, on a periodic tick, and on stop;
// flushed batches are additionally forwarded to the sink. Reads always see
// committed and buffered events together, so no event is ever invisible to
// a caller.
//
// One recorder serves the whole process; construct it in the composition
// root and inject it. All methods are safe for concurrent use.
type Recorder struct {
	mu           sync.Mutex
	config       Config
	sink         FlushSink
	log          *zap.Logger
	sessionID    string
	sessionStart time.Time
	client       ClientInfo
	committed    []domain.SessionEvent
	buffer       []domain.SessionEvent
	recording    bool
	stopFlush    chan struct{}
	now          func() time.Time
}

// New creates a recorder. sink may be nil, in which case flushed batches
// stay in memory only.
func New(config Config, sink FlushSink, log *zap.Logger) *Recorder {
	if config.BufferSize <= 0 {
		config.BufferSize = defaultBufferSize
	}
	if config.FlushInterval <= 0 {
		config.FlushInterval = defaultFlushInterval
	}

	return &Recorder{
		config: config,
		sink:   sink,
		log:    log,
		now:    time.Now,
	}
}

// StartRecording begins a new session and returns its id. Calling it while
// a session is already recording logs a warning and returns the current
// session id without resetting anything.
func (r *Recorder) StartRecording(client ClientInfo) string {
	r.mu.Lock()

	if r.recording {
		r.log.Warn("Session already recording, ignoring start",
			zap.String("session_id", r.sessionID))
		id := r.sessionID
		r.mu.Unlock()
		return id
	}

	r.sessionID = uuid.NewString()
	r.sessionStart = r.now()
	r.client = client
	r.committed = nil
	r.buffer = nil
	r.recording = true
	r.stopFlush = make(chan struct{})

	go r.flushLoop(r.stopFlush)

	r.appendLocked(domain.EventPageView, domain.CategoryNavigation,
		map[string]any{"page": "session_start"})

	id := r.sessionID
	r.mu.Unlock()

	r.log.Info("Session recording started",
		zap.String("session_id", id),
		zap.Int("buffer_size", r.config.BufferSize),
		zap.Duration("flush_interval", r.config.FlushInterval))

	return id
}

// StopRecording ends the session, cancels the periodic flush, performs a
// final flush and returns the session summary. When no session is recording
// it logs a warning and still returns a summary over whatever events exist.
func (r *Recorder) StopRecording() domain.SessionSummary {
	r.mu.Lock()

	if !r.recording {
		r.log.Warn("No active session, returning summary of existing events")
		summary := r.summaryLocked()
		r.mu.Unlock()
		return summary
	}

	r.appendLocked(domain.EventPageView, domain.CategoryNavigation,
		map[string]any{"page": "session_end"})

	r.recording = false
	close(r.stopFlush)
	r.stopFlush = nil

	batch := r.flushLocked()
	summary := r.summaryLocked()
	sessionID := r.sessionID
	r.mu.Unlock()

	r.forward(sessionID, batch)

	r.log.Info("Session recording stopped",
		zap.String("session_id", sessionID),
		zap.Int("total_events", summary.TotalEvents))

	return summary
}

// RecordEvent captures one event. When no session is recording it logs a
// warning and returns the zero SessionEvent; callers must not assume a
// populated event.
func (r *Recorder) RecordEvent(eventType domain.EventType, category domain.EventCategory, data map[string]any) domain.SessionEvent {
	r.mu.Lock()

	if !r.recording {
		r.log.Warn("Dropping event, no active session",
			zap.String("type", string(eventType)))
		r.mu.Unlock()
		return domain.SessionEvent{}
	}

	event := r.appendLocked(eventType, category, data)

	var batch []domain.SessionEvent
	if len(r.buffer) >= r.config.BufferSize {
		batch = r.flushLocked()
	}
	sessionID := r.sessionID
	r.mu.Unlock()

	r.forward(sessionID, batch)

	return event
}

// Flush moves all buffered events into the committed list and forwards them
// to the sink. A no-op when the buffer is empty.
func (r *Recorder) Flush() {
	r.mu.Lock()
	batch := r.flushLocked()
	sessionID := r.sessionID
	r.mu.Unlock()

	r.forward(sessionID, batch)
}

// Reset clears all stored events and starts a new logical session (fresh id
// and start time) without touching the recording flag. When called while
// recording, the running flush ticker keeps going and simply serves the new
// session.
func (r *Recorder) Reset() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	old := r.sessionID
	r.sessionID = uuid.NewString()
	r.sessionStart = r.now()
	r.committed = nil
	r.buffer = nil

	r.log.Info("Session storage reset",
		zap.String("previous_session_id", old),
		zap.String("session_id", r.sessionID),
		zap.Bool("recording", r.recording))

	return r.sessionID
}

// IsRecording reports whether a session is currently being recorded.
func (r *Recorder) IsRecording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recording
}

// SessionID returns the id of the current (or most recent) session.
func (r *Recorder) SessionID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessionID
}

// SessionDuration returns the time elapsed since the session started. It
// keeps advancing after StopRecording; callers needing a frozen duration
// should take EndTime - StartTime from the summary returned by stop.
func (r *Recorder) SessionDuration() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sessionStart.IsZero() {
		return 0
	}
	return r.now().Sub(r.sessionStart)
}

// Events returns all events in capture order, committed first, then the
// buffered tail.
func (r *Recorder) Events() []domain.SessionEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

// EventsByType returns all events with the given type, in capture order.
func (r *Recorder) EventsByType(eventType domain.EventType) []domain.SessionEvent {
	return r.filter(func(e domain.SessionEvent) bool {
		return e.Type == eventType
	})
}

// EventsByCategory returns all events with the given category, in capture
// order.
func (r *Recorder) EventsByCategory(category domain.EventCategory) []domain.SessionEvent {
	return r.filter(func(e domain.SessionEvent) bool {
		return e.Category == category
	})
}

// EventsByTimeRange returns all events with start <= timestamp <= end
// (bounds inclusive, unix milliseconds), in capture order.
func (r *Recorder) EventsByTimeRange(start, end int64) []domain.SessionEvent {
	return r.filter(func(e domain.SessionEvent) bool {
		return e.Timestamp >= start && e.Timestamp <= end
	})
}

func (r *Recorder) filter(keep func(domain.SessionEvent) bool) []domain.SessionEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.SessionEvent
	for _, e := range r.committed {
		if keep(e) {
			out = append(out, e)
		}
	}
	for _, e := range r.buffer {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// flushLoop runs until its done channel closes. Each tick flushes whatever
// the buffer holds.
func (r *Recorder) flushLoop(done <-chan struct{}) {
	ticker := time.NewTicker(r.config.FlushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			r.Flush()
		}
	}
}

// appendLocked constructs an event with a fresh id and current metadata and
// appends it to the buffer. Caller must hold mu.
func (r *Recorder) appendLocked(eventType domain.EventType, category domain.EventCategory, data map[string]any) domain.SessionEvent {
	event := domain.SessionEvent{
		ID:        newEventID(r.now()),
		Timestamp: r.now().UnixMilli(),
		Type:      eventType,
		Category:  category,
		Data:      data,
		Metadata: domain.EventMetadata{
			SessionID: r.sessionID,
			UserAgent: r.client.UserAgent,
			Viewport:  r.client.Viewport,
		},
	}

	r.buffer = append(r.buffer, event)
	return event
}

// flushLocked moves the buffer into the committed list and returns the
// moved batch. Caller must hold mu.
func (r *Recorder) flushLocked() []domain.SessionEvent {
	if len(r.buffer) == 0 {
		return nil
	}

	batch := r.buffer
	r.committed = append(r.committed, batch...)
	r.buffer = nil
	return batch
}

// forward hands a flushed batch to the sink. Sink failures are logged and
// dropped; the committed list still holds the events, so recording never
// fails on a sink error.
func (r *Recorder) forward(sessionID string, batch []domain.SessionEvent) {
	if r.sink == nil || len(batch) == 0 {
		return
	}

	if err := r.sink.FlushBatch(context.Background(), sessionID, batch); err != nil {
		r.log.Error("Failed to forward flushed batch",
			zap.String("session_id", sessionID),
			zap.Int("event_count", len(batch)),
			zap.Error(err))
		return
	}

	r.log.Debug("Flushed batch forwarded",
		zap.String("session_id", sessionID),
		zap.Int("event_count", len(batch)))
}

func (r *Recorder) snapshotLocked() []domain.SessionEvent {
	out := make([]domain.SessionEvent, 0, len(r.committed)+len(r.buffer))
	out = append(out, r.committed...)
	out = append(out, r.buffer...)
	return out
}

// newEventID builds a unix-ms timestamp plus random hex suffix, so ids sort
// roughly by creation time.
func newEventID(now time.Time) string {
	suffix := make([]byte, 5)
	if _, err := rand.Read(suffix); err != nil {
		// crypto/rand never fails on supported platforms; fall back to
		// the timestamp alone rather than panic.
		return fmt.Sprintf("%d", now.UnixNano())
	}
	return fmt.Sprintf("%d-%s", now.UnixMilli(), hex.EncodeToString(suffix))
}

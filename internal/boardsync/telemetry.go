package boardsync

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Operation is the task mutation kind that triggered an inference
type Operation string

const (
	// OpComplete is the complete-task flow (strict matching)
	OpComplete Operation = "complete"
	// OpUpdate is a single-task update (lenient matching)
	OpUpdate Operation = "update"
	// OpBulkUpdate is a bulk task update (lenient matching, one event per task)
	OpBulkUpdate Operation = "bulk_update"
)

// Event is an immutable record of one inference attempt. Events are
// created by call sites via the Recorder and never modified afterwards.
type Event struct {
	ID           string    `json:"id"`
	TaskID       string    `json:"task_id"`
	Operation    Operation `json:"operation"`
	StatusBefore string    `json:"status_before,omitempty"`
	StatusAfter  string    `json:"status_after,omitempty"`
	ColumnBefore string    `json:"column_before,omitempty"`
	ColumnAfter  string    `json:"column_after,omitempty"`
	// Inferred is true when the column (or status) was derived by the
	// matcher rather than supplied explicitly by the caller
	Inferred bool `json:"inferred"`
	// Strategy is the matcher tier that produced the column when
	// Inferred is true: "exact", "alias", "fuzzy" or "position"
	Strategy string `json:"strategy,omitempty"`
	// Failed is true when inference was attempted and produced nothing
	Failed    bool      `json:"inference_failed"`
	Timestamp time.Time `json:"timestamp"`
}

// Metrics summarizes the recorded events
type Metrics struct {
	Total       int     `json:"total"`
	Failures    int     `json:"failures"`
	FailureRate float64 `json:"failure_rate"`
}

// Observer receives each event as it is recorded. Used to feed inference
// counters into the instrumentation pipeline without coupling this
// package to it.
type Observer func(Event)

// Recorder keeps the in-memory, append-only log of inference events and
// answers aggregate queries over it. It is an observability sidecar: it
// never influences matching decisions. One Recorder is constructed per
// server instance and passed by reference to call sites; tests build
// their own instances instead of sharing process-global state.
//
// Safe for concurrent use.
type Recorder struct {
	mu       sync.Mutex
	events   []Event
	observer Observer
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// NewRecorderWithObserver creates a recorder that forwards every recorded
// event to observer (outside the lock)
func NewRecorderWithObserver(observer Observer) *Recorder {
	return &Recorder{observer: observer}
}

// Record appends an event to the log, filling in ID and Timestamp when
// the caller left them empty
func (r *Recorder) Record(event Event) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	r.mu.Lock()
	r.events = append(r.events, event)
	observer := r.observer
	r.mu.Unlock()

	if observer != nil {
		observer(event)
	}
}

// Events returns a copy of the full event log in record order
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Failures returns the events with a failed inference, in record order
func (r *Recorder) Failures() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Event
	for _, e := range r.events {
		if e.Failed {
			out = append(out, e)
		}
	}
	return out
}

// EventsByOperation returns the events of one operation kind, in record order
func (r *Recorder) EventsByOperation(op Operation) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Event
	for _, e := range r.events {
		if e.Operation == op {
			out = append(out, e)
		}
	}
	return out
}

// RecentFailures returns the n most recent failed events, newest first
func (r *Recorder) RecentFailures(n int) []Event {
	if n <= 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Event
	for i := len(r.events) - 1; i >= 0 && len(out) < n; i-- {
		if r.events[i].Failed {
			out = append(out, r.events[i])
		}
	}
	return out
}

// Metrics returns aggregate counts over the log. The failure rate is 0
// for an empty log.
func (r *Recorder) Metrics() Metrics {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := Metrics{Total: len(r.events)}
	for _, e := range r.events {
		if e.Failed {
			m.Failures++
		}
	}
	if m.Total > 0 {
		m.FailureRate = float64(m.Failures) / float64(m.Total)
	}
	return m
}

// Clear discards all recorded events. Intended for tests; production
// recorders live for the process lifetime.
func (r *Recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

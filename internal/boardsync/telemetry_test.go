package boardsync

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderMetrics(t *testing.T) {
	r := NewRecorder()

	// Empty log: no division by zero
	m := r.Metrics()
	assert.Equal(t, 0, m.Total)
	assert.Equal(t, 0, m.Failures)
	assert.Equal(t, 0.0, m.FailureRate)

	for i := 0; i < 10; i++ {
		r.Record(Event{
			TaskID:    "task-1",
			Operation: OpUpdate,
			Failed:    i < 3, // 3 failures out of 10
		})
	}

	m = r.Metrics()
	assert.Equal(t, 10, m.Total)
	assert.Equal(t, 3, m.Failures)
	assert.InDelta(t, 0.3, m.FailureRate, 1e-9)
	assert.Len(t, r.Failures(), 3)
}

func TestRecorderFillsIDAndTimestamp(t *testing.T) {
	r := NewRecorder()
	r.Record(Event{TaskID: "task-1", Operation: OpComplete})

	events := r.Events()
	require.Len(t, events, 1)
	assert.NotEmpty(t, events[0].ID)
	assert.False(t, events[0].Timestamp.IsZero())

	// Caller-supplied values are kept
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	r.Record(Event{ID: "evt-1", TaskID: "task-2", Operation: OpUpdate, Timestamp: ts})
	events = r.Events()
	require.Len(t, events, 2)
	assert.Equal(t, "evt-1", events[1].ID)
	assert.Equal(t, ts, events[1].Timestamp)
}

func TestRecorderEventsByOperation(t *testing.T) {
	r := NewRecorder()
	r.Record(Event{TaskID: "t1", Operation: OpComplete})
	r.Record(Event{TaskID: "t2", Operation: OpUpdate})
	r.Record(Event{TaskID: "t3", Operation: OpBulkUpdate})
	r.Record(Event{TaskID: "t4", Operation: OpBulkUpdate})

	assert.Len(t, r.EventsByOperation(OpComplete), 1)
	assert.Len(t, r.EventsByOperation(OpUpdate), 1)

	bulk := r.EventsByOperation(OpBulkUpdate)
	require.Len(t, bulk, 2)
	assert.Equal(t, "t3", bulk[0].TaskID)
	assert.Equal(t, "t4", bulk[1].TaskID)
}

func TestRecorderRecentFailures(t *testing.T) {
	r := NewRecorder()
	for i, taskID := range []string{"t1", "t2", "t3", "t4", "t5"} {
		r.Record(Event{TaskID: taskID, Operation: OpUpdate, Failed: i%2 == 0})
	}
	// Failures: t1, t3, t5

	recent := r.RecentFailures(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "t5", recent[0].TaskID) // newest first
	assert.Equal(t, "t3", recent[1].TaskID)

	assert.Len(t, r.RecentFailures(10), 3)
	assert.Nil(t, r.RecentFailures(0))
}

func TestRecorderClear(t *testing.T) {
	r := NewRecorder()
	r.Record(Event{TaskID: "t1", Operation: OpUpdate, Failed: true})
	require.Equal(t, 1, r.Metrics().Total)

	r.Clear()
	assert.Equal(t, 0, r.Metrics().Total)
	assert.Empty(t, r.Failures())
}

func TestRecorderObserver(t *testing.T) {
	var seen []Event
	r := NewRecorderWithObserver(func(e Event) {
		seen = append(seen, e)
	})

	r.Record(Event{TaskID: "t1", Operation: OpComplete, Inferred: true})
	r.Record(Event{TaskID: "t2", Operation: OpUpdate, Failed: true})

	require.Len(t, seen, 2)
	assert.Equal(t, "t1", seen[0].TaskID)
	assert.True(t, seen[1].Failed)
}

func TestRecorderIndependentInstances(t *testing.T) {
	// Recorders share no global state
	a := NewRecorder()
	b := NewRecorder()

	a.Record(Event{TaskID: "t1", Operation: OpUpdate})
	assert.Equal(t, 1, a.Metrics().Total)
	assert.Equal(t, 0, b.Metrics().Total)
}

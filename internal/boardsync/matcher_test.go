package boardsync

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskora/taskora-mcp/internal/taskora"
)

func col(id, name string, position int) taskora.Column {
	return taskora.Column{ID: id, Name: name, Position: position}
}

func newTestMatcher() *Matcher {
	return NewMatcher(nil, slog.Default())
}

func TestMatchColumnExactWinsOverAlias(t *testing.T) {
	m := newTestMatcher()

	// "Completed" is an alias for done, but a column literally named
	// "done" must win regardless.
	columns := []taskora.Column{
		col("c1", "Completed", 0),
		col("c2", "  DONE  ", 1),
	}

	res := m.MatchColumn(columns, "done")
	require.True(t, res.Matched())
	assert.Equal(t, "c2", res.Column.ID)
	assert.Equal(t, StrategyExact, res.Strategy)
}

func TestMatchColumnAlias(t *testing.T) {
	m := newTestMatcher()

	columns := []taskora.Column{
		col("c1", "To Do", 0),
		col("c2", "Doing", 1),
		col("c3", "Shipped", 2),
	}

	res := m.MatchColumn(columns, "done")
	require.True(t, res.Matched())
	assert.Equal(t, "c3", res.Column.ID)
	assert.Equal(t, StrategyAlias, res.Strategy)

	// The status string itself may be an alias ("completed" -> done)
	res = m.MatchColumn(columns, "completed")
	require.True(t, res.Matched())
	assert.Equal(t, "c3", res.Column.ID)
}

func TestMatchColumnFuzzyToleratesTypos(t *testing.T) {
	m := newTestMatcher()

	columns := []taskora.Column{
		col("c1", "To Do", 0),
		col("c2", "Doing", 1),
		col("c3", "Deon", 2), // typo for "Done", edit distance 1
	}

	res := m.MatchColumn(columns, "done")
	require.True(t, res.Matched())
	assert.Equal(t, "c3", res.Column.ID)
	assert.Equal(t, StrategyFuzzy, res.Strategy)
}

func TestMatchColumnAliasBeatsFuzzy(t *testing.T) {
	m := newTestMatcher()

	columns := []taskora.Column{
		col("c1", "Deon", 0),
		col("c2", "Done", 1),
	}

	res := m.MatchColumn(columns, "done")
	require.True(t, res.Matched())
	// "Done" wins via exact here; drop it to a pure alias to be sure
	assert.Equal(t, "c2", res.Column.ID)

	columns = []taskora.Column{
		col("c1", "Deon", 0),
		col("c2", "Finished", 1),
	}
	res = m.MatchColumn(columns, "done")
	require.True(t, res.Matched())
	assert.Equal(t, "c2", res.Column.ID)
	assert.Equal(t, StrategyAlias, res.Strategy)
}

func TestMatchColumnFuzzySkipsOtherVocabulary(t *testing.T) {
	m := newTestMatcher()

	// "Doing" is within edit distance 2 of "done" but is recognized
	// vocabulary for in_progress, so it must not be treated as a typo.
	columns := []taskora.Column{
		col("c1", "Doing", 0),
		col("c2", "Deon", 1),
	}

	res := m.MatchColumn(columns, "done")
	require.True(t, res.Matched())
	assert.Equal(t, "c2", res.Column.ID)
	assert.Equal(t, StrategyFuzzy, res.Strategy)
}

func TestMatchColumnEmptySet(t *testing.T) {
	m := newTestMatcher()

	for _, status := range []string{StatusTodo, StatusInProgress, StatusDone, StatusCancelled, "custom"} {
		res := m.MatchColumn(nil, status)
		assert.False(t, res.Matched(), "status %s", status)
		assert.Equal(t, StrategyNone, res.Strategy)

		_, err := m.RequireColumn(nil, status)
		assert.Error(t, err, "status %s", status)
	}

	assert.Nil(t, m.ResolveDefaultColumn(nil))
}

func TestMatchColumnPositionalFallback(t *testing.T) {
	m := newTestMatcher()

	// Deliberately shuffled input order; the positional tier must re-sort
	// by position. None of the names match todo or done under any strategy.
	columns := []taskora.Column{
		col("mid", "Beta", 1),
		col("last", "Gamma", 2),
		col("first", "Alpha", 0),
	}

	res := m.MatchColumn(columns, "todo")
	require.True(t, res.Matched())
	assert.Equal(t, "first", res.Column.ID)
	assert.Equal(t, StrategyPosition, res.Strategy)

	res = m.MatchColumn(columns, "done")
	require.True(t, res.Matched())
	assert.Equal(t, "last", res.Column.ID)
	assert.Equal(t, StrategyPosition, res.Strategy)

	// No positional fallback exists for other statuses
	res = m.MatchColumn(columns, "in_progress")
	assert.False(t, res.Matched())

	res = m.MatchColumn(columns, "cancelled")
	assert.False(t, res.Matched())
}

func TestRequireColumnError(t *testing.T) {
	m := newTestMatcher()

	columns := []taskora.Column{
		col("c1", "Alpha", 0),
		col("c2", "Beta", 1),
	}

	_, err := m.RequireColumn(columns, "in_progress")
	require.Error(t, err)

	var infErr *InferenceError
	require.True(t, errors.As(err, &infErr))
	assert.Equal(t, "in_progress", infErr.Status)
	assert.Contains(t, infErr.Expected, "doing")
	assert.Equal(t, []string{"Alpha", "Beta"}, infErr.Available)
	assert.Contains(t, err.Error(), "in_progress")
	assert.Contains(t, err.Error(), "Alpha")
}

func TestRequireColumnSuccess(t *testing.T) {
	m := newTestMatcher()

	columns := []taskora.Column{
		col("c1", "Backlog", 0),
		col("c2", "Done", 1),
	}

	column, err := m.RequireColumn(columns, "done")
	require.NoError(t, err)
	assert.Equal(t, "c2", column.ID)
}

func TestInferStatusRoundTrip(t *testing.T) {
	m := newTestMatcher()

	cases := map[string]string{
		"Backlog":     StatusTodo,
		"To-Do":       StatusTodo,
		"WIP":         StatusInProgress,
		"In Progress": StatusInProgress,
		"Completed":   StatusDone,
		" Resolved ":  StatusDone,
		"Won't Do":    StatusCancelled,
	}
	for name, want := range cases {
		got, ok := m.InferStatus(col("c", name, 0))
		require.True(t, ok, "column %q", name)
		assert.Equal(t, want, got, "column %q", name)
	}

	// No fuzzy and no positional guessing in this direction
	for _, name := range []string{"Random Lane", "Deon", "Q3 Priorities"} {
		_, ok := m.InferStatus(col("c", name, 0))
		assert.False(t, ok, "column %q", name)
	}
}

func TestResolveDefaultColumn(t *testing.T) {
	m := newTestMatcher()

	// The is_default flag wins even when not at the lowest position
	columns := []taskora.Column{
		col("c1", "Backlog", 0),
		{ID: "c2", Name: "Doing", Position: 1, IsDefault: true},
		col("c3", "Done", 2),
	}
	got := m.ResolveDefaultColumn(columns)
	require.NotNil(t, got)
	assert.Equal(t, "c2", got.ID)

	// Without the flag, lowest position wins regardless of input order
	columns = []taskora.Column{
		col("c3", "Done", 2),
		col("c1", "Backlog", 0),
		col("c2", "Doing", 1),
	}
	got = m.ResolveDefaultColumn(columns)
	require.NotNil(t, got)
	assert.Equal(t, "c1", got.ID)
}

func TestMatchColumnDoesNotMutateInput(t *testing.T) {
	m := newTestMatcher()

	columns := []taskora.Column{
		col("c3", "Gamma", 2),
		col("c1", "Alpha", 0),
		col("c2", "Beta", 1),
	}
	snapshot := make([]taskora.Column, len(columns))
	copy(snapshot, columns)

	_ = m.MatchColumn(columns, "todo")
	_ = m.MatchColumn(columns, "done")
	_ = m.ResolveDefaultColumn(columns)

	assert.Equal(t, snapshot, columns)
}

func TestMatchColumnCustomStatus(t *testing.T) {
	m := newTestMatcher()

	// A status outside the built-in vocabulary still matches exactly
	columns := []taskora.Column{
		col("c1", "Alpha", 0),
		col("c2", "Review", 1),
	}
	res := m.MatchColumn(columns, "review")
	require.True(t, res.Matched())
	assert.Equal(t, "c2", res.Column.ID)
	assert.Equal(t, StrategyExact, res.Strategy)

	// But gets no alias or positional help
	res = m.MatchColumn([]taskora.Column{col("c1", "Alpha", 0)}, "review")
	assert.False(t, res.Matched())
}

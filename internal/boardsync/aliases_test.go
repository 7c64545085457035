package boardsync

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonical(t *testing.T) {
	table := DefaultAliasTable()

	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"done", StatusDone, true},
		{"Completed", StatusDone, true},
		{"  FINISHED  ", StatusDone, true},
		{"backlog", StatusTodo, true},
		{"wip", StatusInProgress, true},
		{"won't do", StatusCancelled, true},
		{"canceled", StatusCancelled, true},
		{"", "", false},
		{"Q3 Priorities", "", false},
	}

	for _, tt := range tests {
		got, ok := table.Canonical(tt.name)
		assert.Equal(t, tt.wantOK, ok, "name %q", tt.name)
		assert.Equal(t, tt.want, got, "name %q", tt.name)
	}
}

func TestContains(t *testing.T) {
	table := DefaultAliasTable()

	assert.True(t, table.Contains(StatusDone, "Resolved"))
	assert.True(t, table.Contains(StatusDone, "  closed "))
	assert.False(t, table.Contains(StatusDone, "doing"))
	assert.False(t, table.Contains("unknown_status", "done"))
}

func TestMergeExtendsExistingStatus(t *testing.T) {
	table := DefaultAliasTable()
	table.Merge(&AliasTable{
		Version: 2,
		Statuses: []StatusAliases{
			{Status: "done", Names: []string{"deployed", "done"}}, // "done" is a duplicate
		},
	})

	assert.Equal(t, 2, table.Version)
	assert.True(t, table.Contains(StatusDone, "deployed"))

	// Duplicates are dropped
	count := 0
	for _, n := range table.Names(StatusDone) {
		if normalize(n) == "done" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestMergeAddsNewStatus(t *testing.T) {
	table := DefaultAliasTable()
	table.Merge(&AliasTable{
		Statuses: []StatusAliases{
			{Status: "blocked", Names: []string{"blocked", "on hold", "waiting"}},
		},
	})

	got, ok := table.Canonical("on hold")
	require.True(t, ok)
	assert.Equal(t, "blocked", got)

	// Built-in statuses keep precedence in iteration order
	got, ok = table.Canonical("done")
	require.True(t, ok)
	assert.Equal(t, StatusDone, got)
}

func TestLoadAliasFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aliases.yaml")
	content := []byte(`version: 3
statuses:
  - status: done
    names: [shipped it, deployed]
  - status: blocked
    names: [blocked, on hold]
`)
	require.NoError(t, os.WriteFile(path, content, 0600))

	table, err := LoadAliasFile(path)
	require.NoError(t, err)

	assert.Equal(t, 3, table.Version)
	assert.True(t, table.Contains(StatusDone, "deployed"))
	// Defaults survive the merge
	assert.True(t, table.Contains(StatusDone, "completed"))
	_, ok := table.Canonical("on hold")
	assert.True(t, ok)
}

func TestLoadAliasFileErrors(t *testing.T) {
	_, err := LoadAliasFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("statuses: {not: [a, list"), 0600))
	_, err = LoadAliasFile(path)
	assert.Error(t, err)
}

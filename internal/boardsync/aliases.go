package boardsync

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Canonical task statuses. Statuses are plain strings so custom values
// can appear without code changes; only these four carry built-in alias
// sets and positional fallback behavior.
const (
	StatusTodo       = "todo"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
	StatusCancelled  = "cancelled"
)

// StatusAliases maps one canonical status to its recognized column-name
// variants. Membership checks are case-insensitive and whitespace-trimmed.
type StatusAliases struct {
	Status string   `yaml:"status"`
	Names  []string `yaml:"names"`
}

// AliasTable is the vocabulary the matching algorithm consults. Statuses
// keeps its declaration order; Canonical iterates it stably, so earlier
// entries win when a name appears in more than one alias set.
type AliasTable struct {
	Version  int             `yaml:"version"`
	Statuses []StatusAliases `yaml:"statuses"`
}

// DefaultAliasTable returns the built-in vocabulary for the four
// canonical statuses.
func DefaultAliasTable() *AliasTable {
	return &AliasTable{
		Version: 1,
		Statuses: []StatusAliases{
			{
				Status: StatusTodo,
				Names: []string{
					"todo", "to do", "to-do", "backlog", "open",
					"new", "inbox", "not started", "planned", "ready",
				},
			},
			{
				Status: StatusInProgress,
				Names: []string{
					"in progress", "in-progress", "inprogress", "in_progress",
					"doing", "started", "active", "wip", "working", "ongoing",
				},
			},
			{
				Status: StatusDone,
				Names: []string{
					"done", "completed", "complete", "finished",
					"closed", "resolved", "shipped", "live",
				},
			},
			{
				Status: StatusCancelled,
				Names: []string{
					"cancelled", "canceled", "won't do", "wont do",
					"wontdo", "abandoned", "dropped", "archived",
				},
			},
		},
	}
}

// LoadAliasFile reads a YAML alias file and merges it over the defaults.
// Entries for a known status extend that status's name set; entries for a
// new status append a new alias set. The file's version replaces the
// default version when set.
func LoadAliasFile(path string) (*AliasTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read alias file: %w", err)
	}

	var overrides AliasTable
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse alias file %s: %w", path, err)
	}

	table := DefaultAliasTable()
	table.Merge(&overrides)
	return table, nil
}

// Merge extends the table with the entries of another table.
// Duplicate names within one status are dropped.
func (t *AliasTable) Merge(other *AliasTable) {
	if other == nil {
		return
	}
	if other.Version > 0 {
		t.Version = other.Version
	}
	for _, sa := range other.Statuses {
		status := normalize(sa.Status)
		if status == "" {
			continue
		}
		idx := -1
		for i := range t.Statuses {
			if t.Statuses[i].Status == status {
				idx = i
				break
			}
		}
		if idx < 0 {
			t.Statuses = append(t.Statuses, StatusAliases{Status: status})
			idx = len(t.Statuses) - 1
		}
		for _, name := range sa.Names {
			if !t.contains(idx, name) {
				t.Statuses[idx].Names = append(t.Statuses[idx].Names, name)
			}
		}
	}
}

// Canonical returns the canonical status whose alias set contains name.
// Iteration order over statuses is stable (declaration order), so the
// first matching status wins.
func (t *AliasTable) Canonical(name string) (string, bool) {
	n := normalize(name)
	if n == "" {
		return "", false
	}
	for i, sa := range t.Statuses {
		if t.contains(i, n) {
			return sa.Status, true
		}
	}
	return "", false
}

// Contains reports whether name is in the alias set of status
func (t *AliasTable) Contains(status, name string) bool {
	s := normalize(status)
	for i, sa := range t.Statuses {
		if sa.Status == s {
			return t.contains(i, name)
		}
	}
	return false
}

// Names returns the alias names registered for status, nil when unknown
func (t *AliasTable) Names(status string) []string {
	s := normalize(status)
	for _, sa := range t.Statuses {
		if sa.Status == s {
			return sa.Names
		}
	}
	return nil
}

func (t *AliasTable) contains(idx int, name string) bool {
	n := normalize(name)
	for _, candidate := range t.Statuses[idx].Names {
		if normalize(candidate) == n {
			return true
		}
	}
	return false
}

// normalize lower-cases and trims a name for comparison
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

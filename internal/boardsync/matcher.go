package boardsync

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/taskora/taskora-mcp/internal/taskora"
)

// Strategy identifies which tier of the matching chain produced a column
type Strategy string

const (
	// StrategyExact is a case-insensitive, trimmed name equality
	StrategyExact Strategy = "exact"
	// StrategyAlias is a shared alias-set membership
	StrategyAlias Strategy = "alias"
	// StrategyFuzzy is an edit-distance match tolerating typos
	StrategyFuzzy Strategy = "fuzzy"
	// StrategyPosition is the todo/done positional fallback
	StrategyPosition Strategy = "position"
	// StrategyNone means no strategy produced a column
	StrategyNone Strategy = "none"
)

// maxFuzzyDistance is the edit-distance ceiling for the fuzzy tier
const maxFuzzyDistance = 2

// MatchResult is the outcome of one status-to-column inference.
// Column is nil when no strategy matched.
type MatchResult struct {
	Column   *taskora.Column
	Strategy Strategy
}

// Matched reports whether a column was found
func (r MatchResult) Matched() bool {
	return r.Column != nil
}

// InferenceError reports a failed strict inference with enough context
// for the user to fix the board configuration.
type InferenceError struct {
	Status    string
	Expected  []string
	Available []string
}

// Error implements the error interface
func (e *InferenceError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "no column matches status %q", e.Status)
	if len(e.Expected) > 0 {
		fmt.Fprintf(&b, " (expected a column named like: %s)", strings.Join(e.Expected, ", "))
	}
	if len(e.Available) > 0 {
		fmt.Fprintf(&b, "; available columns: %s", strings.Join(e.Available, ", "))
	} else {
		b.WriteString("; the project has no columns")
	}
	return b.String()
}

// Matcher maps between statuses and board columns. It is stateless and
// safe for concurrent use; every call receives a fresh column snapshot
// and neither columns nor status are ever mutated.
type Matcher struct {
	aliases *AliasTable
	logger  *slog.Logger
}

// NewMatcher creates a matcher with the given alias table and logger.
// A nil table falls back to DefaultAliasTable; a nil logger to slog.Default.
func NewMatcher(aliases *AliasTable, logger *slog.Logger) *Matcher {
	if aliases == nil {
		aliases = DefaultAliasTable()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Matcher{aliases: aliases, logger: logger}
}

// Aliases returns the matcher's alias table
func (m *Matcher) Aliases() *AliasTable {
	return m.aliases
}

// MatchColumn returns the best column for a status, trying each strategy
// in order: exact name, alias set, fuzzy, positional fallback. Strategies
// scan columns in input order, which is the tie-break guarantee for
// multiple candidates; only the positional tier sorts by position.
func (m *Matcher) MatchColumn(columns []taskora.Column, status string) MatchResult {
	if len(columns) == 0 {
		m.logger.Warn("cannot match status to column: project has no columns",
			slog.String("status", status))
		return MatchResult{Strategy: StrategyNone}
	}

	target := normalize(status)

	// Tier 1: a column literally named after the status
	for i := range columns {
		if normalize(columns[i].Name) == target {
			return result(columns[i], StrategyExact)
		}
	}

	// Tier 2: status and column name share an alias set
	canonical, known := m.aliases.Canonical(status)
	if known {
		for i := range columns {
			if m.aliases.Contains(canonical, columns[i].Name) {
				return result(columns[i], StrategyAlias)
			}
		}
	}

	// Tier 3: tolerate typos in user-created column names. Names that are
	// recognized vocabulary for another status are not typos and are
	// skipped, so "Doing" never fuzzy-matches "done".
	for i := range columns {
		name := normalize(columns[i].Name)
		if other, ok := m.aliases.Canonical(name); ok && other != canonical {
			continue
		}
		if levenshtein.ComputeDistance(name, target) <= maxFuzzyDistance {
			return result(columns[i], StrategyFuzzy)
		}
	}

	// Tier 4: positional fallback, defined only for todo and done
	switch canonical {
	case StatusTodo:
		sorted := sortByPosition(columns)
		return result(sorted[0], StrategyPosition)
	case StatusDone:
		sorted := sortByPosition(columns)
		return result(sorted[len(sorted)-1], StrategyPosition)
	}

	m.logger.Warn("no column matched status",
		slog.String("status", status),
		slog.String("available_columns", strings.Join(columnNames(columns), ", ")))
	return MatchResult{Strategy: StrategyNone}
}

// RequireColumn is the strict form of MatchColumn: a failed inference is
// an error naming the status, its expected alias names, and the columns
// that exist. Used where silently skipping the column move would be worse
// than failing loudly, such as task completion.
func (m *Matcher) RequireColumn(columns []taskora.Column, status string) (*taskora.Column, error) {
	res := m.MatchColumn(columns, status)
	if res.Matched() {
		return res.Column, nil
	}

	var expected []string
	if canonical, ok := m.aliases.Canonical(status); ok {
		expected = m.aliases.Names(canonical)
	}
	return nil, &InferenceError{
		Status:    status,
		Expected:  expected,
		Available: columnNames(columns),
	}
}

// InferStatus derives the canonical status a column represents, for the
// "move card, status follows" workflow. Alias membership only: column
// names are arbitrary, so guessing a status for an unrecognized name is
// unsafe and returns ok=false.
func (m *Matcher) InferStatus(column taskora.Column) (string, bool) {
	return m.aliases.Canonical(column.Name)
}

// ResolveDefaultColumn returns the column for tasks created without an
// explicit placement: the one flagged as default, else the lowest
// position, nil for an empty board.
func (m *Matcher) ResolveDefaultColumn(columns []taskora.Column) *taskora.Column {
	if len(columns) == 0 {
		return nil
	}
	for i := range columns {
		if columns[i].IsDefault {
			col := columns[i]
			return &col
		}
	}
	sorted := sortByPosition(columns)
	col := sorted[0]
	return &col
}

// sortByPosition returns a position-sorted copy, never touching the input
func sortByPosition(columns []taskora.Column) []taskora.Column {
	sorted := slices.Clone(columns)
	slices.SortStableFunc(sorted, func(a, b taskora.Column) int {
		return a.Position - b.Position
	})
	return sorted
}

func columnNames(columns []taskora.Column) []string {
	names := make([]string, len(columns))
	for i := range columns {
		names[i] = columns[i].Name
	}
	return names
}

func result(col taskora.Column, s Strategy) MatchResult {
	return MatchResult{Column: &col, Strategy: s}
}

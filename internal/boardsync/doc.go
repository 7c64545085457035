// Package boardsync translates between canonical task statuses and the
// free-form kanban columns of a Taskora project board.
//
// Column names are arbitrary user-edited labels ("Doing", "Shipped ",
// "Doen"), while task statuses come from a small fixed vocabulary. The
// Matcher bridges the two in both directions:
//
//   - MatchColumn picks the best column for a status with a tiered
//     strategy chain: exact name match, alias-table match, fuzzy match
//     (edit distance), then positional fallback for todo/done.
//   - InferStatus derives a status from a column name via the alias table
//     only; guessing a status from an unrecognized name is unsafe, so
//     there is no fuzzy or positional fallback in that direction.
//   - ResolveDefaultColumn picks the column for tasks created without any
//     placement.
//
// The Matcher is a pure decision function: it never mutates its inputs
// and performs no I/O beyond logging. Outcomes are observed through the
// Recorder, an append-only in-memory event log with aggregate queries,
// which never influences future matching decisions.
//
// The alias vocabulary lives in an explicit AliasTable so deployments can
// extend it with a YAML file instead of touching the algorithm:
//
//	table, err := boardsync.LoadAliasFile("aliases.yaml")
//	matcher := boardsync.NewMatcher(table, slog.Default())
//	res := matcher.MatchColumn(columns, "done")
//	if res.Matched() {
//	    // res.Column, res.Strategy
//	}
package boardsync

package boardsync

import (
	"fmt"
	"strings"

	"github.com/taskora/taskora-mcp/internal/taskora"
)

// FormatColumns renders a column list as human-readable text for tool
// responses, sorted by position. The default column and any WIP limits
// are annotated. Pure formatting; the sorted-by-position view matches
// what the positional fallback of the matcher sees.
func FormatColumns(columns []taskora.Column) string {
	if len(columns) == 0 {
		return "No columns configured for this project."
	}

	sorted := sortByPosition(columns)

	var b strings.Builder
	b.WriteString("Board columns (by position):\n")
	for i, col := range sorted {
		fmt.Fprintf(&b, "%d. %s (id: %s)", i+1, col.Name, col.ID)
		if col.IsDefault {
			b.WriteString(" [default]")
		}
		if col.WIPLimit > 0 {
			fmt.Fprintf(&b, " [WIP limit: %d]", col.WIPLimit)
		}
		b.WriteString("\n")
	}
	return b.String()
}

package output

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/docsweep/docsweep/internal/repair"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// RenderSummary formats the per-run result table: outcome counts, removal
// totals, and the list of failed files with their causes.
func RenderSummary(results []repair.Result) string {
	var unchanged, rewritten, deleted, failed int
	var dupMembers, dupContent, orphans int
	var failures []repair.Result
	for _, res := range results {
		switch res.Outcome {
		case repair.Unchanged:
			unchanged++
		case repair.Rewritten:
			rewritten++
		case repair.Deleted:
			deleted++
		case repair.Failed:
			failed++
			failures = append(failures, res)
		}
		dupMembers += res.DuplicateMembers
		dupContent += res.DuplicateContent
		orphans += res.OrphanedMembers
	}

	var out strings.Builder

	rows := [][]string{
		{"unchanged", fmt.Sprintf("%d", unchanged)},
		{"rewritten", fmt.Sprintf("%d", rewritten)},
		{"deleted", fmt.Sprintf("%d", deleted)},
		{"failed", fmt.Sprintf("%d", failed)},
	}
	out.WriteString(renderTable([]string{"OUTCOME", "FILES"}, rows))
	out.WriteString("\n")
	out.WriteString(mutedStyle.Render(fmt.Sprintf(
		"removed: %d duplicate members, %d duplicate content elements, %d orphaned members",
		dupMembers, dupContent, orphans)))
	out.WriteString("\n")

	if len(failures) == 0 {
		out.WriteString(successStyle.Render(fmt.Sprintf("%d files processed", len(results))))
		out.WriteString("\n")
		return out.String()
	}

	out.WriteString(errorStyle.Render(fmt.Sprintf("%d files failed:", len(failures))))
	out.WriteString("\n")
	for _, res := range failures {
		out.WriteString(fmt.Sprintf("  %s: %v\n", res.Path, res.Err))
	}
	return out.String()
}

// renderTable creates a borderless aligned table.
func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})
	return t.String() + "\n"
}

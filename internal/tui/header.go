package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/sqltop/internal/model"
)

const rangeLayout = "2006-01-02 15:04"

// reportTitle describes what is being ranked, e.g. "Duration by QueryHash › DatabaseName".
func reportTitle(p model.Parameters) string {
	title := fmt.Sprintf("%s by %s", p.Metric, p.PrimaryField)
	if p.HasSecondary() {
		title += " › " + string(p.SecondaryField)
	}
	return title
}

// renderHeader renders the top header bar.
//
// Layout:
//   left:   metric and grouping fields
//   center: "● SEARCHING", "● N GROUPS" or "● ERROR: <reason>"
//   right:  time range and index pattern
func renderHeader(v *Viewer) string {
	width := v.width
	if width <= 0 {
		width = 80
	}

	left := reportTitle(v.params)

	var center string
	switch {
	case v.err != nil:
		center = v.styles.Error.Render("● ERROR: " + classifyError(v.err))
	case v.loading:
		center = v.styles.Dim.Render("● SEARCHING")
	case v.report != nil:
		center = v.styles.Share.Render(fmt.Sprintf("● %d GROUPS", len(v.report.Buckets)))
	}

	tr := v.params.TimeRange
	right := fmt.Sprintf("%s → %s", tr.Start.Local().Format(rangeLayout), tr.End.Local().Format(rangeLayout))
	if v.searcher != nil {
		right += "  " + v.searcher.IndexPattern()
	}

	// Build row: left + padding + center + padding + right, filling innerWidth.
	// Header has Padding(0, 1) so inner content width = total width - 2.
	innerWidth := width - 2
	spacing := innerWidth - lipgloss.Width(left) - lipgloss.Width(center) - lipgloss.Width(right)
	if spacing < 0 {
		spacing = 0
	}
	leftSpacing := spacing / 2
	rightSpacing := spacing - leftSpacing

	row := left +
		strings.Repeat(" ", leftSpacing) +
		center +
		strings.Repeat(" ", rightSpacing) +
		right

	return v.styles.Header.Width(width).Render(row)
}

package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/sqltop/internal/format"
	"github.com/dm/sqltop/internal/model"
)

const (
	progressBarWidth = 20
	// shareWidth is the width of the widest share, "100.00%".
	shareWidth = 7
	// maxTextLength caps the sample query text printed under a bucket.
	maxTextLength = 10_000
)

// formatValue formats a raw metric value for display using the metric's
// semantics.
func formatValue(v float64, info model.MetricInfo) string {
	unit := info.Unit
	if unit == 0 {
		unit = 1
	}
	switch info.Kind {
	case model.KindDuration:
		return format.FormatSeconds(v / unit)
	case model.KindBytes:
		return format.FormatBytes(int64(math.Round(v / unit)))
	default:
		return format.FormatNumber(int64(math.Round(v)))
	}
}

// truncateText shortens s to maxLen runes, appending "..." when cut.
func truncateText(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}

func padLeft(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}

// formattedBucket holds the display strings of one bucket.
type formattedBucket struct {
	share  string
	value  string
	detail string
}

func formatBucket(b model.Bucket, info model.MetricInfo) formattedBucket {
	fb := formattedBucket{
		share: format.FormatShare(b.PercentOfParent),
		value: formatValue(b.Value, info),
	}
	if info.Summable {
		fb.detail = fmt.Sprintf("%s x %s", format.FormatNumber(b.Count), formatValue(b.AverageValue, info))
	}
	return fb
}

// RenderReport renders report as colour-coded text. Primary buckets are
// printed in reverse rank order so the top-ranked bucket ends up last, next
// to the prompt. An empty report renders as "".
func RenderReport(report model.Report, st Styles) string {
	if report.Empty() {
		return ""
	}

	info := report.Parameters.Metric.Info()

	// Align values across both levels.
	primary := make([]formattedBucket, len(report.Buckets))
	secondary := make([][]formattedBucket, len(report.Buckets))
	valueWidth := 0
	for i, b := range report.Buckets {
		primary[i] = formatBucket(b, info)
		valueWidth = max(valueWidth, lipgloss.Width(primary[i].value))
		secondary[i] = make([]formattedBucket, len(b.Children))
		for j, c := range b.Children {
			secondary[i][j] = formatBucket(c, info)
			valueWidth = max(valueWidth, lipgloss.Width(secondary[i][j].value))
		}
	}

	var lines []string
	for i := len(report.Buckets) - 1; i >= 0; i-- {
		b := report.Buckets[i]
		fb := primary[i]

		lines = append(lines, joinFields(
			st.Bar.Render(RenderProgressBar(b.PercentOfParent, progressBarWidth)),
			st.Share.Render(padLeft(fb.share, shareWidth)),
			st.Value.Render(padLeft(fb.value, valueWidth)),
			st.Key.Render(b.Key),
			renderDetail(st.Detail, fb.detail),
		))

		for j, c := range b.Children {
			fc := secondary[i][j]
			lines = append(lines, joinFields(
				strings.Repeat(" ", progressBarWidth),
				st.SubShare.Render(padLeft(fc.share, shareWidth)),
				st.SubValue.Render(padLeft(fc.value, valueWidth)),
				st.SubKey.Render(c.Key),
				renderDetail(st.SubDetail, fc.detail),
			))
			lines = appendText(lines, st.Text, c.Text)
		}

		lines = appendText(lines, st.Text, b.Text)
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n") + "\n"
}

// joinFields separates fields by one space behind a leading space, dropping
// empty trailing fields.
func joinFields(fields ...string) string {
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return " " + strings.Join(fields, " ")
}

func renderDetail(style lipgloss.Style, detail string) string {
	if detail == "" {
		return ""
	}
	return style.Render(detail)
}

// appendText adds text framed by blank lines. Lines are styled one by one
// so multi-line queries are not padded to a common width.
func appendText(lines []string, style lipgloss.Style, text string) []string {
	if text == "" {
		return lines
	}
	lines = append(lines, "")
	for _, l := range strings.Split(truncateText(text, maxTextLength), "\n") {
		lines = append(lines, style.Render(strings.TrimRight(l, "\r")))
	}
	return append(lines, "")
}

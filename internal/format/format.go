package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatBytes formats a byte count into a human-readable string with 1 decimal place.
// Thresholds: <1KB → B, <1MB → KB, <1GB → MB, <1TB → GB, else TB.
func FormatBytes(bytes int64) string {
	const (
		kb = 1024
		mb = kb * 1024
		gb = mb * 1024
		tb = gb * 1024
	)
	switch {
	case bytes < kb:
		return fmt.Sprintf("%d B", bytes)
	case bytes < mb:
		return fmt.Sprintf("%.1f KB", float64(bytes)/kb)
	case bytes < gb:
		return fmt.Sprintf("%.1f MB", float64(bytes)/mb)
	case bytes < tb:
		return fmt.Sprintf("%.1f GB", float64(bytes)/gb)
	default:
		return fmt.Sprintf("%.1f TB", float64(bytes)/tb)
	}
}

// FormatLatency formats a latency value in milliseconds.
// Values >= 1000 ms are shown as seconds with 2 decimal places.
// Values < 1000 ms are shown as ms with 2 decimal places.
// Negative values return "---".
func FormatLatency(ms float64) string {
	if ms < 0 {
		return "---"
	}
	if ms >= 1000 {
		return fmt.Sprintf("%.2f s", ms/1000)
	}
	return fmt.Sprintf("%.2f ms", ms)
}

// FormatNumber formats an integer with locale-style comma separators.
// Example: 12345678 → "12,345,678".
// Uses strconv.FormatInt directly to avoid abs64 overflow for math.MinInt64.
func FormatNumber(n int64) string {
	s := strconv.FormatInt(n, 10)
	if n < 0 {
		// s starts with "-"; strip it, insert commas, restore sign.
		return "-" + insertCommas(s[1:])
	}
	return insertCommas(s)
}

// FormatShare formats a ratio (1 = 100%) as a percentage with two decimal
// places. Ratios above 1 are not clamped. Example: 0.2 → "20.00%", 3 → "300.00%".
// Non-finite ratios return "---".
func FormatShare(ratio float64) string {
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return "---"
	}
	return fmt.Sprintf("%.2f%%", ratio*100)
}

// FormatClock formats a number of seconds as H:MM:SS, rounded to the nearest
// second. Example: 3661 → "1:01:01".
func FormatClock(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return "---"
	}
	total := int64(math.Round(math.Abs(seconds)))
	sign := ""
	if seconds < 0 && total > 0 {
		sign = "-"
	}
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%s%d:%02d:%02d", sign, h, m, s)
}

// FormatSeconds formats a duration in seconds. Values of one second or more
// use FormatClock; shorter values are shown in milliseconds via FormatLatency.
func FormatSeconds(seconds float64) string {
	if seconds >= 1 || seconds < 0 || math.IsNaN(seconds) {
		return FormatClock(seconds)
	}
	return FormatLatency(seconds * 1000)
}

// insertCommas inserts comma separators into a digit string every 3 digits from the right.
func insertCommas(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	var buf strings.Builder
	lead := n % 3
	if lead > 0 {
		buf.WriteString(s[:lead])
	}
	for i := lead; i < n; i += 3 {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(s[i : i+3])
	}
	return buf.String()
}

package tui

import "github.com/dm/sqltop/internal/model"

// ReportMsg delivers a finished report to the viewer.
type ReportMsg struct {
	Report model.Report
}

// SearchErrorMsg signals that the search failed.
type SearchErrorMsg struct{ Err error }

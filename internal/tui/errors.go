package tui

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dm/sqltop/internal/client"
)

// maxErrorSummary caps unclassified error text shown in the header.
const maxErrorSummary = 40

// classifyError maps a search error to a short label for the header.
func classifyError(err error) string {
	if err == nil {
		return ""
	}

	var se *client.SearchError
	if errors.As(err, &se) {
		switch se.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Sprintf("Authentication failed (%d)", se.StatusCode)
		case http.StatusNotFound:
			return "Index not found (404)"
		case 0:
			// Transport failure without a status; fall through to the text checks.
		default:
			return fmt.Sprintf("Search failed (%d)", se.StatusCode)
		}
	}

	if errors.Is(err, client.ErrUnexpectedResponse) {
		return "Unexpected response"
	}
	if errors.Is(err, context.Canceled) {
		return "Cancelled"
	}

	msg := err.Error()
	lower := strings.ToLower(msg)
	switch {
	case errors.Is(err, context.DeadlineExceeded) || strings.Contains(lower, "timeout"):
		return "Timeout"
	case strings.Contains(lower, "connection refused"):
		return "Connection refused"
	case isTLSError(err):
		return "TLS error"
	}

	if len(msg) > maxErrorSummary {
		return msg[:maxErrorSummary] + "..."
	}
	return msg
}

func isTLSError(err error) bool {
	if err == nil {
		return false
	}
	lower := strings.ToLower(err.Error())
	return strings.Contains(lower, "x509") ||
		strings.Contains(lower, "tls") ||
		strings.Contains(lower, "certificate")
}

package client

import (
	"errors"
	"fmt"
)

// maxErrorBody caps how much of the engine's error body goes into Error().
const maxErrorBody = 4096

// ErrUnexpectedResponse is wrapped when a successful response does not carry
// the requested aggregation.
var ErrUnexpectedResponse = errors.New("unexpected search response")

// SearchError is returned when the search engine answers with a client or
// server error status. Body holds the engine's error document.
type SearchError struct {
	StatusCode int
	Body       string
}

func (e *SearchError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("search failed: %s", truncate(e.Body, maxErrorBody))
	}
	return fmt.Sprintf("search failed with status %d: %s", e.StatusCode, truncate(e.Body, maxErrorBody))
}

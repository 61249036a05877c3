package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const fixtureResponse = `{
	"took": 12,
	"timed_out": false,
	"aggregations": {
		"_agg1": {
			"buckets": [
				{
					"key": "q1",
					"doc_count": 10,
					"_value": {"value": 5000000},
					"_text_data": {"hits": {"hits": [{"_source": {"TextData": "SELECT * FROM orders"}}]}},
					"_agg2": {"buckets": [{"key": "sales", "doc_count": 10, "_value": {"value": 5000000}}]}
				},
				{
					"key": "q2",
					"doc_count": 5,
					"_value": {"value": 1000000},
					"_agg2": {"buckets": [{"key": "hr", "doc_count": 5, "_value": {"value": 1000000}}]}
				}
			]
		}
	}
}`

// newTestClient creates a DefaultClient pointed at the given test server URL.
func newTestClient(t *testing.T, baseURL string) *DefaultClient {
	t.Helper()
	c, err := NewDefaultClient(ClientConfig{
		BaseURL:        baseURL,
		IndexPrefix:    "sql-",
		RequestTimeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("NewDefaultClient: %v", err)
	}
	return c
}

func TestNewDefaultClient_RequiresBaseURL(t *testing.T) {
	if _, err := NewDefaultClient(ClientConfig{}); err == nil {
		t.Fatal("expected error for empty BaseURL")
	}
}

func TestSearch_PostsToIndexPattern(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/sql-*/_search" {
			t.Errorf("path = %q, want %q", r.URL.Path, "/sql-*/_search")
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &gotBody); err != nil {
			t.Errorf("request body is not JSON: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(fixtureResponse))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	resp, err := c.Search(context.Background(), map[string]any{"size": 0})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if gotBody["size"] != float64(0) {
		t.Errorf("request size = %v, want 0", gotBody["size"])
	}

	buckets := resp.Aggregations.Primary.Buckets
	if len(buckets) != 2 {
		t.Fatalf("len(buckets) = %d, want 2", len(buckets))
	}
	if buckets[0].Key != "q1" {
		t.Errorf("Key = %q, want q1", buckets[0].Key)
	}
	if buckets[0].DocCount != 10 {
		t.Errorf("DocCount = %d, want 10", buckets[0].DocCount)
	}
	if buckets[0].Value == nil || buckets[0].Value.Value != 5000000 {
		t.Errorf("Value = %+v, want 5000000", buckets[0].Value)
	}
	if got := buckets[0].TextData.FirstText(); got != "SELECT * FROM orders" {
		t.Errorf("FirstText = %q", got)
	}
	if got := buckets[1].TextData.FirstText(); got != "" {
		t.Errorf("FirstText without top hits = %q, want empty", got)
	}
	if buckets[0].Secondary == nil || len(buckets[0].Secondary.Buckets) != 1 {
		t.Fatalf("Secondary = %+v, want one bucket", buckets[0].Secondary)
	}
	if resp.Took != 12 {
		t.Errorf("Took = %d, want 12", resp.Took)
	}
}

func TestSearch_BasicAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "elastic" || pass != "changeme" {
			t.Errorf("BasicAuth = %q/%q/%v", user, pass, ok)
		}
		_, _ = w.Write([]byte(fixtureResponse))
	}))
	defer srv.Close()

	c, err := NewDefaultClient(ClientConfig{BaseURL: srv.URL, IndexPrefix: "sql-", Username: "elastic", Password: "changeme"})
	if err != nil {
		t.Fatalf("NewDefaultClient: %v", err)
	}
	if _, err := c.Search(context.Background(), struct{}{}); err != nil {
		t.Fatalf("Search: %v", err)
	}
}

func TestSearch_ErrorStatusCarriesBody(t *testing.T) {
	const errBody = `{"error":{"type":"search_phase_execution_exception","reason":"all shards failed"},"status":400}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(errBody))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Search(context.Background(), struct{}{})
	if err == nil {
		t.Fatal("expected error")
	}

	var se *SearchError
	if !errors.As(err, &se) {
		t.Fatalf("error %v is not a *SearchError", err)
	}
	if se.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d, want 400", se.StatusCode)
	}
	if se.Body != errBody {
		t.Errorf("Body = %q, want %q", se.Body, errBody)
	}
	if !strings.Contains(err.Error(), "all shards failed") {
		t.Errorf("error text %q does not include the engine body", err.Error())
	}
}

func TestSearch_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Search(context.Background(), struct{}{})

	var se *SearchError
	if !errors.As(err, &se) {
		t.Fatalf("error %v is not a *SearchError", err)
	}
	if se.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", se.StatusCode)
	}
}

func TestSearch_MissingAggregation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"took":1,"hits":{"hits":[]}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Search(context.Background(), struct{}{})
	if !errors.Is(err, ErrUnexpectedResponse) {
		t.Fatalf("err = %v, want ErrUnexpectedResponse", err)
	}
}

func TestSearch_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	if _, err := c.Search(context.Background(), struct{}{}); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestSearch_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(fixtureResponse))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newTestClient(t, srv.URL)
	if _, err := c.Search(ctx, struct{}{}); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestSearchPath(t *testing.T) {
	tests := []struct {
		prefix string
		want   string
	}{
		{"sql-", "/sql-*/_search"},
		{"", "/*/_search"},
		{"trace_2024.", "/trace_2024.*/_search"},
	}
	for _, tc := range tests {
		if got := searchPath(tc.prefix); got != tc.want {
			t.Errorf("searchPath(%q) = %q, want %q", tc.prefix, got, tc.want)
		}
	}
}

func TestBucketKey_NumericKey(t *testing.T) {
	var b RawBucket
	if err := json.Unmarshal([]byte(`{"key": 42, "doc_count": 3}`), &b); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if b.Key != "42" {
		t.Errorf("Key = %q, want 42", b.Key)
	}
}

func TestSearchError_TruncatesLongBody(t *testing.T) {
	se := &SearchError{StatusCode: 500, Body: strings.Repeat("x", maxErrorBody+10)}
	msg := se.Error()
	if !strings.HasSuffix(msg, "...") {
		t.Errorf("long body not truncated: %d bytes", len(msg))
	}
}

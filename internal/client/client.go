package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Searcher runs an aggregation request against the configured index pattern.
type Searcher interface {
	Search(ctx context.Context, body any) (*SearchResponse, error)
	IndexPattern() string
}

// ClientConfig holds connection settings shared by every Searcher.
type ClientConfig struct {
	BaseURL            string
	IndexPrefix        string
	Username           string
	Password           string
	InsecureSkipVerify bool
	// RequestTimeout bounds the search call. Zero waits until the transport
	// resolves or fails.
	RequestTimeout time.Duration
}

// IndexPattern returns the wildcard index pattern searched.
func (c ClientConfig) IndexPattern() string {
	return c.IndexPrefix + "*"
}

// DefaultClient implements Searcher using the standard net/http package.
type DefaultClient struct {
	http   *http.Client
	config ClientConfig
}

// NewDefaultClient constructs a DefaultClient from the given config.
// Returns an error if BaseURL is empty.
func NewDefaultClient(cfg ClientConfig) (*DefaultClient, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("BaseURL is required")
	}

	return &DefaultClient{
		http: &http.Client{
			Timeout:   cfg.RequestTimeout,
			Transport: newTransport(cfg),
		},
		config: cfg,
	}, nil
}

func newTransport(cfg ClientConfig) *http.Transport {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		InsecureSkipVerify: cfg.InsecureSkipVerify, //nolint:gosec
	}
	return transport
}

// IndexPattern returns the wildcard index pattern searched.
func (c *DefaultClient) IndexPattern() string {
	return c.config.IndexPattern()
}

// Search POSTs body as JSON to the index pattern's _search endpoint.
func (c *DefaultClient) Search(ctx context.Context, body any) (*SearchResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("Search encode: %w", err)
	}

	raw, err := c.doPost(ctx, searchPath(c.config.IndexPrefix), payload)
	if err != nil {
		return nil, fmt.Errorf("Search: %w", err)
	}

	resp, err := decodeSearchResponse(raw)
	if err != nil {
		return nil, fmt.Errorf("Search decode: %w", err)
	}
	return resp, nil
}

// doPost performs a POST request with a JSON body to the given path
// (relative to BaseURL). It sets Basic Auth if credentials are configured.
// Returns the response body bytes, or a *SearchError on non-2xx status.
func (c *DefaultClient) doPost(ctx context.Context, path string, payload []byte) ([]byte, error) {
	url := strings.TrimRight(c.config.BaseURL, "/") + path

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	if c.config.Username != "" || c.config.Password != "" {
		req.SetBasicAuth(c.config.Username, c.config.Password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	return readResponse(resp)
}

// maxResponseBytes caps a search response; top-hit query text can be large.
const maxResponseBytes = 64 * 1024 * 1024

// readResponse reads resp's body and returns it, or a *SearchError carrying
// the raw body when the status is not 2xx.
func readResponse(resp *http.Response) ([]byte, error) {
	var body []byte
	if resp.Body != nil {
		var err error
		body, err = io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
		if err != nil {
			return nil, fmt.Errorf("read body: %w", err)
		}
		if len(body) > maxResponseBytes {
			return nil, fmt.Errorf("response body exceeds %d MB limit", maxResponseBytes/(1024*1024))
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &SearchError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

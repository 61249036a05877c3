package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/opensearch-project/opensearch-go/v4"
	"github.com/opensearch-project/opensearch-go/v4/opensearchapi"
)

// OpenSearchClient implements Searcher on top of the opensearch-go client.
type OpenSearchClient struct {
	client *opensearchapi.Client
	config ClientConfig
}

// NewOpenSearchClient constructs an OpenSearchClient from the given config.
// Returns an error if BaseURL is empty or the client cannot be created.
func NewOpenSearchClient(cfg ClientConfig) (*OpenSearchClient, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("BaseURL is required")
	}

	c, err := opensearchapi.NewClient(opensearchapi.Config{
		Client: opensearch.Config{
			Addresses: []string{cfg.BaseURL},
			Username:  cfg.Username,
			Password:  cfg.Password,
			Transport: newTransport(cfg),
			// A run issues exactly one search.
			DisableRetry: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create opensearch client: %w", err)
	}

	return &OpenSearchClient{client: c, config: cfg}, nil
}

// IndexPattern returns the wildcard index pattern searched.
func (c *OpenSearchClient) IndexPattern() string {
	return c.config.IndexPattern()
}

// Search sends body to the search API through the opensearch-go transport.
// The response body is read directly so error statuses keep the engine's
// own text, whatever its content type.
func (c *OpenSearchClient) Search(ctx context.Context, body any) (*SearchResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("Search encode: %w", err)
	}

	if c.config.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.RequestTimeout)
		defer cancel()
	}

	sr := opensearchapi.SearchReq{
		Indices: []string{c.IndexPattern()},
		Body:    bytes.NewReader(payload),
	}
	req, err := sr.GetRequest()
	if err != nil {
		return nil, fmt.Errorf("Search: %w", err)
	}
	req = req.WithContext(ctx)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Client.Perform(req)
	if err != nil {
		return nil, fmt.Errorf("Search: %w", err)
	}
	if resp.Body != nil {
		defer resp.Body.Close()
	}

	raw, err := readResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("Search: %w", err)
	}

	result, err := decodeSearchResponse(raw)
	if err != nil {
		return nil, fmt.Errorf("Search decode: %w", err)
	}
	return result, nil
}

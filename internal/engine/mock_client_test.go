package engine

import (
	"context"
	"errors"

	"github.com/dm/sqltop/internal/client"
)

// MockSearcher implements client.Searcher for testing.
type MockSearcher struct {
	SearchFn func(ctx context.Context, body any) (*client.SearchResponse, error)
	Calls    int
	LastBody any
}

func (m *MockSearcher) Search(ctx context.Context, body any) (*client.SearchResponse, error) {
	m.Calls++
	m.LastBody = body
	if m.SearchFn != nil {
		return m.SearchFn(ctx, body)
	}
	return &client.SearchResponse{}, nil
}

func (m *MockSearcher) IndexPattern() string {
	return "sql-*"
}

var errMockFailure = errors.New("mock failure")

// sumBucket builds a raw bucket carrying a summed metric.
func sumBucket(key string, count int64, sum float64, children ...client.RawBucket) client.RawBucket {
	b := client.RawBucket{
		Key:      client.BucketKey(key),
		DocCount: count,
		Value:    &client.ValueResult{Value: sum},
	}
	if children != nil {
		b.Secondary = &client.TermsResult{Buckets: children}
	}
	return b
}

// countBucket builds a raw bucket without a summed metric.
func countBucket(key string, count int64, children ...client.RawBucket) client.RawBucket {
	b := client.RawBucket{
		Key:      client.BucketKey(key),
		DocCount: count,
	}
	if children != nil {
		b.Secondary = &client.TermsResult{Buckets: children}
	}
	return b
}

// withText attaches a top-hit sample with the given query text.
func withText(b client.RawBucket, text string) client.RawBucket {
	th := &client.TopHitsResult{}
	hit := client.TopHit{}
	hit.Source.TextData = text
	th.Hits.Hits = []client.TopHit{hit}
	b.TextData = th
	return b
}

func responseOf(buckets ...client.RawBucket) *client.SearchResponse {
	return &client.SearchResponse{
		Aggregations: client.Aggregations{
			Primary: client.TermsResult{Buckets: buckets},
		},
	}
}

package client

import (
	"bytes"
	"encoding/json"
)

// SearchResponse is the part of a _search response the report reads.
type SearchResponse struct {
	Took         int          `json:"took"`
	TimedOut     bool         `json:"timed_out"`
	Aggregations Aggregations `json:"aggregations"`
}

// Aggregations holds the primary terms aggregation.
type Aggregations struct {
	Primary TermsResult `json:"_agg1"`
}

// TermsResult is the bucket list of a terms aggregation.
type TermsResult struct {
	Buckets []RawBucket `json:"buckets"`
}

// RawBucket is one terms bucket with the optional sub-aggregations the
// request may have asked for.
type RawBucket struct {
	Key       BucketKey      `json:"key"`
	DocCount  int64          `json:"doc_count"`
	Value     *ValueResult   `json:"_value,omitempty"`
	TextData  *TopHitsResult `json:"_text_data,omitempty"`
	Secondary *TermsResult   `json:"_agg2,omitempty"`
}

// ValueResult is the result of a sum aggregation.
type ValueResult struct {
	Value float64 `json:"value"`
}

// TopHitsResult is the result of a top_hits aggregation.
type TopHitsResult struct {
	Hits struct {
		Hits []TopHit `json:"hits"`
	} `json:"hits"`
}

// TopHit is a sample document restricted to its query text.
type TopHit struct {
	Source struct {
		TextData string `json:"TextData"`
	} `json:"_source"`
}

// FirstText returns the text of the first sample document, or "".
func (t *TopHitsResult) FirstText() string {
	if t == nil || len(t.Hits.Hits) == 0 {
		return ""
	}
	return t.Hits.Hits[0].Source.TextData
}

// BucketKey is a terms bucket key. Keyword fields produce strings; numeric
// keys keep their JSON text.
type BucketKey string

// UnmarshalJSON accepts string and non-string keys.
func (k *BucketKey) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*k = BucketKey(s)
		return nil
	}
	*k = BucketKey(bytes.TrimSpace(b))
	return nil
}

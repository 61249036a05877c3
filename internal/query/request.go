package query

// Aggregation names shared with the response decoder.
const (
	AggPrimary   = "_agg1"
	AggSecondary = "_agg2"
	AggValue     = "_value"
	AggTextData  = "_text_data"
)

const (
	orderByValue = "_value"
	orderByCount = "_count"
	orderDesc    = "desc"

	// dateFormat is the search engine's named format for the range bounds.
	dateFormat = "strict_date_optional_time"
	// timestampLayout renders range bounds in UTC with milliseconds.
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// Request is an aggregation-only search request body.
type Request struct {
	Size  int                    `json:"size"`
	Aggs  map[string]Aggregation `json:"aggs"`
	Query Query                  `json:"query"`
}

// Aggregation holds exactly one of Terms, Sum or TopHits plus optional
// sub-aggregations.
type Aggregation struct {
	Terms   *TermsAgg              `json:"terms,omitempty"`
	Sum     *SumAgg                `json:"sum,omitempty"`
	TopHits *TopHitsAgg            `json:"top_hits,omitempty"`
	Aggs    map[string]Aggregation `json:"aggs,omitempty"`
}

// TermsAgg groups documents by the exact value of Field.
type TermsAgg struct {
	Field string            `json:"field"`
	Order map[string]string `json:"order"`
	Size  int               `json:"size"`
}

// SumAgg sums a numeric field.
type SumAgg struct {
	Field string `json:"field"`
}

// TopHitsAgg fetches sample documents from a bucket.
type TopHitsAgg struct {
	Sort   []map[string]string `json:"sort,omitempty"`
	Size   int                 `json:"size"`
	Source SourceFilter        `json:"_source"`
}

// SourceFilter limits the returned document fields.
type SourceFilter struct {
	Includes []string `json:"includes"`
}

// Query is the filter part of the request.
type Query struct {
	Bool BoolQuery `json:"bool"`
}

// BoolQuery requires every Must clause to match.
type BoolQuery struct {
	Must []Clause `json:"must"`
}

// Clause holds exactly one of MatchAll, MatchPhrase or Range.
type Clause struct {
	MatchAll    *MatchAll              `json:"match_all,omitempty"`
	MatchPhrase map[string]MatchPhrase `json:"match_phrase,omitempty"`
	Range       map[string]RangeBounds `json:"range,omitempty"`
}

// MatchAll matches every document.
type MatchAll struct{}

// MatchPhrase matches an exact phrase.
type MatchPhrase struct {
	Query string `json:"query"`
}

// RangeBounds are inclusive bounds on a date field.
type RangeBounds struct {
	Format string `json:"format"`
	GTE    string `json:"gte"`
	LTE    string `json:"lte"`
}

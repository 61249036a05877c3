package model

// Bucket is one group of a report level with its derived metrics.
type Bucket struct {
	Key  string
	Text string // sample query text; empty when the level is not hash-keyed
	// Count is the number of documents in the bucket.
	Count int64
	// Value is the summed metric, or Count for MetricCount.
	Value float64
	// AverageValue is Value/Count, fixed at 1 for MetricCount.
	AverageValue float64
	// PercentOfParent is a ratio in [0,1]: primary buckets against the
	// top-ranked primary bucket, secondary buckets against their parent.
	PercentOfParent float64
	Children        []Bucket
}

// Report is the ranked result of one run. Buckets keep the search engine's
// descending order; renderers decide the display order.
type Report struct {
	Parameters Parameters
	Buckets    []Bucket
}

// Empty reports whether the run matched no documents.
func (r Report) Empty() bool {
	return len(r.Buckets) == 0
}

package engine

import (
	"math"

	"github.com/dm/sqltop/internal/client"
	"github.com/dm/sqltop/internal/model"
)

// safeDivide returns a/b, or 0 when b is zero or the result is not finite.
func safeDivide(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	r := a / b
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return r
}

// bucketValue returns the ranking value of b: its summed metric, or its
// document count for metrics without a field.
func bucketValue(b client.RawBucket, metric model.Metric) float64 {
	if !metric.Summable() {
		return float64(b.DocCount)
	}
	if b.Value == nil {
		return 0
	}
	return b.Value.Value
}

// averageValue returns value per document, fixed at 1 for count-only metrics
// where value and count coincide.
func averageValue(b client.RawBucket, value float64, metric model.Metric) float64 {
	if !metric.Summable() {
		return 1
	}
	return safeDivide(value, float64(b.DocCount))
}

// Project turns a search response into a Report.
//
// Primary percentages are relative to the first (top-ranked) primary bucket;
// secondary percentages are relative to their own primary bucket. Bucket
// order is kept as returned. A response without primary buckets yields an
// empty report.
func Project(resp *client.SearchResponse, p model.Parameters) model.Report {
	report := model.Report{Parameters: p, Buckets: []model.Bucket{}}
	if resp == nil {
		return report
	}

	raw := resp.Aggregations.Primary.Buckets
	if len(raw) == 0 {
		return report
	}

	totalValue := bucketValue(raw[0], p.Metric)

	report.Buckets = make([]model.Bucket, 0, len(raw))
	for _, rb := range raw {
		b := projectBucket(rb, totalValue, p.Metric)
		b.Children = projectChildren(rb, b.Value, p.Metric)
		report.Buckets = append(report.Buckets, b)
	}
	return report
}

func projectChildren(parent client.RawBucket, parentValue float64, metric model.Metric) []model.Bucket {
	if parent.Secondary == nil {
		return nil
	}
	children := make([]model.Bucket, 0, len(parent.Secondary.Buckets))
	for _, rb := range parent.Secondary.Buckets {
		children = append(children, projectBucket(rb, parentValue, metric))
	}
	return children
}

func projectBucket(rb client.RawBucket, anchor float64, metric model.Metric) model.Bucket {
	value := bucketValue(rb, metric)
	return model.Bucket{
		Key:             string(rb.Key),
		Text:            rb.TextData.FirstText(),
		Count:           rb.DocCount,
		Value:           value,
		AverageValue:    averageValue(rb, value, metric),
		PercentOfParent: safeDivide(value, anchor),
	}
}

package model

import (
	"fmt"
	"strings"
)

// Metric is the numeric field a report ranks on. MetricCount ranks by
// document count alone and has no field to sum.
type Metric string

const (
	MetricCount    Metric = "Count"
	MetricDuration Metric = "Duration"
	MetricCPU      Metric = "CPU"
	MetricReads    Metric = "Reads"
	MetricWrites   Metric = "Writes"
)

// Metrics lists every metric in the order they are offered on the command line.
var Metrics = []Metric{MetricCount, MetricDuration, MetricCPU, MetricReads, MetricWrites}

// ValueKind tells the presentation layer how a metric's values are displayed.
type ValueKind int

const (
	KindCount ValueKind = iota
	KindDuration
	KindBytes
)

// MetricInfo describes how a metric is aggregated and displayed.
type MetricInfo struct {
	// Summable is false for MetricCount: there is no field to sum and the
	// document count doubles as the value.
	Summable bool
	// Unit divides raw values before display (microseconds → seconds for
	// Duration, milliseconds → seconds for CPU).
	Unit float64
	Kind ValueKind
}

var metricInfo = map[Metric]MetricInfo{
	MetricCount:    {Summable: false, Unit: 1, Kind: KindCount},
	MetricDuration: {Summable: true, Unit: 1_000_000, Kind: KindDuration},
	MetricCPU:      {Summable: true, Unit: 1_000, Kind: KindDuration},
	MetricReads:    {Summable: true, Unit: 1, Kind: KindBytes},
	MetricWrites:   {Summable: true, Unit: 1, Kind: KindBytes},
}

// Info returns the semantics of m. Unknown metrics are treated like
// MetricCount.
func (m Metric) Info() MetricInfo {
	if info, ok := metricInfo[m]; ok {
		return info
	}
	return metricInfo[MetricCount]
}

// Summable reports whether m has a numeric field to sum.
func (m Metric) Summable() bool {
	return m.Info().Summable
}

// FieldName returns the document field summed for m, or "" for MetricCount.
func (m Metric) FieldName() string {
	if !m.Summable() {
		return ""
	}
	return string(m)
}

func (m Metric) String() string {
	return string(m)
}

// metricAliases maps the lowercase short names accepted on the command line.
var metricAliases = map[string]Metric{
	"count":    MetricCount,
	"duration": MetricDuration,
	"cpu":      MetricCPU,
	"reads":    MetricReads,
	"writes":   MetricWrites,
}

// ParseMetric accepts a canonical metric name or its short alias,
// case-insensitively.
func ParseMetric(s string) (Metric, error) {
	if m, ok := metricAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return m, nil
	}
	return "", fmt.Errorf("invalid metric %q (choose from %s)", s, joinMetrics())
}

func joinMetrics() string {
	names := make([]string, len(Metrics))
	for i, m := range Metrics {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/dm/sqltop/internal/model"
)

// metricValue is a pflag.Value accepting metric names and aliases.
type metricValue struct{ m *model.Metric }

var _ pflag.Value = metricValue{}

func (v metricValue) String() string {
	if v.m == nil {
		return ""
	}
	return string(*v.m)
}

func (v metricValue) Set(s string) error {
	m, err := model.ParseMetric(s)
	if err != nil {
		return err
	}
	*v.m = m
	return nil
}

func (v metricValue) Type() string { return "metric" }

// fieldValue is a pflag.Value accepting grouping field names and aliases.
// An optional field also accepts "" to clear the grouping.
type fieldValue struct {
	f        *model.Field
	optional bool
}

var _ pflag.Value = fieldValue{}

func (v fieldValue) String() string {
	if v.f == nil {
		return ""
	}
	return string(*v.f)
}

func (v fieldValue) Set(s string) error {
	if v.optional && strings.TrimSpace(s) == "" {
		*v.f = ""
		return nil
	}
	f, err := model.ParseField(s)
	if err != nil {
		return err
	}
	*v.f = f
	return nil
}

func (v fieldValue) Type() string { return "field" }

// Transports selectable with --transport.
const (
	transportHTTP       = "http"
	transportOpenSearch = "opensearch"
)

// transportValue is a pflag.Value restricted to the supported transports.
type transportValue struct{ s *string }

var _ pflag.Value = transportValue{}

func (v transportValue) String() string {
	if v.s == nil {
		return ""
	}
	return *v.s
}

func (v transportValue) Set(s string) error {
	t, err := parseTransport(s)
	if err != nil {
		return err
	}
	*v.s = t
	return nil
}

func (v transportValue) Type() string { return "transport" }

func parseTransport(s string) (string, error) {
	switch t := strings.ToLower(strings.TrimSpace(s)); t {
	case transportHTTP, transportOpenSearch:
		return t, nil
	default:
		return "", fmt.Errorf("invalid transport %q (choose from %s, %s)", s, transportHTTP, transportOpenSearch)
	}
}

// metricNames renders the accepted metrics for flag usage.
func metricNames() string {
	names := make([]string, len(model.Metrics))
	for i, m := range model.Metrics {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

// fieldNames renders the accepted grouping fields for flag usage.
func fieldNames() string {
	names := make([]string, len(model.Fields))
	for i, f := range model.Fields {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

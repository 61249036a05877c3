package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dm/sqltop/internal/client"
	"github.com/dm/sqltop/internal/model"
	"github.com/dm/sqltop/internal/query"
)

// Top builds the aggregation request for p, runs it through s and projects
// the response into a Report. It issues exactly one search call.
func Top(ctx context.Context, s client.Searcher, p model.Parameters) (model.Report, error) {
	req := query.Build(p)

	slog.DebugContext(ctx, "executing aggregation search",
		"index", s.IndexPattern(),
		"metric", p.Metric,
		"agg", p.PrimaryField,
		"agg2", p.SecondaryField,
		"max_results", p.MaxResults,
	)

	started := time.Now()
	resp, err := s.Search(ctx, req)
	if err != nil {
		return model.Report{}, fmt.Errorf("Top: %w", err)
	}

	report := Project(resp, p)

	slog.DebugContext(ctx, "aggregation search completed",
		"buckets", len(report.Buckets),
		"took_ms", resp.Took,
		"elapsed", time.Since(started),
	)
	if resp.TimedOut {
		slog.WarnContext(ctx, "search timed out on some shards; report may be partial")
	}
	return report, nil
}

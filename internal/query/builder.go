package query

import (
	"github.com/dm/sqltop/internal/model"
)

// levelShape lists the optional sub-aggregations of one terms level.
type levelShape struct {
	Sum     bool
	TopHits bool
}

// shape is the set of optional parts of a request.
type shape struct {
	Primary   levelShape
	Secondary levelShape
	Nested    bool
}

type shapeKey struct {
	summable      bool
	primaryHash   bool
	secondaryHash bool
}

// shapes decides which sub-aggregations exist. The primary level only looks
// up query text when the secondary level does not already do so.
var shapes = map[shapeKey]shape{
	{summable: false, primaryHash: false, secondaryHash: false}: {
		Primary:   levelShape{},
		Secondary: levelShape{},
	},
	{summable: false, primaryHash: false, secondaryHash: true}: {
		Primary:   levelShape{},
		Secondary: levelShape{TopHits: true},
	},
	{summable: false, primaryHash: true, secondaryHash: false}: {
		Primary:   levelShape{TopHits: true},
		Secondary: levelShape{},
	},
	{summable: false, primaryHash: true, secondaryHash: true}: {
		Primary:   levelShape{},
		Secondary: levelShape{TopHits: true},
	},
	{summable: true, primaryHash: false, secondaryHash: false}: {
		Primary:   levelShape{Sum: true},
		Secondary: levelShape{Sum: true},
	},
	{summable: true, primaryHash: false, secondaryHash: true}: {
		Primary:   levelShape{Sum: true},
		Secondary: levelShape{Sum: true, TopHits: true},
	},
	{summable: true, primaryHash: true, secondaryHash: false}: {
		Primary:   levelShape{Sum: true, TopHits: true},
		Secondary: levelShape{Sum: true},
	},
	{summable: true, primaryHash: true, secondaryHash: true}: {
		Primary:   levelShape{Sum: true},
		Secondary: levelShape{Sum: true, TopHits: true},
	},
}

// shapeFor looks up the request shape for p. Without a secondary field the
// nested level is dropped and the secondary field counts as non-hash.
func shapeFor(p model.Parameters) shape {
	s := shapes[shapeKey{
		summable:      p.Metric.Summable(),
		primaryHash:   p.PrimaryField.IsHash(),
		secondaryHash: p.HasSecondary() && p.SecondaryField.IsHash(),
	}]
	s.Nested = p.HasSecondary()
	if !s.Nested {
		s.Secondary = levelShape{}
	}
	return s
}

// Build translates p into a two-level terms aggregation request. The result
// depends only on p.
func Build(p model.Parameters) Request {
	s := shapeFor(p)

	primary := termsLevel(p.PrimaryField, p.MaxResults, p.Metric, s.Primary)
	if s.Nested {
		if primary.Aggs == nil {
			primary.Aggs = make(map[string]Aggregation)
		}
		primary.Aggs[AggSecondary] = termsLevel(p.SecondaryField, model.SecondarySize, p.Metric, s.Secondary)
	}

	return Request{
		Size: 0,
		Aggs: map[string]Aggregation{AggPrimary: primary},
		Query: Query{
			Bool: BoolQuery{Must: mustClauses(p)},
		},
	}
}

// termsLevel builds one terms aggregation with the sub-aggregations named
// by ls.
func termsLevel(field model.Field, size int, metric model.Metric, ls levelShape) Aggregation {
	agg := Aggregation{
		Terms: &TermsAgg{
			Field: field.Keyword(),
			Order: orderFor(metric),
			Size:  size,
		},
	}
	if !ls.Sum && !ls.TopHits {
		return agg
	}

	agg.Aggs = make(map[string]Aggregation, 2)
	if ls.Sum {
		agg.Aggs[AggValue] = Aggregation{Sum: &SumAgg{Field: metric.FieldName()}}
	}
	if ls.TopHits {
		agg.Aggs[AggTextData] = Aggregation{TopHits: textSample(metric)}
	}
	return agg
}

func orderFor(metric model.Metric) map[string]string {
	if metric.Summable() {
		return map[string]string{orderByValue: orderDesc}
	}
	return map[string]string{orderByCount: orderDesc}
}

// textSample fetches the text of one document, the most expensive one when
// the metric can be sorted on.
func textSample(metric model.Metric) *TopHitsAgg {
	th := &TopHitsAgg{
		Size:   1,
		Source: SourceFilter{Includes: []string{model.TextDataField}},
	}
	if metric.Summable() {
		th.Sort = []map[string]string{{metric.FieldName(): orderDesc}}
	}
	return th
}

// mustClauses returns one clause per filterable dimension followed by the
// time range. Unset filters become match_all so the clause count is fixed.
func mustClauses(p model.Parameters) []Clause {
	filters := p.Filters.Clauses()
	clauses := make([]Clause, 0, len(filters)+1)
	for _, f := range filters {
		if f.Value == "" {
			clauses = append(clauses, Clause{MatchAll: &MatchAll{}})
			continue
		}
		clauses = append(clauses, Clause{
			MatchPhrase: map[string]MatchPhrase{
				f.Field.Keyword(): {Query: f.Value},
			},
		})
	}

	clauses = append(clauses, Clause{
		Range: map[string]RangeBounds{
			model.TimestampField: {
				Format: dateFormat,
				GTE:    p.TimeRange.Start.UTC().Format(timestampLayout),
				LTE:    p.TimeRange.End.UTC().Format(timestampLayout),
			},
		},
	})
	return clauses
}

package model

import "time"

// SecondarySize is the fixed number of secondary buckets requested per
// primary bucket.
const SecondarySize = 10

// Filters holds optional exact-match constraints. An empty string leaves the
// dimension unconstrained.
type Filters struct {
	DatabaseName string
	LoginName    string
	ServerName   string
	HostName     string
}

// FilterClause pairs a filterable field with its requested value.
type FilterClause struct {
	Field Field
	Value string
}

// Clauses returns one entry per filterable dimension in a fixed order,
// including unset ones.
func (f Filters) Clauses() []FilterClause {
	return []FilterClause{
		{Field: FieldDatabaseName, Value: f.DatabaseName},
		{Field: FieldLoginName, Value: f.LoginName},
		{Field: FieldServerName, Value: f.ServerName},
		{Field: FieldHostName, Value: f.HostName},
	}
}

// TimeRange bounds the report on the timestamp field. Both ends are
// inclusive.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Parameters are the user's choices for a single report run.
type Parameters struct {
	Metric         Metric
	PrimaryField   Field
	SecondaryField Field // empty when no secondary grouping was requested
	Filters        Filters
	TimeRange      TimeRange
	MaxResults     int
}

// HasSecondary reports whether a nested grouping was requested.
func (p Parameters) HasSecondary() bool {
	return p.SecondaryField != ""
}

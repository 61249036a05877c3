package model

import (
	"fmt"
	"strings"
)

// Field is a document field a report can group by.
type Field string

const (
	FieldQueryHash    Field = "QueryHash"
	FieldTextDataHash Field = "TextDataHash"
	FieldDatabaseName Field = "DatabaseName"
	FieldLoginName    Field = "LoginName"
	FieldServerName   Field = "ServerName"
	FieldHostName     Field = "HostName"
)

// Fields lists every grouping field in command-line order.
var Fields = []Field{
	FieldQueryHash,
	FieldTextDataHash,
	FieldDatabaseName,
	FieldLoginName,
	FieldServerName,
	FieldHostName,
}

// Document fields that are not grouping dimensions.
const (
	TextDataField  = "TextData"
	TimestampField = "@timestamp"
)

// IsHash reports whether f is a hash whose original query text has to be
// looked up from a sample document.
func (f Field) IsHash() bool {
	return f == FieldQueryHash || f == FieldTextDataHash
}

// Keyword returns the exact-match sub-field used for terms aggregations and
// phrase filters.
func (f Field) Keyword() string {
	return string(f) + ".keyword"
}

func (f Field) String() string {
	return string(f)
}

var fieldAliases = map[string]Field{
	"query":        FieldQueryHash,
	"queryhash":    FieldQueryHash,
	"textdata":     FieldTextDataHash,
	"textdatahash": FieldTextDataHash,
	"db":           FieldDatabaseName,
	"databasename": FieldDatabaseName,
	"login":        FieldLoginName,
	"loginname":    FieldLoginName,
	"server":       FieldServerName,
	"servername":   FieldServerName,
	"host":         FieldHostName,
	"hostname":     FieldHostName,
}

// ParseField accepts a canonical field name or its short alias,
// case-insensitively.
func ParseField(s string) (Field, error) {
	if f, ok := fieldAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	names := make([]string, len(Fields))
	for i, f := range Fields {
		names[i] = string(f)
	}
	return "", fmt.Errorf("invalid field %q (choose from %s)", s, strings.Join(names, ", "))
}

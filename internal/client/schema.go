package client

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// responseEnvelope is the minimum shape a search response must have to be
// turned into a report.
const responseEnvelope = `{
	"type": "object",
	"required": ["aggregations"],
	"properties": {
		"aggregations": {
			"type": "object",
			"required": ["_agg1"],
			"properties": {
				"_agg1": {
					"type": "object",
					"required": ["buckets"],
					"properties": {
						"buckets": {
							"type": "array",
							"items": {
								"type": "object",
								"required": ["key", "doc_count"],
								"properties": {
									"doc_count": {"type": "integer", "minimum": 0}
								}
							}
						}
					}
				}
			}
		}
	}
}`

var responseSchema = mustSchema(responseEnvelope)

func mustSchema(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("compile response schema: %v", err))
	}
	return schema
}

// validateEnvelope checks raw against responseEnvelope.
func validateEnvelope(raw []byte) error {
	result, err := responseSchema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrUnexpectedResponse, strings.Join(msgs, "; "))
}

// decodeSearchResponse validates and decodes a successful response body.
func decodeSearchResponse(raw []byte) (*SearchResponse, error) {
	if err := validateEnvelope(raw); err != nil {
		return nil, err
	}

	var result SearchResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

package io

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON []byte

var loadSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
})

// Schema returns the JSON schema figure documents are validated against.
func Schema() []byte {
	return schemaJSON
}

// validate checks a syntactically valid JSON document against the schema.
func validate(format string, data []byte) error {
	schema, err := loadSchema()
	if err != nil {
		return fmt.Errorf("load schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return newParseError(format, -1, err, "validate document")
	}
	if result.Valid() {
		return nil
	}

	errs := result.Errors()
	pe := newParseError(format, -1, nil, "%s", errs[0].Description())
	pe.Field = errs[0].Field()
	for _, e := range errs {
		pe.Problems = append(pe.Problems, e.String())
	}
	return pe
}

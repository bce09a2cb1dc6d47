package expect

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/abdul-hamid-achik/expect/packages/assertions"
	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"
)

// SchemaFile is a path to a JSON schema on disk, for ToMatchSchema.
type SchemaFile string

var bracketIndex = regexp.MustCompile(`\[(\d+)\]`)

// convertBracketNotation converts array bracket notation to gjson dot notation
// e.g., "[0].id" -> "0.id", "items[0].tags[1]" -> "items.0.tags.1"
func convertBracketNotation(path string) string {
	result := bracketIndex.ReplaceAllString(path, ".$1")
	return strings.TrimPrefix(result, ".")
}

// jsonValue decodes the value at path in doc. Numbers decode to float64,
// objects to map[string]any and arrays to []any. A missing path is nil.
func jsonValue(doc any, path string) (any, error) {
	var raw string
	switch d := doc.(type) {
	case string:
		raw = d
	case []byte:
		raw = string(d)
	case json.RawMessage:
		raw = string(d)
	default:
		return nil, fmt.Errorf("the document must be a string or []byte, got %T", doc)
	}

	if !gjson.Valid(raw) {
		return nil, fmt.Errorf("invalid JSON document")
	}
	if path == "" {
		return gjson.Parse(raw).Value(), nil
	}

	result := gjson.Get(raw, convertBracketNotation(path))
	if !result.Exists() {
		return nil, nil
	}
	return result.Value(), nil
}

// JSON wraps the value found at path in doc, a JSON document given as a
// string or []byte. path uses gjson syntax and accepts bracket indices such
// as "items[0].id"; an empty path selects the whole document. An invalid
// document is a usage error.
func JSON(doc any, path string) *Expectation {
	return jsonExpectation(doc, path, assertions.Panic, nil)
}

func jsonExpectation(doc any, path string, r assertions.Reporter, h tHelper) *Expectation {
	if h != nil {
		h.Helper()
	}
	value, err := jsonValue(doc, path)
	e := WithReporter(value, r)
	e.helper = h
	if err != nil {
		e.usage("JSON", err.Error())
	}
	return e
}

func schemaLoader(schema any) (gojsonschema.JSONLoader, error) {
	switch s := schema.(type) {
	case SchemaFile:
		data, err := os.ReadFile(string(s))
		if err != nil {
			return nil, fmt.Errorf("failed to read schema file: %w", err)
		}
		return gojsonschema.NewBytesLoader(data), nil
	case string:
		return gojsonschema.NewStringLoader(s), nil
	case []byte:
		return gojsonschema.NewBytesLoader(s), nil
	case json.RawMessage:
		return gojsonschema.NewBytesLoader(s), nil
	case nil:
		return nil, fmt.Errorf("the schema must not be nil")
	default:
		return gojsonschema.NewGoLoader(s), nil
	}
}

// ToMatchSchema asserts the subject, encoded as JSON, validates against
// schema. schema is JSON text (string or []byte), a SchemaFile, or a Go
// value such as map[string]any describing the schema.
func (e *Expectation) ToMatchSchema(schema any, msg ...Message) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	if len(msg) > 1 {
		return e.usage("ToMatchSchema", errTooManyMessages.Error())
	}

	loader, err := schemaLoader(schema)
	if err != nil {
		return e.usage("ToMatchSchema", err.Error())
	}

	actualJSON, err := json.Marshal(e.actual)
	if err != nil {
		return e.usage("ToMatchSchema", fmt.Sprintf("failed to marshal the subject: %v", err))
	}

	result, err := gojsonschema.Validate(loader, gojsonschema.NewBytesLoader(actualJSON))
	if err != nil {
		return e.usage("ToMatchSchema", fmt.Sprintf("schema validation error: %v", err))
	}
	if result.Valid() {
		return e
	}

	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	if len(msg) == 1 {
		return e.report(assertions.Assert(false, string(msg[0]), e.actual, schema))
	}
	return e.report(&assertions.Failure{
		Message: assertions.Format("Expected %s to match the schema: ", e.actual) + strings.Join(problems, "; "),
	})
}

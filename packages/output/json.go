package output

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/abdul-hamid-achik/expect/packages/assertions"
)

// JSONFailure represents a single failure or usage error
type JSONFailure struct {
	Message     string          `json:"message"`
	Usage       bool            `json:"usage,omitempty"`
	Method      string          `json:"method,omitempty"`
	DiffEnabled bool            `json:"diffEnabled,omitempty"`
	Actual      json.RawMessage `json:"actual,omitempty"`
	Expected    json.RawMessage `json:"expected,omitempty"`
	Diff        string          `json:"diff,omitempty"`
}

// JSONFormatter writes failures as JSON, one object per line
type JSONFormatter struct {
	writer io.Writer
	indent bool
}

type JSONOption func(*JSONFormatter)

func NewJSONFormatter(opts ...JSONOption) *JSONFormatter {
	f := &JSONFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func JSONWithWriter(w io.Writer) JSONOption {
	return func(f *JSONFormatter) {
		f.writer = w
	}
}

// JSONWithIndent pretty-prints each failure over several lines.
func JSONWithIndent(indent bool) JSONOption {
	return func(f *JSONFormatter) {
		f.indent = indent
	}
}

// NewJSONFailure converts err into its JSON representation.
func NewJSONFailure(err error) JSONFailure {
	out := JSONFailure{Message: err.Error()}

	var usage *assertions.UsageError
	if errors.As(err, &usage) {
		out.Usage = true
		out.Method = usage.Method
		out.Message = usage.Message
		return out
	}

	var failure *assertions.Failure
	if errors.As(err, &failure) && failure.DiffEnabled {
		out.DiffEnabled = true
		out.Actual = encodeValue(failure.Actual)
		out.Expected = encodeValue(failure.Expected)
		out.Diff = failure.Diff()
	}
	return out
}

// encodeValue marshals v, falling back to its inspected form for values
// encoding/json rejects (funcs, channels, NaN, cyclic data).
func encodeValue(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		data, _ = json.Marshal(assertions.Inspect(v))
	}
	return data
}

// FormatFailure encodes err to the formatter's writer.
func (f *JSONFormatter) FormatFailure(err error) error {
	if err == nil {
		return nil
	}
	encoder := json.NewEncoder(f.writer)
	if f.indent {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(NewJSONFailure(err))
}

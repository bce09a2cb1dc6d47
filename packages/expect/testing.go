package expect

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/abdul-hamid-achik/expect/packages/core/config"
	"github.com/abdul-hamid-achik/expect/packages/output"
)

// loadConfig reads the config file found from the working directory once
// per test binary.
var loadConfig = sync.OnceValues(func() (*config.Config, error) {
	return config.LoadConfig("")
})

// Option configures an Expecter.
type Option func(*settings)

type settings struct {
	config   *config.Config
	writer   io.Writer
	json     io.Writer
	nonFatal bool
}

// WithConfig uses cfg as is instead of the config file and environment.
func WithConfig(cfg *config.Config) Option {
	return func(s *settings) {
		s.config = cfg
	}
}

// WithWriter also writes every rendered failure to w.
func WithWriter(w io.Writer) Option {
	return func(s *settings) {
		s.writer = w
	}
}

// WithJSONOutput writes every failure to w as a line of JSON.
func WithJSONOutput(w io.Writer) Option {
	return func(s *settings) {
		s.json = w
	}
}

// NonFatal reports failures with Error so the test keeps running.
func NonFatal() Option {
	return func(s *settings) {
		s.nonFatal = true
	}
}

// Expecter creates expectations that report to a test.
type Expecter struct {
	tb       testing.TB
	reporter *tbReporter
}

// In returns an Expecter whose expectations report failures to tb.
func In(tb testing.TB, opts ...Option) *Expecter {
	tb.Helper()

	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}

	cfg := s.config
	if cfg == nil {
		loaded, err := loadConfig()
		if err != nil {
			tb.Logf("expect: %v, using defaults", err)
			loaded = config.DefaultConfig()
		}
		cfg = loaded.ApplyEnv(os.LookupEnv)
	}

	r := &tbReporter{
		tb:       tb,
		nonFatal: s.nonFatal,
		writer:   s.writer,
		console: output.NewConsoleFormatter(
			output.WithNoColor(cfg.GetNoColor()),
			output.WithVerbose(cfg.GetVerbose()),
			output.WithMaxValueLength(cfg.MaxValueLength),
			output.WithDiffContext(cfg.DiffContext),
		),
	}
	if s.json != nil {
		r.json = output.NewJSONFormatter(output.JSONWithWriter(s.json))
	}
	return &Expecter{tb: tb, reporter: r}
}

// Expect wraps value.
func (x *Expecter) Expect(value any) *Expectation {
	e := WithReporter(value, x.reporter)
	e.helper = x.tb
	return e
}

// JSON wraps the value at path in doc, like the package level JSON.
func (x *Expecter) JSON(doc any, path string) *Expectation {
	x.tb.Helper()
	return jsonExpectation(doc, path, x.reporter, x.tb)
}

// tbReporter renders failures and hands them to a testing.TB.
type tbReporter struct {
	tb       testing.TB
	console  *output.ConsoleFormatter
	json     *output.JSONFormatter
	writer   io.Writer
	nonFatal bool
}

func (r *tbReporter) Report(err error) {
	r.tb.Helper()

	text := strings.TrimRight(r.console.Render(err), "\n")
	if r.writer != nil {
		fmt.Fprintln(r.writer, text)
	}
	if r.json != nil {
		if jerr := r.json.FormatFailure(err); jerr != nil {
			r.tb.Logf("expect: writing JSON output: %v", jerr)
		}
	}

	if r.nonFatal {
		r.tb.Error(text)
		return
	}
	r.tb.Fatal(text)
}

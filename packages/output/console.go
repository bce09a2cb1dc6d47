package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/abdul-hamid-achik/expect/packages/assertions"
	"github.com/fatih/color"
)

const defaultMaxValueLength = 200

// formatValue formats a value for display, truncating or summarizing large values
func formatValue(v any, maxLen int) string {
	switch val := v.(type) {
	case []any:
		return fmt.Sprintf("[array with %d items]", len(val))
	case map[string]any:
		return fmt.Sprintf("{object with %d keys}", len(val))
	}
	str := assertions.Inspect(v)
	if maxLen > 0 && utf8.RuneCountInString(str) > maxLen {
		return string([]rune(str)[:maxLen]) + "..."
	}
	return str
}

type ConsoleFormatter struct {
	writer         io.Writer
	verbose        bool
	noColor        bool
	maxValueLength int
	diffContext    int
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer:         os.Stdout,
		maxValueLength: defaultMaxValueLength,
		diffContext:    assertions.DefaultDiffContext,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

func WithVerbose(v bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.verbose = v
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

// WithMaxValueLength sets how many characters of a value are shown before it
// is truncated. Zero or less shows values in full.
func WithMaxValueLength(n int) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.maxValueLength = n
	}
}

// WithDiffContext sets how many unchanged lines surround each diff hunk.
func WithDiffContext(n int) ConsoleOption {
	return func(f *ConsoleFormatter) {
		if n >= 0 {
			f.diffContext = n
		}
	}
}

// newColor builds a color honoring the formatter's noColor setting without
// touching the package-wide color.NoColor.
func (f *ConsoleFormatter) newColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if f.noColor {
		c.DisableColor()
	}
	return c
}

// Render returns the text FormatFailure writes for err.
func (f *ConsoleFormatter) Render(err error) string {
	if err == nil {
		return ""
	}

	red := f.newColor(color.FgRed).SprintFunc()
	green := f.newColor(color.FgGreen).SprintFunc()
	yellow := f.newColor(color.FgYellow).SprintFunc()
	cyan := f.newColor(color.FgCyan).SprintFunc()
	bold := f.newColor(color.Bold).SprintFunc()

	var b strings.Builder

	var usage *assertions.UsageError
	if errors.As(err, &usage) {
		fmt.Fprintf(&b, "%s %s\n", yellow("Usage error:"), usage.Error())
		return b.String()
	}

	fmt.Fprintf(&b, "%s\n", red(err.Error()))

	var failure *assertions.Failure
	if !errors.As(err, &failure) || !failure.DiffEnabled {
		return b.String()
	}

	fmt.Fprintf(&b, "  Expected: %s\n", formatValue(failure.Expected, f.maxValueLength))
	fmt.Fprintf(&b, "  Actual:   %s\n", formatValue(failure.Actual, f.maxValueLength))

	if diff := assertions.DiffContext(failure.Actual, failure.Expected, f.diffContext); diff != "" {
		fmt.Fprintf(&b, "\n%s\n", bold("Diff (-expected +actual):"))
		for _, line := range strings.Split(diff, "\n") {
			switch {
			case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
				fmt.Fprintf(&b, "  %s\n", bold(line))
			case strings.HasPrefix(line, "@@"):
				fmt.Fprintf(&b, "  %s\n", cyan(line))
			case strings.HasPrefix(line, "-"):
				fmt.Fprintf(&b, "  %s\n", red(line))
			case strings.HasPrefix(line, "+"):
				fmt.Fprintf(&b, "  %s\n", green(line))
			default:
				fmt.Fprintf(&b, "  %s\n", line)
			}
		}
	}

	if f.verbose {
		fmt.Fprintf(&b, "\n%s\n%s\n", bold("Expected (full):"), assertions.Dump(failure.Expected))
		fmt.Fprintf(&b, "%s\n%s\n", bold("Actual (full):"), assertions.Dump(failure.Actual))
	}

	return b.String()
}

// FormatFailure writes the rendered failure to the formatter's writer.
func (f *ConsoleFormatter) FormatFailure(err error) {
	if err == nil {
		return
	}
	fmt.Fprint(f.writer, f.Render(err))
}

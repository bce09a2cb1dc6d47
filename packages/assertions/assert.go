package assertions

import "strings"

// Placeholder is substituted in message templates, once per value.
const Placeholder = "%s"

// Assert returns nil when cond holds, and otherwise a *Failure whose message
// is template rendered with values.
func Assert(cond bool, template string, values ...any) error {
	if cond {
		return nil
	}
	return &Failure{Message: Format(template, values...)}
}

// AssertEqual is Assert for equality checks. The template receives actual and
// expected, and the failure carries both for diffing.
func AssertEqual(cond bool, template string, actual, expected any) error {
	if cond {
		return nil
	}
	return &Failure{
		Message:     Format(template, actual, expected),
		DiffEnabled: true,
		Actual:      actual,
		Expected:    expected,
	}
}

// Usage returns a *UsageError for method with a rendered message.
func Usage(method, template string, values ...any) error {
	return &UsageError{Method: method, Message: Format(template, values...)}
}

// Format substitutes each %s in template with the next value rendered by
// Inspect. Surplus values are ignored and placeholders without a value are
// left as they are.
func Format(template string, values ...any) string {
	var b strings.Builder
	rest := template
	for _, v := range values {
		i := strings.Index(rest, Placeholder)
		if i < 0 {
			break
		}
		b.WriteString(rest[:i])
		b.WriteString(Inspect(v))
		rest = rest[i+len(Placeholder):]
	}
	b.WriteString(rest)
	return b.String()
}

package expect

import (
	"github.com/abdul-hamid-achik/expect/packages/assertions"
	"github.com/abdul-hamid-achik/expect/packages/values"
)

// compare orders the subject against value. Both must be numbers. ok is
// false after a usage error; ordered is false when either side is NaN.
func (e *Expectation) compare(method string, value any) (c int, ordered, ok bool) {
	if e.helper != nil {
		e.helper.Helper()
	}
	if !values.IsNumber(e.actual) {
		e.usage(method, "the subject must be a number, got %s", e.actual)
		return 0, false, false
	}
	if !values.IsNumber(value) {
		e.usage(method, "the argument must be a number, got %s", value)
		return 0, false, false
	}
	c, ordered = values.CompareNumbers(e.actual, value)
	return c, ordered, true
}

func (e *Expectation) ToBeLessThan(value any, msg ...Message) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	tmpl, ok := e.template("ToBeLessThan", msg, "Expected %s to be less than %s")
	if !ok {
		return e
	}
	c, ordered, ok := e.compare("ToBeLessThan", value)
	if !ok {
		return e
	}
	return e.report(assertions.Assert(ordered && c < 0, tmpl, e.actual, value))
}

func (e *Expectation) ToBeLessThanOrEqualTo(value any, msg ...Message) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	tmpl, ok := e.template("ToBeLessThanOrEqualTo", msg, "Expected %s to be less than or equal to %s")
	if !ok {
		return e
	}
	c, ordered, ok := e.compare("ToBeLessThanOrEqualTo", value)
	if !ok {
		return e
	}
	return e.report(assertions.Assert(ordered && c <= 0, tmpl, e.actual, value))
}

func (e *Expectation) ToBeGreaterThan(value any, msg ...Message) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	tmpl, ok := e.template("ToBeGreaterThan", msg, "Expected %s to be greater than %s")
	if !ok {
		return e
	}
	c, ordered, ok := e.compare("ToBeGreaterThan", value)
	if !ok {
		return e
	}
	return e.report(assertions.Assert(ordered && c > 0, tmpl, e.actual, value))
}

func (e *Expectation) ToBeGreaterThanOrEqualTo(value any, msg ...Message) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	tmpl, ok := e.template("ToBeGreaterThanOrEqualTo", msg, "Expected %s to be greater than or equal to %s")
	if !ok {
		return e
	}
	c, ordered, ok := e.compare("ToBeGreaterThanOrEqualTo", value)
	if !ok {
		return e
	}
	return e.report(assertions.Assert(ordered && c >= 0, tmpl, e.actual, value))
}

package expect

import (
	"reflect"
	"regexp"

	"github.com/abdul-hamid-achik/expect/packages/assertions"
	"github.com/abdul-hamid-achik/expect/packages/equal"
	"github.com/abdul-hamid-achik/expect/packages/values"
)

type tHelper interface {
	Helper()
}

// invocation is how a callable subject is called by ToThrow and ToNotThrow.
type invocation struct {
	binding any
	args    []any
}

// Expectation wraps a subject. Predicates return the expectation so they
// can be chained.
type Expectation struct {
	actual     any
	invocation *invocation
	reporter   assertions.Reporter
	helper     tHelper
}

// Expect wraps value. Failures and usage errors panic.
func Expect(value any) *Expectation {
	return WithReporter(value, assertions.Panic)
}

// WithReporter wraps value and sends failures and usage errors to r.
func WithReporter(value any, r assertions.Reporter) *Expectation {
	if r == nil {
		r = assertions.Panic
	}
	e := &Expectation{actual: value, reporter: r}
	if values.IsFunction(value) {
		e.invocation = &invocation{}
	}
	return e
}

// TypeOf returns the reflect.Type of T, for ToBeA and ToThrow. Interface
// types are kept as interfaces.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Actual returns the subject.
func (e *Expectation) Actual() any {
	return e.actual
}

func (e *Expectation) report(err error) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	if err != nil {
		e.reporter.Report(err)
	}
	return e
}

func (e *Expectation) usage(method, template string, vals ...any) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	return e.report(assertions.Usage(method, template, vals...))
}

// template resolves the message of a predicate, reporting a usage error
// when more than one is given.
func (e *Expectation) template(method string, msg []Message, def string) (string, bool) {
	if e.helper != nil {
		e.helper.Helper()
	}
	tmpl, err := messageOrDefault(msg, def)
	if err != nil {
		e.usage(method, err.Error())
		return "", false
	}
	return tmpl, true
}

// WithContext sets the receiver the subject is called with. The receiver
// is passed as the first argument, so method expressions such as
// (*bytes.Buffer).WriteString take it as their receiver. A nil ctx clears
// it.
func (e *Expectation) WithContext(ctx any) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	if e.invocation == nil {
		return e.usage("WithContext", "the subject must be a function, got %s", e.actual)
	}
	e.invocation.binding = ctx
	return e
}

// WithArgs appends args to the arguments the subject is called with.
func (e *Expectation) WithArgs(args ...any) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	if e.invocation == nil {
		return e.usage("WithArgs", "the subject must be a function, got %s", e.actual)
	}
	if len(args) > 0 {
		e.invocation.args = append(e.invocation.args, args...)
	}
	return e
}

// ToExist asserts the subject is truthy: not nil, false, zero, NaN or "".
func (e *Expectation) ToExist(msg ...Message) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	tmpl, ok := e.template("ToExist", msg, "Expected %s to exist")
	if !ok {
		return e
	}
	return e.report(assertions.Assert(values.Truthy(e.actual), tmpl, e.actual))
}

// ToNotExist asserts the subject is falsy.
func (e *Expectation) ToNotExist(msg ...Message) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	tmpl, ok := e.template("ToNotExist", msg, "Expected %s to not exist")
	if !ok {
		return e
	}
	return e.report(assertions.Assert(!values.Truthy(e.actual), tmpl, e.actual))
}

// ToBe asserts the subject is identical to value, without coercion.
func (e *Expectation) ToBe(value any, msg ...Message) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	tmpl, ok := e.template("ToBe", msg, "Expected %s to be %s")
	if !ok {
		return e
	}
	return e.report(assertions.Assert(equal.Identical(e.actual, value), tmpl, e.actual, value))
}

func (e *Expectation) ToNotBe(value any, msg ...Message) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	tmpl, ok := e.template("ToNotBe", msg, "Expected %s to not be %s")
	if !ok {
		return e
	}
	return e.report(assertions.Assert(!equal.Identical(e.actual, value), tmpl, e.actual, value))
}

// ToEqual asserts the subject deep-equals value. The failure carries both
// values for diffing.
func (e *Expectation) ToEqual(value any, msg ...Message) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	tmpl, ok := e.template("ToEqual", msg, "Expected %s to equal %s")
	if !ok {
		return e
	}
	return e.report(assertions.AssertEqual(equal.Equal(e.actual, value), tmpl, e.actual, value))
}

func (e *Expectation) ToNotEqual(value any, msg ...Message) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	tmpl, ok := e.template("ToNotEqual", msg, "Expected %s to not equal %s")
	if !ok {
		return e
	}
	return e.report(assertions.Assert(!equal.Equal(e.actual, value), tmpl, e.actual, value))
}

// isA validates the type argument of ToBeA and ToNotBeA and checks the
// subject against it.
func (e *Expectation) isA(method string, typeOrName any) (result, ok bool) {
	if e.helper != nil {
		e.helper.Helper()
	}
	valid := false
	switch t := typeOrName.(type) {
	case string:
		valid = true
	case reflect.Type:
		valid = t != nil
	}
	if !valid {
		e.usage(method, "the type must be a reflect.Type or a type name, got %s", typeOrName)
		return false, false
	}
	result, err := values.IsA(e.actual, typeOrName)
	if err != nil {
		e.usage(method, "unknown type name %s", typeOrName)
		return false, false
	}
	return result, true
}

// ToBeA asserts the subject is of a type. typeOrName is a reflect.Type
// (see TypeOf), or one of "string", "number", "boolean", "function",
// "object", "array" and "undefined".
func (e *Expectation) ToBeA(typeOrName any, msg ...Message) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	tmpl, ok := e.template("ToBeA", msg, "Expected %s to be a %s")
	if !ok {
		return e
	}
	result, ok := e.isA("ToBeA", typeOrName)
	if !ok {
		return e
	}
	return e.report(assertions.Assert(result, tmpl, e.actual, typeOrName))
}

func (e *Expectation) ToNotBeA(typeOrName any, msg ...Message) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	tmpl, ok := e.template("ToNotBeA", msg, "Expected %s to not be a %s")
	if !ok {
		return e
	}
	result, ok := e.isA("ToNotBeA", typeOrName)
	if !ok {
		return e
	}
	return e.report(assertions.Assert(!result, tmpl, e.actual, typeOrName))
}

// match validates the subject and pattern of ToMatch and ToNotMatch.
func (e *Expectation) match(method string, pattern *regexp.Regexp) (result, ok bool) {
	if e.helper != nil {
		e.helper.Helper()
	}
	if !values.IsString(e.actual) {
		e.usage(method, "the subject must be a string, got %s", e.actual)
		return false, false
	}
	if pattern == nil {
		e.usage(method, "the pattern must be a *regexp.Regexp, got nil")
		return false, false
	}
	return pattern.MatchString(values.Stringify(e.actual)), true
}

// ToMatch asserts the subject, a string, matches pattern.
func (e *Expectation) ToMatch(pattern *regexp.Regexp, msg ...Message) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	tmpl, ok := e.template("ToMatch", msg, "Expected %s to match %s")
	if !ok {
		return e
	}
	result, ok := e.match("ToMatch", pattern)
	if !ok {
		return e
	}
	return e.report(assertions.Assert(result, tmpl, e.actual, pattern))
}

func (e *Expectation) ToNotMatch(pattern *regexp.Regexp, msg ...Message) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	tmpl, ok := e.template("ToNotMatch", msg, "Expected %s to not match %s")
	if !ok {
		return e
	}
	result, ok := e.match("ToNotMatch", pattern)
	if !ok {
		return e
	}
	return e.report(assertions.Assert(!result, tmpl, e.actual, pattern))
}

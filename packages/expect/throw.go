package expect

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/abdul-hamid-achik/expect/packages/assertions"
	"github.com/abdul-hamid-achik/expect/packages/values"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// throwMatcher decides whether a thrown value is the one a throw predicate
// expects. A nil match accepts anything.
type throwMatcher struct {
	expected any
	match    func(thrown any) bool
}

// resolveThrowArgs splits the arguments of ToThrow and ToNotThrow into at
// most one matcher and at most one Message.
func resolveThrowArgs(args []any) (throwMatcher, []Message, error) {
	var (
		m        throwMatcher
		msg      []Message
		matchers int
	)
	for _, arg := range args {
		if message, ok := arg.(Message); ok {
			if len(msg) > 0 {
				return m, nil, errTooManyMessages
			}
			msg = append(msg, message)
			continue
		}

		matchers++
		if matchers > 1 {
			return m, nil, errors.New("at most one expected error may be given")
		}
		m.expected = arg

		switch expected := arg.(type) {
		case string:
			m.match = func(thrown any) bool {
				return strings.Contains(thrownMessage(thrown), expected)
			}
		case *regexp.Regexp:
			if expected == nil {
				return m, nil, errors.New("the pattern must not be nil")
			}
			m.match = func(thrown any) bool {
				return expected.MatchString(thrownMessage(thrown))
			}
		case reflect.Type:
			if expected == nil {
				return m, nil, errors.New("the type must not be nil")
			}
			m.match = func(thrown any) bool {
				return isInstance(thrown, expected)
			}
		case error:
			m.match = func(thrown any) bool {
				err, ok := thrown.(error)
				return ok && errors.Is(err, expected)
			}
		default:
			return m, nil, fmt.Errorf("the expected error must be a string, *regexp.Regexp, reflect.Type or error, got %T", arg)
		}
	}
	return m, msg, nil
}

func (m throwMatcher) matches(thrown any) bool {
	return m.match == nil || m.match(thrown)
}

// thrownMessage is the message of a thrown value: the error text for
// errors, fmt.Sprint otherwise.
func thrownMessage(thrown any) string {
	if err, ok := thrown.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(thrown)
}

// isInstance reports whether thrown is assignable to t or, for errors, has
// an error assignable to t in its chain.
func isInstance(thrown any, t reflect.Type) bool {
	if thrown == nil {
		return false
	}
	if reflect.TypeOf(thrown).AssignableTo(t) {
		return true
	}
	err, ok := thrown.(error)
	if !ok || (t.Kind() != reflect.Interface && !t.Implements(errorType)) {
		return false
	}
	target := reflect.New(t)
	return errors.As(err, target.Interface())
}

// prepareCall resolves the function and arguments the subject is called
// with. Any problem here is a usage error, never a throw.
func (e *Expectation) prepareCall(method string) (reflect.Value, []reflect.Value, bool) {
	if e.helper != nil {
		e.helper.Helper()
	}
	fn, ok := values.FuncValue(e.actual)
	if !ok || e.invocation == nil {
		e.usage(method, "the subject must be a function, got %s", e.actual)
		return reflect.Value{}, nil, false
	}

	args := e.invocation.args
	if e.invocation.binding != nil {
		args = append([]any{e.invocation.binding}, args...)
	}
	in, err := values.PrepareArgs(fn.Type(), args)
	if err != nil {
		e.usage(method, "cannot call the subject: "+err.Error())
		return reflect.Value{}, nil, false
	}
	return fn, in, true
}

// capture calls fn once. It throws when it panics or returns a non-nil
// error as its last result.
func capture(fn reflect.Value, in []reflect.Value) (thrown any, threw bool) {
	defer func() {
		if r := recover(); r != nil {
			thrown, threw = r, true
		}
	}()

	if err := values.ReturnedError(fn.Call(in)); err != nil {
		return err, true
	}
	return nil, false
}

// ToThrow asserts that calling the subject throws. expected optionally
// holds one matcher and one Message:
//   - string: the thrown message contains it
//   - *regexp.Regexp: the thrown message matches it
//   - reflect.Type: the thrown value is of that type, or wraps an error
//     of that type
//   - error: the thrown error is it or wraps it
func (e *Expectation) ToThrow(expected ...any) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	m, msg, err := resolveThrowArgs(expected)
	if err != nil {
		return e.usage("ToThrow", err.Error())
	}
	fn, in, ok := e.prepareCall("ToThrow")
	if !ok {
		return e
	}

	thrown, threw := capture(fn, in)
	passed := threw && m.matches(thrown)

	var def string
	switch {
	case m.match == nil:
		def = "Expected %s to throw an error"
	case threw:
		def = "Expected %s to throw %s, but it threw %s"
	default:
		def = "Expected %s to throw %s"
	}
	tmpl, _ := messageOrDefault(msg, def)
	if m.match == nil {
		return e.report(assertions.Assert(passed, tmpl, e.actual))
	}
	return e.report(assertions.Assert(passed, tmpl, e.actual, m.expected, thrown))
}

// ToNotThrow asserts that calling the subject does not throw, or with a
// matcher, does not throw what the matcher accepts.
func (e *Expectation) ToNotThrow(expected ...any) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	m, msg, err := resolveThrowArgs(expected)
	if err != nil {
		return e.usage("ToNotThrow", err.Error())
	}
	fn, in, ok := e.prepareCall("ToNotThrow")
	if !ok {
		return e
	}

	thrown, threw := capture(fn, in)
	passed := !(threw && m.matches(thrown))

	if m.match == nil {
		tmpl, _ := messageOrDefault(msg, "Expected %s to not throw an error, but it threw %s")
		return e.report(assertions.Assert(passed, tmpl, e.actual, thrown))
	}
	tmpl, _ := messageOrDefault(msg, "Expected %s to not throw %s, but it threw %s")
	return e.report(assertions.Assert(passed, tmpl, e.actual, m.expected, thrown))
}

package expect

import (
	"github.com/abdul-hamid-achik/expect/packages/assertions"
	"github.com/abdul-hamid-achik/expect/packages/equal"
	"github.com/abdul-hamid-achik/expect/packages/spy"
)

// calls returns the calls recorded by the subject, which must be a spy.
func (e *Expectation) calls(method string) ([]spy.Call, bool) {
	if e.helper != nil {
		e.helper.Helper()
	}
	if !spy.IsSpy(e.actual) {
		e.usage(method, "the subject must be a spy, got %s", e.actual)
		return nil, false
	}
	return e.actual.(spy.Recorder).Calls(), true
}

// ToHaveBeenCalled asserts the subject, a spy, was called at least once.
func (e *Expectation) ToHaveBeenCalled(msg ...Message) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	tmpl, ok := e.template("ToHaveBeenCalled", msg, "Expected %s to have been called")
	if !ok {
		return e
	}
	calls, ok := e.calls("ToHaveBeenCalled")
	if !ok {
		return e
	}
	return e.report(assertions.Assert(len(calls) > 0, tmpl, e.actual))
}

func (e *Expectation) ToNotHaveBeenCalled(msg ...Message) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	tmpl, ok := e.template("ToNotHaveBeenCalled", msg, "Expected %s to not have been called")
	if !ok {
		return e
	}
	calls, ok := e.calls("ToNotHaveBeenCalled")
	if !ok {
		return e
	}
	return e.report(assertions.Assert(len(calls) == 0, tmpl, e.actual))
}

// ToHaveBeenCalledWith asserts some recorded call received exactly args.
func (e *Expectation) ToHaveBeenCalledWith(args ...any) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	calls, ok := e.calls("ToHaveBeenCalledWith")
	if !ok {
		return e
	}
	if args == nil {
		args = []any{}
	}
	found := false
	for _, call := range calls {
		if equal.Equal(call.Arguments, args) {
			found = true
			break
		}
	}
	return e.report(assertions.Assert(found, "Expected %s to have been called with %s", e.actual, args))
}

// Package expect provides fluent assertions for Go tests.
//
// An expectation wraps one observed value (the subject) and exposes
// chainable predicates. Each predicate either returns the expectation so
// further predicates can follow, or reports an error:
//   - a *assertions.Failure when the check is false
//   - a *assertions.UsageError when the predicate is called with arguments
//     it cannot work with, whatever the outcome of the check would be
//
// Expect reports by panicking. In reports through a testing.TB and renders
// failures with a colored diff:
//
//	func TestTotals(t *testing.T) {
//		x := expect.In(t)
//		x.Expect(total).ToEqual(42)
//		x.Expect(items).ToInclude("apple").ToExclude("pear")
//		x.Expect(parse).WithArgs("{").ToThrow(regexp.MustCompile(`unexpected end`))
//	}
//
// Functions are callable subjects. ToThrow and ToNotThrow call them once
// with the arguments given through WithArgs; a call throws when it panics
// or when its last result is a non-nil error.
package expect

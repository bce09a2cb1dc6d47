package assertions

import "errors"

var (
	// ErrAssertionFailed is the sentinel wrapped by every *Failure.
	ErrAssertionFailed = errors.New("assertion failed")

	// ErrUsage is the sentinel wrapped by every *UsageError.
	ErrUsage = errors.New("invalid use of expect")
)

// Failure is raised when the check a predicate performs evaluates false.
//
// Only equality mismatches set DiffEnabled; Actual and Expected then hold the
// raw values so callers can render a structural diff.
type Failure struct {
	Message     string
	DiffEnabled bool
	Actual      any
	Expected    any
}

func (f *Failure) Error() string {
	if f == nil {
		return ErrAssertionFailed.Error()
	}
	return f.Message
}

func (f *Failure) Unwrap() error {
	return ErrAssertionFailed
}

// Diff renders the difference between Actual and Expected, or returns an
// empty string when the failure carries no diff.
func (f *Failure) Diff() string {
	if f == nil || !f.DiffEnabled {
		return ""
	}
	return Diff(f.Actual, f.Expected)
}

// UsageError is raised when a predicate's own argument contract is violated,
// independently of whether the check would pass.
type UsageError struct {
	Method  string
	Message string
}

func (e *UsageError) Error() string {
	if e == nil {
		return ErrUsage.Error()
	}
	if e.Method == "" {
		return e.Message
	}
	return e.Method + ": " + e.Message
}

func (e *UsageError) Unwrap() error {
	return ErrUsage
}

// IsFailure reports whether err is an assertion failure.
func IsFailure(err error) bool {
	return errors.Is(err, ErrAssertionFailed)
}

// IsUsage reports whether err is a usage error.
func IsUsage(err error) bool {
	return errors.Is(err, ErrUsage)
}

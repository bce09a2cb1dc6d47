package expect

import (
	"github.com/abdul-hamid-achik/expect/packages/assertions"
	"github.com/abdul-hamid-achik/expect/packages/values"
)

// contains computes whether the subject contains value. ok is false after a
// usage error.
func (e *Expectation) contains(method string, value any, opts []ContainOption) (found bool, resolved containOptions, ok bool) {
	if e.helper != nil {
		e.helper.Helper()
	}
	resolved, err := resolveContainOptions(opts)
	if err != nil {
		e.usage(method, err.Error())
		return false, resolved, false
	}

	switch values.KindOf(e.actual) {
	case values.KindArray:
		found = values.ArrayContains(e.actual, value, resolved.compare)
	case values.KindObject:
		found = values.ObjectContains(e.actual, value, resolved.compare)
	case values.KindString:
		found = values.StringContains(values.Stringify(e.actual), value)
	default:
		e.usage(method, "the subject must be an array, object or string, got %s", e.actual)
		return false, resolved, false
	}
	return found, resolved, true
}

// ToInclude asserts the subject contains value.
//
// An array contains value when one of its elements compares equal to it, or
// when value is an array whose elements are all contained. An object
// contains value when value is an object whose entries all appear in the
// subject. A string contains the string form of value.
func (e *Expectation) ToInclude(value any, opts ...ContainOption) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	found, resolved, ok := e.contains("ToInclude", value, opts)
	if !ok {
		return e
	}
	return e.report(assertions.Assert(found, resolved.template("Expected %s to include %s"), e.actual, value))
}

// ToExclude asserts the subject does not contain value, in the sense of
// ToInclude.
func (e *Expectation) ToExclude(value any, opts ...ContainOption) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	found, resolved, ok := e.contains("ToExclude", value, opts)
	if !ok {
		return e
	}
	return e.report(assertions.Assert(!found, resolved.template("Expected %s to exclude %s"), e.actual, value))
}

// hasKeys reports whether the subject, which must be an object, has every
// key in keys.
func (e *Expectation) hasKeys(method string, keys []any, opts []ContainOption) (all bool, resolved containOptions, ok bool) {
	if e.helper != nil {
		e.helper.Helper()
	}
	resolved, err := resolveContainOptions(opts)
	if err != nil {
		e.usage(method, err.Error())
		return false, resolved, false
	}
	if !values.IsObject(e.actual) {
		e.usage(method, "the subject must be an object, got %s", e.actual)
		return false, resolved, false
	}
	for _, key := range keys {
		if !values.HasKey(e.actual, key, resolved.compare) {
			return false, resolved, true
		}
	}
	return true, resolved, true
}

// keyList validates the keys argument of ToIncludeKeys and ToExcludeKeys.
func (e *Expectation) keyList(method string, keys any) ([]any, bool) {
	if e.helper != nil {
		e.helper.Helper()
	}
	if !values.IsArray(keys) {
		e.usage(method, "the keys must be an array, got %s", keys)
		return nil, false
	}
	return values.Elements(keys), true
}

// ToIncludeKey asserts the subject, a map or struct, has key. Struct keys
// are exported field names.
func (e *Expectation) ToIncludeKey(key any, opts ...ContainOption) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	found, resolved, ok := e.hasKeys("ToIncludeKey", []any{key}, opts)
	if !ok {
		return e
	}
	return e.report(assertions.Assert(found, resolved.template("Expected %s to include key %s"), e.actual, key))
}

func (e *Expectation) ToExcludeKey(key any, opts ...ContainOption) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	found, resolved, ok := e.hasKeys("ToExcludeKey", []any{key}, opts)
	if !ok {
		return e
	}
	return e.report(assertions.Assert(!found, resolved.template("Expected %s to exclude key %s"), e.actual, key))
}

// ToIncludeKeys asserts the subject has every key in keys, a slice or array.
func (e *Expectation) ToIncludeKeys(keys any, opts ...ContainOption) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	list, ok := e.keyList("ToIncludeKeys", keys)
	if !ok {
		return e
	}
	all, resolved, ok := e.hasKeys("ToIncludeKeys", list, opts)
	if !ok {
		return e
	}
	return e.report(assertions.Assert(all, resolved.template("Expected %s to include keys %s"), e.actual, keys))
}

// ToExcludeKeys asserts the subject is missing at least one key in keys.
func (e *Expectation) ToExcludeKeys(keys any, opts ...ContainOption) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	list, ok := e.keyList("ToExcludeKeys", keys)
	if !ok {
		return e
	}
	all, resolved, ok := e.hasKeys("ToExcludeKeys", list, opts)
	if !ok {
		return e
	}
	return e.report(assertions.Assert(!all, resolved.template("Expected %s to exclude keys %s"), e.actual, keys))
}

package values

import (
	"fmt"
	"reflect"
	"strings"
)

// CompareFunc reports whether two values should be treated as the same.
type CompareFunc func(a, b any) bool

// Entry is one key/value pair of an object.
type Entry struct {
	Key   any
	Value any
}

// Elements returns the elements of an array value, or nil when v is not an
// array.
func Elements(v any) []any {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// Entries returns the key/value pairs of an object. Maps yield their
// entries, structs and pointers to structs yield their exported fields keyed
// by field name. Anything else has no entries.
func Entries(v any) []Entry {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		out := make([]Entry, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out = append(out, Entry{Key: iter.Key().Interface(), Value: iter.Value().Interface()})
		}
		return out
	case reflect.Struct:
		t := rv.Type()
		out := make([]Entry, 0, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			out = append(out, Entry{Key: field.Name, Value: rv.Field(i).Interface()})
		}
		return out
	}
	return nil
}

// SameKey compares object keys: numbers by value across kinds, strings by
// content, everything else with ==.
func SameKey(a, b any) bool {
	if c, ok := CompareNumbers(a, b); ok {
		return c == 0
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Kind() == reflect.String && rb.Kind() == reflect.String {
		return ra.String() == rb.String()
	}
	if !ra.IsValid() || !rb.IsValid() {
		return !ra.IsValid() && !rb.IsValid()
	}
	if ra.Type() != rb.Type() || !ra.Type().Comparable() {
		return false
	}
	return ra.Interface() == rb.Interface()
}

// ArrayContains reports whether some element of array compares equal to
// value. When value is itself an array and is not found as a single element,
// every one of its elements must be found instead; an empty value list is
// trivially contained.
func ArrayContains(array any, value any, compare CompareFunc) bool {
	items := Elements(array)
	if containsItem(items, value, compare) {
		return true
	}
	if !IsArray(value) {
		return false
	}
	for _, want := range Elements(value) {
		if !containsItem(items, want, compare) {
			return false
		}
	}
	return true
}

func containsItem(items []any, value any, compare CompareFunc) bool {
	for _, item := range items {
		if compare(item, value) {
			return true
		}
	}
	return false
}

// ObjectContains reports whether every entry of value exists in object with
// a compare-equal value. A value that is not an object never matches.
func ObjectContains(object any, value any, compare CompareFunc) bool {
	if !IsObject(value) {
		return false
	}
	have := Entries(object)
	for _, want := range Entries(value) {
		found := false
		for _, entry := range have {
			if SameKey(entry.Key, want.Key) && compare(entry.Value, want.Value) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// HasKey reports whether object has a key that compares equal to key.
func HasKey(object any, key any, compare CompareFunc) bool {
	for _, entry := range Entries(object) {
		if compare(entry.Key, key) {
			return true
		}
	}
	return false
}

// StringContains reports whether s contains the string form of value.
func StringContains(s string, value any) bool {
	return strings.Contains(s, Stringify(value))
}

// Stringify returns the string form of v: the content for string kinds,
// fmt.Sprint otherwise.
func Stringify(v any) string {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String()
	}
	return fmt.Sprint(v)
}

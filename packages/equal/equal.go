package equal

import (
	"math"
	"reflect"
	"regexp"
	"unsafe"

	"github.com/abdul-hamid-achik/expect/packages/values"
)

var regexpType = reflect.TypeOf(&regexp.Regexp{})

type visit struct {
	a, b unsafe.Pointer
	typ  reflect.Type
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b any) bool {
	return deepEqual(reflect.ValueOf(a), reflect.ValueOf(b), make(map[visit]bool))
}

func deepEqual(a, b reflect.Value, visited map[visit]bool) bool {
	a, b = unwrap(a), unwrap(b)

	if !a.IsValid() || !b.IsValid() {
		return isNil(a) && isNil(b)
	}

	if c, ok := values.CompareNumberValues(a, b); ok {
		return c == 0
	}
	if isNaN(a) && isNaN(b) {
		return true
	}

	if a.Type() == regexpType && b.Type() == regexpType && a.CanInterface() && b.CanInterface() {
		ra, rb := a.Interface().(*regexp.Regexp), b.Interface().(*regexp.Regexp)
		if ra == nil || rb == nil {
			return ra == rb
		}
		return ra.String() == rb.String()
	}
	if eq, ok := equalMethod(a, b); ok {
		return eq
	}

	ka, kb := a.Kind(), b.Kind()
	if isArrayKind(ka) && isArrayKind(kb) {
		return arrayEqual(a, b, visited)
	}
	if ka != kb {
		return isNil(a) && isNil(b)
	}

	switch ka {
	case reflect.Bool:
		return a.Bool() == b.Bool()
	case reflect.String:
		return a.String() == b.String()
	case reflect.Complex64, reflect.Complex128:
		return a.Complex() == b.Complex()
	case reflect.Map:
		return mapEqual(a, b, visited)
	case reflect.Struct:
		if a.Type() != b.Type() {
			return false
		}
		for i := 0; i < a.NumField(); i++ {
			if !deepEqual(a.Field(i), b.Field(i), visited) {
				return false
			}
		}
		return true
	case reflect.Pointer:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		if a.Pointer() == b.Pointer() {
			return true
		}
		if seen(a, b, visited) {
			return true
		}
		return deepEqual(a.Elem(), b.Elem(), visited)
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return a.Pointer() == b.Pointer()
	}
	return false
}

// equalMethod calls a.Equal(b) when both values have the same type and that
// type has a method of the form (T) Equal(T) bool, as time.Time does.
func equalMethod(a, b reflect.Value) (eq, ok bool) {
	if a.Type() != b.Type() || !a.CanInterface() || !b.CanInterface() || isNil(a) || isNil(b) {
		return false, false
	}
	m := a.MethodByName("Equal")
	if !m.IsValid() {
		return false, false
	}
	t := m.Type()
	if t.NumIn() != 1 || t.NumOut() != 1 || t.Out(0).Kind() != reflect.Bool || !a.Type().AssignableTo(t.In(0)) {
		return false, false
	}
	return m.Call([]reflect.Value{b})[0].Bool(), true
}

func arrayEqual(a, b reflect.Value, visited map[visit]bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	if a.Kind() == reflect.Slice && b.Kind() == reflect.Slice && a.Len() > 0 {
		if a.Pointer() == b.Pointer() && a.Type() == b.Type() {
			return true
		}
		if seen(a, b, visited) {
			return true
		}
	}
	for i := 0; i < a.Len(); i++ {
		if !deepEqual(a.Index(i), b.Index(i), visited) {
			return false
		}
	}
	return true
}

func mapEqual(a, b reflect.Value, visited map[visit]bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	if a.Len() == 0 {
		return true
	}
	if a.Pointer() == b.Pointer() && a.Type() == b.Type() {
		return true
	}
	if seen(a, b, visited) {
		return true
	}

	sameKeys := a.Type().Key() == b.Type().Key()
	iter := a.MapRange()
	for iter.Next() {
		var other reflect.Value
		if sameKeys {
			other = b.MapIndex(iter.Key())
		} else {
			other = lookup(b, iter.Key())
		}
		if !other.IsValid() || !deepEqual(iter.Value(), other, visited) {
			return false
		}
	}
	return true
}

func lookup(m reflect.Value, key reflect.Value) reflect.Value {
	iter := m.MapRange()
	for iter.Next() {
		if deepEqual(iter.Key(), key, make(map[visit]bool)) {
			return iter.Value()
		}
	}
	return reflect.Value{}
}

// seen records the pair and reports whether it was already being compared,
// which only happens for cyclic structures.
func seen(a, b reflect.Value, visited map[visit]bool) bool {
	pa, pb := unsafe.Pointer(a.Pointer()), unsafe.Pointer(b.Pointer())
	if uintptr(pa) > uintptr(pb) {
		pa, pb = pb, pa
	}
	v := visit{pa, pb, a.Type()}
	if visited[v] {
		return true
	}
	visited[v] = true
	return false
}

func unwrap(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func isArrayKind(k reflect.Kind) bool {
	return k == reflect.Slice || k == reflect.Array
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Pointer, reflect.Func, reflect.Interface, reflect.Chan, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

func isNaN(v reflect.Value) bool {
	return (v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64) && math.IsNaN(v.Float())
}

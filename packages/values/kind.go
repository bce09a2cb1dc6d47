package values

import (
	"errors"
	"fmt"
	"math"
	"reflect"
)

// Kind is the coarse classification of a value.
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
	KindFunction
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindFunction:
		return "function"
	default:
		return "other"
	}
}

// Callable is implemented by values that can be invoked like a function
// without being a Go func themselves. Func returns the func value to call.
type Callable interface {
	Func() any
}

// ErrInvalidType is returned by IsA when the type argument is neither a
// reflect.Type nor a known type name.
var ErrInvalidType = errors.New("type must be a reflect.Type or a type name")

// KindOf classifies v.
func KindOf(v any) Kind {
	if v == nil {
		return KindNil
	}
	if c, ok := v.(Callable); ok && !isNilValue(reflect.ValueOf(c)) {
		return KindFunction
	}
	return kindOfValue(reflect.ValueOf(v))
}

func kindOfValue(rv reflect.Value) Kind {
	switch rv.Kind() {
	case reflect.Invalid:
		return KindNil
	case reflect.Bool:
		return KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.String:
		return KindString
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.Map, reflect.Struct:
		return KindObject
	case reflect.Pointer:
		if rv.IsNil() {
			return KindNil
		}
		return KindObject
	case reflect.Interface:
		if rv.IsNil() {
			return KindNil
		}
		return kindOfValue(rv.Elem())
	case reflect.Func:
		if rv.IsNil() {
			return KindNil
		}
		return KindFunction
	default:
		return KindOther
	}
}

func isNilValue(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// IsNil reports whether v is untyped nil or a typed nil.
func IsNil(v any) bool {
	return isNilValue(reflect.ValueOf(v))
}

func IsFunction(v any) bool { return KindOf(v) == KindFunction }

func IsArray(v any) bool { return KindOf(v) == KindArray }

// IsObject reports whether v is a map, struct or non-nil pointer. Arrays are
// not objects here even though TypeName reports "object" for them.
func IsObject(v any) bool { return KindOf(v) == KindObject }

func IsString(v any) bool { return KindOf(v) == KindString }

func IsNumber(v any) bool { return KindOf(v) == KindNumber }

// TypeName is the typeof-style name of v: "undefined", "boolean", "number",
// "string", "function" or "object". Arrays report "object".
func TypeName(v any) string {
	switch k := KindOf(v); k {
	case KindNil:
		return "undefined"
	case KindArray:
		return "object"
	case KindOther:
		return reflect.TypeOf(v).String()
	default:
		return k.String()
	}
}

var typeNames = map[string]bool{
	"undefined": true,
	"boolean":   true,
	"number":    true,
	"string":    true,
	"function":  true,
	"object":    true,
	"array":     true,
}

// IsTypeName reports whether name is accepted by IsA.
func IsTypeName(name string) bool {
	return typeNames[name]
}

// IsA reports whether v is an instance of typeOrName.
//
// A reflect.Type matches when the dynamic type of v is assignable to it,
// which covers identical types and interfaces v implements. A string is
// one of the names returned by TypeName, or "array".
func IsA(v any, typeOrName any) (bool, error) {
	switch t := typeOrName.(type) {
	case reflect.Type:
		if t == nil {
			return false, ErrInvalidType
		}
		if v == nil {
			return false, nil
		}
		return reflect.TypeOf(v).AssignableTo(t), nil
	case string:
		if !IsTypeName(t) {
			return false, fmt.Errorf("%w: unknown type name %q", ErrInvalidType, t)
		}
		if t == "array" {
			return IsArray(v), nil
		}
		return TypeName(v) == t, nil
	default:
		return false, ErrInvalidType
	}
}

// Truthy reports whether v counts as present: nil, false, zero numbers, NaN,
// empty strings and typed nils are falsy, everything else is truthy.
func Truthy(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Invalid:
		return false
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.String:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return !rv.IsNil()
	}
	return true
}

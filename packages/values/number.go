package values

import (
	"fmt"
	"math"
	"reflect"
)

type numberClass int

const (
	notNumber numberClass = iota
	signedNumber
	unsignedNumber
	floatNumber
)

func classify(rv reflect.Value) numberClass {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return signedNumber
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return unsignedNumber
	case reflect.Float32, reflect.Float64:
		return floatNumber
	}
	return notNumber
}

// convertNumber converts rv to the numeric type param, failing when the value
// does not fit or would lose its fractional part.
func convertNumber(rv reflect.Value, param reflect.Type) (reflect.Value, error) {
	target := reflect.Zero(param)
	lossy := func() (reflect.Value, error) {
		return reflect.Value{}, fmt.Errorf("cannot use %s value %v as %s without loss", rv.Type(), rv.Interface(), param)
	}

	switch classify(target) {
	case signedNumber:
		switch classify(rv) {
		case signedNumber:
			if target.OverflowInt(rv.Int()) {
				return lossy()
			}
		case unsignedNumber:
			if rv.Uint() > math.MaxInt64 || target.OverflowInt(int64(rv.Uint())) {
				return lossy()
			}
		case floatNumber:
			f := rv.Float()
			if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 || target.OverflowInt(int64(f)) {
				return lossy()
			}
		}
	case unsignedNumber:
		switch classify(rv) {
		case signedNumber:
			if rv.Int() < 0 || target.OverflowUint(uint64(rv.Int())) {
				return lossy()
			}
		case unsignedNumber:
			if target.OverflowUint(rv.Uint()) {
				return lossy()
			}
		case floatNumber:
			f := rv.Float()
			if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 || target.OverflowUint(uint64(f)) {
				return lossy()
			}
		}
	case floatNumber:
		if f, _ := valueToFloat64(rv); target.OverflowFloat(f) {
			return lossy()
		}
	}
	return rv.Convert(param), nil
}

// ToFloat64 converts any numeric value to float64.
func ToFloat64(v any) (float64, bool) {
	return valueToFloat64(reflect.ValueOf(v))
}

func valueToFloat64(rv reflect.Value) (float64, bool) {
	switch classify(rv) {
	case signedNumber:
		return float64(rv.Int()), true
	case unsignedNumber:
		return float64(rv.Uint()), true
	case floatNumber:
		return rv.Float(), true
	}
	return 0, false
}

// CompareNumbers orders a and b, which may be of different numeric kinds.
// Integers are compared exactly; anything involving a float is compared as
// float64. ok is false when either side is not a number or is NaN.
func CompareNumbers(a, b any) (c int, ok bool) {
	return CompareNumberValues(reflect.ValueOf(a), reflect.ValueOf(b))
}

// CompareNumberValues is CompareNumbers for reflect values. It only uses
// Int, Uint and Float so it also works on unexported struct fields.
func CompareNumberValues(a, b reflect.Value) (c int, ok bool) {
	ca, cb := classify(a), classify(b)
	if ca == notNumber || cb == notNumber {
		return 0, false
	}

	switch {
	case ca == signedNumber && cb == signedNumber:
		return compareOrdered(a.Int(), b.Int()), true
	case ca == unsignedNumber && cb == unsignedNumber:
		return compareOrdered(a.Uint(), b.Uint()), true
	case ca == signedNumber && cb == unsignedNumber:
		if a.Int() < 0 {
			return -1, true
		}
		return compareOrdered(uint64(a.Int()), b.Uint()), true
	case ca == unsignedNumber && cb == signedNumber:
		if b.Int() < 0 {
			return 1, true
		}
		return compareOrdered(a.Uint(), uint64(b.Int())), true
	}

	fa, _ := valueToFloat64(a)
	fb, _ := valueToFloat64(b)
	if math.IsNaN(fa) || math.IsNaN(fb) {
		return 0, false
	}
	return compareOrdered(fa, fb), true
}

func compareOrdered[T int64 | uint64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// IsNaN reports whether v is a floating point NaN.
func IsNaN(v any) bool {
	rv := reflect.ValueOf(v)
	return classify(rv) == floatNumber && math.IsNaN(rv.Float())
}

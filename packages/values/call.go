package values

import (
	"fmt"
	"reflect"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// FuncValue returns the func to invoke for a callable value.
func FuncValue(v any) (reflect.Value, bool) {
	if c, ok := v.(Callable); ok && !IsNil(c) {
		v = c.Func()
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return reflect.Value{}, false
	}
	return rv, true
}

// PrepareArgs converts args to the parameter types of fnType. nil becomes
// the zero value of nilable parameters and numbers are converted between
// numeric kinds. Variadic functions receive their trailing arguments one by
// one.
func PrepareArgs(fnType reflect.Type, args []any) ([]reflect.Value, error) {
	numIn := fnType.NumIn()
	if fnType.IsVariadic() {
		if len(args) < numIn-1 {
			return nil, fmt.Errorf("want at least %d arguments, got %d", numIn-1, len(args))
		}
	} else if len(args) != numIn {
		return nil, fmt.Errorf("want %d arguments, got %d", numIn, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var param reflect.Type
		if fnType.IsVariadic() && i >= numIn-1 {
			param = fnType.In(numIn - 1).Elem()
		} else {
			param = fnType.In(i)
		}

		v, err := Convert(arg, param)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		in[i] = v
	}
	return in, nil
}

// Convert turns arg into a value of type param: nil becomes the zero value of
// nilable types, numbers and strings convert between their kinds, anything
// else must be assignable.
func Convert(arg any, param reflect.Type) (reflect.Value, error) {
	if arg == nil {
		switch param.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
			return reflect.Zero(param), nil
		}
		return reflect.Value{}, fmt.Errorf("cannot use nil as %s", param)
	}

	rv := reflect.ValueOf(arg)
	if rv.Type() == param {
		return rv, nil
	}
	if rv.Type().AssignableTo(param) {
		v := reflect.New(param).Elem()
		v.Set(rv)
		return v, nil
	}
	if classify(rv) != notNumber && classify(reflect.Zero(param)) != notNumber {
		return convertNumber(rv, param)
	}
	if rv.Kind() == reflect.String && param.Kind() == reflect.String {
		return rv.Convert(param), nil
	}
	return reflect.Value{}, fmt.Errorf("cannot use %s as %s", rv.Type(), param)
}

// Results converts the results of a reflective call back to plain values.
func Results(out []reflect.Value) []any {
	results := make([]any, len(out))
	for i, v := range out {
		results[i] = v.Interface()
	}
	return results
}

// ReturnedError returns the non-nil error a call returned as its last
// result, or nil.
func ReturnedError(out []reflect.Value) error {
	if len(out) == 0 {
		return nil
	}
	last := out[len(out)-1]
	if !last.Type().Implements(errorType) || isNilValue(last) {
		return nil
	}
	err, _ := last.Interface().(error)
	return err
}

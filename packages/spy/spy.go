package spy

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/abdul-hamid-achik/expect/packages/values"
)

// Call is one recorded invocation.
type Call struct {
	Arguments []any
}

// Recorder is implemented by anything that records calls.
type Recorder interface {
	Calls() []Call
}

// IsSpy reports whether v records calls.
func IsSpy(v any) bool {
	r, ok := v.(Recorder)
	return ok && !values.IsNil(r)
}

var anyFuncType = reflect.TypeOf(func(...any) []any { return nil })

// Spy records calls and decides what each call returns.
type Spy struct {
	name   string
	fnType reflect.Type
	fn     reflect.Value

	mu       sync.Mutex
	original reflect.Value
	target   reflect.Value
	returns  []reflect.Value
	thrown   any
	calls    []Call
	restore  func()
}

// Create returns a spy shaped like fn. With a nil fn the spy is a
// func(...any) []any. Calls return zero values until configured otherwise.
func Create(fn any) *Spy {
	s := &Spy{fnType: anyFuncType}
	if fn != nil {
		rv := reflect.ValueOf(fn)
		if rv.Kind() != reflect.Func {
			panic(fmt.Sprintf("spy.Create: want a func, got %T", fn))
		}
		s.fnType = rv.Type()
		if !rv.IsNil() {
			s.original = rv
		}
	}
	s.fn = reflect.MakeFunc(s.fnType, s.invoke)
	return s
}

// Named sets the name used when the spy is printed.
func (s *Spy) Named(name string) *Spy {
	s.name = name
	return s
}

func (s *Spy) String() string {
	if s.name == "" {
		return "spy(" + s.fnType.String() + ")"
	}
	return "spy " + s.name
}

// Func returns the recording function. Its type is the type of the function
// the spy was created from.
func (s *Spy) Func() any {
	return s.fn.Interface()
}

// As returns the recording function of s as F. It panics when F is not the
// spy's function type.
func As[F any](s *Spy) F {
	f, ok := s.Func().(F)
	if !ok {
		var zero F
		panic(fmt.Sprintf("spy.As: spy is a %s, not a %T", s.fnType, zero))
	}
	return f
}

// Call invokes the spy with args and returns its results. It panics when
// args do not fit the spy's function type.
func (s *Spy) Call(args ...any) []any {
	in, err := values.PrepareArgs(s.fnType, args)
	if err != nil {
		panic(fmt.Errorf("spy: %w", err))
	}
	out := s.fn.Call(in)
	if s.fnType == anyFuncType {
		results, _ := out[0].Interface().([]any)
		return results
	}
	return values.Results(out)
}

// Calls returns a copy of the recorded calls in order.
func (s *Spy) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	calls := make([]Call, len(s.calls))
	copy(calls, s.calls)
	return calls
}

// CallCount returns the number of recorded calls.
func (s *Spy) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// LastCall returns the most recent call.
func (s *Spy) LastCall() (Call, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		return Call{}, false
	}
	return s.calls[len(s.calls)-1], true
}

// AndReturn makes calls return vals. Missing results are zero values.
func (s *Spy) AndReturn(vals ...any) *Spy {
	var returns []reflect.Value
	if s.fnType == anyFuncType {
		returns = []reflect.Value{reflect.ValueOf(vals)}
	} else {
		if len(vals) > s.fnType.NumOut() {
			panic(fmt.Sprintf("spy.AndReturn: %s returns %d values, got %d", s.fnType, s.fnType.NumOut(), len(vals)))
		}
		returns = make([]reflect.Value, len(vals))
		for i, v := range vals {
			rv, err := values.Convert(v, s.fnType.Out(i))
			if err != nil {
				panic(fmt.Errorf("spy.AndReturn: result %d: %w", i, err))
			}
			returns[i] = rv
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.returns, s.target, s.thrown = returns, reflect.Value{}, nil
	return s
}

// AndThrow makes calls panic with v.
func (s *Spy) AndThrow(v any) *Spy {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.thrown = v
	return s
}

// AndCall makes calls run fn. fn must have the spy's function type, except
// for spies created from nil which accept any func.
func (s *Spy) AndCall(fn any) *Spy {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		panic(fmt.Sprintf("spy.AndCall: want a func, got %T", fn))
	}
	if s.fnType != anyFuncType && rv.Type() != s.fnType {
		panic(fmt.Sprintf("spy.AndCall: want a %s, got %s", s.fnType, rv.Type()))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.target, s.thrown = rv, nil
	return s
}

// AndCallThrough makes calls run the function the spy was created from.
func (s *Spy) AndCallThrough() *Spy {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.target, s.thrown = s.original, nil
	return s
}

// Reset forgets the recorded calls.
func (s *Spy) Reset() *Spy {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
	return s
}

// Restore puts back the function a spy installed with On replaced. It is a
// no-op for spies made with Create.
func (s *Spy) Restore() {
	s.mu.Lock()
	restore := s.restore
	s.restore = nil
	s.mu.Unlock()

	if restore != nil {
		restore()
		unregister(s)
	}
}

func (s *Spy) invoke(in []reflect.Value) []reflect.Value {
	args := flatten(s.fnType, in)

	s.mu.Lock()
	s.calls = append(s.calls, Call{Arguments: args})
	thrown, target, returns := s.thrown, s.target, s.returns
	s.mu.Unlock()

	if thrown != nil {
		panic(thrown)
	}
	if target.IsValid() {
		return s.callTarget(target, in, args)
	}
	return s.results(returns)
}

func (s *Spy) callTarget(target reflect.Value, in []reflect.Value, args []any) []reflect.Value {
	if s.fnType != anyFuncType {
		if s.fnType.IsVariadic() {
			return target.CallSlice(in)
		}
		return target.Call(in)
	}

	prepared, err := values.PrepareArgs(target.Type(), args)
	if err != nil {
		panic(fmt.Errorf("spy: %w", err))
	}
	return []reflect.Value{reflect.ValueOf(values.Results(target.Call(prepared)))}
}

func (s *Spy) results(returns []reflect.Value) []reflect.Value {
	out := make([]reflect.Value, s.fnType.NumOut())
	for i := range out {
		if i < len(returns) && returns[i].IsValid() {
			out[i] = returns[i]
		} else {
			out[i] = reflect.Zero(s.fnType.Out(i))
		}
	}
	return out
}

// flatten expands the trailing slice of a variadic call so recorded
// arguments match what the caller wrote.
func flatten(fnType reflect.Type, in []reflect.Value) []any {
	args := make([]any, 0, len(in))
	for i, v := range in {
		if fnType.IsVariadic() && i == len(in)-1 {
			for j := 0; j < v.Len(); j++ {
				args = append(args, v.Index(j).Interface())
			}
			continue
		}
		args = append(args, v.Interface())
	}
	return args
}

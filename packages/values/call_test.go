package values

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareArgs(t *testing.T) {
	t.Run("converts numbers", func(t *testing.T) {
		fn := func(a int64, b float64) {}
		in, err := PrepareArgs(reflect.TypeOf(fn), []any{1, 2})
		require.NoError(t, err)
		assert.Equal(t, int64(1), in[0].Interface())
		assert.Equal(t, 2.0, in[1].Interface())
	})

	t.Run("nil to zero value", func(t *testing.T) {
		fn := func(err error, p *point) {}
		in, err := PrepareArgs(reflect.TypeOf(fn), []any{nil, nil})
		require.NoError(t, err)
		assert.True(t, in[0].IsNil())
		assert.True(t, in[1].IsNil())
	})

	t.Run("variadic", func(t *testing.T) {
		in, err := PrepareArgs(reflect.TypeOf(fmt.Sprintf), []any{"%d-%s", 1, "a"})
		require.NoError(t, err)
		assert.Len(t, in, 3)
	})

	t.Run("wrong arity", func(t *testing.T) {
		_, err := PrepareArgs(reflect.TypeOf(func(int) {}), nil)
		assert.Error(t, err)
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := PrepareArgs(reflect.TypeOf(func(int) {}), []any{"one"})
		assert.ErrorContains(t, err, "cannot use string as int")
	})

	t.Run("nil for value type", func(t *testing.T) {
		_, err := PrepareArgs(reflect.TypeOf(func(int) {}), []any{nil})
		assert.ErrorContains(t, err, "cannot use nil")
	})
}

func TestConvert_Numbers(t *testing.T) {
	tests := []struct {
		name  string
		arg   any
		param reflect.Type
		want  any
	}{
		{"int to int8", 100, reflect.TypeOf(int8(0)), int8(100)},
		{"whole float to int", 2.0, reflect.TypeOf(0), 2},
		{"int to uint8", 255, reflect.TypeOf(uint8(0)), uint8(255)},
		{"uint to int", uint(7), reflect.TypeOf(0), 7},
		{"int to float32", 3, reflect.TypeOf(float32(0)), float32(3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Convert(tt.arg, tt.param)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Interface())
		})
	}
}

func TestConvert_RejectsLossyNumbers(t *testing.T) {
	tests := []struct {
		name  string
		arg   any
		param reflect.Type
	}{
		{"fraction to int", 1.9, reflect.TypeOf(0)},
		{"negative to uint8", -1, reflect.TypeOf(uint8(0))},
		{"too large for uint8", 300, reflect.TypeOf(uint8(0))},
		{"too large for int8", 128, reflect.TypeOf(int8(0))},
		{"huge uint to int64", uint64(math.MaxUint64), reflect.TypeOf(int64(0))},
		{"negative float to uint", -2.0, reflect.TypeOf(uint(0))},
		{"NaN to int", math.NaN(), reflect.TypeOf(0)},
		{"infinity to int64", math.Inf(1), reflect.TypeOf(int64(0))},
		{"too large for float32", math.MaxFloat64, reflect.TypeOf(float32(0))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(tt.arg, tt.param)
			assert.ErrorContains(t, err, "without loss")
		})
	}
}

func TestReturnedError(t *testing.T) {
	boom := errors.New("boom")

	out := reflect.ValueOf(func() (int, error) { return 0, boom }).Call(nil)
	assert.Equal(t, boom, ReturnedError(out))

	out = reflect.ValueOf(func() (int, error) { return 1, nil }).Call(nil)
	assert.Nil(t, ReturnedError(out))

	out = reflect.ValueOf(func() {}).Call(nil)
	assert.Nil(t, ReturnedError(out))
}

func TestFuncValue(t *testing.T) {
	_, ok := FuncValue(42)
	assert.False(t, ok)

	fn, ok := FuncValue(fakeCallable{})
	require.True(t, ok)
	assert.Equal(t, reflect.Func, fn.Kind())
}

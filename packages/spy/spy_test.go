package spy

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_RecordsCalls(t *testing.T) {
	s := Create(strings.Repeat)
	repeat := As[func(string, int) string](s)

	assert.Equal(t, "", repeat("ab", 2), "spies return zero values by default")
	repeat("c", 1)

	calls := s.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, []any{"ab", 2}, calls[0].Arguments)
	assert.Equal(t, []any{"c", 1}, calls[1].Arguments)
	assert.Equal(t, 2, s.CallCount())

	last, ok := s.LastCall()
	require.True(t, ok)
	assert.Equal(t, []any{"c", 1}, last.Arguments)
}

func TestCreate_Nil(t *testing.T) {
	s := Create(nil)

	assert.Nil(t, s.Call(1, "two"))
	s.AndReturn("ok", 3)
	assert.Equal(t, []any{"ok", 3}, s.Call())

	fn := As[func(...any) []any](s)
	fn(true)

	calls := s.Calls()
	require.Len(t, calls, 3)
	assert.Equal(t, []any{1, "two"}, calls[0].Arguments)
	assert.Empty(t, calls[1].Arguments)
	assert.Equal(t, []any{true}, calls[2].Arguments)
}

func TestSpy_Behaviors(t *testing.T) {
	t.Run("call through", func(t *testing.T) {
		s := Create(strings.ToUpper).AndCallThrough()
		assert.Equal(t, []any{"HI"}, s.Call("hi"))
	})

	t.Run("and call", func(t *testing.T) {
		s := Create(strings.ToUpper).AndCall(strings.ToLower)
		assert.Equal(t, []any{"hi"}, s.Call("HI"))
	})

	t.Run("and call on untyped spy", func(t *testing.T) {
		s := Create(nil).AndCall(func(a, b int) int { return a + b })
		assert.Equal(t, []any{3}, s.Call(1, 2))
	})

	t.Run("and return converts", func(t *testing.T) {
		s := Create(func() (int64, error) { return 0, nil }).AndReturn(7, nil)
		assert.Equal(t, []any{int64(7), nil}, s.Call())
	})

	t.Run("and return error", func(t *testing.T) {
		boom := errors.New("boom")
		s := Create(func() error { return nil }).AndReturn(boom)
		assert.Equal(t, []any{boom}, s.Call())
	})

	t.Run("and throw", func(t *testing.T) {
		boom := errors.New("boom")
		s := Create(func() {}).AndThrow(boom)
		assert.PanicsWithError(t, "boom", func() { s.Call() })
		assert.Equal(t, 1, s.CallCount(), "throwing calls are still recorded")
	})

	t.Run("variadic", func(t *testing.T) {
		s := Create(fmt.Sprintf).AndCallThrough()
		assert.Equal(t, []any{"1-a"}, s.Call("%d-%s", 1, "a"))

		last, _ := s.LastCall()
		assert.Equal(t, []any{"%d-%s", 1, "a"}, last.Arguments)
	})

	t.Run("reset", func(t *testing.T) {
		s := Create(nil)
		s.Call()
		s.Reset()
		assert.Zero(t, s.CallCount())
		_, ok := s.LastCall()
		assert.False(t, ok)
	})
}

func TestSpy_InvalidUse(t *testing.T) {
	assert.Panics(t, func() { Create(42) })
	assert.Panics(t, func() { Create(strings.ToUpper).AndCall(strings.Repeat) })
	assert.Panics(t, func() { Create(strings.ToUpper).AndReturn("a", "b") })
	assert.Panics(t, func() { Create(strings.ToUpper).Call(1) })
	assert.Panics(t, func() { As[func()](Create(strings.ToUpper)) })
	assert.Panics(t, func() { Create(func() uint8 { return 0 }).AndReturn(300) })
	assert.Panics(t, func() { Create(func(int) {}).Call(1.5) })
}

func TestSpy_Concurrent(t *testing.T) {
	s := Create(func(int) {})
	fn := As[func(int)](s)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			fn(i)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, s.CallCount())
}

func TestIsSpy(t *testing.T) {
	assert.True(t, IsSpy(Create(nil)))
	assert.False(t, IsSpy((*Spy)(nil)))
	assert.False(t, IsSpy(func() {}))
	assert.False(t, IsSpy(nil))
}

func TestString(t *testing.T) {
	assert.Equal(t, "spy(func(string) string)", Create(strings.ToUpper).String())
	assert.Equal(t, "spy upper", Create(strings.ToUpper).Named("upper").String())
}

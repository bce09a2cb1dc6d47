package values

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func deepEqual(a, b any) bool {
	if c, ok := CompareNumbers(a, b); ok {
		return c == 0
	}
	return reflect.DeepEqual(a, b)
}

func TestArrayContains(t *testing.T) {
	items := []int{1, 2, 3}

	assert.True(t, ArrayContains(items, 2, deepEqual))
	assert.True(t, ArrayContains(items, []int{2, 3}, deepEqual))
	assert.True(t, ArrayContains(items, []int{}, deepEqual))
	assert.False(t, ArrayContains(items, []int{2, 4}, deepEqual))
	assert.False(t, ArrayContains(items, 4, deepEqual))

	t.Run("nested array element", func(t *testing.T) {
		nested := []any{[]int{1, 2}, 3}
		assert.True(t, ArrayContains(nested, []int{1, 2}, deepEqual))
	})
}

func TestObjectContains(t *testing.T) {
	subject := map[string]int{"a": 1, "b": 2}

	assert.True(t, ObjectContains(subject, map[string]int{"a": 1}, deepEqual))
	assert.True(t, ObjectContains(subject, map[string]any{}, deepEqual))
	assert.False(t, ObjectContains(subject, map[string]int{"a": 2}, deepEqual))
	assert.False(t, ObjectContains(subject, map[string]int{"c": 1}, deepEqual))
	assert.False(t, ObjectContains(subject, 1, deepEqual))
	assert.False(t, ObjectContains(subject, "a", deepEqual))

	t.Run("struct subject", func(t *testing.T) {
		assert.True(t, ObjectContains(point{X: 1, Y: 2}, map[string]any{"X": 1}, deepEqual))
		assert.True(t, ObjectContains(&point{X: 1, Y: 2}, point{X: 1, Y: 2}, deepEqual))
	})
}

func TestHasKey(t *testing.T) {
	subject := map[int]string{1: "a"}
	assert.True(t, HasKey(subject, int64(1), deepEqual))
	assert.False(t, HasKey(subject, 2, deepEqual))
	assert.True(t, HasKey(point{}, "Y", deepEqual))
}

func TestStringContains(t *testing.T) {
	assert.True(t, StringContains("hello world", "lo w"))
	assert.True(t, StringContains("route 66", 66))
	assert.False(t, StringContains("hello", "bye"))
}

package assertions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type account struct {
	ID      int
	balance int
}

func TestDiff(t *testing.T) {
	t.Run("equal values", func(t *testing.T) {
		assert.Empty(t, Diff([]int{1}, []int{1}))
		assert.Empty(t, Diff("a", "a"))
	})

	t.Run("strings", func(t *testing.T) {
		diff := Diff("one\ntwo\nthree\n", "one\n2\nthree\n")
		assert.Contains(t, diff, "--- Expected")
		assert.Contains(t, diff, "+++ Actual")
		assert.Contains(t, diff, "-2")
		assert.Contains(t, diff, "+two")
	})

	t.Run("structs with unexported fields", func(t *testing.T) {
		diff := Diff(account{ID: 1, balance: 5}, account{ID: 1, balance: 7})
		assert.Contains(t, diff, "balance")
		assert.Contains(t, diff, "-")
		assert.Contains(t, diff, "+")
	})

	t.Run("cyclic maps", func(t *testing.T) {
		a := map[string]any{"v": 1}
		a["self"] = a
		b := map[string]any{"v": 2}
		b["self"] = b
		diff := Diff(a, b)
		assert.Contains(t, diff, "--- Expected")
		assert.Contains(t, diff, "(int) 2")
		assert.Contains(t, diff, "(int) 1")
	})

	t.Run("maps", func(t *testing.T) {
		diff := Diff(map[string]int{"a": 1}, map[string]int{"a": 2})
		assert.Contains(t, diff, `"a"`)
	})
}

func TestDump(t *testing.T) {
	dump := Dump(account{ID: 3})
	assert.Contains(t, dump, "ID: (int) 3")
}

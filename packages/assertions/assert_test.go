package assertions

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		template string
		values   []any
		want     string
	}{
		{"no placeholders", "plain", []any{1}, "plain"},
		{"one value", "Expected %s to exist", []any{nil}, "Expected nil to exist"},
		{"two values", "Expected %s to be %s", []any{1, "1"}, `Expected 1 to be "1"`},
		{"missing value", "Expected %s to be %s", []any{1}, "Expected 1 to be %s"},
		{"surplus values", "Expected %s", []any{1, 2}, "Expected 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.template, tt.values...))
		})
	}
}

func TestAssert(t *testing.T) {
	assert.NoError(t, Assert(true, "never rendered %s", 1))

	err := Assert(false, "Expected %s to be less than %s", 3, 2)
	require.Error(t, err)
	assert.True(t, IsFailure(err))
	assert.False(t, IsUsage(err))
	assert.Equal(t, "Expected 3 to be less than 2", err.Error())

	var failure *Failure
	require.True(t, errors.As(err, &failure))
	assert.False(t, failure.DiffEnabled)
	assert.Nil(t, failure.Actual)
	assert.Empty(t, failure.Diff())
}

func TestAssertEqual(t *testing.T) {
	assert.NoError(t, AssertEqual(true, "Expected %s to equal %s", 1, 1))

	err := AssertEqual(false, "Expected %s to equal %s", []int{1}, []int{2})
	var failure *Failure
	require.True(t, errors.As(err, &failure))
	assert.True(t, failure.DiffEnabled)
	assert.Equal(t, []int{1}, failure.Actual)
	assert.Equal(t, []int{2}, failure.Expected)
	assert.Equal(t, "Expected []int{1} to equal []int{2}", failure.Message)
	assert.NotEmpty(t, failure.Diff())
}

func TestUsage(t *testing.T) {
	err := Usage("ToBeLessThan", "the subject must be a number, got %s", "a")
	assert.True(t, IsUsage(err))
	assert.False(t, IsFailure(err))
	assert.Equal(t, `ToBeLessThan: the subject must be a number, got "a"`, err.Error())
}

func TestPanicReporter(t *testing.T) {
	err := Assert(false, "boom")
	assert.PanicsWithError(t, "boom", func() {
		Panic.Report(err)
	})
}

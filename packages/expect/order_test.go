package expect

import (
	"math"
	"testing"

	"github.com/abdul-hamid-achik/expect/packages/assertions"
	"github.com/stretchr/testify/assert"
)

func TestOrdering(t *testing.T) {
	type predicate func(e *Expectation, v any)
	lt := func(e *Expectation, v any) { e.ToBeLessThan(v) }
	le := func(e *Expectation, v any) { e.ToBeLessThanOrEqualTo(v) }
	gt := func(e *Expectation, v any) { e.ToBeGreaterThan(v) }
	ge := func(e *Expectation, v any) { e.ToBeGreaterThanOrEqualTo(v) }

	tests := []struct {
		name   string
		actual any
		value  any
		pass   map[string]bool
	}{
		{"less", 1, 2, map[string]bool{"lt": true, "le": true, "gt": false, "ge": false}},
		{"equal", 2, 2.0, map[string]bool{"lt": false, "le": true, "gt": false, "ge": true}},
		{"greater", uint(3), int8(-1), map[string]bool{"lt": false, "le": false, "gt": true, "ge": true}},
		{"floats", 1.5, 1.25, map[string]bool{"lt": false, "le": false, "gt": true, "ge": true}},
		{"nan subject", math.NaN(), 1, map[string]bool{"lt": false, "le": false, "gt": false, "ge": false}},
		{"nan argument", 1, math.NaN(), map[string]bool{"lt": false, "le": false, "gt": false, "ge": false}},
	}

	predicates := map[string]predicate{"lt": lt, "le": le, "gt": gt, "ge": ge}
	for _, tt := range tests {
		for name, p := range predicates {
			t.Run(tt.name+"/"+name, func(t *testing.T) {
				err := outcome(tt.actual, func(e *Expectation) { p(e, tt.value) })
				if tt.pass[name] {
					assert.NoError(t, err)
				} else {
					assert.ErrorIs(t, err, assertions.ErrAssertionFailed)
				}
			})
		}
	}
}

func TestOrdering_UsageErrors(t *testing.T) {
	err := outcome("a", func(e *Expectation) { e.ToBeLessThan(1) })
	assert.ErrorIs(t, err, assertions.ErrUsage)
	assert.Equal(t, `ToBeLessThan: the subject must be a number, got "a"`, err.Error())

	err = outcome(1, func(e *Expectation) { e.ToBeGreaterThan("1") })
	assert.ErrorIs(t, err, assertions.ErrUsage)
	assert.Equal(t, `ToBeGreaterThan: the argument must be a number, got "1"`, err.Error())

	err = outcome(nil, func(e *Expectation) { e.ToBeLessThanOrEqualTo(1) })
	assert.ErrorIs(t, err, assertions.ErrUsage)

	err = outcome(true, func(e *Expectation) { e.ToBeGreaterThanOrEqualTo(1) })
	assert.ErrorIs(t, err, assertions.ErrUsage)
}

func TestOrdering_Message(t *testing.T) {
	err := outcome(5, func(e *Expectation) { e.ToBeLessThan(3) })
	assert.Equal(t, "Expected 5 to be less than 3", err.Error())

	err = outcome(1, func(e *Expectation) { e.ToBeGreaterThanOrEqualTo(3) })
	assert.Equal(t, "Expected 1 to be greater than or equal to 3", err.Error())
}

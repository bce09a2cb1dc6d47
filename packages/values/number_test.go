package values

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareNumbers(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want int
		ok   bool
	}{
		{"ints", 1, 2, -1, true},
		{"mixed int kinds", int8(5), int64(5), 0, true},
		{"int and float", 3, 2.5, 1, true},
		{"negative and unsigned", -1, uint(0), -1, true},
		{"unsigned and negative", uint64(math.MaxUint64), -1, 1, true},
		{"large unsigned", uint64(math.MaxUint64), uint64(math.MaxUint64 - 1), 1, true},
		{"nan", math.NaN(), 1, 0, false},
		{"string", "1", 1, 0, false},
		{"nil", nil, 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CompareNumbers(tt.a, tt.b)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestToFloat64(t *testing.T) {
	f, ok := ToFloat64(uint16(7))
	assert.True(t, ok)
	assert.Equal(t, 7.0, f)

	_, ok = ToFloat64("7")
	assert.False(t, ok)
}

package buf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddOverflowSafe(t *testing.T) {
	tests := []struct {
		name   string
		a, b   int
		want   int
		wantOK bool
	}{
		{"simple", 2, 3, 5, true},
		{"zero", 0, 0, 0, true},
		{"negative", -5, 3, -2, true},
		{"max boundary", math.MaxInt - 1, 1, math.MaxInt, true},
		{"positive overflow", math.MaxInt, 1, 0, false},
		{"negative overflow", math.MinInt, -1, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AddOverflowSafe(tt.a, tt.b)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestResolvePos(t *testing.T) {
	tests := []struct {
		name   string
		pos    int
		length int
		want   int
	}{
		{"positive passes through", 3, 10, 3},
		{"positive beyond length passes through", 42, 10, 42},
		{"minus one is end", -1, 10, 10},
		{"minus length-plus-one is start", -11, 10, 0},
		{"too negative floors at zero", -100, 10, 0},
		{"empty sequence end", -1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolvePos(tt.pos, tt.length))
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Clamp(5, 0, 10))
	assert.Equal(t, 0, Clamp(-3, 0, 10))
	assert.Equal(t, 10, Clamp(99, 0, 10))
}

func TestSliceAndHas(t *testing.T) {
	b := []byte{1, 2, 3, 4, 5}

	got, ok := Slice(b, 1, 3)
	assert.True(t, ok)
	assert.Equal(t, []byte{2, 3, 4}, got)

	_, ok = Slice(b, 4, 2)
	assert.False(t, ok)

	_, ok = Slice(b, -1, 1)
	assert.False(t, ok)

	_, ok = Slice(b, 2, math.MaxInt)
	assert.False(t, ok, "overflowing length must not wrap")

	assert.True(t, Has(b, 0, 5))
	assert.False(t, Has(b, 0, 6))
}

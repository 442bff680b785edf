package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFloat64(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"Float", 1.5, 1.5},
		{"Int", 3, 3},
		{"NumericString", "2.25", 2.25},
		{"PaddedString", " 4 ", 4},
		{"Garbage", "three", 0},
		{"Empty", "", 0},
		{"Nil", nil, 0},
		{"NaN", math.NaN(), 0},
		{"Inf", math.Inf(1), 0},
		{"Bytes", []byte("7"), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToFloat64(tt.in))
		})
	}
}

func TestToString(t *testing.T) {
	assert.Equal(t, "abc", ToString("abc"))
	assert.Equal(t, "abc", ToString([]byte("abc")))
	assert.Equal(t, "42", ToString(42))
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool(true))
	assert.True(t, ToBool(1))
	assert.True(t, ToBool("true"))
	assert.True(t, ToBool("1"))
	assert.False(t, ToBool("no"))
	assert.False(t, ToBool(0))
	assert.False(t, ToBool(nil))
}

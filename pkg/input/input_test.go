package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"6", 6},
		{" 13 ", 13},
		{"0.5", 0.5},
		{"-3", -3},
		{"1e2", 100},
		{"7a", 7},
		{"1a2", 12},
		{"abc", 0},
		{"", 0},
		{"NaN", 0},
		{"Inf", 0},
		{"12abc34", 1234},
		{"1e400", 0},
		{"-1e400", 0},
		{"1e-400", 0},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseValue(tc.in))
		})
	}
}

func TestParseList(t *testing.T) {
	assert.Equal(t, []float64{1, 3, 4, 6}, ParseList("1,3,4,6"))
	assert.Equal(t, []float64{1, 3, 4, 6}, ParseList("1 3\t4, 6"))
	assert.Equal(t, []float64{10, 0}, ParseList("10,x"))
	assert.Empty(t, ParseList(" , "))
}

func TestParseArgs(t *testing.T) {
	assert.Equal(t, []float64{1, 3, 4, 6}, ParseArgs([]string{"1,3", "4", "6"}))
	assert.Nil(t, ParseArgs(nil))
}

// Package input turns user-typed card values into numbers.
//
// Parsing is lenient: text that is not a number is reduced to its decimal
// digits, and an input with no digits becomes 0. A form field holding "7a"
// therefore deals a 7 instead of failing the whole request. Numbers that
// parse but are not finite (NaN, Inf, or overflow such as "1e400") become 0.
package input

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseValue parses a single value.
func ParseValue(s string) float64 {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 64); err == nil || errors.Is(err, strconv.ErrRange) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return v
	}
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
	v, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return float64(v)
}

// ParseList parses values separated by commas or whitespace.
func ParseList(s string) []float64 {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	out := make([]float64, len(fields))
	for i, f := range fields {
		out[i] = ParseValue(f)
	}
	return out
}

// ParseArgs parses command-line arguments, each of which may itself be a
// list ("1,3" "4 6").
func ParseArgs(args []string) []float64 {
	var out []float64
	for _, a := range args {
		out = append(out, ParseList(a)...)
	}
	return out
}

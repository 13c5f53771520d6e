package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// magnitudes for shorthand amounts like "2.5M"
var magnitudes = map[byte]float64{
	'k': 1e3,
	'm': 1e6,
	'b': 1e9,
}

// ParseAmount parses currency text as typed into a form: "$50,000", "2.5M", "(1,200)".
// Parentheses denote a negative amount.
func ParseAmount(s string) (float64, error) {
	raw := s
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmptyInput
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	if strings.HasPrefix(s, "-") {
		negative = !negative
		s = s[1:]
	}

	s = strings.TrimSpace(strings.TrimLeft(s, "$€£ "))
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "_", "")

	mult := 1.0
	if n := len(s); n > 0 {
		if m, ok := magnitudes[lower(s[n-1])]; ok {
			mult = m
			s = s[:n-1]
		}
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !finite(v*mult) {
		return 0, fmt.Errorf("invalid amount %q", raw)
	}
	if negative {
		v = -v
	}
	return v * mult, nil
}

// ParsePercent parses "5", "5%" or "7.5 %" into a 0-100 scale value.
func ParsePercent(s string) (float64, error) {
	raw := s
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if s == "" {
		return 0, ErrEmptyInput
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !finite(v) {
		return 0, fmt.Errorf("invalid percent %q", raw)
	}
	return v, nil
}

// ParseList parses a comma separated list of percents or amounts ("1, 2.5%, 5").
func ParseList(s string) ([]float64, error) {
	out := []float64{}
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		v, err := ParsePercent(part)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// finite rejects the NaN and Inf spellings strconv accepts.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

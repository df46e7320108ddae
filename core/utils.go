package core

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var ErrNotADecimal = errors.New("not a decimal number")

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// ParseDecimal parses a number written with either a dot or a comma as decimal separator ("12,50" == "12.50").
func ParseDecimal(s string) (float64, error) {
	s = strings.Replace(CleanString(s), ",", ".", 1)
	if s == "" {
		return 0, ErrNotADecimal
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.Wrapf(ErrNotADecimal, "%q", s)
	}
	return f, nil
}

package dashboard

import (
	"math"
	"strconv"
	"strings"
)

// toNumber parses a worksheet cell as a decimal number, tolerating
// surrounding whitespace and thousands-separator commas. Any cell that still
// fails to parse - empty, text, malformed - contributes 0.0 rather than an
// error: a bad cell must never abort a dashboard build, and downstream sums
// treat it the same as a textual zero.
func toNumber(v string) float64 {
	s := strings.TrimSpace(strings.ReplaceAll(v, ",", ""))

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0.0
	}

	return f
}

// roundTo rounds half away from zero to the given number of decimal places.
func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))

	return math.Round(v*scale) / scale
}

package utils

import (
	"math"
	"strconv"
	"strings"
)

// RoundFloat rounds a float64 to a specified number of decimal places.
func RoundFloat(val float64, precision uint) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}

// CoerceFloat best-effort converts a cell value to a float64, returning def
// unmodified on any failure. Field-level anomalies are absorbed here and
// never propagated.
func CoerceFloat(value string, def float64) float64 {
	s := strings.TrimSpace(value)
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}

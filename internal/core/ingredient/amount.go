// Package ingredient holds the leaf helpers of the meal prep pipeline:
// amount normalization and keyword-based categorization. Everything here
// is pure and side-effect free.
package ingredient

import (
	"math"
	"strconv"
	"strings"
)

// Amount is the tagged result of parsing a raw quantity. When Known is
// false the value is unusable (empty, non-numeric, or negative input) and
// contributes zero to any sum, but the owning ingredient still appears on
// the shopping list.
type Amount struct {
	Value float64
	Known bool
}

// unknownAmount is the unset sentinel.
var unknownAmount = Amount{}

// ParseAmount normalizes a raw quantity string into an Amount. Plain
// decimals ("250", "0.5") and simple fractions ("1/2") are accepted;
// anything else, including negative or non-finite values, yields the
// unset sentinel.
func ParseAmount(raw string) Amount {
	s := strings.TrimSpace(raw)
	if s == "" {
		return unknownAmount
	}

	if num, den, ok := strings.Cut(s, "/"); ok {
		n, errN := strconv.ParseFloat(strings.TrimSpace(num), 64)
		d, errD := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if errN != nil || errD != nil || d == 0 {
			return unknownAmount
		}
		return checkedAmount(n / d)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return unknownAmount
	}
	return checkedAmount(v)
}

func checkedAmount(v float64) Amount {
	if v < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return unknownAmount
	}
	return Amount{Value: v, Known: true}
}

// FormatAmount renders a summed amount back into a display string,
// trimming insignificant trailing zeros.
func FormatAmount(v float64) string {
	// guard against float drift on sums such as 0.1+0.2
	rounded := math.Round(v*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// NormalizeName canonicalizes an ingredient name for grouping. Display
// names keep their original casing; only the grouping key is folded.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NormalizeUnit canonicalizes a unit for grouping. Amounts are summed
// only when both normalized name and normalized unit match exactly; no
// cross-unit conversion (g vs kg, ml vs l) is ever attempted, so the
// same ingredient in two units stays as two shopping-list items.
func NormalizeUnit(unit string) string {
	return strings.ToLower(strings.TrimSpace(unit))
}

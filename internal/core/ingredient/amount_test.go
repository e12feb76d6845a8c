package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		value float64
		known bool
	}{
		{"integer", "250", 250, true},
		{"decimal", "0.5", 0.5, true},
		{"zero", "0", 0, true},
		{"padded", "  100  ", 100, true},
		{"fraction", "1/2", 0.5, true},
		{"fraction padded", "3 / 4", 0.75, true},
		{"empty", "", 0, false},
		{"whitespace only", "   ", 0, false},
		{"non numeric", "a pinch", 0, false},
		{"negative", "-3", 0, false},
		{"zero denominator", "1/0", 0, false},
		{"garbage fraction", "x/y", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmount(tt.raw)
			assert.Equal(t, tt.known, got.Known)
			if tt.known {
				assert.InDelta(t, tt.value, got.Value, 1e-9)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "250", FormatAmount(250))
	assert.Equal(t, "0.5", FormatAmount(0.5))
	assert.Equal(t, "550", FormatAmount(550))
	// float drift from repeated summation must not leak into display
	assert.Equal(t, "0.3", FormatAmount(0.1+0.2))
}

func TestNormalizeNameAndUnit(t *testing.T) {
	assert.Equal(t, "blueberries", NormalizeName("  Blueberries "))
	assert.Equal(t, "g", NormalizeUnit(" G "))
	// different units stay different keys, conversion is out of contract
	assert.NotEqual(t, NormalizeUnit("g"), NormalizeUnit("kg"))
}

package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestRoundUpIfNeeded(t *testing.T) {
	assert.Equal(t, 21.0, RoundUpIfNeeded(21))
	assert.Equal(t, 22.0, RoundUpIfNeeded(21.1))
	assert.Equal(t, -1.0, RoundUpIfNeeded(-1.5))
	assert.Equal(t, 0.0, RoundUpIfNeeded(0))
	assert.True(t, math.IsNaN(RoundUpIfNeeded(math.NaN())))
	assert.True(t, math.IsInf(RoundUpIfNeeded(math.Inf(1)), 1))
	assert.True(t, math.IsInf(RoundUpIfNeeded(math.Inf(-1)), -1))
}

func TestRoundUpIfNeededNoNegativeZero(t *testing.T) {
	for _, v := range []float64{-0.4, -0.99, math.Copysign(0, -1)} {
		got := RoundUpIfNeeded(v)
		assert.Equal(t, 0.0, got)
		assert.False(t, math.Signbit(got), "RoundUpIfNeeded(%v) kept the sign", v)
	}

	assert.Equal(t, "0°c", HandleTemp(Celsius, nil, ptr(-0.4)).Formatted)
	assert.Equal(t, "0°c", HandleTemp(Celsius, ptr(31.5), nil).Formatted)
	assert.Equal(t, "0% RH", FormatHumidity(ptr(-0.2)))
}

func TestFormatLux(t *testing.T) {
	tests := []struct {
		name string
		in   *float64
		want string
	}{
		{"missing", nil, "--"},
		{"nan", ptr(math.NaN()), "--"},
		{"inf", ptr(math.Inf(1)), "--"},
		{"zero", ptr(0), "0"},
		{"fraction", ptr(12.5), "13"},
		{"below thousand", ptr(999), "999"},
		{"thousand", ptr(1000), "1k"},
		{"one decimal", ptr(1500), "1.5k"},
		{"rounds to ten", ptr(9999), "10k"},
		{"over ten thousand", ptr(12345), "12k"},
		{"large", ptr(30000), "30k"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatLux(tc.in))
		})
	}
}

func TestFormatHumidity(t *testing.T) {
	assert.Equal(t, "", FormatHumidity(nil))
	assert.Equal(t, "45% RH", FormatHumidity(ptr(45)))
	assert.Equal(t, "46% RH", FormatHumidity(ptr(45.2)))
}

func TestHandleTemp(t *testing.T) {
	t.Run("prefers requested unit", func(t *testing.T) {
		got := HandleTemp(Celsius, ptr(90), ptr(21.5))
		require.NotNil(t, got.Temperature)
		assert.Equal(t, 21.5, *got.Temperature)
		assert.Equal(t, "22°c", got.Formatted)
	})

	t.Run("converts celsius when fahrenheit missing", func(t *testing.T) {
		got := HandleTemp(Fahrenheit, nil, ptr(20))
		require.NotNil(t, got.Temperature)
		assert.InDelta(t, 68.0, *got.Temperature, 1e-9)
		assert.Equal(t, "68°f", got.Formatted)
	})

	t.Run("converts fahrenheit when celsius missing", func(t *testing.T) {
		got := HandleTemp(Celsius, ptr(212), nil)
		require.NotNil(t, got.Temperature)
		assert.InDelta(t, 100.0, *got.Temperature, 1e-9)
		assert.Equal(t, "100°c", got.Formatted)
	})

	t.Run("defaults to fahrenheit", func(t *testing.T) {
		got := HandleTemp("", ptr(71.2), nil)
		assert.Equal(t, "72°f", got.Formatted)
	})

	t.Run("both missing", func(t *testing.T) {
		got := HandleTemp(Fahrenheit, nil, nil)
		assert.Nil(t, got.Temperature)
		assert.Equal(t, "--", got.Formatted)
	})
}

func TestOrNaN(t *testing.T) {
	assert.True(t, math.IsNaN(OrNaN(nil)))
	assert.Equal(t, 3.0, OrNaN(ptr(3)))
}

package health

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPM25ToAQI(t *testing.T) {
	tests := []struct {
		c    float64
		want int
	}{
		{-3, 0},
		{0, 0},
		{9.0, 50},
		{12.0, 56},
		{35.4, 100},
		{55.5, 151},
		{500, 500},
	}
	for _, tc := range tests {
		got, ok := PM25ToAQI(ptr(tc.c))
		assert.True(t, ok)
		assert.Equal(t, tc.want, got, "pm2.5 %v", tc.c)
	}

	_, ok := PM25ToAQI(nil)
	assert.False(t, ok)
	_, ok = PM25ToAQI(ptr(math.NaN()))
	assert.False(t, ok)
}

func TestAQICategory(t *testing.T) {
	assert.Equal(t, "Good", AQICategory(50))
	assert.Equal(t, "Moderate", AQICategory(51))
	assert.Equal(t, "Unhealthy for Sensitive Groups", AQICategory(150))
	assert.Equal(t, "Unhealthy", AQICategory(200))
	assert.Equal(t, "Very Unhealthy", AQICategory(300))
	assert.Equal(t, "Hazardous", AQICategory(301))
}

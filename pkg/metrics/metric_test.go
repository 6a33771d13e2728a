package metrics

import (
	"testing"

	"github.com/lintang-b-s/Pollutrace/pkg"
	"github.com/stretchr/testify/assert"
)

func TestCompositeIndex(t *testing.T) {
	testCases := []struct {
		name     string
		readings Readings
		expected int
	}{
		{name: "all zero", readings: NewReadings(0, 0, 0), expected: 0},
		{name: "exact division", readings: NewReadings(90, 90, 90), expected: 90},
		{name: "truncates", readings: NewReadings(100, 50, 10), expected: 48}, // 440/9
		{name: "co dominates", readings: NewReadings(0, 0, 45), expected: 20},
		{name: "no2 ignored", readings: NewReadingsWithNO2(90, 90, 90, 500), expected: 90},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CompositeIndex(tt.readings))
		})
	}
}

func TestCompositeIndexMonotonic(t *testing.T) {
	base := NewReadings(40, 60, 80)
	baseIndex := CompositeIndex(base)

	for delta := 0; delta < 50; delta++ {
		r := base
		r.PM25 += delta
		assert.GreaterOrEqual(t, CompositeIndex(r), baseIndex)

		r = base
		r.PM10 += delta
		assert.GreaterOrEqual(t, CompositeIndex(r), baseIndex)

		r = base
		r.CO += delta
		assert.GreaterOrEqual(t, CompositeIndex(r), baseIndex)
	}
}

func TestClassifyAnomalyBoundaries(t *testing.T) {
	testCases := []struct {
		aqi      int
		expected pkg.AnomalyTier
	}{
		{0, pkg.NORMAL},
		{99, pkg.NORMAL},
		{100, pkg.ELEVATED},
		{179, pkg.ELEVATED},
		{180, pkg.SEVERE},
		{500, pkg.SEVERE},
	}

	for _, tt := range testCases {
		assert.Equal(t, tt.expected, ClassifyAnomaly(tt.aqi), "aqi %d", tt.aqi)
	}
}

func TestDerive(t *testing.T) {
	aqi, tier := Derive(NewReadings(200, 200, 200))
	assert.Equal(t, 200, aqi)
	assert.Equal(t, pkg.SEVERE, tier)

	assert.False(t, NewReadings(-1, 0, 0).IsValid())
	assert.True(t, NewReadingsWithNO2(1, 2, 3, 4).IsValid())
}

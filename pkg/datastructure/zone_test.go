package datastructure

import (
	"errors"
	"testing"

	"github.com/lintang-b-s/Pollutrace/pkg"
	"github.com/lintang-b-s/Pollutrace/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZoneDerivesIndexAndTier(t *testing.T) {
	z := NewZone("Industrial", metrics.NewReadings(220, 180, 200), EAST)

	assert.Equal(t, "Industrial", z.GetName())
	assert.Equal(t, (220*3+180*2+200*4)/9, z.GetAQI())
	assert.Equal(t, pkg.SEVERE, z.GetTier())
	assert.Equal(t, EAST, z.GetWind())
}

func TestSetReadingsRecomputes(t *testing.T) {
	z := NewZone("Park", metrics.NewReadings(10, 10, 10), NORTH)
	require.Equal(t, pkg.NORMAL, z.GetTier())

	z.SetReadings(metrics.NewReadings(120, 120, 120))
	assert.Equal(t, 120, z.GetAQI())
	assert.Equal(t, pkg.ELEVATED, z.GetTier())
}

func TestZoneSetLookup(t *testing.T) {
	zs, err := NewZoneSet([]Zone{
		NewZone("Central", metrics.NewReadings(1, 1, 1), NORTH),
		NewZone("Harbor", metrics.NewReadings(1, 1, 1), SOUTH),
	})
	require.NoError(t, err)

	i, ok := zs.Lookup("  harbor ")
	assert.True(t, ok)
	assert.Equal(t, Index(1), i)

	_, ok = zs.Lookup("airport")
	assert.False(t, ok)

	assert.True(t, zs.Contains(1))
	assert.False(t, zs.Contains(2))
	assert.Equal(t, SOUTH, zs.GetWind(1))
}

func TestZoneSetDuplicate(t *testing.T) {
	_, err := NewZoneSet([]Zone{
		NewZone("Central", metrics.NewReadings(1, 1, 1), NORTH),
		NewZone("CENTRAL", metrics.NewReadings(1, 1, 1), SOUTH),
	})
	assert.True(t, errors.Is(err, ErrDuplicateZone))
}

func TestZoneSetIsolatedFromCaller(t *testing.T) {
	zones := []Zone{NewZone("A", metrics.NewReadings(1, 1, 1), NORTH)}
	zs, err := NewZoneSet(zones)
	require.NoError(t, err)

	zones[0].SetReadings(metrics.NewReadings(500, 500, 500))
	assert.Equal(t, pkg.NORMAL, zs.GetTier(0))

	out := zs.Zones()
	out[0].SetReadings(metrics.NewReadings(500, 500, 500))
	assert.Equal(t, pkg.NORMAL, zs.GetTier(0))
}

func TestEmptyZoneSet(t *testing.T) {
	zs, err := NewZoneSet(nil)
	require.NoError(t, err)
	assert.True(t, zs.IsEmpty())
	assert.Empty(t, zs.Zones())
}

func TestParseDirection(t *testing.T) {
	for _, s := range []string{"N", "s", " E ", "w"} {
		d, err := ParseDirection(s)
		require.NoError(t, err)
		assert.True(t, d.IsValid())
	}

	_, err := ParseDirection("X")
	assert.True(t, errors.Is(err, ErrInvalidDirection))
	_, err = ParseDirection("NE")
	assert.Error(t, err)
}

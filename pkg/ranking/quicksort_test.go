package ranking

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	da "github.com/lintang-b-s/Pollutrace/pkg/datastructure"
	"github.com/lintang-b-s/Pollutrace/pkg/metrics"
	"github.com/stretchr/testify/assert"
)

func zone(name string, aqi int) da.Zone {
	// pm25 = pm10 = co = aqi gives composite index aqi
	return da.NewZone(name, metrics.NewReadings(aqi, aqi, aqi), da.NORTH)
}

func names(zones []da.Zone) []string {
	out := make([]string, len(zones))
	for i := range zones {
		out[i] = zones[i].GetName()
	}
	return out
}

func TestRankZones(t *testing.T) {
	testCases := []struct {
		name     string
		zones    []da.Zone
		expected []string
	}{
		{name: "empty", zones: nil, expected: []string{}},
		{name: "single", zones: []da.Zone{zone("A", 50)}, expected: []string{"A"}},
		{
			name:     "unordered",
			zones:    []da.Zone{zone("A", 50), zone("B", 200), zone("C", 120), zone("D", 10)},
			expected: []string{"B", "C", "A", "D"},
		},
		{
			name:     "already descending",
			zones:    []da.Zone{zone("A", 300), zone("B", 200), zone("C", 100)},
			expected: []string{"A", "B", "C"},
		},
		{
			name:     "ascending",
			zones:    []da.Zone{zone("A", 1), zone("B", 2), zone("C", 3)},
			expected: []string{"C", "B", "A"},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, names(RankZones(tt.zones)))
		})
	}
}

func TestRankZonesPermutationAndOrder(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	zones := make([]da.Zone, 200)
	for i := range zones {
		zones[i] = zone(fmt.Sprintf("z%d", i), rnd.Intn(250))
	}
	before := names(zones)

	ranked := RankZones(zones)
	assert.True(t, IsRanked(ranked))

	got := names(ranked)
	sort.Strings(got)
	want := append([]string(nil), before...)
	sort.Strings(want)
	assert.Equal(t, want, got)

	// input untouched
	assert.Equal(t, before, names(zones))

	again := RankZones(ranked)
	assert.True(t, IsRanked(again))
	for i := range again {
		assert.Equal(t, ranked[i].GetAQI(), again[i].GetAQI())
	}
}

func TestRankZonesWithTies(t *testing.T) {
	ranked := RankZones([]da.Zone{zone("A", 5), zone("B", 5), zone("C", 9), zone("D", 5)})
	assert.True(t, IsRanked(ranked))
	assert.Equal(t, "C", ranked[0].GetName())
	assert.ElementsMatch(t, []string{"A", "B", "D"}, names(ranked[1:]))
}

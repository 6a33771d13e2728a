// Package ranking orders zones by severity.
package ranking

import (
	da "github.com/lintang-b-s/Pollutrace/pkg/datastructure"
)

// RankZones returns a copy of zones sorted by composite index, highest first.
// quicksort with lomuto partition (pivot = last element), so the order of zones with equal index is
// not stable.
func RankZones(zones []da.Zone) []da.Zone {
	ranked := make([]da.Zone, len(zones))
	copy(ranked, zones)
	quickSort(ranked)
	return ranked
}

type span struct {
	low, high int
}

func quickSort(a []da.Zone) {
	stack := []span{{0, len(a) - 1}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.low >= s.high {
			continue
		}

		p := partition(a, s.low, s.high)
		stack = append(stack, span{p + 1, s.high}, span{s.low, p - 1})
	}
}

// partition moves every zone with index strictly greater than the pivot to the left.
func partition(a []da.Zone, low, high int) int {
	pivot := a[high].GetAQI()
	i := low - 1
	for j := low; j < high; j++ {
		if a[j].GetAQI() > pivot {
			i++
			a[i], a[j] = a[j], a[i]
		}
	}
	a[i+1], a[high] = a[high], a[i+1]
	return i + 1
}

// IsRanked reports whether zones are in non-increasing index order.
func IsRanked(zones []da.Zone) bool {
	for i := 1; i < len(zones); i++ {
		if zones[i-1].GetAQI() < zones[i].GetAQI() {
			return false
		}
	}
	return true
}

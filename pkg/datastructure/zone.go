package datastructure

import (
	"errors"
	"fmt"
	"math"

	"github.com/lintang-b-s/Pollutrace/pkg"
	"github.com/lintang-b-s/Pollutrace/pkg/metrics"
	"github.com/lintang-b-s/Pollutrace/pkg/util"
)

type Index uint32

const INVALID_ZONE_INDEX Index = math.MaxUint32

var (
	ErrDuplicateZone       = errors.New("duplicate zone name")
	ErrZoneIndexOutOfRange = errors.New("zone index out of range")
	ErrSourceNotFound      = errors.New("source zone not found")
)

// Zone is a monitored unit. aqi & tier are always derived from readings.
type Zone struct {
	name     string
	readings metrics.Readings
	wind     Direction
	aqi      int
	tier     pkg.AnomalyTier
}

func NewZone(name string, readings metrics.Readings, wind Direction) Zone {
	z := Zone{name: name, wind: wind}
	z.SetReadings(readings)
	return z
}

// SetReadings replaces the raw readings and recomputes the composite index & anomaly tier.
func (z *Zone) SetReadings(readings metrics.Readings) {
	z.readings = readings
	z.aqi, z.tier = metrics.Derive(readings)
}

func (z *Zone) GetName() string {
	return z.name
}

func (z *Zone) GetReadings() metrics.Readings {
	return z.readings
}

func (z *Zone) GetWind() Direction {
	return z.wind
}

func (z *Zone) GetAQI() int {
	return z.aqi
}

func (z *Zone) GetTier() pkg.AnomalyTier {
	return z.tier
}

// ZoneSet is the read-only, ordered zone collection every algorithm works on. The position of a
// zone is its stable Index.
type ZoneSet struct {
	zones  []Zone
	byName map[string]Index
}

func NewZoneSet(zones []Zone) (*ZoneSet, error) {
	zs := &ZoneSet{
		zones:  make([]Zone, len(zones)),
		byName: make(map[string]Index, len(zones)),
	}
	copy(zs.zones, zones)

	for i, z := range zs.zones {
		key := util.NormalizeName(z.name)
		if _, ok := zs.byName[key]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateZone, z.name)
		}
		zs.byName[key] = Index(i)
	}
	return zs, nil
}

func (zs *ZoneSet) Len() int {
	if zs == nil {
		return 0
	}
	return len(zs.zones)
}

func (zs *ZoneSet) IsEmpty() bool {
	return zs.Len() == 0
}

func (zs *ZoneSet) Contains(i Index) bool {
	return int(i) < zs.Len()
}

// GetZone returns a copy of the zone at i. callers must check Contains first.
func (zs *ZoneSet) GetZone(i Index) Zone {
	return zs.zones[i]
}

func (zs *ZoneSet) GetName(i Index) string {
	return zs.zones[i].name
}

func (zs *ZoneSet) GetWind(i Index) Direction {
	return zs.zones[i].wind
}

func (zs *ZoneSet) GetTier(i Index) pkg.AnomalyTier {
	return zs.zones[i].tier
}

// Zones returns a copy of the zones in input order.
func (zs *ZoneSet) Zones() []Zone {
	out := make([]Zone, zs.Len())
	if zs != nil {
		copy(out, zs.zones)
	}
	return out
}

// Lookup resolves a zone name case-insensitively.
func (zs *ZoneSet) Lookup(name string) (Index, bool) {
	if zs == nil {
		return INVALID_ZONE_INDEX, false
	}
	i, ok := zs.byName[util.NormalizeName(name)]
	if !ok {
		return INVALID_ZONE_INDEX, false
	}
	return i, true
}

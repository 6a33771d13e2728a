package metrics

import (
	"github.com/lintang-b-s/Pollutrace/pkg"
)

// Readings are the raw pollutant measures of a zone. NO2 is carried when the sensor reports it,
// it does not contribute to the composite index.
type Readings struct {
	PM25   int
	PM10   int
	CO     int
	NO2    int
	HasNO2 bool
}

func NewReadings(pm25, pm10, co int) Readings {
	return Readings{PM25: pm25, PM10: pm10, CO: co}
}

func NewReadingsWithNO2(pm25, pm10, co, no2 int) Readings {
	return Readings{PM25: pm25, PM10: pm10, CO: co, NO2: no2, HasNO2: true}
}

// IsValid reports whether every measure is non-negative.
func (r Readings) IsValid() bool {
	return r.PM25 >= 0 && r.PM10 >= 0 && r.CO >= 0 && r.NO2 >= 0
}

// CompositeIndex. weighted sum of pm2.5, pm10 & co with weights (3, 2, 4) divided by 9, truncated.
func CompositeIndex(r Readings) int {
	return (r.PM25*pkg.PM25_WEIGHT + r.PM10*pkg.PM10_WEIGHT + r.CO*pkg.CO_WEIGHT) / pkg.AQI_WEIGHT_DIVSOR
}

func ClassifyAnomaly(aqi int) pkg.AnomalyTier {
	if aqi < pkg.ELEVATED_AQI_THRESHOLD {
		return pkg.NORMAL
	} else if aqi < pkg.SEVERE_AQI_THRESHOLD {
		return pkg.ELEVATED
	}
	return pkg.SEVERE
}

func Derive(r Readings) (int, pkg.AnomalyTier) {
	aqi := CompositeIndex(r)
	return aqi, ClassifyAnomaly(aqi)
}

package pkg

// enum of anomaly tier
type AnomalyTier uint8

const (
	NORMAL AnomalyTier = iota
	ELEVATED
	SEVERE
)

func (t AnomalyTier) String() string {
	switch t {
	case NORMAL:
		return "normal"
	case ELEVATED:
		return "elevated"
	case SEVERE:
		return "severe"
	default:
		return "unknown"
	}
}

const (
	// composite index weights for pm2.5, pm10 & co.
	PM25_WEIGHT       = 3
	PM10_WEIGHT       = 2
	CO_WEIGHT         = 4
	AQI_WEIGHT_DIVSOR = PM25_WEIGHT + PM10_WEIGHT + CO_WEIGHT

	ELEVATED_AQI_THRESHOLD = 100
	SEVERE_AQI_THRESHOLD   = 180
)

const (
	// propagation strength is a percentage
	SOURCE_STRENGTH       = 100
	PROPAGATION_THRESHOLD = 30 // a branch keeps spreading only while strength > PROPAGATION_THRESHOLD

	TRANSFER_ALIGNED       = 100
	TRANSFER_PERPENDICULAR = 50
	TRANSFER_OPPOSING      = 20
)

const (
	NORMAL_PENALTY   = 0
	ELEVATED_PENALTY = -20
	SEVERE_PENALTY   = -50
)

const (
	INF_WEIGHT     float64 = 1e15
	INF_WEIGHT_INT         = int(1e15)
)

const (
	DEFAULT_TRACE_CACHE_SIZE = 1024
	DEFAULT_WORKERS          = 4
)

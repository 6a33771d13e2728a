package usecases

import (
	"context"
	"errors"
	"time"

	da "github.com/lintang-b-s/Pollutrace/pkg/datastructure"
	"github.com/lintang-b-s/Pollutrace/pkg/engine"
	"github.com/lintang-b-s/Pollutrace/pkg/engine/propagation"
	"github.com/lintang-b-s/Pollutrace/pkg/engine/routing"
	"github.com/lintang-b-s/Pollutrace/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var (
	queryTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pollutrace_queries_total",
		Help: "Total zone queries by kind and result",
	}, []string{"kind", "result"})

	queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pollutrace_query_duration_seconds",
		Help:    "Zone query duration by kind",
		Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
	}, []string{"kind"})

	traceLength = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pollutrace_trace_zones",
		Help:    "Number of zones reached by a propagation trace",
		Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
	})
)

type ZoneService struct {
	log    *zap.Logger
	engine ZoneEngine
}

func NewZoneService(log *zap.Logger, engine ZoneEngine) *ZoneService {
	return &ZoneService{
		log:    log,
		engine: engine,
	}
}

func observe(kind string, start time.Time, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	queryTotal.WithLabelValues(kind, result).Inc()
	queryDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}

func (zs *ZoneService) RankZones() []da.Zone {
	start := time.Now()
	zones := zs.engine.Rank()
	observe("rank", start, nil)
	return zones
}

func (zs *ZoneService) GetZone(name string) (da.Zone, error) {
	zone, err := zs.engine.LookupZone(name)
	if err != nil {
		return da.Zone{}, zs.wrap(err, "zone %q", name)
	}
	return zone, nil
}

func (zs *ZoneService) Trace(modeName, source string) (propagation.Mode, []propagation.Step, error) {
	start := time.Now()
	mode, steps, err := zs.trace(modeName, source)
	observe("trace", start, err)
	if err == nil {
		traceLength.Observe(float64(len(steps)))
	}
	return mode, steps, err
}

func (zs *ZoneService) trace(modeName, source string) (propagation.Mode, []propagation.Step, error) {
	mode, err := propagation.ParseMode(modeName)
	if err != nil {
		return mode, nil, zs.wrap(err, "mode %q", modeName)
	}
	if zs.engine.GetZones().IsEmpty() {
		return mode, []propagation.Step{}, nil
	}
	src, err := zs.engine.Resolve(source)
	if err != nil {
		return mode, nil, zs.wrap(err, "source zone %q", source)
	}
	steps, err := zs.engine.Trace(mode, src)
	if err != nil {
		return mode, nil, zs.wrap(err, "trace from %q", source)
	}
	return mode, steps, nil
}

// TraceMany traces several named sources in parallel.
func (zs *ZoneService) TraceMany(ctx context.Context, modeName string, sources []string) (propagation.Mode,
	[][]propagation.Step, error) {
	mode, err := propagation.ParseMode(modeName)
	if err != nil {
		return mode, nil, zs.wrap(err, "mode %q", modeName)
	}
	indices := make([]da.Index, len(sources))
	for i, name := range sources {
		indices[i], err = zs.engine.Resolve(name)
		if err != nil {
			return mode, nil, zs.wrap(err, "source zone %q", name)
		}
	}

	start := time.Now()
	traces, err := zs.engine.TraceMany(ctx, mode, indices)
	observe("trace_many", start, err)
	if err != nil {
		return mode, nil, zs.wrap(err, "trace many")
	}
	return mode, traces, nil
}

func (zs *ZoneService) Penalized(source string) (*routing.PenalizedResult, error) {
	start := time.Now()
	res, err := zs.penalized(source)
	observe("penalized", start, err)
	return res, err
}

func (zs *ZoneService) penalized(source string) (*routing.PenalizedResult, error) {
	src, err := zs.resolveSource(source)
	if err != nil {
		return nil, err
	}
	res, err := zs.engine.Penalized(src)
	if err != nil {
		return nil, zs.wrap(err, "penalized routes from %q", source)
	}
	return res, nil
}

// Constrained routes from source around the zones blocked by a penalized solve from penaltySource
// (source itself when empty) plus the explicitly blocked zones.
func (zs *ZoneService) Constrained(source, penaltySource string, blocked []string) (*routing.ConstrainedResult,
	[]string, error) {
	start := time.Now()
	res, set, err := zs.constrained(source, penaltySource, blocked)
	observe("constrained", start, err)
	if err != nil {
		return nil, nil, err
	}

	zones := zs.engine.GetZones()
	names := make([]string, 0, set.Len())
	for _, z := range set.Sorted() {
		names = append(names, zones.GetName(z))
	}
	return res, names, nil
}

func (zs *ZoneService) constrained(source, penaltySource string, blocked []string) (*routing.ConstrainedResult,
	da.BlockedSet, error) {
	if penaltySource == "" {
		penaltySource = source
	}
	src, err := zs.resolveSource(source)
	if err != nil {
		return nil, nil, err
	}
	penSrc, err := zs.resolveSource(penaltySource)
	if err != nil {
		return nil, nil, err
	}
	extra := da.NewBlockedSet()
	for _, name := range blocked {
		z, err := zs.engine.Resolve(name)
		if err != nil {
			return nil, nil, zs.wrap(err, "blocked zone %q", name)
		}
		extra.Add(z)
	}

	res, set, err := zs.engine.ConstrainedAfterPenalized(src, penSrc, extra)
	if err != nil {
		return nil, nil, zs.wrap(err, "constrained routes from %q", source)
	}
	if res.Aborted() {
		zs.log.Info("routing aborted", zap.String("source", source))
	}
	return res, set, nil
}

func (zs *ZoneService) DetectSpike() bool {
	start := time.Now()
	spike := zs.engine.DetectSpike()
	observe("spike", start, nil)
	return spike
}

// resolveSource maps a zone name to its index. an empty zone set resolves to index 0 so the
// solvers can return their empty results.
func (zs *ZoneService) resolveSource(name string) (da.Index, error) {
	if zs.engine.GetZones().IsEmpty() {
		return 0, nil
	}
	idx, err := zs.engine.Resolve(name)
	if err != nil {
		return da.INVALID_ZONE_INDEX, zs.wrap(err, "source zone %q", name)
	}
	return idx, nil
}

// wrap attaches the http facing code of err.
func (zs *ZoneService) wrap(err error, format string, a ...interface{}) error {
	code := util.ErrInternalServerError
	switch {
	case errors.Is(err, engine.ErrZoneNotFound):
		code = util.ErrNotFound
	case errors.Is(err, propagation.ErrUnknownMode),
		errors.Is(err, da.ErrSourceNotFound),
		errors.Is(err, da.ErrZoneIndexOutOfRange),
		errors.Is(err, routing.ErrNegativeWeight),
		errors.Is(err, routing.ErrGraphMismatch):
		code = util.ErrBadParamInput
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		code = util.ErrBadParamInput
	default:
		zs.log.Error("zone query failed", zap.Error(err))
	}
	return util.WrapErrorf(err, code, format, a...)
}

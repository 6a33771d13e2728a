package engine

import (
	"context"
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lintang-b-s/Pollutrace/pkg"
	"github.com/lintang-b-s/Pollutrace/pkg/concurrent"
	"github.com/lintang-b-s/Pollutrace/pkg/costfunction"
	"github.com/lintang-b-s/Pollutrace/pkg/csvparser"
	da "github.com/lintang-b-s/Pollutrace/pkg/datastructure"
	"github.com/lintang-b-s/Pollutrace/pkg/engine/propagation"
	"github.com/lintang-b-s/Pollutrace/pkg/engine/routing"
	"github.com/lintang-b-s/Pollutrace/pkg/ranking"
	"github.com/lintang-b-s/Pollutrace/pkg/util"
	"go.uber.org/zap"
)

var ErrZoneNotFound = errors.New("zone not found")

type Options struct {
	TraceCacheSize int
	Workers        int
}

func DefaultOptions() Options {
	return Options{
		TraceCacheSize: pkg.DEFAULT_TRACE_CACHE_SIZE,
		Workers:        pkg.DEFAULT_WORKERS,
	}
}

// Files names the csv inputs of an engine. Routes may be empty, the routing graph then has no arcs.
type Files struct {
	Zones          string
	Links          string
	Network        string
	Routes         string
	RoutesDirected bool
}

type traceKey struct {
	mode   propagation.Mode
	source da.Index
}

// Engine ties the zone set to the propagation tracer and both path solvers. it is read-only after
// construction and safe for concurrent use.
type Engine struct {
	zones         *da.ZoneSet
	ranked        []da.Zone
	tracer        *propagation.Tracer
	routingEngine *routing.RoutingEngine
	traceCache    *lru.Cache[traceKey, []propagation.Step]
	workers       int
	logger        *zap.Logger
}

func NewEngine(zones *da.ZoneSet, links, network []da.Edge, routes *da.WeightedGraph, opts Options,
	logger *zap.Logger) (*Engine, error) {
	n := zones.Len()

	graph, err := da.NewPropagationGraphFromEdges(n, links)
	if err != nil {
		return nil, fmt.Errorf("propagation links: %w", err)
	}
	tracer, err := propagation.NewTracer(graph, zones, costfunction.NewTransferModel())
	if err != nil {
		return nil, err
	}

	routingEngine, err := routing.NewRoutingEngine(zones, network, routes, costfunction.NewPenaltyCostFunction(), logger)
	if err != nil {
		return nil, fmt.Errorf("routing network: %w", err)
	}

	var traceCache *lru.Cache[traceKey, []propagation.Step]
	if opts.TraceCacheSize > 0 {
		traceCache, err = lru.New[traceKey, []propagation.Step](opts.TraceCacheSize)
		if err != nil {
			return nil, err
		}
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	logger.Info("engine ready",
		zap.Int("zones", n),
		zap.Int("links", len(links)),
		zap.Int("networkEdges", len(network)),
		zap.Int("routeEdges", routingEngine.GetRoutes().NumberOfEdges()))

	return &Engine{
		zones:         zones,
		ranked:        ranking.RankZones(zones.Zones()),
		tracer:        tracer,
		routingEngine: routingEngine,
		traceCache:    traceCache,
		workers:       workers,
		logger:        logger,
	}, nil
}

// NewEngineFromFiles reads every csv input and builds the engine.
func NewEngineFromFiles(files Files, opts Options, logger *zap.Logger) (*Engine, error) {
	parser := csvparser.NewCSVParser(logger)

	logger.Info("reading zones from ", zap.String("zonesFilePath", files.Zones))
	zoneList, err := parser.ReadZones(files.Zones)
	if err != nil {
		return nil, err
	}
	zones, err := da.NewZoneSet(zoneList)
	if err != nil {
		return nil, err
	}

	links, err := parser.ReadEdges(files.Links, zones)
	if err != nil {
		return nil, err
	}
	network, err := parser.ReadEdges(files.Network, zones)
	if err != nil {
		return nil, err
	}

	var routes *da.WeightedGraph
	if files.Routes != "" {
		routeEdges, err := parser.ReadEdges(files.Routes, zones)
		if err != nil {
			return nil, err
		}
		routes, err = da.NewWeightedGraphFromEdges(zones.Len(), routeEdges, files.RoutesDirected)
		if err != nil {
			return nil, err
		}
	}

	return NewEngine(zones, links, network, routes, opts, logger)
}

func (e *Engine) GetZones() *da.ZoneSet {
	return e.zones
}

// Rank returns the zones by descending composite index.
func (e *Engine) Rank() []da.Zone {
	out := make([]da.Zone, len(e.ranked))
	copy(out, e.ranked)
	return out
}

func (e *Engine) Resolve(name string) (da.Index, error) {
	idx, ok := e.zones.Lookup(name)
	if !ok {
		return da.INVALID_ZONE_INDEX, fmt.Errorf("%w: %q", ErrZoneNotFound, name)
	}
	return idx, nil
}

func (e *Engine) LookupZone(name string) (da.Zone, error) {
	idx, err := e.Resolve(name)
	if err != nil {
		return da.Zone{}, err
	}
	return e.zones.GetZone(idx), nil
}

// Trace follows decaying pollution outward from source.
func (e *Engine) Trace(mode propagation.Mode, source da.Index) ([]propagation.Step, error) {
	if e.zones.IsEmpty() {
		return []propagation.Step{}, nil
	}

	key := traceKey{mode: mode, source: source}
	if e.traceCache != nil {
		if cached, ok := e.traceCache.Get(key); ok {
			return copySteps(cached), nil
		}
	}

	steps, err := e.tracer.Trace(mode, source)
	if err != nil {
		return nil, err
	}

	if e.traceCache != nil {
		e.traceCache.Add(key, copySteps(steps))
	}
	e.logger.Debug("trace computed",
		zap.String("mode", mode.String()),
		zap.String("source", e.zones.GetName(source)),
		zap.Int("zones", len(steps)))
	return steps, nil
}

type traceOutcome struct {
	steps []propagation.Step
	err   error
}

// TraceMany traces every source on the worker pool. results keep the order of sources.
func (e *Engine) TraceMany(ctx context.Context, mode propagation.Mode, sources []da.Index) ([][]propagation.Step, error) {
	outcomes, err := concurrent.Map(ctx, e.workers, sources, func(ctx context.Context, source da.Index) traceOutcome {
		if util.StopConcurrentOperation(ctx) {
			return traceOutcome{err: ctx.Err()}
		}
		steps, err := e.Trace(mode, source)
		return traceOutcome{steps: steps, err: err}
	})
	if err != nil {
		return nil, err
	}

	traces := make([][]propagation.Step, len(outcomes))
	for i, o := range outcomes {
		if o.err != nil {
			return nil, fmt.Errorf("source %d: %w", sources[i], o.err)
		}
		traces[i] = o.steps
	}
	return traces, nil
}

func (e *Engine) Penalized(source da.Index) (*routing.PenalizedResult, error) {
	return e.routingEngine.PenalizedShortestPaths(source)
}

func (e *Engine) Constrained(source da.Index, blocked da.BlockedSet) (*routing.ConstrainedResult, error) {
	return e.routingEngine.ConstrainedShortestPaths(source, blocked)
}

// ConstrainedAfterPenalized runs the penalized solve from penaltySource and routes from source
// around the zones it blocked. extra zones are blocked as well.
func (e *Engine) ConstrainedAfterPenalized(source, penaltySource da.Index, extra da.BlockedSet) (*routing.ConstrainedResult,
	da.BlockedSet, error) {
	blocked := da.NewBlockedSet()
	if !e.zones.IsEmpty() {
		penalized, err := e.routingEngine.PenalizedShortestPaths(penaltySource)
		if err != nil {
			return nil, nil, err
		}
		blocked = penalized.Blocked()
	}
	for z := range extra {
		blocked.Add(z)
	}

	res, err := e.routingEngine.ConstrainedShortestPaths(source, blocked)
	if err != nil {
		return nil, nil, err
	}
	return res, blocked, nil
}

func (e *Engine) DetectSpike() bool {
	return e.routingEngine.DetectSpike()
}

func copySteps(steps []propagation.Step) []propagation.Step {
	out := make([]propagation.Step, len(steps))
	copy(out, steps)
	return out
}

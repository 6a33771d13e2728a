package routing

import (
	"fmt"

	da "github.com/lintang-b-s/Pollutrace/pkg/datastructure"
	"go.uber.org/zap"
)

// RoutingEngine owns the read-only inputs of both solvers: the zone set, the directed edge list
// scanned by Bellman-Ford and the weighted graph searched by Dijkstra.
type RoutingEngine struct {
	zones        *da.ZoneSet
	network      []da.Edge
	routes       *da.WeightedGraph
	costFunction CostFunction
	logger       *zap.Logger
}

func NewRoutingEngine(zones *da.ZoneSet, network []da.Edge, routes *da.WeightedGraph,
	costFunction CostFunction, logger *zap.Logger) (*RoutingEngine, error) {
	if err := da.ValidateEdges(network, zones.Len()); err != nil {
		return nil, err
	}
	if routes == nil {
		routes = da.NewWeightedGraph(zones.Len(), true)
	}
	if routes.NumberOfZones() != zones.Len() {
		return nil, fmt.Errorf("%w: graph has %d zones, zone set has %d", ErrGraphMismatch,
			routes.NumberOfZones(), zones.Len())
	}

	edges := make([]da.Edge, len(network))
	copy(edges, network)

	return &RoutingEngine{
		zones:        zones,
		network:      edges,
		routes:       routes,
		costFunction: costFunction,
		logger:       logger,
	}, nil
}

func (re *RoutingEngine) GetZones() *da.ZoneSet {
	return re.zones
}

func (re *RoutingEngine) GetRoutes() *da.WeightedGraph {
	return re.routes
}

func (re *RoutingEngine) NumberOfNetworkEdges() int {
	return len(re.network)
}

// PenalizedShortestPaths runs the anomaly-penalized Bellman-Ford from source.
func (re *RoutingEngine) PenalizedShortestPaths(source da.Index) (*PenalizedResult, error) {
	return NewBellmanFord(re).ShortestPath(source)
}

// ConstrainedShortestPaths runs Dijkstra from source, never entering a blocked zone.
func (re *RoutingEngine) ConstrainedShortestPaths(source da.Index, blocked da.BlockedSet) (*ConstrainedResult, error) {
	return NewDijkstra(re).ShortestPath(source, blocked)
}

// DetectSpike reports whether the penalized network contains a negative cycle.
func (re *RoutingEngine) DetectSpike() bool {
	return NewBellmanFord(re).DetectSpike()
}

func (re *RoutingEngine) checkSource(source da.Index) (bool, error) {
	if re.zones.IsEmpty() {
		return false, nil
	}
	if !re.zones.Contains(source) {
		return false, fmt.Errorf("%w: index %d", da.ErrSourceNotFound, source)
	}
	return true, nil
}

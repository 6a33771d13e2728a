package routing

import (
	"github.com/lintang-b-s/Pollutrace/pkg"
	da "github.com/lintang-b-s/Pollutrace/pkg/datastructure"
	"go.uber.org/zap"
)

// BellmanFord relaxes the directed network edges with costs adjusted by the head zone's anomaly
// tier. severe heads are recorded as blocked while relaxing.
type BellmanFord struct {
	engine *RoutingEngine
}

func NewBellmanFord(engine *RoutingEngine) *BellmanFord {
	return &BellmanFord{engine: engine}
}

// ShortestPath runs at most |V|-1 rounds over the network in input order, stopping after a round
// that changes nothing. negative cycles are not detected here; on such inputs the distances are
// only relaxed for the fixed number of rounds.
func (bf *BellmanFord) ShortestPath(source da.Index) (*PenalizedResult, error) {
	zones := bf.engine.zones
	ok, err := bf.engine.checkSource(source)
	if err != nil {
		return nil, err
	}
	res := newPenalizedResult(source, zones)
	if !ok {
		return res, nil
	}

	res.dist[source] = 0
	res.reached[source] = true

	n := zones.Len()
	rounds := 0
	for round := 1; round < n; round++ {
		rounds++
		if !bf.relaxAll(res) {
			// a quiet round scans the same edges from the same reached zones again
			break
		}
	}

	bf.engine.logger.Debug("penalized solve done",
		zap.String("source", zones.GetName(source)),
		zap.Int("rounds", rounds),
		zap.Int("blocked", res.blocked.Len()))

	return res, nil
}

func (bf *BellmanFord) relaxAll(res *PenalizedResult) bool {
	zones := bf.engine.zones
	changed := false
	for _, e := range bf.engine.network {
		if !res.reached[e.From] {
			continue
		}
		headTier := zones.GetTier(e.To)
		if headTier == pkg.SEVERE {
			res.blocked.Add(e.To)
		}

		cost := res.dist[e.From] + bf.engine.costFunction.GetWeight(e, headTier)
		if !res.reached[e.To] || cost < res.dist[e.To] {
			res.dist[e.To] = cost
			res.reached[e.To] = true
			res.parent[e.To] = e.From
			changed = true
		}
	}
	return changed
}

// DetectSpike starts every zone at distance 0, runs |V|-1 penalized rounds and then reports
// whether one more pass still lowers any distance, which means the network has a negative cycle.
func (bf *BellmanFord) DetectSpike() bool {
	zones := bf.engine.zones
	n := zones.Len()
	if n == 0 {
		return false
	}

	dist := make([]int, n)
	relax := func() bool {
		changed := false
		for _, e := range bf.engine.network {
			cost := dist[e.From] + bf.engine.costFunction.GetWeight(e, zones.GetTier(e.To))
			if cost < dist[e.To] {
				dist[e.To] = cost
				changed = true
			}
		}
		return changed
	}

	for round := 1; round < n; round++ {
		if !relax() {
			return false
		}
	}
	spike := relax()
	if spike {
		bf.engine.logger.Info("negative cycle found in penalized network", zap.Int("zones", n))
	}
	return spike
}

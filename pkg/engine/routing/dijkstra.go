package routing

import (
	"fmt"

	da "github.com/lintang-b-s/Pollutrace/pkg/datastructure"
	"go.uber.org/zap"
)

// Dijkstra searches the routing graph from a source without entering or expanding blocked zones.
type Dijkstra struct {
	engine *RoutingEngine

	nodes []*da.PriorityQueueNode[da.Index]
	pq    *da.MinHeap[da.Index]

	numSettledZones int
}

func NewDijkstra(engine *RoutingEngine) *Dijkstra {
	return &Dijkstra{
		engine:          engine,
		nodes:           make([]*da.PriorityQueueNode[da.Index], 0),
		pq:              da.NewFourAryHeap[da.Index](),
		numSettledZones: 0,
	}
}

func (us *Dijkstra) Preallocate() {
	n := us.engine.zones.Len()
	us.nodes = make([]*da.PriorityQueueNode[da.Index], n)
	us.pq.Clear()
	us.pq.Preallocate(n)
	us.numSettledZones = 0
}

// ShortestPath computes single-source costs to every zone. a blocked source aborts the search,
// blocked zones end with StatusBlocked and never show up on another zone's path.
func (us *Dijkstra) ShortestPath(source da.Index, blocked da.BlockedSet) (*ConstrainedResult, error) {
	zones := us.engine.zones
	ok, err := us.engine.checkSource(source)
	if err != nil {
		return nil, err
	}
	if !ok {
		return newConstrainedResult(source, zones), nil
	}
	if blocked.Contains(source) {
		us.engine.logger.Info("routing aborted, source zone is blocked",
			zap.String("source", zones.GetName(source)))
		return newAbortedResult(source), nil
	}

	for z := range blocked {
		if !zones.Contains(z) {
			return nil, fmt.Errorf("%w: blocked zone %d with %d zones", da.ErrZoneIndexOutOfRange, z, zones.Len())
		}
	}
	if us.engine.routes.HasNegativeWeight() {
		return nil, ErrNegativeWeight
	}

	res := newConstrainedResult(source, zones)
	for z := range blocked {
		res.status[z] = StatusBlocked
	}

	us.Preallocate()
	res.dist[source] = 0
	res.status[source] = StatusReachable
	us.nodes[source] = da.NewPriorityQueueNode(0, source)
	us.pq.Insert(us.nodes[source])

	for !us.pq.IsEmpty() {
		if err := us.settle(res, blocked); err != nil {
			return nil, err
		}
		us.numSettledZones++
	}

	us.engine.logger.Debug("constrained solve done",
		zap.String("source", zones.GetName(source)),
		zap.Int("settled", us.numSettledZones),
		zap.Int("blocked", blocked.Len()))

	return res, nil
}

func (us *Dijkstra) settle(res *ConstrainedResult, blocked da.BlockedSet) error {
	node, err := us.pq.ExtractMin()
	if err != nil {
		return err
	}
	u := node.GetItem()
	du := node.GetRank()

	var relaxErr error
	us.engine.routes.ForOutArcsOf(u, func(a da.Arc) {
		v := a.GetHead()
		if relaxErr != nil || blocked.Contains(v) {
			return
		}

		newDist := du + a.GetWeight()
		if newDist >= res.dist[v] {
			return
		}
		res.dist[v] = newDist
		res.status[v] = StatusReachable
		res.parent[v] = u

		if us.nodes[v] == nil {
			us.nodes[v] = da.NewPriorityQueueNode(newDist, v)
			us.pq.Insert(us.nodes[v])
			return
		}
		relaxErr = us.pq.DecreaseKey(us.nodes[v], newDist)
	})
	return relaxErr
}

func (us *Dijkstra) GetNumSettledZones() int {
	return us.numSettledZones
}

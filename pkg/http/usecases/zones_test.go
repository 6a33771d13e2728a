package usecases

import (
	"context"
	"testing"

	da "github.com/lintang-b-s/Pollutrace/pkg/datastructure"
	"github.com/lintang-b-s/Pollutrace/pkg/engine"
	"github.com/lintang-b-s/Pollutrace/pkg/engine/propagation"
	"github.com/lintang-b-s/Pollutrace/pkg/engine/routing"
	"github.com/lintang-b-s/Pollutrace/pkg/metrics"
	"github.com/lintang-b-s/Pollutrace/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) *ZoneService {
	t.Helper()
	zones, err := da.NewZoneSet([]da.Zone{
		da.NewZone("North Gate", metrics.NewReadings(10, 10, 10), da.NORTH),
		da.NewZone("Refinery", metrics.NewReadings(600, 0, 0), da.NORTH),
		da.NewZone("Lakeside", metrics.NewReadings(10, 10, 10), da.SOUTH),
	})
	require.NoError(t, err)

	links := []da.Edge{da.NewEdge(0, 1, 0), da.NewEdge(1, 2, 0)}
	network := []da.Edge{da.NewEdge(0, 1, 7), da.NewEdge(1, 2, 7)}
	routes, err := da.NewWeightedGraphFromEdges(3, []da.Edge{da.NewEdge(0, 1, 1), da.NewEdge(1, 2, 1)}, false)
	require.NoError(t, err)

	e, err := engine.NewEngine(zones, links, network, routes, engine.DefaultOptions(), zap.NewNop())
	require.NoError(t, err)
	return NewZoneService(zap.NewNop(), e)
}

func TestTraceResolvesNamesAndModes(t *testing.T) {
	svc := newTestService(t)

	mode, steps, err := svc.Trace("spread", "north gate")
	require.NoError(t, err)
	assert.Equal(t, propagation.ModeBFS, mode)
	// N -> N keeps 100, N -> S keeps 20 and is pruned
	require.Len(t, steps, 2)
	assert.Equal(t, "Refinery", steps[1].Name)

	_, _, err = svc.Trace("sideways", "North Gate")
	require.Error(t, err)
	assert.ErrorIs(t, util.ErrorCode(err), util.ErrBadParamInput)

	_, _, err = svc.Trace("dfs", "Atlantis")
	require.Error(t, err)
	assert.ErrorIs(t, util.ErrorCode(err), util.ErrNotFound)
	assert.ErrorIs(t, err, engine.ErrZoneNotFound)
}

func TestTraceManyKeepsOrder(t *testing.T) {
	svc := newTestService(t)

	_, traces, err := svc.TraceMany(context.Background(), "dfs", []string{"Lakeside", "North Gate"})
	require.NoError(t, err)
	require.Len(t, traces, 2)
	assert.Equal(t, "Lakeside", traces[0][0].Name)
	assert.Equal(t, "North Gate", traces[1][0].Name)

	_, _, err = svc.TraceMany(context.Background(), "dfs", []string{"Lakeside", "Nowhere"})
	assert.ErrorIs(t, util.ErrorCode(err), util.ErrNotFound)
}

func TestConstrainedReturnsBlockedNames(t *testing.T) {
	svc := newTestService(t)

	res, blocked, err := svc.Constrained("North Gate", "", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Refinery"}, blocked)
	assert.False(t, res.Aborted())
	assert.Equal(t, routing.StatusBlocked, res.Status(1))
	assert.Equal(t, routing.StatusUnreachable, res.Status(2))

	res, blocked, err = svc.Constrained("Refinery", "North Gate", []string{"lakeside"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Refinery", "Lakeside"}, blocked)
	assert.True(t, res.Aborted())

	_, _, err = svc.Constrained("North Gate", "", []string{"Ghost"})
	assert.ErrorIs(t, util.ErrorCode(err), util.ErrNotFound)
}

func TestNegativeRouteWeightIsBadInput(t *testing.T) {
	zones, err := da.NewZoneSet([]da.Zone{
		da.NewZone("Quarry", metrics.NewReadings(10, 10, 10), da.EAST),
		da.NewZone("Orchard", metrics.NewReadings(10, 10, 10), da.EAST),
	})
	require.NoError(t, err)
	routes, err := da.NewWeightedGraphFromEdges(2, []da.Edge{da.NewEdge(0, 1, -3)}, true)
	require.NoError(t, err)
	e, err := engine.NewEngine(zones, nil, nil, routes, engine.DefaultOptions(), zap.NewNop())
	require.NoError(t, err)
	svc := NewZoneService(zap.NewNop(), e)

	_, _, err = svc.Constrained("Quarry", "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, routing.ErrNegativeWeight)
	assert.ErrorIs(t, util.ErrorCode(err), util.ErrBadParamInput)

	res, _, err := svc.Constrained("Quarry", "", []string{"Quarry"})
	require.NoError(t, err)
	assert.True(t, res.Aborted())
}

func TestPenalizedAndSpike(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.Penalized("North Gate")
	require.NoError(t, err)
	cost, ok := res.Cost(1)
	require.True(t, ok)
	assert.Equal(t, -43, cost)
	assert.True(t, res.IsBlocked(1))

	assert.False(t, svc.DetectSpike())
}

func TestEmptyZoneSet(t *testing.T) {
	zones, err := da.NewZoneSet(nil)
	require.NoError(t, err)
	e, err := engine.NewEngine(zones, nil, nil, nil, engine.DefaultOptions(), zap.NewNop())
	require.NoError(t, err)
	svc := NewZoneService(zap.NewNop(), e)

	assert.Empty(t, svc.RankZones())
	_, steps, err := svc.Trace("dfs", "anything")
	require.NoError(t, err)
	assert.Empty(t, steps)

	res, err := svc.Penalized("anything")
	require.NoError(t, err)
	assert.Empty(t, res.Entries())
}

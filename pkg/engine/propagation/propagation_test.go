package propagation

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/lintang-b-s/Pollutrace/pkg"
	"github.com/lintang-b-s/Pollutrace/pkg/costfunction"
	da "github.com/lintang-b-s/Pollutrace/pkg/datastructure"
	"github.com/lintang-b-s/Pollutrace/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTracer(t *testing.T, winds []da.Direction, edges [][2]da.Index) *Tracer {
	t.Helper()
	zones := make([]da.Zone, len(winds))
	for i, w := range winds {
		zones[i] = da.NewZone(fmt.Sprintf("Z%d", i), metrics.NewReadings(50, 50, 50), w)
	}
	zs, err := da.NewZoneSet(zones)
	require.NoError(t, err)

	g := da.NewPropagationGraph(len(winds))
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	tracer, err := NewTracer(g, zs, costfunction.NewTransferModel())
	require.NoError(t, err)
	return tracer
}

type visit struct {
	zone     da.Index
	strength int
}

func visits(trace []Step) []visit {
	out := make([]visit, len(trace))
	for i, s := range trace {
		out[i] = visit{s.Zone, s.Strength}
	}
	return out
}

var square = [][2]da.Index{{0, 1}, {1, 2}, {2, 3}, {0, 3}}

func TestBFSCycleSameWind(t *testing.T) {
	tracer := buildTracer(t, []da.Direction{da.NORTH, da.NORTH, da.NORTH, da.NORTH}, square)

	trace, err := tracer.DecayBFS(0)
	require.NoError(t, err)
	assert.Equal(t, []visit{{0, 100}, {1, 100}, {3, 100}, {2, 100}}, visits(trace))
}

func TestDFSCycleSameWind(t *testing.T) {
	tracer := buildTracer(t, []da.Direction{da.NORTH, da.NORTH, da.NORTH, da.NORTH}, square)

	trace, err := tracer.DecayDFS(0)
	require.NoError(t, err)
	assert.Equal(t, []visit{{0, 100}, {1, 100}, {2, 100}, {3, 100}}, visits(trace))
	assert.Equal(t, da.Index(2), trace[3].Parent)
	assert.Equal(t, 3, trace[3].Depth)
}

func TestDFSPrunedZoneCanBeReachedLater(t *testing.T) {
	// 0(E) -> 1(N) at 50, 1 -> 3(E) at 25 is pruned, 0 -> 2(E) at 100 -> 3 at 100
	tracer := buildTracer(t,
		[]da.Direction{da.EAST, da.NORTH, da.EAST, da.EAST},
		[][2]da.Index{{0, 1}, {0, 2}, {1, 3}, {2, 3}})

	trace, err := tracer.DecayDFS(0)
	require.NoError(t, err)
	assert.Equal(t, []visit{{0, 100}, {1, 50}, {2, 100}, {3, 100}}, visits(trace))
	assert.Equal(t, da.Index(2), trace[3].Parent)
}

func TestTraversalPrunesOpposingWind(t *testing.T) {
	// N -> S keeps 20%, at or below the threshold
	tracer := buildTracer(t, []da.Direction{da.NORTH, da.SOUTH, da.NORTH}, [][2]da.Index{{0, 1}, {1, 2}})

	for _, mode := range []Mode{ModeDFS, ModeBFS} {
		trace, err := tracer.Trace(mode, 0)
		require.NoError(t, err)
		assert.Equal(t, []visit{{0, 100}}, visits(trace), mode.String())
	}
}

func TestPerpendicularChainStopsAtThreshold(t *testing.T) {
	// E -> N = 50, N -> E = 25 pruned
	tracer := buildTracer(t, []da.Direction{da.EAST, da.NORTH, da.EAST}, [][2]da.Index{{0, 1}, {1, 2}})

	trace, err := tracer.DecayBFS(0)
	require.NoError(t, err)
	assert.Equal(t, []visit{{0, 100}, {1, 50}}, visits(trace))
}

func TestNoEdgesYieldsSource(t *testing.T) {
	tracer := buildTracer(t, []da.Direction{da.WEST, da.WEST}, nil)

	for _, mode := range []Mode{ModeDFS, ModeBFS} {
		trace, err := tracer.Trace(mode, 1)
		require.NoError(t, err)
		require.Len(t, trace, 1)
		assert.Equal(t, da.Index(1), trace[0].Zone)
		assert.Equal(t, pkg.SOURCE_STRENGTH, trace[0].Strength)
		assert.True(t, trace[0].IsSource())
	}
}

func TestEmptyZoneSet(t *testing.T) {
	tracer := buildTracer(t, nil, nil)

	for _, mode := range []Mode{ModeDFS, ModeBFS} {
		trace, err := tracer.Trace(mode, 0)
		assert.NoError(t, err)
		assert.Empty(t, trace)
	}
}

func TestSourceNotFound(t *testing.T) {
	tracer := buildTracer(t, []da.Direction{da.NORTH}, nil)

	_, err := tracer.DecayDFS(3)
	assert.True(t, errors.Is(err, da.ErrSourceNotFound))
	_, err = tracer.DecayBFS(3)
	assert.True(t, errors.Is(err, da.ErrSourceNotFound))
}

func TestTracerGraphMismatch(t *testing.T) {
	zs, err := da.NewZoneSet([]da.Zone{da.NewZone("A", metrics.NewReadings(1, 1, 1), da.NORTH)})
	require.NoError(t, err)

	_, err = NewTracer(da.NewPropagationGraph(3), zs, costfunction.NewTransferModel())
	assert.True(t, errors.Is(err, ErrGraphMismatch))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("BFS")
	require.NoError(t, err)
	assert.Equal(t, ModeBFS, m)

	m, err = ParseMode("trace")
	require.NoError(t, err)
	assert.Equal(t, ModeDFS, m)

	_, err = ParseMode("astar")
	assert.True(t, errors.Is(err, ErrUnknownMode))
}

func TestTraceStrengthInvariants(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	directions := []da.Direction{da.NORTH, da.SOUTH, da.EAST, da.WEST}
	transfer := costfunction.NewTransferModel()

	for round := 0; round < 30; round++ {
		n := 2 + rnd.Intn(12)
		winds := make([]da.Direction, n)
		for i := range winds {
			winds[i] = directions[rnd.Intn(len(directions))]
		}
		edges := make([][2]da.Index, 0)
		for k := 0; k < n*2; k++ {
			edges = append(edges, [2]da.Index{da.Index(rnd.Intn(n)), da.Index(rnd.Intn(n))})
		}
		tracer := buildTracer(t, winds, edges)

		for _, mode := range []Mode{ModeDFS, ModeBFS} {
			trace, err := tracer.Trace(mode, 0)
			require.NoError(t, err)
			require.NotEmpty(t, trace)
			assert.Equal(t, pkg.SOURCE_STRENGTH, trace[0].Strength)

			strength := make(map[da.Index]int, len(trace))
			for _, s := range trace {
				_, seen := strength[s.Zone]
				assert.False(t, seen, "zone %d reported twice", s.Zone)
				strength[s.Zone] = s.Strength
				if s.IsSource() {
					continue
				}
				parentStrength, ok := strength[s.Parent]
				require.True(t, ok, "parent reported before child")
				expected := parentStrength * transfer.Transfer(winds[s.Parent], winds[s.Zone]) / 100
				assert.Equal(t, expected, s.Strength)
				assert.Greater(t, s.Strength, pkg.PROPAGATION_THRESHOLD)
			}
		}
	}
}

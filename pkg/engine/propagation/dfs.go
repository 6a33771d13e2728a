package propagation

import (
	"github.com/lintang-b-s/Pollutrace/pkg"
	da "github.com/lintang-b-s/Pollutrace/pkg/datastructure"
)

type dfsFrame struct {
	zone     da.Index
	strength int
	depth    int
	cursor   int // next neighbour to scan
}

// DecayDFS returns the pre-order trace of zones reached from source.
// explicit stack of frames instead of recursion; scanning a frame's neighbours one at a time keeps
// the visit order identical to the recursive walk.
func (t *Tracer) DecayDFS(source da.Index) ([]Step, error) {
	ok, err := t.checkSource(source)
	if !ok {
		return []Step{}, err
	}

	n := t.zones.Len()
	visited := make([]bool, n)
	trace := make([]Step, 0, n)

	visited[source] = true
	trace = append(trace, t.newStep(source, pkg.SOURCE_STRENGTH, da.INVALID_ZONE_INDEX, 0))
	stack := []dfsFrame{{zone: source, strength: pkg.SOURCE_STRENGTH}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.cursor >= t.graph.Degree(top.zone) {
			stack = stack[:len(stack)-1]
			continue
		}

		u := top.zone
		v := t.graph.Neighbor(u, top.cursor)
		top.cursor++

		next := t.decay(top.strength, u, v)
		if visited[v] || next <= pkg.PROPAGATION_THRESHOLD {
			// pruned neighbours stay unvisited
			continue
		}

		visited[v] = true
		depth := top.depth + 1
		trace = append(trace, t.newStep(v, next, u, depth))
		stack = append(stack, dfsFrame{zone: v, strength: next, depth: depth})
	}

	return trace, nil
}

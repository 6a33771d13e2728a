package propagation

import (
	"github.com/lintang-b-s/Pollutrace/pkg"
	da "github.com/lintang-b-s/Pollutrace/pkg/datastructure"
)

// DecayBFS returns zones in the order they leave the queue. a zone's strength is fixed by the first
// edge that reaches it above the threshold.
func (t *Tracer) DecayBFS(source da.Index) ([]Step, error) {
	ok, err := t.checkSource(source)
	if !ok {
		return []Step{}, err
	}

	n := t.zones.Len()
	visited := make([]bool, n)
	steps := make([]Step, n)
	queue := make([]da.Index, 0, n)
	trace := make([]Step, 0, n)

	visited[source] = true
	steps[source] = t.newStep(source, pkg.SOURCE_STRENGTH, da.INVALID_ZONE_INDEX, 0)
	queue = append(queue, source)

	for head := 0; head < len(queue); head++ {
		u := queue[head]
		uStep := steps[u]
		trace = append(trace, uStep)

		t.graph.ForNeighborsOf(u, func(v da.Index) {
			next := t.decay(uStep.Strength, u, v)
			if visited[v] || next <= pkg.PROPAGATION_THRESHOLD {
				return
			}
			visited[v] = true
			steps[v] = t.newStep(v, next, u, uStep.Depth+1)
			queue = append(queue, v)
		})
	}

	return trace, nil
}

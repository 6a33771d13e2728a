// Package propagation traces how pollution spreads from a source zone across the propagation
// graph. Strength starts at 100% and decays by the wind transfer percentage at every hop; a branch
// stops once its strength is no longer above pkg.PROPAGATION_THRESHOLD.
//
// Two disciplines are offered and they are intentionally different:
//
//	DFS marks a zone visited when it is entered, so a neighbour pruned through a weak edge can still
//	be reached later through a stronger one.
//	BFS marks a zone visited and fixes its strength when it is enqueued, the first path found wins.
package propagation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lintang-b-s/Pollutrace/pkg/costfunction"
	da "github.com/lintang-b-s/Pollutrace/pkg/datastructure"
)

type Mode uint8

const (
	ModeDFS Mode = iota
	ModeBFS
)

var (
	ErrUnknownMode   = errors.New("unknown propagation mode")
	ErrGraphMismatch = errors.New("propagation graph and zone set sizes differ")
)

func (m Mode) String() string {
	if m == ModeBFS {
		return "bfs"
	}
	return "dfs"
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dfs", "trace", "":
		return ModeDFS, nil
	case "bfs", "spread":
		return ModeBFS, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Step is one zone reached by a traversal.
type Step struct {
	Zone     da.Index
	Name     string
	Strength int
	Parent   da.Index // da.INVALID_ZONE_INDEX for the source
	Depth    int
}

func (s Step) IsSource() bool {
	return s.Parent == da.INVALID_ZONE_INDEX
}

// Tracer runs decay traversals over a fixed graph. It holds no per-call state, one Tracer can be
// used from many goroutines.
type Tracer struct {
	graph    *da.PropagationGraph
	zones    *da.ZoneSet
	transfer *costfunction.TransferModel
}

func NewTracer(graph *da.PropagationGraph, zones *da.ZoneSet, transfer *costfunction.TransferModel) (*Tracer, error) {
	if graph.NumberOfZones() != zones.Len() {
		return nil, fmt.Errorf("%w: graph has %d zones, zone set has %d", ErrGraphMismatch,
			graph.NumberOfZones(), zones.Len())
	}
	return &Tracer{graph: graph, zones: zones, transfer: transfer}, nil
}

func (t *Tracer) Trace(mode Mode, source da.Index) ([]Step, error) {
	switch mode {
	case ModeDFS:
		return t.DecayDFS(source)
	case ModeBFS:
		return t.DecayBFS(source)
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownMode, mode)
}

// checkSource returns (false, nil) when there is nothing to trace.
func (t *Tracer) checkSource(source da.Index) (bool, error) {
	if t.zones.IsEmpty() {
		return false, nil
	}
	if !t.zones.Contains(source) {
		return false, fmt.Errorf("%w: index %d", da.ErrSourceNotFound, source)
	}
	return true, nil
}

func (t *Tracer) decay(strength int, u, v da.Index) int {
	return t.transfer.Decay(strength, t.zones.GetWind(u), t.zones.GetWind(v))
}

func (t *Tracer) newStep(zone da.Index, strength int, parent da.Index, depth int) Step {
	return Step{
		Zone:     zone,
		Name:     t.zones.GetName(zone),
		Strength: strength,
		Parent:   parent,
		Depth:    depth,
	}
}

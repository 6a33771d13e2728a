package routing

import (
	"github.com/lintang-b-s/Pollutrace/pkg"
	da "github.com/lintang-b-s/Pollutrace/pkg/datastructure"
	"github.com/lintang-b-s/Pollutrace/pkg/util"
)

// PenalizedEntry is the outcome of a penalized solve for one zone. A zone can be reached with a
// finite cost and be blocked at the same time.
type PenalizedEntry struct {
	Zone    da.Index
	Name    string
	Cost    int
	Reached bool
	Blocked bool
}

type PenalizedResult struct {
	source  da.Index
	dist    []int
	reached []bool
	parent  []da.Index
	blocked da.BlockedSet
	names   []string
}

func newPenalizedResult(source da.Index, zones *da.ZoneSet) *PenalizedResult {
	n := zones.Len()
	res := &PenalizedResult{
		source:  source,
		dist:    make([]int, n),
		reached: make([]bool, n),
		parent:  make([]da.Index, n),
		blocked: da.NewBlockedSet(),
		names:   make([]string, n),
	}
	for i := 0; i < n; i++ {
		res.dist[i] = pkg.INF_WEIGHT_INT
		res.parent[i] = da.INVALID_ZONE_INDEX
		res.names[i] = zones.GetName(da.Index(i))
	}
	return res
}

func (r *PenalizedResult) GetSource() da.Index {
	return r.source
}

// Cost returns the best penalized cost to z and whether z was reached at all.
func (r *PenalizedResult) Cost(z da.Index) (int, bool) {
	if int(z) >= len(r.dist) || !r.reached[z] {
		return pkg.INF_WEIGHT_INT, false
	}
	return r.dist[z], true
}

func (r *PenalizedResult) IsBlocked(z da.Index) bool {
	return r.blocked.Contains(z)
}

// Blocked returns a copy of the zones marked blocked during relaxation.
func (r *PenalizedResult) Blocked() da.BlockedSet {
	return r.blocked.Clone()
}

func (r *PenalizedResult) Entries() []PenalizedEntry {
	entries := make([]PenalizedEntry, len(r.dist))
	for i := range r.dist {
		entries[i] = PenalizedEntry{
			Zone:    da.Index(i),
			Name:    r.names[i],
			Cost:    r.dist[i],
			Reached: r.reached[i],
			Blocked: r.blocked.Contains(da.Index(i)),
		}
	}
	return entries
}

func (r *PenalizedResult) Path(target da.Index) []da.Index {
	if int(target) >= len(r.dist) || !r.reached[target] {
		return nil
	}
	return reconstructPath(r.parent, r.source, target)
}

// ConstrainedEntry is the outcome of a constrained solve for one zone. Cost is only meaningful
// when Status is StatusReachable.
type ConstrainedEntry struct {
	Zone   da.Index
	Name   string
	Cost   int
	Status PathStatus
}

type ConstrainedResult struct {
	source  da.Index
	aborted bool
	dist    []int
	status  []PathStatus
	parent  []da.Index
	names   []string
}

func newConstrainedResult(source da.Index, zones *da.ZoneSet) *ConstrainedResult {
	n := zones.Len()
	res := &ConstrainedResult{
		source: source,
		dist:   make([]int, n),
		status: make([]PathStatus, n),
		parent: make([]da.Index, n),
		names:  make([]string, n),
	}
	for i := 0; i < n; i++ {
		res.dist[i] = pkg.INF_WEIGHT_INT
		res.status[i] = StatusUnreachable
		res.parent[i] = da.INVALID_ZONE_INDEX
		res.names[i] = zones.GetName(da.Index(i))
	}
	return res
}

func newAbortedResult(source da.Index) *ConstrainedResult {
	return &ConstrainedResult{source: source, aborted: true}
}

func (r *ConstrainedResult) GetSource() da.Index {
	return r.source
}

// Aborted reports that the source itself was blocked and no distances were computed.
func (r *ConstrainedResult) Aborted() bool {
	return r.aborted
}

func (r *ConstrainedResult) Status(z da.Index) PathStatus {
	if int(z) >= len(r.status) {
		return StatusUnreachable
	}
	return r.status[z]
}

func (r *ConstrainedResult) Cost(z da.Index) (int, bool) {
	if r.Status(z) != StatusReachable {
		return pkg.INF_WEIGHT_INT, false
	}
	return r.dist[z], true
}

func (r *ConstrainedResult) Entries() []ConstrainedEntry {
	if r.aborted {
		return nil
	}
	entries := make([]ConstrainedEntry, len(r.dist))
	for i := range r.dist {
		entries[i] = ConstrainedEntry{
			Zone:   da.Index(i),
			Name:   r.names[i],
			Cost:   r.dist[i],
			Status: r.status[i],
		}
	}
	return entries
}

func (r *ConstrainedResult) Path(target da.Index) []da.Index {
	if r.Status(target) != StatusReachable {
		return nil
	}
	return reconstructPath(r.parent, r.source, target)
}

// reconstructPath walks parents back from target. A walk longer than the zone count means the
// parent chain is cyclic, which only happens on under-relaxed negative cycles.
func reconstructPath(parent []da.Index, source, target da.Index) []da.Index {
	path := make([]da.Index, 0)
	for cur := target; ; cur = parent[cur] {
		path = append(path, cur)
		if cur == source {
			break
		}
		if parent[cur] == da.INVALID_ZONE_INDEX || len(path) > len(parent) {
			return nil
		}
	}
	return util.ReverseG(path)
}

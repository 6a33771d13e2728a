package datastructure

import (
	"fmt"
)

// Edge is a static link between two zones with a nominal transfer cost.
type Edge struct {
	From   Index
	To     Index
	Weight int
}

func NewEdge(from, to Index, weight int) Edge {
	return Edge{From: from, To: to, Weight: weight}
}

// ValidateEdges reports the first edge whose endpoint is not a zone of a set of n zones.
func ValidateEdges(edges []Edge, n int) error {
	for i, e := range edges {
		if int(e.From) >= n || int(e.To) >= n {
			return fmt.Errorf("%w: edge %d (%d -> %d) with %d zones", ErrZoneIndexOutOfRange, i, e.From, e.To, n)
		}
	}
	return nil
}

// PropagationGraph. undirected adjacency lists over zone indices, neighbours kept in insertion order.
type PropagationGraph struct {
	adj [][]Index
}

func NewPropagationGraph(n int) *PropagationGraph {
	return &PropagationGraph{adj: make([][]Index, n)}
}

func NewPropagationGraphFromEdges(n int, edges []Edge) (*PropagationGraph, error) {
	g := NewPropagationGraph(n)
	for _, e := range edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *PropagationGraph) AddEdge(u, v Index) error {
	if int(u) >= len(g.adj) || int(v) >= len(g.adj) {
		return fmt.Errorf("%w: %d - %d with %d zones", ErrZoneIndexOutOfRange, u, v, len(g.adj))
	}
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	return nil
}

func (g *PropagationGraph) NumberOfZones() int {
	return len(g.adj)
}

func (g *PropagationGraph) Degree(u Index) int {
	return len(g.adj[u])
}

// Neighbor returns the i-th neighbour of u.
func (g *PropagationGraph) Neighbor(u Index, i int) Index {
	return g.adj[u][i]
}

func (g *PropagationGraph) ForNeighborsOf(u Index, handle func(v Index)) {
	for _, v := range g.adj[u] {
		handle(v)
	}
}

type Arc struct {
	head   Index
	weight int
}

func (a Arc) GetHead() Index {
	return a.head
}

func (a Arc) GetWeight() int {
	return a.weight
}

// WeightedGraph is the routing network. directed or undirected is decided by the caller.
type WeightedGraph struct {
	out      [][]Arc
	directed bool
	numEdges int
	negative bool
}

func NewWeightedGraph(n int, directed bool) *WeightedGraph {
	return &WeightedGraph{
		out:      make([][]Arc, n),
		directed: directed,
	}
}

func NewWeightedGraphFromEdges(n int, edges []Edge, directed bool) (*WeightedGraph, error) {
	g := NewWeightedGraph(n, directed)
	for _, e := range edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *WeightedGraph) AddEdge(u, v Index, weight int) error {
	if int(u) >= len(g.out) || int(v) >= len(g.out) {
		return fmt.Errorf("%w: %d -> %d with %d zones", ErrZoneIndexOutOfRange, u, v, len(g.out))
	}
	g.out[u] = append(g.out[u], Arc{head: v, weight: weight})
	if !g.directed {
		g.out[v] = append(g.out[v], Arc{head: u, weight: weight})
	}
	g.numEdges++
	if weight < 0 {
		g.negative = true
	}
	return nil
}

func (g *WeightedGraph) IsDirected() bool {
	return g.directed
}

func (g *WeightedGraph) HasNegativeWeight() bool {
	return g.negative
}

func (g *WeightedGraph) NumberOfZones() int {
	return len(g.out)
}

func (g *WeightedGraph) NumberOfEdges() int {
	return g.numEdges
}

func (g *WeightedGraph) ForOutArcsOf(u Index, handle func(a Arc)) {
	for _, a := range g.out[u] {
		handle(a)
	}
}

package datastructure

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropagationGraphUndirected(t *testing.T) {
	g, err := NewPropagationGraphFromEdges(4, []Edge{
		NewEdge(0, 1, 0), NewEdge(1, 2, 0), NewEdge(2, 3, 0), NewEdge(0, 3, 0),
	})
	require.NoError(t, err)

	assert.Equal(t, 4, g.NumberOfZones())
	assert.Equal(t, 2, g.Degree(0))
	assert.Equal(t, Index(1), g.Neighbor(0, 0))
	assert.Equal(t, Index(3), g.Neighbor(0, 1))

	var neighbors []Index
	g.ForNeighborsOf(3, func(v Index) { neighbors = append(neighbors, v) })
	assert.Equal(t, []Index{2, 0}, neighbors)
}

func TestPropagationGraphOutOfRange(t *testing.T) {
	g := NewPropagationGraph(2)
	err := g.AddEdge(0, 5)
	assert.True(t, errors.Is(err, ErrZoneIndexOutOfRange))
}

func TestWeightedGraph(t *testing.T) {
	directed, err := NewWeightedGraphFromEdges(3, []Edge{NewEdge(0, 1, 4), NewEdge(1, 2, 6)}, true)
	require.NoError(t, err)
	assert.True(t, directed.IsDirected())
	assert.Equal(t, 2, directed.NumberOfEdges())

	var heads []Index
	directed.ForOutArcsOf(1, func(a Arc) { heads = append(heads, a.GetHead()) })
	assert.Equal(t, []Index{2}, heads)

	undirected, err := NewWeightedGraphFromEdges(3, []Edge{NewEdge(0, 1, 4), NewEdge(1, 2, 6)}, false)
	require.NoError(t, err)
	heads = heads[:0]
	var weights []int
	undirected.ForOutArcsOf(1, func(a Arc) {
		heads = append(heads, a.GetHead())
		weights = append(weights, a.GetWeight())
	})
	assert.Equal(t, []Index{0, 2}, heads)
	assert.Equal(t, []int{4, 6}, weights)

	_, err = NewWeightedGraphFromEdges(2, []Edge{NewEdge(0, 2, 1)}, true)
	assert.True(t, errors.Is(err, ErrZoneIndexOutOfRange))
}

func TestValidateEdges(t *testing.T) {
	assert.NoError(t, ValidateEdges([]Edge{NewEdge(0, 1, 1)}, 2))
	assert.True(t, errors.Is(ValidateEdges([]Edge{NewEdge(0, 3, 1)}, 2), ErrZoneIndexOutOfRange))
}

func TestBlockedSet(t *testing.T) {
	b := NewBlockedSet(4, 1)
	b.Add(2)
	assert.True(t, b.Contains(1))
	assert.False(t, b.Contains(0))
	assert.Equal(t, []Index{1, 2, 4}, b.Sorted())

	c := b.Clone()
	c.Add(9)
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, 4, c.Len())
}

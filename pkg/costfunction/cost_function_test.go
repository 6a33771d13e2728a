package costfunction

import (
	"testing"

	"github.com/lintang-b-s/Pollutrace/pkg"
	da "github.com/lintang-b-s/Pollutrace/pkg/datastructure"
	"github.com/stretchr/testify/assert"
)

var allDirections = []da.Direction{da.NORTH, da.SOUTH, da.EAST, da.WEST}

func TestTransferTable(t *testing.T) {
	tm := NewTransferModel()

	testCases := []struct {
		a, b     da.Direction
		expected int
	}{
		{da.NORTH, da.NORTH, 100},
		{da.EAST, da.NORTH, 50},
		{da.NORTH, da.EAST, 50},
		{da.SOUTH, da.WEST, 50},
		{da.WEST, da.SOUTH, 50},
		{da.NORTH, da.SOUTH, 20},
		{da.EAST, da.WEST, 20},
		{da.NORTH, da.WEST, 20},
		{da.EAST, da.SOUTH, 20},
	}

	for _, tt := range testCases {
		assert.Equal(t, tt.expected, tm.Transfer(tt.a, tt.b), "%v -> %v", tt.a, tt.b)
	}
}

func TestTransferSymmetricAndReflexive(t *testing.T) {
	tm := NewTransferModel()
	for _, a := range allDirections {
		assert.Equal(t, pkg.TRANSFER_ALIGNED, tm.Transfer(a, a))
		for _, b := range allDirections {
			assert.Equal(t, tm.Transfer(a, b), tm.Transfer(b, a))
		}
	}
}

func TestDecayTruncates(t *testing.T) {
	tm := NewTransferModel()
	assert.Equal(t, 50, tm.Decay(100, da.EAST, da.NORTH))
	assert.Equal(t, 25, tm.Decay(51, da.EAST, da.NORTH))
	assert.Equal(t, 10, tm.Decay(50, da.NORTH, da.SOUTH))
}

func TestPenaltyCostFunction(t *testing.T) {
	cf := NewPenaltyCostFunction()
	e := da.NewEdge(0, 1, 10)

	assert.Equal(t, 10, cf.GetWeight(e, pkg.NORMAL))
	assert.Equal(t, -10, cf.GetWeight(e, pkg.ELEVATED))
	assert.Equal(t, -40, cf.GetWeight(e, pkg.SEVERE))

	assert.Equal(t, 10, NewDistanceCostFunction().GetWeight(e, pkg.SEVERE))
}

package costfunction

import (
	"github.com/lintang-b-s/Pollutrace/pkg"
	da "github.com/lintang-b-s/Pollutrace/pkg/datastructure"
)

// TransferModel. percentage of propagation strength that survives crossing from a zone with wind a
// into a zone with wind b. built once, read only afterwards.
type TransferModel struct {
	table [da.NUM_DIRECTIONS][da.NUM_DIRECTIONS]int
}

func NewTransferModel() *TransferModel {
	tm := &TransferModel{}
	for a := da.Direction(0); a < da.NUM_DIRECTIONS; a++ {
		for b := da.Direction(0); b < da.NUM_DIRECTIONS; b++ {
			tm.table[a][b] = pkg.TRANSFER_OPPOSING
		}
		tm.table[a][a] = pkg.TRANSFER_ALIGNED
	}

	perpendicular := [][2]da.Direction{
		{da.EAST, da.NORTH},
		{da.SOUTH, da.WEST},
	}
	for _, p := range perpendicular {
		tm.table[p[0]][p[1]] = pkg.TRANSFER_PERPENDICULAR
		tm.table[p[1]][p[0]] = pkg.TRANSFER_PERPENDICULAR
	}
	return tm
}

func (tm *TransferModel) Transfer(a, b da.Direction) int {
	return tm.table[a][b]
}

// Decay applies the transfer percentage to strength with integer truncation.
func (tm *TransferModel) Decay(strength int, a, b da.Direction) int {
	return strength * tm.Transfer(a, b) / 100
}

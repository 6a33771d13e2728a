package costfunction

import (
	"github.com/lintang-b-s/Pollutrace/pkg"
	da "github.com/lintang-b-s/Pollutrace/pkg/datastructure"
)

// AnomalyPenalty is the cost adjustment for entering a zone of the given tier.
func AnomalyPenalty(tier pkg.AnomalyTier) int {
	switch tier {
	case pkg.ELEVATED:
		return pkg.ELEVATED_PENALTY
	case pkg.SEVERE:
		return pkg.SEVERE_PENALTY
	default:
		return pkg.NORMAL_PENALTY
	}
}

// PenaltyCostFunction. w + penalty(tier of head).
type PenaltyCostFunction struct{}

func NewPenaltyCostFunction() *PenaltyCostFunction {
	return &PenaltyCostFunction{}
}

func (c *PenaltyCostFunction) GetWeight(e da.Edge, headTier pkg.AnomalyTier) int {
	return e.Weight + AnomalyPenalty(headTier)
}

// DistanceCostFunction uses the nominal edge weight.
type DistanceCostFunction struct{}

func NewDistanceCostFunction() *DistanceCostFunction {
	return &DistanceCostFunction{}
}

func (c *DistanceCostFunction) GetWeight(e da.Edge, _ pkg.AnomalyTier) int {
	return e.Weight
}

package routing

import (
	"github.com/lintang-b-s/Pollutrace/pkg"
	da "github.com/lintang-b-s/Pollutrace/pkg/datastructure"
)

type CostFunction interface {
	GetWeight(e da.Edge, headTier pkg.AnomalyTier) int
}

type PenalizedRouter interface {
	ShortestPath(source da.Index) (*PenalizedResult, error)
}

type ConstrainedRouter interface {
	ShortestPath(source da.Index, blocked da.BlockedSet) (*ConstrainedResult, error)
}

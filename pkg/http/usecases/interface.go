package usecases

import (
	"context"

	da "github.com/lintang-b-s/Pollutrace/pkg/datastructure"
	"github.com/lintang-b-s/Pollutrace/pkg/engine/propagation"
	"github.com/lintang-b-s/Pollutrace/pkg/engine/routing"
)

type ZoneEngine interface {
	GetZones() *da.ZoneSet
	Rank() []da.Zone
	Resolve(name string) (da.Index, error)
	LookupZone(name string) (da.Zone, error)
	Trace(mode propagation.Mode, source da.Index) ([]propagation.Step, error)
	TraceMany(ctx context.Context, mode propagation.Mode, sources []da.Index) ([][]propagation.Step, error)
	Penalized(source da.Index) (*routing.PenalizedResult, error)
	ConstrainedAfterPenalized(source, penaltySource da.Index, extra da.BlockedSet) (*routing.ConstrainedResult,
		da.BlockedSet, error)
	DetectSpike() bool
}

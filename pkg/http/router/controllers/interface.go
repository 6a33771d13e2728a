package controllers

import (
	"context"

	da "github.com/lintang-b-s/Pollutrace/pkg/datastructure"
	"github.com/lintang-b-s/Pollutrace/pkg/engine/propagation"
	"github.com/lintang-b-s/Pollutrace/pkg/engine/routing"
)

type ZoneService interface {
	RankZones() []da.Zone
	GetZone(name string) (da.Zone, error)
	Trace(mode, source string) (propagation.Mode, []propagation.Step, error)
	TraceMany(ctx context.Context, mode string, sources []string) (propagation.Mode, [][]propagation.Step, error)
	Penalized(source string) (*routing.PenalizedResult, error)
	Constrained(source, penaltySource string, blocked []string) (*routing.ConstrainedResult, []string, error)
	DetectSpike() bool
}

package controllers

import (
	da "github.com/lintang-b-s/Pollutrace/pkg/datastructure"
	"github.com/lintang-b-s/Pollutrace/pkg/engine/propagation"
	"github.com/lintang-b-s/Pollutrace/pkg/engine/routing"
	"github.com/lintang-b-s/Pollutrace/pkg/report"
)

type traceRequest struct {
	Source string `json:"source" validate:"required,max=128"`
	Mode   string `json:"mode" validate:"omitempty,oneof=dfs bfs trace spread"`
}

type traceManyRequest struct {
	Sources []string `json:"sources" validate:"required,min=1,max=256,dive,required,max=128"`
	Mode    string   `json:"mode" validate:"omitempty,oneof=dfs bfs trace spread"`
}

type penalizedRequest struct {
	Source string `json:"source" validate:"required,max=128"`
}

type constrainedRequest struct {
	Source        string   `json:"source" validate:"required,max=128"`
	PenaltySource string   `json:"penalty_source" validate:"omitempty,max=128"`
	Blocked       []string `json:"blocked" validate:"max=256,dive,required,max=128"`
}

type zoneResponse struct {
	Name     string `json:"name"`
	PM25     int    `json:"pm25"`
	PM10     int    `json:"pm10"`
	CO       int    `json:"co"`
	NO2      *int   `json:"no2,omitempty"`
	Wind     string `json:"wind"`
	AQI      int    `json:"aqi"`
	Tier     string `json:"tier"`
	TierRank int    `json:"tier_rank"`
}

func NewZoneResponse(z da.Zone) zoneResponse {
	r := z.GetReadings()
	resp := zoneResponse{
		Name:     z.GetName(),
		PM25:     r.PM25,
		PM10:     r.PM10,
		CO:       r.CO,
		Wind:     z.GetWind().String(),
		AQI:      z.GetAQI(),
		Tier:     z.GetTier().String(),
		TierRank: int(z.GetTier()),
	}
	if r.HasNO2 {
		no2 := r.NO2
		resp.NO2 = &no2
	}
	return resp
}

type rankedZoneResponse struct {
	Rank int `json:"rank"`
	zoneResponse
}

func NewRankingResponse(zones []da.Zone) []rankedZoneResponse {
	out := make([]rankedZoneResponse, len(zones))
	for i, z := range zones {
		out[i] = rankedZoneResponse{Rank: i + 1, zoneResponse: NewZoneResponse(z)}
	}
	return out
}

type stepResponse struct {
	Zone     string `json:"zone"`
	Strength int    `json:"strength"`
	Parent   string `json:"parent,omitempty"`
	Depth    int    `json:"depth"`
}

type traceResponse struct {
	Mode  string         `json:"mode"`
	Steps []stepResponse `json:"steps"`
	Text  string         `json:"text"`
}

func newStepResponse(steps []propagation.Step, s propagation.Step) stepResponse {
	resp := stepResponse{Zone: s.Name, Strength: s.Strength, Depth: s.Depth}
	if !s.IsSource() {
		for _, p := range steps {
			if p.Zone == s.Parent {
				resp.Parent = p.Name
				break
			}
		}
	}
	return resp
}

func NewTraceResponse(mode propagation.Mode, steps []propagation.Step) traceResponse {
	resp := traceResponse{
		Mode:  mode.String(),
		Steps: make([]stepResponse, len(steps)),
		Text:  report.FormatTrace(steps),
	}
	for i, s := range steps {
		resp.Steps[i] = newStepResponse(steps, s)
	}
	return resp
}

type penalizedEntryResponse struct {
	Zone    string   `json:"zone"`
	Cost    *int     `json:"cost"`
	Blocked bool     `json:"blocked"`
	Path    []string `json:"path,omitempty"`
}

type penalizedResponse struct {
	Source  string                   `json:"source"`
	Entries []penalizedEntryResponse `json:"entries"`
	Blocked []string                 `json:"blocked"`
}

func NewPenalizedResponse(source string, res *routing.PenalizedResult) penalizedResponse {
	entries := res.Entries()
	resp := penalizedResponse{
		Source:  source,
		Entries: make([]penalizedEntryResponse, len(entries)),
		Blocked: make([]string, 0),
	}
	for i, e := range entries {
		entry := penalizedEntryResponse{Zone: e.Name, Blocked: e.Blocked}
		if e.Reached {
			cost := e.Cost
			entry.Cost = &cost
			for _, z := range res.Path(e.Zone) {
				entry.Path = append(entry.Path, entries[z].Name)
			}
		}
		if e.Blocked {
			resp.Blocked = append(resp.Blocked, e.Name)
		}
		resp.Entries[i] = entry
	}
	return resp
}

type constrainedEntryResponse struct {
	Zone   string   `json:"zone"`
	Status string   `json:"status"`
	Cost   *int     `json:"cost"`
	Path   []string `json:"path,omitempty"`
}

type constrainedResponse struct {
	Source  string                     `json:"source"`
	Aborted bool                       `json:"aborted"`
	Message string                     `json:"message,omitempty"`
	Blocked []string                   `json:"blocked"`
	Entries []constrainedEntryResponse `json:"entries"`
}

func NewConstrainedResponse(source string, res *routing.ConstrainedResult, blocked []string) constrainedResponse {
	resp := constrainedResponse{
		Source:  source,
		Aborted: res.Aborted(),
		Blocked: blocked,
		Entries: make([]constrainedEntryResponse, 0),
	}
	if res.Aborted() {
		resp.Message = "routing aborted, source zone is blocked"
		return resp
	}

	entries := res.Entries()
	for _, e := range entries {
		entry := constrainedEntryResponse{Zone: e.Name, Status: e.Status.String()}
		if e.Status == routing.StatusReachable {
			cost := e.Cost
			entry.Cost = &cost
			for _, z := range res.Path(e.Zone) {
				entry.Path = append(entry.Path, entries[z].Name)
			}
		}
		resp.Entries = append(resp.Entries, entry)
	}
	return resp
}

type spikeResponse struct {
	Spike bool `json:"spike"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

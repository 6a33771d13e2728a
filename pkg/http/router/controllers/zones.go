package controllers

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/Pollutrace/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/Pollutrace/pkg/util"
	"go.uber.org/zap"
)

type zoneAPI struct {
	zoneService ZoneService
	log         *zap.Logger
}

func New(zoneService ZoneService, log *zap.Logger) *zoneAPI {
	return &zoneAPI{
		zoneService: zoneService,
		log:         log,
	}
}

func (api *zoneAPI) Routes(group *helper.RouteGroup) {
	group.GET("/zones", api.rankZones)
	group.GET("/zones/:name", api.getZone)

	propagation := group.Group("/propagation")
	propagation.GET("", api.propagation)
	propagation.GET("/batch", api.propagationBatch)
	propagation.POST("/batch", api.propagationBatchJSON)

	group.GET("/routes/penalized", api.penalizedRoutes)
	group.GET("/routes/constrained", api.constrainedRoutes)
	group.GET("/spike", api.spike)
}

func (api *zoneAPI) rankZones(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	zones := api.zoneService.RankZones()
	if err := writeJSON(w, http.StatusOK, envelope{"data": NewRankingResponse(zones)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func (api *zoneAPI) getZone(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	zone, err := api.zoneService.GetZone(p.ByName("name"))
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, envelope{"data": NewZoneResponse(zone)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func (api *zoneAPI) propagation(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	request := traceRequest{
		Source: query.Get("source"),
		Mode:   strings.ToLower(query.Get("mode")),
	}
	if err := validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	mode, steps, err := api.zoneService.Trace(request.Mode, request.Source)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, envelope{"data": NewTraceResponse(mode, steps)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func (api *zoneAPI) propagationBatch(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	request := traceManyRequest{
		Sources: util.SplitList(query.Get("sources")),
		Mode:    strings.ToLower(query.Get("mode")),
	}
	api.traceMany(w, r, request)
}

func (api *zoneAPI) propagationBatchJSON(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request traceManyRequest
	if err := readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	request.Mode = strings.ToLower(request.Mode)
	api.traceMany(w, r, request)
}

func (api *zoneAPI) traceMany(w http.ResponseWriter, r *http.Request, request traceManyRequest) {
	if err := validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	mode, traces, err := api.zoneService.TraceMany(r.Context(), request.Mode, request.Sources)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}
	resp := make([]traceResponse, len(traces))
	for i, steps := range traces {
		resp[i] = NewTraceResponse(mode, steps)
	}
	if err := writeJSON(w, http.StatusOK, envelope{"data": resp}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func (api *zoneAPI) penalizedRoutes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	request := penalizedRequest{Source: r.URL.Query().Get("source")}
	if err := validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	res, err := api.zoneService.Penalized(request.Source)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, envelope{"data": NewPenalizedResponse(request.Source, res)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func (api *zoneAPI) constrainedRoutes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	request := constrainedRequest{
		Source:        query.Get("source"),
		PenaltySource: query.Get("penalty_source"),
		Blocked:       util.SplitList(query.Get("blocked")),
	}
	if err := validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	res, blocked, err := api.zoneService.Constrained(request.Source, request.PenaltySource, request.Blocked)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, envelope{"data": NewConstrainedResponse(request.Source, res, blocked)},
		nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func (api *zoneAPI) spike(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	resp := spikeResponse{Spike: api.zoneService.DetectSpike()}
	if err := writeJSON(w, http.StatusOK, envelope{"data": resp}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

package handlers

import (
	"bytes"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"crowd-server/logging"
	"crowd-server/models"
	services "crowd-server/service"
	"crowd-server/util"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

const (
	LAT_QUERY_ARG    = "lat"
	LON_QUERY_ARG    = "lon"
	RADIUS_QUERY_ARG = "radius"
	TYPE_QUERY_ARG   = "type"
	SORT_QUERY_ARG   = "sort"
	IDS_QUERY_ARG    = "ids"

	ID_PATH_VAR = "id"
)

// DEFAULT_RADIUS_KM applies when /nearby is called without a radius.
const DEFAULT_RADIUS_KM = 5.0
const MAX_RADIUS_KM = 100.0

type LocationHandler struct {
	locationService *services.LocationService
	log             zerolog.Logger
}

func NewLocationHandler(locationService *services.LocationService) *LocationHandler {
	return &LocationHandler{
		locationService: locationService,
		log:             logging.Component("LocationHandler"),
	}
}

// ListLocations handles GET /v1/locations?type=&sort=
func (h *LocationHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	locations, err := h.locationService.ListLocations(r.Context(), services.LocationFilter{
		Category: vals.Get(TYPE_QUERY_ARG),
		SortBy:   vals.Get(SORT_QUERY_ARG),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	for i := range locations {
		locations[i].PopularTimes = nil
	}

	writeJSON(w, http.StatusOK, models.LocationsResponse{
		Locations:   locations,
		Total:       len(locations),
		GeneratedAt: h.locationService.Now(),
	})
}

// GetNearby handles GET /v1/locations/nearby?lat=&lon=&radius=
func (h *LocationHandler) GetNearby(w http.ResponseWriter, r *http.Request) {
	lat, lon, radius, ok := h.parseNearbyArgs(r.URL.Query(), w)
	if !ok {
		return
	}

	nearby, err := h.locationService.GetNearby(r.Context(), lat, lon, radius)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.NearbyLocationsResponse{Locations: nearby, Total: len(nearby)})
}

func (h *LocationHandler) parseNearbyArgs(vals url.Values, w http.ResponseWriter) (lat, lon, radius float64, ok bool) {
	var err error

	lat, err = parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil || lat < -90 || lat > 90 {
		writeError(w, http.StatusBadRequest, "Invalid argument "+LAT_QUERY_ARG)
		return
	}
	lon, err = parseArgFloat64(vals, LON_QUERY_ARG)
	if err != nil || lon < -180 || lon > 180 {
		writeError(w, http.StatusBadRequest, "Invalid argument "+LON_QUERY_ARG)
		return
	}
	radius = DEFAULT_RADIUS_KM
	if vals.Get(RADIUS_QUERY_ARG) != "" {
		radius, err = parseArgFloat64(vals, RADIUS_QUERY_ARG)
		if err != nil || radius <= 0 || radius > MAX_RADIUS_KM {
			writeError(w, http.StatusBadRequest, "Invalid argument "+RADIUS_QUERY_ARG)
			return
		}
	}
	ok = true
	return
}

// GetStats handles GET /v1/locations/stats
func (h *LocationHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.locationService.GetCrowdStats(r.Context()))
}

// CompareBestTimes handles GET /v1/locations/compare?ids=1,2,3
func (h *LocationHandler) CompareBestTimes(w http.ResponseWriter, r *http.Request) {
	var ids []string
	for _, id := range strings.Split(r.URL.Query().Get(IDS_QUERY_ARG), ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		writeError(w, http.StatusBadRequest, "Invalid argument "+IDS_QUERY_ARG)
		return
	}

	comparison, err := h.locationService.CompareBestTimes(r.Context(), ids)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comparison)
}

// GetLocation handles GET /v1/locations/{id}
func (h *LocationHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	l, err := h.locationService.GetLocation(r.Context(), mux.Vars(r)[ID_PATH_VAR])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

// GetPopularTimes handles GET /v1/locations/{id}/popular-times
func (h *LocationHandler) GetPopularTimes(w http.ResponseWriter, r *http.Request) {
	resp, err := h.locationService.GetPopularTimes(r.Context(), mux.Vars(r)[ID_PATH_VAR])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetPopularTimesChart handles GET /v1/locations/{id}/popular-times/chart
func (h *LocationHandler) GetPopularTimesChart(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)[ID_PATH_VAR]
	l, err := h.locationService.GetLocation(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	resp, err := h.locationService.GetPopularTimes(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	l.PopularTimes = resp.PopularTimes

	var buf bytes.Buffer
	if err := util.RenderPopularTimesChart(&buf, *l, resp.BestTime); err != nil {
		writeServiceError(w, err)
		return
	}
	writeHTML(w, buf.Bytes(), h.log)
}

// GetMap handles GET /v1/map
func (h *LocationHandler) GetMap(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := util.RenderCrowdMap(&buf, h.locationService.Snapshot(r.Context())); err != nil {
		writeServiceError(w, err)
		return
	}
	writeHTML(w, buf.Bytes(), h.log)
}

// GetCategories handles GET /v1/categories
func (h *LocationHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.locationService.Categories())
}

func writeHTML(w http.ResponseWriter, body []byte, log zerolog.Logger) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Debug().Err(err).Msg("error writing html")
	}
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	return strconv.ParseFloat(s, 64)
}

package handlers

import (
	"encoding/json"
	"net/http"

	"crowd-server/models"
	services "crowd-server/service"

	"github.com/gorilla/mux"
)

// maxBodyBytes caps alert request bodies.
const maxBodyBytes = 1 << 16

type AlertHandler struct {
	alertService *services.AlertService
}

func NewAlertHandler(alertService *services.AlertService) *AlertHandler {
	return &AlertHandler{alertService: alertService}
}

// ListAlerts handles GET /v1/alerts
func (h *AlertHandler) ListAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.alertService.ListAlerts(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, alerts)
}

// CreateAlert handles POST /v1/alerts
func (h *AlertHandler) CreateAlert(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAlertRequest
	if !decodeBody(w, r, &req) {
		return
	}

	alert, err := h.alertService.CreateAlert(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, alert)
}

// GetAlert handles GET /v1/alerts/{id}
func (h *AlertHandler) GetAlert(w http.ResponseWriter, r *http.Request) {
	alert, err := h.alertService.GetAlert(r.Context(), mux.Vars(r)[ID_PATH_VAR])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, alert)
}

// DeleteAlert handles DELETE /v1/alerts/{id}
func (h *AlertHandler) DeleteAlert(w http.ResponseWriter, r *http.Request) {
	if err := h.alertService.DeleteAlert(r.Context(), mux.Vars(r)[ID_PATH_VAR]); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetAlertActive handles PUT /v1/alerts/{id}/active
func (h *AlertHandler) SetAlertActive(w http.ResponseWriter, r *http.Request) {
	var req models.SetAlertActiveRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.IsActive == nil {
		writeError(w, http.StatusBadRequest, "is_active is required")
		return
	}

	alert, err := h.alertService.SetActive(r.Context(), mux.Vars(r)[ID_PATH_VAR], *req.IsActive)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, alert)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

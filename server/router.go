package server

import (
	"net/http"

	"crowd-server/server/handlers"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	locationHandler *handlers.LocationHandler
	alertHandler    *handlers.AlertHandler
	streamHandler   *handlers.StreamHandler
	router          *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	locationHandler *handlers.LocationHandler,
	alertHandler *handlers.AlertHandler,
	streamHandler *handlers.StreamHandler,
	router *mux.Router) *Router {
	return &Router{
		locationHandler: locationHandler,
		alertHandler:    alertHandler,
		streamHandler:   streamHandler,
		router:          router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(metricsMiddleware, accessLogMiddleware)
	r.router.NotFoundHandler = http.HandlerFunc(notFound)
	r.router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	r.router.HandleFunc("/ping", handlers.Ping).Methods(http.MethodGet)
	r.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	v1 := r.router.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/categories", r.locationHandler.GetCategories).Methods(http.MethodGet)
	v1.HandleFunc("/map", r.locationHandler.GetMap).Methods(http.MethodGet)

	// expects ?type={category|all}&sort={crowd|distance|name}
	v1.HandleFunc("/locations", r.locationHandler.ListLocations).Methods(http.MethodGet)
	// expects ?lat={latitude(float)}&lon={longitude(float)}&radius={km(float)}
	v1.HandleFunc("/locations/nearby", r.locationHandler.GetNearby).Methods(http.MethodGet)
	v1.HandleFunc("/locations/stats", r.locationHandler.GetStats).Methods(http.MethodGet)
	// expects ?ids={id},{id},{id}
	v1.HandleFunc("/locations/compare", r.locationHandler.CompareBestTimes).Methods(http.MethodGet)
	v1.HandleFunc("/locations/{id}", r.locationHandler.GetLocation).Methods(http.MethodGet)
	v1.HandleFunc("/locations/{id}/popular-times", r.locationHandler.GetPopularTimes).Methods(http.MethodGet)
	v1.HandleFunc("/locations/{id}/popular-times/chart", r.locationHandler.GetPopularTimesChart).Methods(http.MethodGet)

	v1.HandleFunc("/alerts", r.alertHandler.ListAlerts).Methods(http.MethodGet)
	v1.HandleFunc("/alerts", r.alertHandler.CreateAlert).Methods(http.MethodPost)
	v1.HandleFunc("/alerts/{id}", r.alertHandler.GetAlert).Methods(http.MethodGet)
	v1.HandleFunc("/alerts/{id}", r.alertHandler.DeleteAlert).Methods(http.MethodDelete)
	v1.HandleFunc("/alerts/{id}/active", r.alertHandler.SetAlertActive).Methods(http.MethodPut)

	v1.HandleFunc("/stream", r.streamHandler.Stream).Methods(http.MethodGet)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte(`{"error":"not found"}` + "\n"))
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusMethodNotAllowed)
	_, _ = w.Write([]byte(`{"error":"method not allowed"}` + "\n"))
}

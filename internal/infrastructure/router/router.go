package router

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"airline-service/internal/interface/api"
	"airline-service/pkg/logger"
	"airline-service/pkg/metrics"
)

// Handlers groups the resource handlers served by the router
type Handlers struct {
	Airlines        *api.AirlineHandler
	Airports        *api.AirportHandler
	AirlineAirports *api.AirlineAirportHandler
	Changes         *api.ChangeHandler
}

// NewRouter builds the HTTP handler of the service: resource routes,
// /health and /metrics, wrapped in access logging and panic recovery.
func NewRouter(h Handlers, m *metrics.Metrics, gatherer prometheus.Gatherer, log logger.Logger) http.Handler {
	r := mux.NewRouter()
	if m != nil {
		r.Use(m.Middleware)
	}
	r.NotFoundHandler = http.HandlerFunc(notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	r.HandleFunc("/airlines", h.Airlines.FindAll).Methods(http.MethodGet)
	r.HandleFunc("/airlines", h.Airlines.Create).Methods(http.MethodPost)
	r.HandleFunc("/airlines/{id}", h.Airlines.FindOne).Methods(http.MethodGet)
	r.HandleFunc("/airlines/{id}", h.Airlines.Update).Methods(http.MethodPut)
	r.HandleFunc("/airlines/{id}", h.Airlines.Delete).Methods(http.MethodDelete)

	r.HandleFunc("/airports", h.Airports.FindAll).Methods(http.MethodGet)
	r.HandleFunc("/airports", h.Airports.Create).Methods(http.MethodPost)
	r.HandleFunc("/airports/{id}", h.Airports.FindOne).Methods(http.MethodGet)
	r.HandleFunc("/airports/{id}", h.Airports.Update).Methods(http.MethodPut)
	r.HandleFunc("/airports/{id}", h.Airports.Delete).Methods(http.MethodDelete)

	r.HandleFunc("/airlines/{airlineId}/airports", h.AirlineAirports.FindAll).Methods(http.MethodGet)
	r.HandleFunc("/airlines/{airlineId}/airports", h.AirlineAirports.Replace).Methods(http.MethodPut)
	r.HandleFunc("/airlines/{airlineId}/airports/{airportId}", h.AirlineAirports.FindOne).Methods(http.MethodGet)
	r.HandleFunc("/airlines/{airlineId}/airports/{airportId}", h.AirlineAirports.Add).Methods(http.MethodPost)
	r.HandleFunc("/airlines/{airlineId}/airports/{airportId}", h.AirlineAirports.Delete).Methods(http.MethodDelete)

	r.HandleFunc("/changes/{entity}/{id}", h.Changes.History).Methods(http.MethodGet)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	}).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	var handler http.Handler = r
	handler = handlers.CustomLoggingHandler(io.Discard, handler, accessLog(log))
	handler = handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{log}),
		handlers.PrintRecoveryStack(true),
	)(handler)
	return handler
}

// accessLog sends one structured entry per request to the service logger
func accessLog(log logger.Logger) handlers.LogFormatter {
	return func(_ io.Writer, p handlers.LogFormatterParams) {
		log.Info("HTTP request",
			"method", p.Request.Method,
			"path", p.URL.Path,
			"status", p.StatusCode,
			"size", p.Size,
			"duration", time.Since(p.TimeStamp).String())
	}
}

type recoveryLogger struct {
	log logger.Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.log.Error("Recovered from panic", "panic", fmt.Sprint(v...))
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeStatus(w, http.StatusNotFound, fmt.Sprintf("Cannot %s %s", r.Method, r.URL.Path))
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeStatus(w, http.StatusMethodNotAllowed, fmt.Sprintf("Method %s not allowed on %s", r.Method, r.URL.Path))
}

func writeStatus(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(api.ErrorResponse{StatusCode: status, Message: message})
}

package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"airline-service/internal/usecase"
	"airline-service/pkg/logger"
	"airline-service/pkg/metrics"
)

// AirlineHandler serves the /airlines resource
type AirlineHandler struct {
	service *usecase.AirlineService
	responder
}

// NewAirlineHandler creates a new airline handler
func NewAirlineHandler(service *usecase.AirlineService, metrics *metrics.Metrics, logger logger.Logger) *AirlineHandler {
	return &AirlineHandler{
		service:   service,
		responder: responder{metrics: metrics, logger: logger},
	}
}

// FindAll handles GET /airlines
func (h *AirlineHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	airlines, err := h.service.FindAll(r.Context())
	if err != nil {
		h.writeError(w, "airline.find_all", err)
		return
	}
	h.writeJSON(w, http.StatusOK, airlines)
}

// FindOne handles GET /airlines/{id}
func (h *AirlineHandler) FindOne(w http.ResponseWriter, r *http.Request) {
	airline, err := h.service.FindOne(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, "airline.find_one", err)
		return
	}
	h.writeJSON(w, http.StatusOK, airline)
}

// Create handles POST /airlines
func (h *AirlineHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req AirlineRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, "airline.create", err)
		return
	}
	airline, err := req.Airline()
	if err != nil {
		h.writeError(w, "airline.create", err)
		return
	}

	created, err := h.service.Create(r.Context(), airline)
	if err != nil {
		h.writeError(w, "airline.create", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, created)
}

// Update handles PUT /airlines/{id}
func (h *AirlineHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req AirlineRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, "airline.update", err)
		return
	}
	patch, err := req.Patch()
	if err != nil {
		h.writeError(w, "airline.update", err)
		return
	}

	updated, err := h.service.Update(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		h.writeError(w, "airline.update", err)
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /airlines/{id}
func (h *AirlineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeError(w, "airline.delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

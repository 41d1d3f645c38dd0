package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"airline-service/internal/usecase"
	"airline-service/pkg/logger"
	"airline-service/pkg/metrics"
)

// AirportHandler serves the /airports resource
type AirportHandler struct {
	service *usecase.AirportService
	responder
}

// NewAirportHandler creates a new airport handler
func NewAirportHandler(service *usecase.AirportService, metrics *metrics.Metrics, logger logger.Logger) *AirportHandler {
	return &AirportHandler{
		service:   service,
		responder: responder{metrics: metrics, logger: logger},
	}
}

// FindAll handles GET /airports
func (h *AirportHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	airports, err := h.service.FindAll(r.Context())
	if err != nil {
		h.writeError(w, "airport.find_all", err)
		return
	}
	h.writeJSON(w, http.StatusOK, airports)
}

// FindOne handles GET /airports/{id}
func (h *AirportHandler) FindOne(w http.ResponseWriter, r *http.Request) {
	airport, err := h.service.FindOne(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, "airport.find_one", err)
		return
	}
	h.writeJSON(w, http.StatusOK, airport)
}

// Create handles POST /airports
func (h *AirportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req AirportRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, "airport.create", err)
		return
	}
	airport, err := req.Airport()
	if err != nil {
		h.writeError(w, "airport.create", err)
		return
	}

	created, err := h.service.Create(r.Context(), airport)
	if err != nil {
		h.writeError(w, "airport.create", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, created)
}

// Update handles PUT /airports/{id}
func (h *AirportHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req AirportRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, "airport.update", err)
		return
	}

	updated, err := h.service.Update(r.Context(), mux.Vars(r)["id"], req.Patch())
	if err != nil {
		h.writeError(w, "airport.update", err)
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /airports/{id}
func (h *AirportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeError(w, "airport.delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"airline-service/internal/usecase"
	"airline-service/pkg/logger"
	"airline-service/pkg/metrics"
)

// AirlineAirportHandler serves /airlines/{airlineId}/airports
type AirlineAirportHandler struct {
	service *usecase.AirlineAirportService
	responder
}

// NewAirlineAirportHandler creates a new association handler
func NewAirlineAirportHandler(service *usecase.AirlineAirportService, metrics *metrics.Metrics, logger logger.Logger) *AirlineAirportHandler {
	return &AirlineAirportHandler{
		service:   service,
		responder: responder{metrics: metrics, logger: logger},
	}
}

// Add handles POST /airlines/{airlineId}/airports/{airportId}
func (h *AirlineAirportHandler) Add(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	airline, err := h.service.AddAirportToAirline(r.Context(), vars["airlineId"], vars["airportId"])
	if err != nil {
		h.writeError(w, "airline_airport.add", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, airline)
}

// FindAll handles GET /airlines/{airlineId}/airports
func (h *AirlineAirportHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	airports, err := h.service.FindAirportsFromAirline(r.Context(), mux.Vars(r)["airlineId"])
	if err != nil {
		h.writeError(w, "airline_airport.find_all", err)
		return
	}
	h.writeJSON(w, http.StatusOK, airports)
}

// FindOne handles GET /airlines/{airlineId}/airports/{airportId}
func (h *AirlineAirportHandler) FindOne(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	airport, err := h.service.FindAirportFromAirline(r.Context(), vars["airlineId"], vars["airportId"])
	if err != nil {
		h.writeError(w, "airline_airport.find_one", err)
		return
	}
	h.writeJSON(w, http.StatusOK, airport)
}

// Replace handles PUT /airlines/{airlineId}/airports
func (h *AirlineAirportHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var refs []AirportRef
	if err := decodeJSON(w, r, &refs); err != nil {
		h.writeError(w, "airline_airport.replace", err)
		return
	}

	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.key())
	}

	airline, err := h.service.UpdateAirportsFromAirline(r.Context(), mux.Vars(r)["airlineId"], ids)
	if err != nil {
		h.writeError(w, "airline_airport.replace", err)
		return
	}
	h.writeJSON(w, http.StatusOK, airline)
}

// Delete handles DELETE /airlines/{airlineId}/airports/{airportId}
func (h *AirlineAirportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.service.DeleteAirportFromAirline(r.Context(), vars["airlineId"], vars["airportId"]); err != nil {
		h.writeError(w, "airline_airport.delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

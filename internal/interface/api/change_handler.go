package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"airline-service/internal/usecase"
	"airline-service/pkg/logger"
	"airline-service/pkg/metrics"
)

// ChangeHandler serves the change history of airlines and airports
type ChangeHandler struct {
	changes *usecase.ChangeRecorder
	responder
}

func NewChangeHandler(changes *usecase.ChangeRecorder, metrics *metrics.Metrics, logger logger.Logger) *ChangeHandler {
	return &ChangeHandler{
		changes:   changes,
		responder: responder{metrics: metrics, logger: logger},
	}
}

// History handles GET /changes/{entity}/{id}
func (h *ChangeHandler) History(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	entries, err := h.changes.History(r.Context(), vars["entity"], vars["id"])
	if err != nil {
		h.writeError(w, "change.history", err)
		return
	}
	h.writeJSON(w, http.StatusOK, entries)
}

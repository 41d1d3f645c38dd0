package api

import (
	"encoding/json"
	"net/http"

	"github.com/juju/errors"

	"airline-service/pkg/logger"
	"airline-service/pkg/metrics"
)

// maxBodyBytes bounds request bodies
const maxBodyBytes = 1 << 20

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// responder writes JSON responses and maps error kinds to status codes
type responder struct {
	metrics *metrics.Metrics
	logger  logger.Logger
}

func (r responder) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		r.logger.Error("Failed to encode response", "error", err)
	}
}

// writeError reports err to the client. Errors without a known kind are
// logged and hidden behind a generic message.
func (r responder) writeError(w http.ResponseWriter, operation string, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		r.logger.Error("Request failed", "operation", operation, "error", errors.ErrorStack(err))
		message = "internal server error"
	} else {
		r.logger.Debug("Request rejected", "operation", operation, "status", status, "error", err)
	}

	r.metrics.ObserveError(operation)
	r.writeJSON(w, status, ErrorResponse{StatusCode: status, Message: message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errors.NotFound):
		return http.StatusNotFound
	case errors.Is(err, errors.NotValid), errors.Is(err, errors.BadRequest):
		return http.StatusBadRequest
	case errors.Is(err, errors.AlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON reads the request body into dst
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return errors.BadRequestf("malformed request body: %v", err)
	}
	return nil
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-book-rental/internal/logger"
	"github.com/sbilibin2017/gw-book-rental/internal/services"
)

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Always false
	// default: false
	Success bool `json:"success"`

	// HTTP status code
	// default: 404
	Status int `json:"status"`

	// Error kind
	// default: NotFound
	Kind string `json:"kind"`

	// Human readable description
	// default: book not found
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeErrorResponse(w http.ResponseWriter, status int, kind services.Kind, message string) {
	writeJSON(w, status, ErrorResponse{
		Success: false,
		Status:  status,
		Kind:    kind.String(),
		Message: message,
	})
}

// writeInvalidInput rejects a request before it reaches a service.
func writeInvalidInput(w http.ResponseWriter, message string) {
	writeErrorResponse(w, http.StatusBadRequest, services.KindInvalidInput, message)
}

// writeError maps a service error to its status code.
func writeError(w http.ResponseWriter, err error) {
	kind := services.KindOf(err)
	status := statusForKind(kind)

	message := err.Error()
	switch kind {
	case services.KindStoreUnavailable:
		// Driver errors stay in the logs.
		message = services.ErrStoreUnavailable.Message
	case services.KindUnknown:
		message = http.StatusText(http.StatusInternalServerError)
	}

	if status >= http.StatusInternalServerError {
		logger.Log.Errorw("request failed", "status", status, "kind", kind.String(), "error", err)
	}
	writeErrorResponse(w, status, kind, message)
}

func statusForKind(kind services.Kind) int {
	switch kind {
	case services.KindNotFound:
		return http.StatusNotFound
	case services.KindInvalidInput, services.KindInvalidTemporalOrder:
		return http.StatusBadRequest
	case services.KindConflict:
		return http.StatusConflict
	case services.KindStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

var errInvalidID = errors.New("invalid id")

// uuidParam reads a UUID path parameter.
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, errInvalidID
	}
	return id, nil
}

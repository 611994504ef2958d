package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-book-rental/internal/logger"
)

//go:generate mockgen -source=health.go -destination=mock_health_test.go -package=handlers

// Pinger checks a backing store.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse reports service liveness
// swagger:model HealthResponse
type HealthResponse struct {
	// default: ok
	Status string `json:"status"`
}

const healthPingTimeout = 2 * time.Second

// NewHealthHandler reports whether the database answers.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Failure 503 {object} handlers.HealthResponse
// @Router /healthz [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			logger.Log.Errorw("health check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// RegisterHealthHandler registers the health check route
func RegisterHealthHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/healthz", h)
}

package handlers

import (
	"log/slog"
	"net/http"
	"time"
)

// HealthHandler provides health check endpoint
type HealthHandler struct {
	logger       *slog.Logger
	providerMode string
	storeMode    string
}

// NewHealthHandler creates a new health handler. providerMode names the
// active AI provider or "offline"; storeMode names the order store or
// "unavailable".
func NewHealthHandler(logger *slog.Logger, providerMode, storeMode string) *HealthHandler {
	return &HealthHandler{
		logger:       logger,
		providerMode: providerMode,
		storeMode:    storeMode,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Provider  string    `json:"provider"`
	Store     string    `json:"store"`
}

// ServeHTTP handles health check requests
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	if h.storeMode == StoreModeUnavailable {
		status = "degraded"
	}

	WriteJSON(w, http.StatusOK, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Version:   "1.0.0",
		Provider:  h.providerMode,
		Store:     h.storeMode,
	}, h.logger)
}

// Modes reported by the health check when no backend is configured
const (
	ProviderModeOffline  = "offline"
	StoreModeUnavailable = "unavailable"
)

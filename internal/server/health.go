package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/condyl/ruby/internal/api"
	"github.com/condyl/ruby/internal/config"
	"github.com/condyl/ruby/internal/middleware"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// HealthServer exposes a small operational surface next to the bot: liveness
// and the provider rate-limit budget tracked by the HenrikDev client.
type HealthServer struct {
	hdev   *api.HDevClient
	logger zerolog.Logger
}

func NewHealthServer(hdev *api.HDevClient, logger zerolog.Logger) *HealthServer {
	return &HealthServer{hdev: hdev, logger: logger}
}

// HTTPServer builds the listener with the handler chain applied.
func (h *HealthServer) HTTPServer(cfg *config.Config) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", h.handleHealthz)
	mux.HandleFunc("/ratelimit", h.handleRateLimit)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	handler := middleware.RequestID(h.logger)(c.Handler(mux))

	return &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HealthPort),
		Handler: handler,
	}
}

func (h *HealthServer) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		h.logger.Warn().Err(err).Msg("failed to write health response")
	}
}

func (h *HealthServer) handleRateLimit(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.hdev.GetRateLimitInfo()); err != nil {
		h.logger.Warn().Err(err).Msg("failed to write rate limit response")
	}
}

package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"transportpro/internal/service"
)

type StatsHandler struct {
	statsService service.StatsService
	logger       zerolog.Logger
}

func NewStatsHandler(statsService service.StatsService, logger zerolog.Logger) *StatsHandler {
	return &StatsHandler{statsService: statsService, logger: logger}
}

func (h *StatsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("GET /stats", http.HandlerFunc(h.stats))
	mux.Handle("GET /{$}", http.HandlerFunc(h.root))
}

func (h *StatsHandler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.Collect(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to collect stats")
		http.Error(w, "Failed to collect stats", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *StatsHandler) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "TransportPro API",
		"version": "1.0.0",
	})
}

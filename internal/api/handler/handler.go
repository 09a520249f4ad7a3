// Package handler provides HTTP handlers for all API endpoints. Puzzle
// handlers compute deterministic daily selections against the injected
// dataset provider; fixtures and news handlers are cached passthroughs.
package handler

import (
	"net/http"
	"time"

	"github.com/worldcuphub/hub-data/internal/api/respond"
	"github.com/worldcuphub/hub-data/internal/cache"
	"github.com/worldcuphub/hub-data/internal/config"
	"github.com/worldcuphub/hub-data/internal/dataset"
	"github.com/worldcuphub/hub-data/internal/external"
	"github.com/worldcuphub/hub-data/internal/puzzle"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	provider dataset.Provider
	cache    *cache.Cache
	cfg      *config.Config
	fixtures *external.FixturesService
	news     *external.NewsService
}

// New creates a Handler with shared dependencies.
func New(provider dataset.Provider, c *cache.Cache, cfg *config.Config) *Handler {
	return &Handler{
		provider: provider,
		cache:    c,
		cfg:      cfg,
		fixtures: external.NewFixturesService(cfg.FootballDataToken),
		news:     external.NewNewsService(cfg.NewsEdition),
	}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, status, and available games.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "World Cup Hub Data API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
		"games":   puzzle.GameTypes,
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckDataset verifies the dataset can be read.
// @Summary Dataset health check
// @Description Verifies the puzzle dataset is readable and reports row counts.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/dataset [get]
func (h *Handler) HealthCheckDataset(w http.ResponseWriter, r *http.Request) {
	apps, appErr := h.provider.Appearances()
	goals, goalErr := h.provider.Goals()
	if appErr != nil || goalErr != nil {
		respond.WriteJSONObject(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "unhealthy",
			"dataset":   "unreadable",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":      "healthy",
		"appearances": len(apps),
		"goals":       len(goals),
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Description Returns in-memory cache statistics (active keys, expired keys).
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

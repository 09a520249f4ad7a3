package handler

import (
	"log/slog"
	"net/http"

	"github.com/worldcuphub/hub-data/internal/api/respond"
	"github.com/worldcuphub/hub-data/internal/cache"
)

// GetFixtures proxies the upstream World Cup match feed.
// @Summary Get World Cup fixtures
// @Description Passthrough of the football-data.org World Cup match list, cached for one minute.
// @Tags fixtures
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} respond.ErrorResponse
// @Router /fixtures [get]
func (h *Handler) GetFixtures(w http.ResponseWriter, r *http.Request) {
	const cacheKey = "fixtures:wc"
	ttl := cache.TTLFixtures

	if data, etag, ok := h.cache.Get(cacheKey); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, ttl, true)
		return
	}

	raw, err := h.fixtures.Matches(r.Context())
	if err != nil {
		slog.Error("fixtures fetch failed", "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "FIXTURES_UNAVAILABLE", err.Error())
		return
	}

	etag := h.cache.Set(cacheKey, raw, ttl)
	respond.WriteJSON(w, raw, etag, ttl, false)
}

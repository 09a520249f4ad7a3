package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/worldcuphub/hub-data/internal/api/respond"
	"github.com/worldcuphub/hub-data/internal/cache"
)

// GetNews returns shaped World Cup news from the Google News RSS feed.
// @Summary Get World Cup news
// @Description Fetches Google News RSS for the query (defaults to World Cup 2026 with off-topic exclusions) and returns shaped items. Cached for five minutes per query.
// @Tags news
// @Produce json
// @Param q query string false "Search query"
// @Param limit query int false "Maximum items, clamped to [1,50]" default(20)
// @Success 200 {object} external.NewsResult
// @Failure 500 {object} respond.ErrorResponse
// @Router /news [get]
func (h *Handler) GetNews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	cacheKey := fmt.Sprintf("news:%s:%d", q, limit)
	ttl := cache.TTLNews

	if data, etag, ok := h.cache.Get(cacheKey); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, ttl, true)
		return
	}

	result, err := h.news.Search(r.Context(), q, limit)
	if err != nil {
		slog.Error("news fetch failed", "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "NEWS_UNAVAILABLE", "Google News RSS fetch failed")
		return
	}

	raw, err := json.Marshal(result)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "Failed to encode news")
		return
	}

	etag := h.cache.Set(cacheKey, raw, ttl)
	respond.WriteJSON(w, raw, etag, ttl, false)
}

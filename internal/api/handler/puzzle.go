package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/worldcuphub/hub-data/internal/api/respond"
	"github.com/worldcuphub/hub-data/internal/cache"
	"github.com/worldcuphub/hub-data/internal/dataset"
	"github.com/worldcuphub/hub-data/internal/puzzle"
)

// GetPuzzle returns the deterministic daily puzzle for a game type.
// @Summary Get the daily puzzle
// @Description Returns the puzzle for (gameType, difficulty, puzzle_id). The same inputs always produce the same puzzle. puzzle_id defaults to today's UTC date; malformed values are coerced to it.
// @Tags puzzles
// @Produce json
// @Param gameType path string true "Game type" Enums(missing11, whoscored, wordlecup)
// @Param difficulty query string false "Difficulty tier (defaults to easy)" Enums(easy, hard)
// @Param puzzle_id query string false "Puzzle date key, YYYY-MM-DD"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /puzzle/{gameType} [get]
func (h *Handler) GetPuzzle(w http.ResponseWriter, r *http.Request) {
	gameType, ok := puzzle.ParseGameType(chi.URLParam(r, "gameType"))
	if !ok {
		respond.WriteError(w, http.StatusNotFound, "UNKNOWN_GAME", "Unknown game type")
		return
	}

	// Malformed query parameters are coerced, not rejected: an unknown
	// difficulty falls back to easy, a malformed puzzle_id to today.
	difficulty, ok := puzzle.ParseDifficulty(r.URL.Query().Get("difficulty"))
	if !ok {
		difficulty = puzzle.Easy
	}
	puzzleID := puzzle.EffectivePuzzleID(r.URL.Query().Get("puzzle_id"))

	cacheKey := fmt.Sprintf("puzzle:%s:%s:%s", gameType, difficulty, puzzleID)
	ttl := cache.TTLPuzzle

	if data, etag, ok := h.cache.Get(cacheKey); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, ttl, true)
		return
	}

	view, err := puzzle.Get(h.provider, gameType, difficulty, puzzleID)
	if err != nil {
		h.writePuzzleError(w, gameType, difficulty, puzzleID, err)
		return
	}

	raw, err := json.Marshal(view)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "Failed to encode puzzle")
		return
	}

	etag := h.cache.Set(cacheKey, raw, ttl)
	respond.WriteJSON(w, raw, etag, ttl, false)
}

func (h *Handler) writePuzzleError(w http.ResponseWriter, gameType string, d puzzle.Difficulty, puzzleID string, err error) {
	switch {
	case errors.Is(err, puzzle.ErrNoEligiblePuzzle), errors.Is(err, puzzle.ErrNoEligibleSurname):
		// Configuration/data error — never falls back to another tier.
		slog.Error("empty candidate pool",
			"game", gameType, "difficulty", d, "puzzle_id", puzzleID, "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "NO_ELIGIBLE_PUZZLE", "No eligible puzzle for this selection")
	case errors.Is(err, dataset.ErrUnavailable):
		slog.Error("dataset unavailable", "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "DATA_UNAVAILABLE", "Puzzle data is unavailable")
	default:
		slog.Error("puzzle computation failed",
			"game", gameType, "difficulty", d, "puzzle_id", puzzleID, "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "Failed to compute puzzle")
	}
}

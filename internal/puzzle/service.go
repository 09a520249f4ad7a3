// Package puzzle implements the deterministic daily-puzzle engine shared
// by the three games: candidate pools filtered per difficulty tier, a
// stable hash-based daily selection, and per-game answer projections.
// Everything here is pure given (dataset snapshot, puzzleId, difficulty) —
// no clocks beyond the explicit puzzle id, no randomness.
package puzzle

import (
	"fmt"

	"github.com/worldcuphub/hub-data/internal/dataset"
)

// Game type identifiers. These also form the first segment of the
// client persistence keys, so they must not change.
const (
	GameMissing11 = "missing11"
	GameWhoScored = "whoscored"
	GameWordleCup = "wordlecup"
)

// GameTypes lists every puzzle game in display order.
var GameTypes = []string{GameMissing11, GameWhoScored, GameWordleCup}

// ParseGameType reports whether s names a known game.
func ParseGameType(s string) (string, bool) {
	switch s {
	case GameMissing11, GameWhoScored, GameWordleCup:
		return s, true
	}
	return "", false
}

// View is the common surface of the three puzzle views.
type View interface {
	// Game returns the game type identifier of the view.
	Game() string
}

func (p *LineupPuzzle) Game() string    { return GameMissing11 }
func (p *WhoScoredPuzzle) Game() string { return GameWhoScored }
func (p *WordlePuzzle) Game() string    { return GameWordleCup }

// Get computes the puzzle for (gameType, difficulty, puzzleID) against
// the given provider. An empty or malformed puzzleID means today (UTC).
// Identical inputs always yield identical results.
func Get(provider dataset.Provider, gameType string, d Difficulty, puzzleID string) (View, error) {
	switch gameType {
	case GameMissing11:
		return Lineup(provider, d, puzzleID)
	case GameWhoScored:
		return WhoScored(provider, d, puzzleID)
	case GameWordleCup:
		return WordleCup(provider, d, puzzleID)
	}
	return nil, fmt.Errorf("unknown game type %q", gameType)
}

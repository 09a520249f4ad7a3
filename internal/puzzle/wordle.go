package puzzle

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/worldcuphub/hub-data/internal/dataset"
)

// ErrNoEligibleSurname is returned when no lineup in the whole pool
// contains a surname playable in the word game. Like an empty pool, this
// is a dataset problem, not a user error.
var ErrNoEligibleSurname = errors.New("no eligible surname in any lineup")

// Playable surname length bounds after normalization.
const (
	minSurnameLen = 5
	maxSurnameLen = 8
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeSurname prepares a family name for the word game: trim,
// decompose and strip diacritics, drop apostrophes (straight and curly),
// uppercase. "Özil" becomes "OZIL", "N'Golo" becomes "NGOLO".
func NormalizeSurname(raw string) string {
	s := strings.TrimSpace(raw)
	if stripped, _, err := transform.String(stripMarks, s); err == nil {
		s = stripped
	}
	s = strings.NewReplacer("'", "", "’", "").Replace(s)
	return strings.ToUpper(s)
}

// EligibleSurname reports whether a family name can be the day's word:
// no internal whitespace (rules out "van Persie"), pure A-Z after
// normalization, and 5-8 letters long.
func EligibleSurname(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	if strings.ContainsFunc(trimmed, unicode.IsSpace) {
		return false
	}

	n := NormalizeSurname(trimmed)
	if len(n) < minSurnameLen || len(n) > maxSurnameLen {
		return false
	}
	for _, c := range n {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

// WordlePuzzle is the word-guess puzzle view for one day. Answer is the
// normalized uppercase surname; the match fields identify where it came
// from.
type WordlePuzzle struct {
	GameType   string     `json:"gameType"`
	Difficulty Difficulty `json:"difficulty"`
	PuzzleID   string     `json:"puzzleId"`
	Answer     string     `json:"answer"`
	PlayerID   string     `json:"player_id"`
	MatchID    string     `json:"match_id"`
	MatchName  string     `json:"match_name"`
	MatchDate  string     `json:"match_date"`
	TeamName   string     `json:"team_name"`
	TeamCode   string     `json:"team_code"`
}

type wordleCandidate struct {
	playerID string
	raw      string
	answer   string
}

func eligiblePlayers(players []dataset.Appearance) []wordleCandidate {
	var out []wordleCandidate
	for _, p := range players {
		if !EligibleSurname(p.FamilyName) {
			continue
		}
		out = append(out, wordleCandidate{
			playerID: p.PlayerID,
			raw:      p.FamilyName,
			answer:   NormalizeSurname(p.FamilyName),
		})
	}
	return out
}

// WordleCup selects the day's surname. Two independent deterministic
// picks share the puzzle id: one over the lineup pool, one over the
// chosen lineup's eligible surnames. A lineup with no playable surname is
// skipped by walking forward through the pool (with wrap-around) until
// one qualifies.
func WordleCup(provider dataset.Provider, d Difficulty, puzzleID string) (*WordlePuzzle, error) {
	apps, err := provider.Appearances()
	if err != nil {
		return nil, err
	}
	id := EffectivePuzzleID(puzzleID)

	pool := FilterLineupsForWordleCup(BuildLineupCandidates(apps), d)
	if len(pool) == 0 {
		return nil, ErrNoEligiblePuzzle
	}

	lineupKey := id + "__" + string(d) + "__wordlecup__lineup"
	lineupIndex := StableIndex(lineupKey, len(pool))
	playerKey := id + "__" + string(d) + "__wordlecup__player"

	for offset := 0; offset < len(pool); offset++ {
		lineup := pool[(lineupIndex+offset)%len(pool)]
		eligible := eligiblePlayers(lineup.Players)
		if len(eligible) == 0 {
			continue
		}

		chosen := eligible[StableIndex(playerKey, len(eligible))]
		return &WordlePuzzle{
			GameType:   GameWordleCup,
			Difficulty: d,
			PuzzleID:   id,
			Answer:     chosen.answer,
			PlayerID:   chosen.playerID,
			MatchID:    lineup.MatchID,
			MatchName:  lineup.MatchName,
			MatchDate:  lineup.MatchDate,
			TeamName:   lineup.TeamName,
			TeamCode:   lineup.TeamCode,
		}, nil
	}

	return nil, ErrNoEligibleSurname
}

package puzzle

import (
	"sort"
	"strconv"
	"strings"

	"github.com/worldcuphub/hub-data/internal/dataset"
)

// GoalMinute is one goal of a scorer's tally. Label keeps the dataset's
// display form verbatim ("90+3'", "108'"); SortMinute orders goals by
// regulation*100 + stoppage so stoppage goals land after the base minute.
type GoalMinute struct {
	Label      string `json:"label"`
	SortMinute int    `json:"sortMinute"`
	OwnGoal    bool   `json:"isOG"`
	Penalty    bool   `json:"isPen"`
}

// ScorerGroup is one guessable scorer slot: a player and every goal they
// scored in the match, minutes ascending.
type ScorerGroup struct {
	PlayerID   string       `json:"player_id"`
	FamilyName string       `json:"family_name"`
	GivenName  string       `json:"given_name"`
	TeamName   string       `json:"team_name"`
	TeamCode   string       `json:"team_code"`
	Minutes    []GoalMinute `json:"minutes"`
}

// WhoScoredPuzzle is the who-scored puzzle view for one day.
type WhoScoredPuzzle struct {
	GameType     string        `json:"gameType"`
	Difficulty   Difficulty    `json:"difficulty"`
	PuzzleID     string        `json:"puzzleId"`
	MatchID      string        `json:"match_id"`
	MatchName    string        `json:"match_name"`
	MatchDate    string        `json:"match_date"`
	StageName    string        `json:"stage_name"`
	HomeTeamName string        `json:"home_team_name"`
	AwayTeamName string        `json:"away_team_name"`
	HomeScore    int           `json:"home_score"`
	AwayScore    int           `json:"away_score"`
	AET          bool          `json:"isAET"`
	HomeGoals    []ScorerGroup `json:"homeGoals"`
	AwayGoals    []ScorerGroup `json:"awayGoals"`
}

// labelMinute parses a display label back to a single comparable number:
// "90+3'" becomes 93, "108'" becomes 108. Used for ordering scorers by
// their first goal, where only the label survives grouping.
func labelMinute(label string) int {
	clean := strings.TrimSpace(strings.ReplaceAll(label, "'", ""))
	if base, add, ok := strings.Cut(clean, "+"); ok {
		return atoiSafe(base) + atoiSafe(add)
	}
	return atoiSafe(clean)
}

func atoiSafe(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// GroupScorers collapses one side's goal rows into per-player groups.
// Players appear in the order of their first goal; each player's minutes
// are ascending.
func GroupScorers(goals []dataset.Goal, home bool) []ScorerGroup {
	byPlayer := make(map[string]*ScorerGroup)
	var order []string

	for _, g := range goals {
		if home && !g.HomeTeam {
			continue
		}
		if !home && !g.AwayTeam {
			continue
		}

		minute := GoalMinute{
			Label:      strings.TrimSpace(g.MinuteLabel),
			SortMinute: g.MinuteRegulation*100 + g.MinuteStoppage,
			OwnGoal:    g.OwnGoal,
			Penalty:    g.Penalty,
		}

		if existing, ok := byPlayer[g.PlayerID]; ok {
			existing.Minutes = append(existing.Minutes, minute)
			continue
		}
		byPlayer[g.PlayerID] = &ScorerGroup{
			PlayerID:   g.PlayerID,
			FamilyName: g.FamilyName,
			GivenName:  g.GivenName,
			TeamName:   g.TeamName,
			TeamCode:   g.TeamCode,
			Minutes:    []GoalMinute{minute},
		}
		order = append(order, g.PlayerID)
	}

	grouped := make([]ScorerGroup, 0, len(order))
	for _, id := range order {
		p := *byPlayer[id]
		sort.SliceStable(p.Minutes, func(i, j int) bool {
			return labelMinute(p.Minutes[i].Label) < labelMinute(p.Minutes[j].Label)
		})
		grouped = append(grouped, p)
	}

	sort.SliceStable(grouped, func(i, j int) bool {
		return labelMinute(grouped[i].Minutes[0].Label) < labelMinute(grouped[j].Minutes[0].Label)
	})
	return grouped
}

// WhoScored selects and projects the day's goal-guessing puzzle.
func WhoScored(provider dataset.Provider, d Difficulty, puzzleID string) (*WhoScoredPuzzle, error) {
	goals, err := provider.Goals()
	if err != nil {
		return nil, err
	}
	id := EffectivePuzzleID(puzzleID)

	pool := FilterMatches(BuildMatchCandidates(goals), d)
	if len(pool) == 0 {
		return nil, ErrNoEligiblePuzzle
	}

	key := id + "__" + string(d) + "__whoscored__match"
	chosen := pool[StableIndex(key, len(pool))]

	return &WhoScoredPuzzle{
		GameType:     GameWhoScored,
		Difficulty:   d,
		PuzzleID:     id,
		MatchID:      chosen.MatchID,
		MatchName:    chosen.MatchName,
		MatchDate:    chosen.MatchDate,
		StageName:    chosen.StageName,
		HomeTeamName: chosen.HomeTeamName,
		AwayTeamName: chosen.AwayTeamName,
		HomeScore:    chosen.HomeScore,
		AwayScore:    chosen.AwayScore,
		AET:          chosen.AET,
		HomeGoals:    GroupScorers(chosen.Goals, true),
		AwayGoals:    GroupScorers(chosen.Goals, false),
	}, nil
}

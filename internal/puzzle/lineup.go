package puzzle

import (
	"sort"
	"strconv"
	"strings"

	"github.com/worldcuphub/hub-data/internal/dataset"
)

// positionToRow maps dataset position codes to formation rows. The sheet
// mixes eras: modern long codes (LB, DM, ST), short codes (DF, MF, FW)
// and single letters from older data (D, M, F). Codes outside this table
// drop out of the formation rather than crashing the projection.
var positionToRow = map[string]FormationRow{
	"GK": RowGK,

	"DEF": RowDF,
	"MID": RowMF,
	"ATT": RowFW,

	"DF": RowDF,
	"MF": RowMF,
	"FW": RowFW,

	"D": RowDF,
	"M": RowMF,
	"F": RowFW,

	"LB":  RowDF,
	"RB":  RowDF,
	"CB":  RowDF,
	"LWB": RowDF,
	"RWB": RowDF,
	"SW":  RowDF,

	"DM": RowMF,
	"CM": RowMF,
	"AM": RowMF,
	"LM": RowMF,
	"RM": RowMF,

	"LW": RowFW,
	"RW": RowFW,
	"CF": RowFW,
	"ST": RowFW,
	"SS": RowFW,
	"LF": RowFW,
	"RF": RowFW,
}

// positionSideWeight orders players within a row left to right:
// left-sided 1, central 2, right-sided 3. Unlisted codes default to
// central.
var positionSideWeight = map[string]int{
	"LB":  1,
	"LWB": 1,
	"LW":  1,

	"CB": 2,
	"DM": 2,
	"CM": 2,
	"AM": 2,
	"CF": 2,
	"ST": 2,
	"GK": 2,

	"RB":  3,
	"RWB": 3,
	"RW":  3,
}

// FormationRow is one of the four pitch rows players are bucketed into.
type FormationRow string

const (
	RowGK FormationRow = "GK"
	RowDF FormationRow = "DF"
	RowMF FormationRow = "MF"
	RowFW FormationRow = "FW"
)

// FormationRows lists the rows in render order, goalkeeper first.
var FormationRows = []FormationRow{RowGK, RowDF, RowMF, RowFW}

// LineupPlayer is one slot of the starting-XI puzzle.
type LineupPlayer struct {
	PlayerID     string `json:"player_id"`
	FamilyName   string `json:"family_name"`
	GivenName    string `json:"given_name"`
	ShirtNumber  string `json:"shirt_number"`
	PositionCode string `json:"position_code"`
}

// Formation holds the four row buckets of a projected lineup.
type Formation map[FormationRow][]LineupPlayer

// LineupPuzzle is the missing-11 puzzle view for one day.
type LineupPuzzle struct {
	GameType   string     `json:"gameType"`
	Difficulty Difficulty `json:"difficulty"`
	PuzzleID   string     `json:"puzzleId"`
	MatchID    string     `json:"match_id"`
	MatchName  string     `json:"match_name"`
	MatchDate  string     `json:"match_date"`
	TeamName   string     `json:"team_name"`
	TeamCode   string     `json:"team_code"`
	Formation  Formation  `json:"formation"`
}

// ProjectFormation buckets a candidate's starters into the four rows and
// sorts each row by side weight then shirt number. Players with unmapped
// position codes are omitted.
func ProjectFormation(players []dataset.Appearance) Formation {
	f := Formation{RowGK: {}, RowDF: {}, RowMF: {}, RowFW: {}}

	for _, p := range players {
		code := strings.ToUpper(strings.TrimSpace(p.PositionCode))
		row, ok := positionToRow[code]
		if !ok {
			continue
		}
		f[row] = append(f[row], LineupPlayer{
			PlayerID:     p.PlayerID,
			FamilyName:   p.FamilyName,
			GivenName:    p.GivenName,
			ShirtNumber:  p.ShirtNumber,
			PositionCode: p.PositionCode,
		})
	}

	for _, row := range FormationRows {
		players := f[row]
		sort.SliceStable(players, func(i, j int) bool {
			wi := sideWeight(players[i].PositionCode)
			wj := sideWeight(players[j].PositionCode)
			if wi != wj {
				return wi < wj
			}
			return shirtNum(players[i].ShirtNumber) < shirtNum(players[j].ShirtNumber)
		})
	}
	return f
}

func sideWeight(code string) int {
	if w, ok := positionSideWeight[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return w
	}
	return 2
}

func shirtNum(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// Lineup selects and projects the day's starting-XI puzzle. The selection
// key is the original missing-11 key — puzzleId and difficulty only.
func Lineup(provider dataset.Provider, d Difficulty, puzzleID string) (*LineupPuzzle, error) {
	apps, err := provider.Appearances()
	if err != nil {
		return nil, err
	}
	id := EffectivePuzzleID(puzzleID)

	pool := FilterLineupsForMissing11(BuildLineupCandidates(apps), d)
	if len(pool) == 0 {
		return nil, ErrNoEligiblePuzzle
	}

	key := id + "__" + string(d)
	chosen := pool[StableIndex(key, len(pool))]

	return &LineupPuzzle{
		GameType:   GameMissing11,
		Difficulty: d,
		PuzzleID:   id,
		MatchID:    chosen.MatchID,
		MatchName:  chosen.MatchName,
		MatchDate:  chosen.MatchDate,
		TeamName:   chosen.TeamName,
		TeamCode:   chosen.TeamCode,
		Formation:  ProjectFormation(chosen.Players),
	}, nil
}

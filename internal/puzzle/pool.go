package puzzle

import (
	"errors"
	"strings"

	"github.com/worldcuphub/hub-data/internal/dataset"
)

// ErrNoEligiblePuzzle is returned when filtering leaves an empty candidate
// pool for the requested tier. It is a data/configuration error: there is
// no sensible fallback, so it surfaces as a hard failure.
var ErrNoEligiblePuzzle = errors.New("no eligible puzzle")

// easyTeams is the fixed nine-country allow-list that defines the easy
// tier. Hard tiers exclude these teams.
var easyTeams = map[string]bool{
	"England":     true,
	"Italy":       true,
	"France":      true,
	"Spain":       true,
	"Germany":     true,
	"Portugal":    true,
	"Netherlands": true,
	"Brazil":      true,
	"Argentina":   true,
}

// easyYears are the tournaments the easy lineup tiers draw from.
var easyYears = map[string]bool{
	"2010": true,
	"2014": true,
	"2018": true,
	"2022": true,
}

// IsEasyTeam reports whether name is on the allow-list.
func IsEasyTeam(name string) bool { return easyTeams[name] }

// IsKnockoutStage treats only the literal "group stage" (case-insensitive)
// as non-knockout. Every other non-empty stage name — round of 16,
// quarter-finals, semi-finals, third place, final — counts as knockout.
// An empty or missing stage fails the test.
func IsKnockoutStage(stageName string) bool {
	s := strings.ToLower(strings.TrimSpace(stageName))
	if s == "" {
		return false
	}
	return s != "group stage"
}

// LineupCandidate is one (match, team) starting XI: exactly 11 starters
// including at least one goalkeeper.
type LineupCandidate struct {
	MatchID   string
	MatchName string
	MatchDate string
	StageName string
	TeamName  string
	TeamCode  string
	Players   []dataset.Appearance
}

// Year returns the candidate's four-character match year.
func (c LineupCandidate) Year() string {
	if len(c.MatchDate) < 4 {
		return ""
	}
	return c.MatchDate[:4]
}

// BuildLineupCandidates groups starter rows by (match, team) and keeps
// only complete XIs with a goalkeeper. Order is stable: groups appear in
// first-encounter order of the underlying rows, so the same dataset
// always yields the same pool ordering.
func BuildLineupCandidates(apps []dataset.Appearance) []LineupCandidate {
	type group struct {
		players []dataset.Appearance
	}
	byKey := make(map[string]*group)
	var order []string

	for _, a := range apps {
		if !a.Starter {
			continue
		}
		key := a.MatchID + "__" + a.TeamID
		g, ok := byKey[key]
		if !ok {
			g = &group{}
			byKey[key] = g
			order = append(order, key)
		}
		g.players = append(g.players, a)
	}

	var out []LineupCandidate
	for _, key := range order {
		players := byKey[key].players
		if len(players) != 11 {
			continue
		}
		hasGK := false
		for _, p := range players {
			if p.PositionCode == "GK" {
				hasGK = true
				break
			}
		}
		if !hasGK {
			continue
		}

		sample := players[0]
		out = append(out, LineupCandidate{
			MatchID:   sample.MatchID,
			MatchName: sample.MatchName,
			MatchDate: sample.MatchDate,
			StageName: sample.StageName,
			TeamName:  sample.TeamName,
			TeamCode:  sample.TeamCode,
			Players:   players,
		})
	}
	return out
}

// FilterLineupsForMissing11 applies the starting-XI tier rules.
// Easy: allow-list team in a 2010/2014/2018/2022 tournament.
// Hard: 2002 onward, allow-list excluded, knockout stages only.
func FilterLineupsForMissing11(candidates []LineupCandidate, d Difficulty) []LineupCandidate {
	var out []LineupCandidate
	for _, c := range candidates {
		switch d {
		case Easy:
			if easyTeams[c.TeamName] && easyYears[c.Year()] {
				out = append(out, c)
			}
		case Hard:
			if c.Year() >= "2002" && !easyTeams[c.TeamName] && IsKnockoutStage(c.StageName) {
				out = append(out, c)
			}
		}
	}
	return out
}

// FilterLineupsForWordleCup applies the word-guess tier rules. The hard
// tier reaches back to 1980 and has no stage filter — intentionally wider
// than the starting-XI pool.
func FilterLineupsForWordleCup(candidates []LineupCandidate, d Difficulty) []LineupCandidate {
	var out []LineupCandidate
	for _, c := range candidates {
		switch d {
		case Easy:
			if easyTeams[c.TeamName] && easyYears[c.Year()] {
				out = append(out, c)
			}
		case Hard:
			if c.Year() >= "1980" && !easyTeams[c.TeamName] {
				out = append(out, c)
			}
		}
	}
	return out
}

// MatchCandidate is one match with at least one goal, derived from the
// goals sheet. Teams with no goals never appear in goal rows, so the
// home/away names are recovered from the match name where possible.
type MatchCandidate struct {
	MatchID      string
	MatchName    string
	MatchDate    string
	StageName    string
	HomeTeamName string
	AwayTeamName string
	HomeScore    int
	AwayScore    int
	AET          bool
	Goals        []dataset.Goal
}

// Year returns the candidate's four-character match year.
func (c MatchCandidate) Year() string {
	if len(c.MatchDate) < 4 {
		return ""
	}
	return c.MatchDate[:4]
}

// splitMatchName recovers home/away team names from labels like
// "Brazil v Croatia (Group ...)". Several separators occur across
// tournament eras.
func splitMatchName(name string) (home, away string) {
	clean := strings.TrimSpace(strings.SplitN(strings.TrimSpace(name), "(", 2)[0])

	var parts []string
	switch {
	case strings.Contains(clean, " v "):
		parts = strings.SplitN(clean, " v ", 2)
	case strings.Contains(clean, " vs "):
		parts = strings.SplitN(clean, " vs ", 2)
	case strings.Contains(clean, " v. "):
		parts = strings.SplitN(clean, " v. ", 2)
	default:
		parts = []string{clean}
	}

	home = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		away = strings.TrimSpace(parts[1])
	}
	return home, away
}

func isExtraTimePeriod(period string) bool {
	return strings.Contains(strings.ToLower(period), "extra time")
}

// BuildMatchCandidates groups goal rows by match in first-encounter order
// and derives team names, per-side scores and the AET flag.
func BuildMatchCandidates(goals []dataset.Goal) []MatchCandidate {
	byMatch := make(map[string][]dataset.Goal)
	var order []string
	for _, g := range goals {
		if _, ok := byMatch[g.MatchID]; !ok {
			order = append(order, g.MatchID)
		}
		byMatch[g.MatchID] = append(byMatch[g.MatchID], g)
	}

	var out []MatchCandidate
	for _, matchID := range order {
		rows := byMatch[matchID]
		if len(rows) == 0 {
			continue
		}
		sample := rows[0]

		home, away := splitMatchName(sample.MatchName)
		if home == "" || away == "" {
			for _, g := range rows {
				if home == "" && g.HomeTeam {
					home = g.TeamName
				}
				if away == "" && g.AwayTeam {
					away = g.TeamName
				}
			}
		}

		homeScore, awayScore := 0, 0
		aet := false
		for _, g := range rows {
			if g.HomeTeam {
				homeScore++
			}
			if g.AwayTeam {
				awayScore++
			}
			if isExtraTimePeriod(g.MatchPeriod) {
				aet = true
			}
		}
		// Goalless matches cannot appear here, but keep the guard explicit.
		if homeScore+awayScore == 0 {
			continue
		}

		out = append(out, MatchCandidate{
			MatchID:      sample.MatchID,
			MatchName:    sample.MatchName,
			MatchDate:    sample.MatchDate,
			StageName:    sample.StageName,
			HomeTeamName: home,
			AwayTeamName: away,
			HomeScore:    homeScore,
			AwayScore:    awayScore,
			AET:          aet,
			Goals:        rows,
		})
	}
	return out
}

// FilterMatches applies the who-scored tier rules.
// Easy: 2014 onward with an allow-list team on either side.
// Hard: 2002 onward, knockout only, neither side on the allow-list.
func FilterMatches(candidates []MatchCandidate, d Difficulty) []MatchCandidate {
	var out []MatchCandidate
	for _, c := range candidates {
		hasEasyTeam := easyTeams[c.HomeTeamName] || easyTeams[c.AwayTeamName]
		switch d {
		case Easy:
			if c.Year() >= "2014" && hasEasyTeam {
				out = append(out, c)
			}
		case Hard:
			if c.Year() >= "2002" && IsKnockoutStage(c.StageName) && !hasEasyTeam {
				out = append(out, c)
			}
		}
	}
	return out
}

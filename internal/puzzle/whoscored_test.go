package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldcuphub/hub-data/internal/dataset"
)

func TestGroupScorersCollapsesBraces(t *testing.T) {
	goals := []dataset.Goal{
		goalRow("m1", "England v Panama", "2018-06-24", "Group Stage", "p-kane", "Kane", true, "22'", 22, 0),
		goalRow("m1", "England v Panama", "2018-06-24", "Group Stage", "p-stones", "Stones", true, "8'", 8, 0),
		goalRow("m1", "England v Panama", "2018-06-24", "Group Stage", "p-kane", "Kane", true, "45+1'", 45, 1),
		goalRow("m1", "England v Panama", "2018-06-24", "Group Stage", "p-kane", "Kane", true, "62'", 62, 0),
		goalRow("m1", "England v Panama", "2018-06-24", "Group Stage", "p-baloy", "Baloy", false, "78'", 78, 0),
	}

	home := GroupScorers(goals, true)
	require.Len(t, home, 2)

	// Scorers ordered by their first goal: Stones 8' before Kane 22'.
	assert.Equal(t, "Stones", home[0].FamilyName)
	assert.Equal(t, "Kane", home[1].FamilyName)

	// Kane's hat-trick minutes ascend, stoppage after the base minute.
	kane := home[1]
	require.Len(t, kane.Minutes, 3)
	assert.Equal(t, "22'", kane.Minutes[0].Label)
	assert.Equal(t, "45+1'", kane.Minutes[1].Label)
	assert.Equal(t, "62'", kane.Minutes[2].Label)

	away := GroupScorers(goals, false)
	require.Len(t, away, 1)
	assert.Equal(t, "Baloy", away[0].FamilyName)
}

func TestGroupScorersStoppageOrdering(t *testing.T) {
	goals := []dataset.Goal{
		goalRow("m1", "A v B", "2022-12-01", "Final", "p2", "Late", true, "90+3'", 90, 3),
		goalRow("m1", "A v B", "2022-12-01", "Final", "p1", "Early", true, "90'", 90, 0),
	}
	got := GroupScorers(goals, true)
	require.Len(t, got, 2)
	// 90' sorts before 90+3'.
	assert.Equal(t, "Early", got[0].FamilyName)
	assert.Equal(t, "Late", got[1].FamilyName)
	assert.Equal(t, 9000, got[0].Minutes[0].SortMinute)
	assert.Equal(t, 9003, got[1].Minutes[0].SortMinute)
}

func TestGroupScorersFlags(t *testing.T) {
	og := goalRow("m1", "A v B", "2022-12-01", "Final", "p1", "Unlucky", true, "30'", 30, 0)
	og.OwnGoal = true
	pen := goalRow("m1", "A v B", "2022-12-01", "Final", "p2", "Spot", true, "60'", 60, 0)
	pen.Penalty = true

	got := GroupScorers([]dataset.Goal{og, pen}, true)
	require.Len(t, got, 2)
	assert.True(t, got[0].Minutes[0].OwnGoal)
	assert.False(t, got[0].Minutes[0].Penalty)
	assert.True(t, got[1].Minutes[0].Penalty)
}

func whoScoredFixture() *dataset.Static {
	return &dataset.Static{Rows: []dataset.Goal{
		// Easy pool: 2014 onward with an allow-list side.
		goalRow("m1", "England v Panama (Group Stage)", "2018-06-24", "Group Stage", "p-kane", "Kane", true, "8'", 8, 0),
		goalRow("m2", "Brazil v Serbia (Group Stage)", "2022-11-24", "Group Stage", "p-richy", "Richarlison", true, "62'", 62, 0),
		goalRow("m3", "France v Argentina (Round of 16)", "2018-06-30", "Round of 16", "p-mbappe", "Mbappe", true, "64'", 64, 0),
		// Hard pool: 2002 onward, knockout, no allow-list side.
		goalRow("m4", "Croatia v Denmark (Round of 16)", "2018-07-01", "Round of 16", "p-mandzu", "Mandzukic", true, "4'", 4, 0),
		goalRow("m5", "Senegal v Sweden (Round of 16)", "2002-06-16", "Round of 16", "p-camara", "Camara", true, "104'", 104, 0),
	}}
}

func TestWhoScoredDeterministic(t *testing.T) {
	provider := whoScoredFixture()
	first, err := WhoScored(provider, Easy, "2026-06-15")
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := WhoScored(provider, Easy, "2026-06-15")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestWhoScoredView(t *testing.T) {
	provider := whoScoredFixture()
	p, err := WhoScored(provider, Easy, "2026-06-15")
	require.NoError(t, err)

	assert.Equal(t, GameWhoScored, p.GameType)
	assert.Equal(t, "2026-06-15", p.PuzzleID)
	assert.True(t, IsEasyTeam(p.HomeTeamName) || IsEasyTeam(p.AwayTeamName))
	assert.Equal(t, p.HomeScore, len(scorerGoals(p.HomeGoals)))
	assert.Equal(t, p.AwayScore, len(scorerGoals(p.AwayGoals)))
	assert.False(t, p.AET)
}

func scorerGoals(groups []ScorerGroup) []GoalMinute {
	var out []GoalMinute
	for _, g := range groups {
		out = append(out, g.Minutes...)
	}
	return out
}

func TestWhoScoredHardTier(t *testing.T) {
	provider := whoScoredFixture()
	p, err := WhoScored(provider, Hard, "2026-06-15")
	require.NoError(t, err)
	assert.False(t, IsEasyTeam(p.HomeTeamName))
	assert.False(t, IsEasyTeam(p.AwayTeamName))
	assert.True(t, IsKnockoutStage(p.StageName))
}

func TestWhoScoredEmptyPool(t *testing.T) {
	// Only a pre-2014 match: no easy candidates.
	provider := &dataset.Static{Rows: []dataset.Goal{
		goalRow("m1", "Italy v Norway", "1994-06-23", "Group Stage", "p1", "Baggio", true, "69'", 69, 0),
	}}
	_, err := WhoScored(provider, Easy, "2026-06-15")
	assert.ErrorIs(t, err, ErrNoEligiblePuzzle)
}

// Package dataset provides the historical World Cup records the puzzle
// engine selects from. Records come from two sheets — player appearances
// and goals — stored as CSV (or XLSX exports of the same columns) in a
// data directory. The dataset is immutable at runtime: a Provider parses
// once and serves the same slices for every request.
package dataset

import (
	"errors"
	"sync"
)

// ErrUnavailable is returned when the underlying dataset files cannot be
// read or parsed. Callers treat it as fatal — the data is static, so
// retrying cannot help.
var ErrUnavailable = errors.New("dataset unavailable")

// Appearance is one player-match appearance row from player_appearances.
type Appearance struct {
	MatchID      string
	MatchName    string
	MatchDate    string // ISO date, YYYY-MM-DD
	StageName    string
	TeamID       string
	TeamName     string
	TeamCode     string
	PlayerID     string
	FamilyName   string
	GivenName    string
	ShirtNumber  string
	PositionCode string
	Starter      bool
}

// Year returns the four-character match year ("" when the date is too short).
func (a Appearance) Year() string { return year(a.MatchDate) }

// Goal is one goal event row from the goals sheet.
type Goal struct {
	GoalID           string
	MatchID          string
	MatchName        string
	MatchDate        string
	StageName        string
	TeamID           string
	TeamName         string
	TeamCode         string
	HomeTeam         bool
	AwayTeam         bool
	PlayerID         string
	FamilyName       string
	GivenName        string
	ShirtNumber      string
	MinuteLabel      string // display form, e.g. "90+3'" or "108'"
	MinuteRegulation int
	MinuteStoppage   int
	MatchPeriod      string
	OwnGoal          bool
	Penalty          bool
}

// Year returns the four-character match year.
func (g Goal) Year() string { return year(g.MatchDate) }

func year(date string) string {
	if len(date) < 4 {
		return ""
	}
	return date[:4]
}

// Provider is the read capability the engine is built against. Both
// methods must return the same data for the lifetime of the provider.
type Provider interface {
	Appearances() ([]Appearance, error)
	Goals() ([]Goal, error)
}

// Static is a fixed in-memory Provider, used by tests and previews.
type Static struct {
	Apps  []Appearance
	Rows  []Goal
	AErr  error
	GErr  error
}

func (s *Static) Appearances() ([]Appearance, error) { return s.Apps, s.AErr }
func (s *Static) Goals() ([]Goal, error)             { return s.Rows, s.GErr }

// Dir reads the two sheets from a directory, parsing each at most once.
type Dir struct {
	path string

	appOnce sync.Once
	apps    []Appearance
	appErr  error

	goalOnce sync.Once
	goals    []Goal
	goalErr  error
}

// NewDir creates a directory-backed provider. No I/O happens until the
// first read.
func NewDir(path string) *Dir { return &Dir{path: path} }

// Appearances parses player_appearances.csv (or .xlsx) on first call.
func (d *Dir) Appearances() ([]Appearance, error) {
	d.appOnce.Do(func() {
		d.apps, d.appErr = loadAppearances(d.path)
	})
	return d.apps, d.appErr
}

// Goals parses goals.csv (or .xlsx) on first call.
func (d *Dir) Goals() ([]Goal, error) {
	d.goalOnce.Do(func() {
		d.goals, d.goalErr = loadGoals(d.path)
	})
	return d.goals, d.goalErr
}

package game

import (
	"encoding/json"
	"strings"

	"github.com/worldcuphub/hub-data/internal/storage"
)

// MaxGuesses is the wordle row limit.
const MaxGuesses = 6

// GuessRow is one submitted, evaluated guess.
type GuessRow struct {
	Guess string `json:"guess"`
	Tiles []Tile `json:"tiles"`
}

// wordleUnit is the persisted shape of one day's word game.
type wordleUnit struct {
	Guesses        []GuessRow `json:"guesses"`
	CurrentGuess   string     `json:"currentGuess"`
	IsComplete     bool       `json:"isComplete"`
	ResultRecorded bool       `json:"resultRecorded"`
}

// Streak is the per-difficulty win streak, persisted separately from the
// daily state so it survives day rollover.
type Streak struct {
	Current int `json:"currentStreak"`
	Best    int `json:"bestStreak"`
}

// StreakKey builds the streak persistence key. Streaks are per
// difficulty, like a wordle "mode".
func StreakKey(difficulty string) string {
	return "wordlecup:streak:" + difficulty
}

// Wordle runs one day's surname-guess game against a store. The answer
// is the normalized uppercase surname from the puzzle engine.
type Wordle struct {
	key       string
	streakKey string
	store     storage.Store
	answer    string
	unit      wordleUnit
	streak    Streak
}

// NewWordle loads any persisted grid and streak for the day.
func NewWordle(store storage.Store, difficulty, puzzleID, answer string) *Wordle {
	w := &Wordle{
		key:       StorageKey("wordlecup", difficulty, puzzleID),
		streakKey: StreakKey(difficulty),
		store:     store,
		answer:    answer,
	}
	if raw, ok := store.Get(w.key); ok {
		_ = json.Unmarshal(raw, &w.unit)
	}
	if raw, ok := store.Get(w.streakKey); ok {
		_ = json.Unmarshal(raw, &w.streak)
	}
	return w
}

// Answer returns the canonical word.
func (w *Wordle) Answer() string { return w.answer }

// Guesses returns the submitted rows so far.
func (w *Wordle) Guesses() []GuessRow { return w.unit.Guesses }

// Complete reports whether the game is over (won or out of rows).
func (w *Wordle) Complete() bool { return w.unit.IsComplete }

// Won reports whether the last submitted row solved the word.
func (w *Wordle) Won() bool {
	if len(w.unit.Guesses) == 0 {
		return false
	}
	last := w.unit.Guesses[len(w.unit.Guesses)-1]
	for _, t := range last.Tiles {
		if t.State != LetterCorrect {
			return false
		}
	}
	return true
}

// Streak returns the current per-difficulty streak.
func (w *Wordle) Streak() Streak { return w.streak }

// Submit evaluates one guess row. Guesses must match the answer's length
// exactly; anything else is ignored, as are submissions after completion.
// The win/loss streak is recorded exactly once per puzzle.
func (w *Wordle) Submit(guess string) (GuessRow, bool) {
	if w.unit.IsComplete || len(w.unit.Guesses) >= MaxGuesses {
		return GuessRow{}, false
	}

	g := strings.ToUpper(strings.TrimSpace(guess))
	if len(g) != len(w.answer) {
		return GuessRow{}, false
	}

	row := GuessRow{Guess: g, Tiles: EvaluateLetters(g, w.answer)}
	w.unit.Guesses = append(w.unit.Guesses, row)
	w.unit.CurrentGuess = ""

	win := true
	for _, t := range row.Tiles {
		if t.State != LetterCorrect {
			win = false
			break
		}
	}

	if win || len(w.unit.Guesses) >= MaxGuesses {
		w.unit.IsComplete = true
		if !w.unit.ResultRecorded {
			w.unit.ResultRecorded = true
			if win {
				w.streak.Current++
				if w.streak.Current > w.streak.Best {
					w.streak.Best = w.streak.Current
				}
			} else {
				w.streak.Current = 0
			}
			w.persistStreak()
		}
	}

	w.persist()
	return row, true
}

// KeyboardStates folds every submitted row into per-letter states with
// correct > present > absent priority, for keyboard coloring.
func (w *Wordle) KeyboardStates() map[string]LetterState {
	states := make(map[string]LetterState)
	for _, row := range w.unit.Guesses {
		for _, t := range row.Tiles {
			prev, seen := states[t.Letter]
			if prev == LetterCorrect {
				continue
			}
			switch t.State {
			case LetterCorrect:
				states[t.Letter] = LetterCorrect
			case LetterPresent:
				states[t.Letter] = LetterPresent
			case LetterAbsent:
				if !seen {
					states[t.Letter] = LetterAbsent
				}
			}
		}
	}
	return states
}

// ShareGrid renders the spoiler-free emoji grid of the game so far.
func (w *Wordle) ShareGrid() string {
	var b strings.Builder
	for i, row := range w.unit.Guesses {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, t := range row.Tiles {
			switch t.State {
			case LetterCorrect:
				b.WriteString("🟩")
			case LetterPresent:
				b.WriteString("🟨")
			default:
				b.WriteString("⬛")
			}
		}
	}
	return b.String()
}

func (w *Wordle) persist() {
	raw, err := json.Marshal(w.unit)
	if err != nil {
		return
	}
	_ = w.store.Set(w.key, raw)
}

func (w *Wordle) persistStreak() {
	raw, err := json.Marshal(w.streak)
	if err != nil {
		return
	}
	_ = w.store.Set(w.streakKey, raw)
}

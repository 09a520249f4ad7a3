// Package game implements guess evaluation and the per-slot puzzle state
// machine shared by the three daily games, decoupled from any rendering
// layer: actions go in, states and transient effects come out, and the
// full slot map persists through an injected key-value store.
package game

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var (
	apostrophes = strings.NewReplacer("’", "'", "‘", "'", "`", "'", "´", "'")
	dashes      = strings.NewReplacer("‐", "-", "‑", "-", "‒", "-", "–", "-", "—", "-", "−", "-")
)

// Normalize prepares free-text guesses and canonical answers for
// comparison: trim, lowercase, strip diacritics, unify apostrophe and
// dash variants, collapse whitespace runs. Idempotent.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if stripped, _, err := transform.String(stripMarks, s); err == nil {
		s = stripped
	}
	s = apostrophes.Replace(s)
	s = dashes.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// Evaluate reports whether a typed guess matches the canonical answer
// after normalizing both sides.
func Evaluate(typed, canonical string) bool {
	return Normalize(typed) == Normalize(canonical)
}

// MaskName masks every letter of a name as "-", keeping spaces and
// hyphens visible so the shape of the name shows through.
func MaskName(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return '-'
		}
		return r
	}, name)
}

// LetterState is the tri-state result of one wordle tile.
type LetterState string

const (
	LetterCorrect LetterState = "correct"
	LetterPresent LetterState = "present"
	LetterAbsent  LetterState = "absent"
)

// Tile is one evaluated letter of a wordle guess row.
type Tile struct {
	Letter string      `json:"letter"`
	State  LetterState `json:"state"`
}

// EvaluateLetters runs the two-pass wordle evaluation. Pass one marks
// positional matches and tallies the remaining answer letters; pass two
// marks "present" only while that tally holds, so duplicate letters in
// the guess never over-count beyond the letters actually remaining.
func EvaluateLetters(guess, answer string) []Tile {
	g := []rune(guess)
	a := []rune(answer)

	result := make([]Tile, len(g))
	remaining := make(map[rune]int)

	for i, ch := range g {
		result[i] = Tile{Letter: string(ch), State: LetterAbsent}
		if i < len(a) && a[i] == ch {
			result[i].State = LetterCorrect
		}
	}
	for i, ch := range a {
		if i < len(g) && g[i] == ch {
			continue
		}
		remaining[ch]++
	}

	for i, ch := range g {
		if result[i].State == LetterCorrect {
			continue
		}
		if remaining[ch] > 0 {
			result[i].State = LetterPresent
			remaining[ch]--
		}
	}
	return result
}

package puzzle

import "time"

// Difficulty selects which eligibility rule set applies.
type Difficulty string

const (
	Easy Difficulty = "easy"
	Hard Difficulty = "hard"
)

// ParseDifficulty reports whether s names a known tier.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch Difficulty(s) {
	case Easy, Hard:
		return Difficulty(s), true
	}
	return "", false
}

// StableIndex maps a key to an index in [0, poolSize). It is the simple
// polynomial 31-hash the daily games have always used: 32-bit unsigned
// accumulator over the key's character codes. Not cryptographic — it only
// has to be identical across runs and platforms for the same string.
// poolSize must be > 0; callers guarantee a non-empty pool first.
func StableIndex(key string, poolSize int) int {
	var h uint32
	for _, c := range key {
		h = h*31 + uint32(c)
	}
	return int(h % uint32(poolSize))
}

// EffectivePuzzleID returns id when it is a well-formed 10-character ISO
// date key, otherwise today's UTC date. The puzzle id is the sole seed
// for daily determinism.
func EffectivePuzzleID(id string) string {
	if len(id) == 10 {
		return id
	}
	return time.Now().UTC().Format("2006-01-02")
}

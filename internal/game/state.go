package game

import (
	"encoding/json"
	"strings"

	"github.com/worldcuphub/hub-data/internal/storage"
)

// Scoring tiers. Points are awarded once and never overwritten.
const (
	PointsFull     = 10 // correct with no hint
	PointsWithHint = 5  // correct after using the hint
	PointsRevealed = 0
)

// Status is the guess status of a slot. A revealed slot keeps its last
// status and sets the Revealed flag instead — that is the wire shape the
// games have always persisted, so it round-trips older saves losslessly.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusCorrect Status = "correct"
	StatusWrong   Status = "wrong"
)

// SlotState is the persisted state of one guessable slot. Field names
// are part of the storage contract and must not change.
type SlotState struct {
	Value               string `json:"value"`
	Status              Status `json:"status"`
	PointsAwarded       *int   `json:"pointsAwarded"`
	HintUsed            bool   `json:"hintUsed"`
	FirstLetterRevealed string `json:"firstLetterRevealed"`
	Revealed            bool   `json:"revealed"`
}

// Locked reports whether the slot is terminal: correctly guessed or
// revealed. Locked slots ignore every further action.
func (s SlotState) Locked() bool {
	return s.Status == StatusCorrect || s.Revealed
}

// Points returns the awarded points, zero while unresolved.
func (s SlotState) Points() int {
	if s.PointsAwarded == nil {
		return 0
	}
	return *s.PointsAwarded
}

// ActionType enumerates the slot commands.
type ActionType string

const (
	ActionSetValue ActionType = "setValue"
	ActionSubmit   ActionType = "submit"
	ActionHint     ActionType = "hint"
	ActionReveal   ActionType = "reveal"
)

// Action is one command delivered to a slot.
type Action struct {
	Type  ActionType
	Value string // for setValue
}

// Effect carries the transient, presentation-only outcomes of an action:
// the wrong-guess shake and a points emission. Effects never gate the
// state transition itself.
type Effect struct {
	Shake  bool
	Points *int
}

// Apply is the slot reducer: given the current state, the canonical
// answer and an action, it returns the next state and any transient
// effect. Pure — persistence happens in the Session.
func Apply(s SlotState, answer string, a Action) (SlotState, Effect) {
	switch a.Type {
	case ActionSetValue:
		return applySetValue(s, a.Value)
	case ActionSubmit:
		return applySubmit(s, answer)
	case ActionHint:
		return applyHint(s, answer)
	case ActionReveal:
		return applyReveal(s)
	}
	return s, Effect{}
}

// applySetValue updates the typed value. After a hint the edit must keep
// at least the hinted prefix: shorter values or values not starting with
// the hinted letter are rejected, not corrected. Editing a wrong slot
// returns it to idle so the user can retry.
func applySetValue(s SlotState, next string) (SlotState, Effect) {
	if s.Locked() {
		return s, Effect{}
	}
	if s.HintUsed && s.FirstLetterRevealed != "" {
		if len(next) < len(s.FirstLetterRevealed) {
			return s, Effect{}
		}
		if !strings.HasPrefix(strings.ToUpper(next), s.FirstLetterRevealed) {
			return s, Effect{}
		}
	}
	s.Value = next
	if s.Status == StatusWrong {
		s.Status = StatusIdle
	}
	return s, Effect{}
}

func applySubmit(s SlotState, answer string) (SlotState, Effect) {
	if s.Locked() {
		return s, Effect{}
	}

	guess := Normalize(s.Value)
	if guess == "" {
		// Empty submissions are silently ignored.
		return s, Effect{}
	}

	if guess == Normalize(answer) {
		s.Status = StatusCorrect
		if s.PointsAwarded == nil {
			pts := PointsFull
			if s.HintUsed {
				pts = PointsWithHint
			}
			s.PointsAwarded = &pts
			return s, Effect{Points: &pts}
		}
		return s, Effect{}
	}

	s.Status = StatusWrong
	return s, Effect{Shake: true}
}

// applyHint reveals the canonical first letter, uppercased, at most once
// per slot. Using the hint halves the eventual score.
func applyHint(s SlotState, answer string) (SlotState, Effect) {
	if s.Locked() || s.HintUsed {
		return s, Effect{}
	}
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		return s, Effect{}
	}
	first := strings.ToUpper(string([]rune(trimmed)[0]))
	s.HintUsed = true
	s.FirstLetterRevealed = first
	s.Value = first
	return s, Effect{}
}

func applyReveal(s SlotState) (SlotState, Effect) {
	if s.Locked() {
		return s, Effect{}
	}
	s.Revealed = true
	if s.PointsAwarded == nil {
		pts := PointsRevealed
		s.PointsAwarded = &pts
	}
	s.Status = StatusIdle
	return s, Effect{}
}

// StorageKey builds the persistence key for one puzzle's state. The
// format is a compatibility contract with existing saved state:
// "{gameType}:{difficulty}:{puzzleId}".
func StorageKey(gameType, difficulty, puzzleID string) string {
	return gameType + ":" + difficulty + ":" + puzzleID
}

// Slot declares one guessable entity of a puzzle.
type Slot struct {
	ID     string
	Answer string
}

// Completion is the aggregate progress of a puzzle.
type Completion struct {
	Locked   int  `json:"locked"`
	Total    int  `json:"total"`
	Points   int  `json:"points"`
	Complete bool `json:"complete"`
}

// persistedUnit is the stored shape: the full slot map plus the frozen
// final score once the puzzle completes.
type persistedUnit struct {
	Players    map[string]SlotState `json:"players"`
	FinalScore *int                 `json:"finalScore,omitempty"`
}

// Session owns the slot map for one (gameType, difficulty, puzzleId) and
// writes it through the store after every mutation. Storage failures are
// swallowed: the in-memory state stays authoritative for the session.
type Session struct {
	key     string
	store   storage.Store
	answers map[string]string
	order   []string
	unit    persistedUnit
}

// NewSession loads any persisted state for the key and binds the puzzle's
// slots to it.
func NewSession(store storage.Store, gameType, difficulty, puzzleID string, slots []Slot) *Session {
	s := &Session{
		key:     StorageKey(gameType, difficulty, puzzleID),
		store:   store,
		answers: make(map[string]string, len(slots)),
		unit:    persistedUnit{Players: make(map[string]SlotState)},
	}
	for _, slot := range slots {
		s.answers[slot.ID] = slot.Answer
		s.order = append(s.order, slot.ID)
	}

	if raw, ok := store.Get(s.key); ok {
		var loaded persistedUnit
		if err := json.Unmarshal(raw, &loaded); err == nil && loaded.Players != nil {
			s.unit = loaded
		}
	}
	return s
}

// Key returns the session's storage key.
func (s *Session) Key() string { return s.key }

// SlotIDs returns the puzzle's slots in declaration order.
func (s *Session) SlotIDs() []string { return s.order }

// Slot returns the current state of a slot (zero state if untouched).
func (s *Session) Slot(id string) SlotState { return s.unit.Players[id] }

// Answer returns the canonical answer bound to a slot.
func (s *Session) Answer(id string) (string, bool) {
	a, ok := s.answers[id]
	return a, ok
}

// Dispatch applies an action to a slot, persists the full slot map, and
// freezes the completion score when the last slot locks. Actions on
// unknown slots do nothing.
func (s *Session) Dispatch(slotID string, a Action) Effect {
	answer, ok := s.answers[slotID]
	if !ok {
		return Effect{}
	}

	next, effect := Apply(s.unit.Players[slotID], answer, a)
	s.unit.Players[slotID] = next

	if agg := s.aggregate(); agg.Complete && s.unit.FinalScore == nil {
		score := agg.Points
		s.unit.FinalScore = &score
	}

	s.persist()
	return effect
}

// Summary returns the completion aggregate. A completed puzzle reports
// its frozen score, not a live recomputation.
func (s *Session) Summary() Completion {
	agg := s.aggregate()
	if s.unit.FinalScore != nil {
		agg.Points = *s.unit.FinalScore
	}
	return agg
}

// Reset wipes all slot state for the puzzle. Debug/dev action only.
func (s *Session) Reset() {
	s.unit = persistedUnit{Players: make(map[string]SlotState)}
	s.persist()
}

func (s *Session) aggregate() Completion {
	agg := Completion{Total: len(s.order)}
	for _, id := range s.order {
		st := s.unit.Players[id]
		if st.Locked() {
			agg.Locked++
		}
		agg.Points += st.Points()
	}
	agg.Complete = agg.Total > 0 && agg.Locked == agg.Total
	return agg
}

func (s *Session) persist() {
	raw, err := json.Marshal(s.unit)
	if err != nil {
		return
	}
	_ = s.store.Set(s.key, raw)
}

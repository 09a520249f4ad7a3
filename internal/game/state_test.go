package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldcuphub/hub-data/internal/storage"
)

func TestSubmitCorrectAwardsFullPoints(t *testing.T) {
	s, _ := Apply(SlotState{}, "Kane", Action{Type: ActionSetValue, Value: "kane"})
	s, effect := Apply(s, "Kane", Action{Type: ActionSubmit})

	assert.Equal(t, StatusCorrect, s.Status)
	assert.True(t, s.Locked())
	assert.Equal(t, PointsFull, s.Points())
	require.NotNil(t, effect.Points)
	assert.Equal(t, PointsFull, *effect.Points)
	assert.False(t, effect.Shake)
}

func TestSubmitAcceptsDiacriticVariants(t *testing.T) {
	s, _ := Apply(SlotState{}, "Özil", Action{Type: ActionSetValue, Value: "ozil"})
	s, _ = Apply(s, "Özil", Action{Type: ActionSubmit})
	assert.Equal(t, StatusCorrect, s.Status)
}

func TestSubmitWrongShakes(t *testing.T) {
	s, _ := Apply(SlotState{}, "Kane", Action{Type: ActionSetValue, Value: "sterling"})
	s, effect := Apply(s, "Kane", Action{Type: ActionSubmit})

	assert.Equal(t, StatusWrong, s.Status)
	assert.False(t, s.Locked())
	assert.True(t, effect.Shake)
	assert.Nil(t, s.PointsAwarded)
}

func TestSubmitEmptyIsNoOp(t *testing.T) {
	s, effect := Apply(SlotState{}, "Kane", Action{Type: ActionSubmit})
	assert.Equal(t, SlotState{}, s)
	assert.False(t, effect.Shake)

	s, effect = Apply(SlotState{Value: "   "}, "Kane", Action{Type: ActionSubmit})
	assert.Equal(t, StatusIdle, s.Status)
	assert.False(t, effect.Shake)
}

func TestHintHalvesPoints(t *testing.T) {
	s, _ := Apply(SlotState{}, "Kane", Action{Type: ActionHint})
	assert.True(t, s.HintUsed)
	assert.Equal(t, "K", s.FirstLetterRevealed)
	assert.Equal(t, "K", s.Value)

	s, _ = Apply(s, "Kane", Action{Type: ActionSetValue, Value: "Kane"})
	s, effect := Apply(s, "Kane", Action{Type: ActionSubmit})
	assert.Equal(t, StatusCorrect, s.Status)
	assert.Equal(t, PointsWithHint, s.Points())
	require.NotNil(t, effect.Points)
	assert.Equal(t, PointsWithHint, *effect.Points)
}

func TestHintOnlyOnce(t *testing.T) {
	s, _ := Apply(SlotState{}, "Kane", Action{Type: ActionHint})
	before := s
	s, _ = Apply(s, "Kane", Action{Type: ActionHint})
	assert.Equal(t, before, s)
}

func TestSetValueEnforcesHintPrefix(t *testing.T) {
	s, _ := Apply(SlotState{}, "Kane", Action{Type: ActionHint})

	// Edits that drop or contradict the hinted letter are rejected.
	next, _ := Apply(s, "Kane", Action{Type: ActionSetValue, Value: ""})
	assert.Equal(t, "K", next.Value)
	next, _ = Apply(s, "Kane", Action{Type: ActionSetValue, Value: "Sterling"})
	assert.Equal(t, "K", next.Value)

	// Case-insensitive continuation is fine.
	next, _ = Apply(s, "Kane", Action{Type: ActionSetValue, Value: "ka"})
	assert.Equal(t, "ka", next.Value)
}

func TestSetValueClearsWrongStatus(t *testing.T) {
	s := SlotState{Value: "sterling", Status: StatusWrong}
	s, _ = Apply(s, "Kane", Action{Type: ActionSetValue, Value: "sterlin"})
	assert.Equal(t, StatusIdle, s.Status)
}

func TestRevealAwardsZero(t *testing.T) {
	s, _ := Apply(SlotState{Value: "wrong guess", Status: StatusWrong}, "Kane", Action{Type: ActionReveal})
	assert.True(t, s.Revealed)
	assert.True(t, s.Locked())
	assert.Equal(t, StatusIdle, s.Status)
	assert.Equal(t, PointsRevealed, s.Points())
	require.NotNil(t, s.PointsAwarded)
}

func TestLockedSlotIgnoresEverything(t *testing.T) {
	correct := SlotState{Value: "Kane", Status: StatusCorrect}
	pts := PointsFull
	correct.PointsAwarded = &pts

	for _, a := range []Action{
		{Type: ActionSetValue, Value: "other"},
		{Type: ActionSubmit},
		{Type: ActionHint},
		{Type: ActionReveal},
	} {
		next, effect := Apply(correct, "Kane", a)
		assert.Equal(t, correct, next, "action %s", a.Type)
		assert.Equal(t, Effect{}, effect, "action %s", a.Type)
	}

	revealed := SlotState{Revealed: true}
	zero := PointsRevealed
	revealed.PointsAwarded = &zero
	for _, a := range []Action{
		{Type: ActionSetValue, Value: "late"},
		{Type: ActionSubmit},
		{Type: ActionHint},
	} {
		next, _ := Apply(revealed, "Kane", a)
		assert.Equal(t, revealed, next, "action %s", a.Type)
	}
}

func TestPointsNeverReawarded(t *testing.T) {
	s, effect := Apply(SlotState{Value: "kane"}, "Kane", Action{Type: ActionSubmit})
	require.NotNil(t, effect.Points)

	// A second submit on a correct slot is blocked by the lock, but even a
	// hand-built correct-yet-unlocked state must not emit points twice.
	unlocked := s
	unlocked.Revealed = false
	unlocked.Status = StatusIdle
	unlocked.Value = "kane"
	next, effect := Apply(unlocked, "Kane", Action{Type: ActionSubmit})
	assert.Equal(t, StatusCorrect, next.Status)
	assert.Nil(t, effect.Points)
	assert.Equal(t, PointsFull, next.Points())
}

func TestStorageKey(t *testing.T) {
	assert.Equal(t, "missing11:easy:2026-06-15", StorageKey("missing11", "easy", "2026-06-15"))
	assert.Equal(t, "whoscored:hard:2026-07-19", StorageKey("whoscored", "hard", "2026-07-19"))
}

func testSlots() []Slot {
	return []Slot{
		{ID: "p1", Answer: "Kane"},
		{ID: "p2", Answer: "Stones"},
		{ID: "p3", Answer: "Pickford"},
	}
}

func TestSessionPersistsAcrossLoads(t *testing.T) {
	store := storage.NewMemory()

	sess := NewSession(store, "missing11", "easy", "2026-06-15", testSlots())
	sess.Dispatch("p1", Action{Type: ActionSetValue, Value: "kane"})
	sess.Dispatch("p1", Action{Type: ActionSubmit})
	sess.Dispatch("p2", Action{Type: ActionHint})

	reloaded := NewSession(store, "missing11", "easy", "2026-06-15", testSlots())
	assert.Equal(t, StatusCorrect, reloaded.Slot("p1").Status)
	assert.Equal(t, PointsFull, reloaded.Slot("p1").Points())
	assert.True(t, reloaded.Slot("p2").HintUsed)
	assert.Equal(t, "S", reloaded.Slot("p2").FirstLetterRevealed)
}

func TestSessionKeysAreIndependent(t *testing.T) {
	store := storage.NewMemory()

	easy := NewSession(store, "missing11", "easy", "2026-06-15", testSlots())
	easy.Dispatch("p1", Action{Type: ActionSetValue, Value: "kane"})
	easy.Dispatch("p1", Action{Type: ActionSubmit})

	hard := NewSession(store, "missing11", "hard", "2026-06-15", testSlots())
	assert.Equal(t, SlotState{}, hard.Slot("p1"))

	otherDay := NewSession(store, "missing11", "easy", "2026-06-16", testSlots())
	assert.Equal(t, SlotState{}, otherDay.Slot("p1"))
}

func TestSessionFreezesFinalScore(t *testing.T) {
	store := storage.NewMemory()
	sess := NewSession(store, "missing11", "easy", "2026-06-15", testSlots())

	sess.Dispatch("p1", Action{Type: ActionSetValue, Value: "kane"})
	sess.Dispatch("p1", Action{Type: ActionSubmit})
	sess.Dispatch("p2", Action{Type: ActionHint})
	sess.Dispatch("p2", Action{Type: ActionSetValue, Value: "Stones"})
	sess.Dispatch("p2", Action{Type: ActionSubmit})

	sum := sess.Summary()
	assert.False(t, sum.Complete)
	assert.Equal(t, 2, sum.Locked)
	assert.Equal(t, PointsFull+PointsWithHint, sum.Points)

	sess.Dispatch("p3", Action{Type: ActionReveal})
	sum = sess.Summary()
	assert.True(t, sum.Complete)
	assert.Equal(t, 15, sum.Points)

	// The frozen score survives a reload and is stored explicitly.
	raw, ok := store.Get(sess.Key())
	require.True(t, ok)
	var unit struct {
		FinalScore *int `json:"finalScore"`
	}
	require.NoError(t, json.Unmarshal(raw, &unit))
	require.NotNil(t, unit.FinalScore)
	assert.Equal(t, 15, *unit.FinalScore)

	reloaded := NewSession(store, "missing11", "easy", "2026-06-15", testSlots())
	assert.Equal(t, 15, reloaded.Summary().Points)
	assert.True(t, reloaded.Summary().Complete)
}

func TestSessionUnknownSlotIsNoOp(t *testing.T) {
	store := storage.NewMemory()
	sess := NewSession(store, "missing11", "easy", "2026-06-15", testSlots())
	effect := sess.Dispatch("nope", Action{Type: ActionSubmit})
	assert.Equal(t, Effect{}, effect)
	_, ok := store.Get(sess.Key())
	assert.False(t, ok)
}

func TestSessionReset(t *testing.T) {
	store := storage.NewMemory()
	sess := NewSession(store, "missing11", "easy", "2026-06-15", testSlots())
	sess.Dispatch("p1", Action{Type: ActionSetValue, Value: "kane"})
	sess.Dispatch("p1", Action{Type: ActionSubmit})

	sess.Reset()
	assert.Equal(t, SlotState{}, sess.Slot("p1"))
	assert.Equal(t, 0, sess.Summary().Points)
}

func TestSessionSurvivesCorruptState(t *testing.T) {
	store := storage.NewMemory()
	key := StorageKey("missing11", "easy", "2026-06-15")
	require.NoError(t, store.Set(key, []byte("{not json")))

	sess := NewSession(store, "missing11", "easy", "2026-06-15", testSlots())
	assert.Equal(t, SlotState{}, sess.Slot("p1"))
	assert.Equal(t, 0, sess.Summary().Points)
}

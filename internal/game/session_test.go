package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionForEveryCatalogGame(t *testing.T) {
	for _, info := range Catalog {
		r := newRig(1)
		s, err := NewSession(info.ID, r.env)
		require.NoError(t, err, info.ID)
		assert.NotNil(t, s.State(), info.ID)
	}
	_, err := NewSession("karaoke", newRig(1).env)
	assert.ErrorIs(t, err, ErrUnknownGame)
}

func TestSessionDispatchesChallengeActions(t *testing.T) {
	r := newRig(31)
	s, err := NewSession("rhythm", r.env)
	require.NoError(t, err)

	ok, err := s.Apply(Action{Name: "Start"})
	require.NoError(t, err)
	assert.True(t, ok)
	r.present(s.Challenge)

	target := s.Challenge.Target()
	for _, sym := range target {
		ok, err = s.Apply(Action{Name: "input", Symbol: sym})
		require.NoError(t, err)
		assert.True(t, ok)
	}
	st := s.State().(ChallengeState)
	assert.Equal(t, PhaseAdvancing, st.Phase)

	ok, err = s.Apply(Action{Name: "replay"})
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.Apply(Action{Name: "flip"})
	assert.ErrorIs(t, err, ErrUnknownAction)

	ok, _ = s.Apply(Action{Name: "reset"})
	assert.True(t, ok)
	assert.Equal(t, PhaseIdle, s.State().(ChallengeState).Phase)
}

func TestSessionDispatchesOtherGames(t *testing.T) {
	r := newRig(32)

	mem, _ := NewSession("memory", r.env)
	ok, err := mem.Apply(Action{Name: "flip", Card: 0})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, mem.State().(MatchState).Cards[0].IsFlipped)
	ok, _ = mem.Apply(Action{Name: "restart"})
	assert.True(t, ok)

	bld, _ := NewSession("builder", r.env)
	ok, _ = bld.Apply(Action{Name: "press", Note: "G"})
	assert.True(t, ok)
	assert.Equal(t, []string{"G"}, bld.State().(MelodyState).Melody)
	ok, _ = bld.Apply(Action{Name: "clear"})
	assert.True(t, ok)

	pno, _ := NewSession("piano", r.env)
	ok, _ = pno.Apply(Action{Name: "down", Key: "j"})
	assert.True(t, ok)
	assert.Equal(t, []string{"B"}, pno.State().(PianoState).Active)
	_, err = pno.Apply(Action{Name: "start"})
	assert.ErrorIs(t, err, ErrUnknownAction)
}

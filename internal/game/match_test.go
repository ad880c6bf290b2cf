package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pairs groups card ids by symbol.
func pairs(g *MatchGame) map[string][]int {
	out := map[string][]int{}
	for _, c := range g.State().Cards {
		out[c.SymbolID] = append(out[c.SymbolID], c.ID)
	}
	return out
}

// mismatch returns two ids with different symbols.
func mismatch(g *MatchGame) (int, int) {
	cards := g.State().Cards
	for i := 1; i < len(cards); i++ {
		if cards[i].SymbolID != cards[0].SymbolID {
			return 0, i
		}
	}
	return -1, -1
}

func TestMatchGameDeal(t *testing.T) {
	r := newRig(21)
	g := NewMatchGame(r.env)
	st := g.State()
	assert.Len(t, st.Cards, 2*len(Instruments))
	for i, c := range st.Cards {
		assert.Equal(t, i, c.ID)
		assert.False(t, c.IsFlipped)
		assert.False(t, c.IsMatched)
	}
	for sym, ids := range pairs(g) {
		assert.Len(t, ids, 2, sym)
	}
	assert.Len(t, pairs(g), len(Instruments))
}

func TestMatchGameMismatchFlipsBack(t *testing.T) {
	r := newRig(22)
	g := NewMatchGame(r.env)
	a, b := mismatch(g)
	require.True(t, g.Flip(a))
	require.True(t, g.Flip(b))

	st := g.State()
	assert.True(t, st.Cards[a].IsFlipped)
	assert.True(t, st.Cards[b].IsFlipped)
	assert.Equal(t, 1, st.Moves)
	assert.Equal(t, 0, st.Score)
	assert.Equal(t, MissCueFreq, r.rec.Frequencies()[2])

	other := 0
	for other == a || other == b {
		other++
	}
	assert.False(t, g.Flip(other), "two cards already up")

	r.clock.Advance(MatchFlipBack - time.Millisecond)
	assert.True(t, g.State().Cards[a].IsFlipped)
	r.clock.Advance(time.Millisecond)
	st = g.State()
	assert.False(t, st.Cards[a].IsFlipped)
	assert.False(t, st.Cards[b].IsFlipped)
	assert.Equal(t, 1, st.Moves)
	assert.True(t, g.Flip(other))
}

func TestMatchGameClearsBoard(t *testing.T) {
	r := newRig(23)
	g := NewMatchGame(r.env)
	moves := 0
	for _, ids := range pairs(g) {
		require.False(t, g.State().GameOver)
		require.True(t, g.Flip(ids[0]))
		require.True(t, g.Flip(ids[1]))
		moves++
		st := g.State()
		assert.True(t, st.Cards[ids[0]].IsMatched)
		assert.True(t, st.Cards[ids[1]].IsMatched)
		assert.Equal(t, moves*PointsPerClear, st.Score)
	}
	st := g.State()
	assert.True(t, st.GameOver)
	assert.Equal(t, len(Instruments), st.Moves)
	assert.Equal(t, 1, r.count(EventBoardCleared))
	assert.False(t, g.Flip(0))

	require.True(t, g.Restart())
	st = g.State()
	assert.False(t, st.GameOver)
	assert.Zero(t, st.Moves)
	assert.Zero(t, st.Score)
	for _, c := range st.Cards {
		assert.False(t, c.IsMatched)
	}
}

func TestMatchGameFlipGuards(t *testing.T) {
	r := newRig(24)
	g := NewMatchGame(r.env)
	assert.False(t, g.Flip(-1))
	assert.False(t, g.Flip(len(Instruments)*2))

	require.True(t, g.Flip(3))
	assert.False(t, g.Flip(3), "already face up")
	freq, _ := Instruments.Frequency(g.State().Cards[3].SymbolID)
	assert.Equal(t, []float64{freq}, r.rec.Frequencies())

	ids := pairs(g)[g.State().Cards[3].SymbolID]
	partner := ids[0]
	if partner == 3 {
		partner = ids[1]
	}
	require.True(t, g.Flip(partner))
	assert.False(t, g.Flip(partner), "matched")
}

func TestMatchGameRestartCancelsFlipBack(t *testing.T) {
	r := newRig(25)
	g := NewMatchGame(r.env)
	a, b := mismatch(g)
	g.Flip(a)
	g.Flip(b)
	g.Restart()

	x, y := mismatch(g)
	require.True(t, g.Flip(x))
	r.clock.Advance(MatchFlipBack)
	assert.True(t, g.State().Cards[x].IsFlipped, "flip-back from the old board")
	require.True(t, g.Flip(y))
}

func TestMatchGameCustomSymbols(t *testing.T) {
	r := newRig(26)
	g := NewMatchGameWith(r.env, BeatPads[:2])
	assert.Len(t, g.State().Cards, 4)
}

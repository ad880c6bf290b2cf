package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"melodyland/internal/game"
)

const (
	testW = 960
	testH = 600
)

func center(r Rect) (int, int) { return r.X + r.W/2, r.Y + r.H/2 }

func overlaps(a, b Rect) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

func TestRowAndGrid(t *testing.T) {
	area := Rect{X: 10, Y: 20, W: 430, H: 100}
	cols := Row(area, 4)
	require.Len(t, cols, 4)
	for i := 1; i < len(cols); i++ {
		assert.False(t, overlaps(cols[i-1], cols[i]))
		assert.Equal(t, cols[0].W, cols[i].W)
	}
	assert.LessOrEqual(t, cols[3].X+cols[3].W, area.X+area.W)

	cells := Grid(area, 10, 4)
	require.Len(t, cells, 10)
	assert.Equal(t, cells[0].Y, cells[3].Y)
	assert.Greater(t, cells[4].Y, cells[3].Y)
	assert.Nil(t, Row(area, 0))
}

func TestColourMath(t *testing.T) {
	c := RGB{R: 200, G: 100, B: 0}
	assert.Equal(t, RGB{R: 100, G: 50, B: 0}, c.Mul(128).Add(0, 0, 0).Add(0, 0, 0).Mul(255))
	assert.Equal(t, RGB{R: 255, G: 120, B: 0}, c.Add(100, 20, -5))
	r, _, b := RGB{R: 255}.Floats()
	assert.Equal(t, float32(1), r)
	assert.Zero(t, b)
	assert.Equal(t, SymbolColor(0), SymbolColor(len(symbolColors)))
}

func TestKeysDoNotOverlapWithinRow(t *testing.T) {
	for _, id := range []string{"rhythm", "pitch", "builder"} {
		keys := Keys(id, testW, testH)
		info, _ := game.Lookup(id)
		require.Len(t, keys, len(info.Tones), id)
		for i := 1; i < len(keys); i++ {
			assert.False(t, overlaps(keys[i-1].Rect, keys[i].Rect), id)
		}
	}
	assert.Len(t, Keys("piano", testW, testH), len(game.ChromaticNotes))
	assert.Empty(t, Keys("memory", testW, testH))
}

func TestClickHitsKeys(t *testing.T) {
	for _, k := range Keys("rhythm", testW, testH) {
		x, y := center(k.Rect)
		a, ok := Click("rhythm", game.ChallengeState{}, testW, testH, x, y)
		require.True(t, ok)
		assert.Equal(t, game.Action{Name: "input", Symbol: k.Symbol}, a)
	}

	// a sharp sits on top of the white keys
	for _, k := range Keys("piano", testW, testH) {
		if k.Symbol != "F#" {
			continue
		}
		x, y := center(k.Rect)
		a, ok := Click("piano", game.PianoState{}, testW, testH, x, y)
		require.True(t, ok)
		assert.Equal(t, "F#", a.Note)
	}

	_, ok := Click("rhythm", game.ChallengeState{}, testW, testH, 1, 1)
	assert.False(t, ok, "header is not a key")
}

func TestClickFlipsCards(t *testing.T) {
	st := game.MatchState{Cards: make([]game.Card, 12)}
	rects := Cards(12, testW, testH)
	x, y := center(rects[7])
	a, ok := Click("memory", st, testW, testH, x, y)
	require.True(t, ok)
	assert.Equal(t, game.Action{Name: "flip", Card: 7}, a)
}

func TestKeyBindings(t *testing.T) {
	cases := []struct {
		game, key string
		want      game.Action
	}{
		{"rhythm", "1", game.Action{Name: "input", Symbol: "0"}},
		{"rhythm", "4", game.Action{Name: "input", Symbol: "3"}},
		{"rhythm", "space", game.Action{Name: "start"}},
		{"rhythm", "escape", game.Action{Name: "dismiss"}},
		{"pitch", "g", game.Action{Name: "input", Symbol: "G"}},
		{"pitch", "p", game.Action{Name: "replay"}},
		{"pitch", "r", game.Action{Name: "reset"}},
		{"builder", "a", game.Action{Name: "press", Note: "A"}},
		{"builder", "enter", game.Action{Name: "play"}},
		{"builder", "backspace", game.Action{Name: "clear"}},
		{"memory", "r", game.Action{Name: "restart"}},
		{"piano", "w", game.Action{Name: "down", Key: "w"}},
	}
	for _, tc := range cases {
		got, ok := KeyDown(tc.game, tc.key)
		require.True(t, ok, "%s %s", tc.game, tc.key)
		assert.Equal(t, tc.want, got, "%s %s", tc.game, tc.key)
	}

	_, ok := KeyDown("rhythm", "5")
	assert.False(t, ok)
	_, ok = KeyDown("piano", "space")
	assert.False(t, ok)

	up, ok := KeyUp("piano", "w")
	require.True(t, ok)
	assert.Equal(t, "up", up.Name)
	_, ok = KeyUp("pitch", "c")
	assert.False(t, ok)
}

func TestComposeChallenge(t *testing.T) {
	st := game.ChallengeState{Game: "rhythm", Phase: game.PhasePresenting, Level: 3, MaxLevel: 4}
	boxes := Compose(Frame{Game: "rhythm", State: st, Lit: map[string]bool{"2": true}}, testW, testH)

	// background, header, 4 pips, 4 pads
	require.Len(t, boxes, 10)
	assert.Equal(t, Palette.Background, boxes[0].Color)
	assert.Equal(t, Palette.Presenting, boxes[1].Color)
	assert.Equal(t, Palette.Progress, boxes[3].Color)
	assert.Equal(t, Palette.ProgressOff, boxes[4].Color)

	pads := boxes[6:]
	assert.Equal(t, SymbolColor(2).Add(litBoost, litBoost, litBoost), pads[2].Color)
	assert.Equal(t, SymbolColor(0).Mul(dimLevel), pads[0].Color)
}

func TestComposeMemoryAndPiano(t *testing.T) {
	st := game.MatchState{Cards: []game.Card{
		{ID: 0, SymbolID: "piano", IsFlipped: true},
		{ID: 1, SymbolID: "drum", IsMatched: true, IsFlipped: true},
		{ID: 2, SymbolID: "drum", IsMatched: true, IsFlipped: true},
		{ID: 3, SymbolID: "piano"},
	}}
	boxes := Compose(Frame{Game: "memory", State: st}, testW, testH)
	cards := boxes[len(boxes)-4:]
	assert.Equal(t, SymbolColor(0), cards[0].Color)
	assert.Equal(t, SymbolColor(2).Mul(dimLevel), cards[1].Color)
	assert.Equal(t, Palette.CardBack, cards[3].Color)

	boxes = Compose(Frame{Game: "piano", State: game.PianoState{Active: []string{"C#"}}}, testW, testH)
	last := boxes[len(boxes)-1]
	assert.Equal(t, SymbolColor(1), last.Color, "C# is painted last and lit")
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Melodyland | Rhythm Master | level 2/4 | score 10 | your turn 1/3",
		Title("rhythm", game.ChallengeState{Phase: game.PhaseAwaitingInput, Level: 2, MaxLevel: 4, Score: 10,
			TargetLength: 3, Input: []string{"0"}}))
	assert.Equal(t, "Melodyland | Pitch Perfect | level 6/6 | score 50 | Passed!",
		Title("pitch", game.ChallengeState{Phase: game.PhaseComplete, Level: 6, MaxLevel: 6, Score: 50, Feedback: "Passed!"}))
	assert.Contains(t, Title("pitch", game.ChallengeState{FailNotice: true, Level: 1, MaxLevel: 6}), "Game Over")
	assert.Equal(t, "Melodyland | Piano Beat Builder | C E 2/8 | playing",
		Title("builder", game.MelodyState{Melody: []string{"C", "E"}, MaxLength: 8, IsPlaying: true}))
	assert.Equal(t, "Melodyland | Music Memory | moves 6 | score 60 | all matched!",
		Title("memory", game.MatchState{Moves: 6, Score: 60, GameOver: true}))
	assert.Equal(t, "Melodyland | Virtual Piano | C G", Title("piano", game.PianoState{Active: []string{"C", "G"}}))
}

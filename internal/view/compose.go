package view

import "melodyland/internal/game"

// Box is one filled rectangle.
type Box struct {
	Rect
	Color RGB
}

// Frame is everything one redraw needs.
type Frame struct {
	Game  string
	State any
	// Lit holds symbols flashed by a presentation that is sounding now.
	Lit map[string]bool
}

// sharpAfter maps the index of a white key to the sharp that sits on its right edge.
var sharpAfter = map[int]string{0: "C#", 1: "D#", 3: "F#", 4: "G#", 5: "A#"}

// Key is a clickable region bound to a symbol.
type Key struct {
	Symbol string
	Rect   Rect
}

// Keys returns the clickable keys of gameID, topmost first.
func Keys(gameID string, w, h int) []Key {
	body := Body(w, h)
	switch gameID {
	case "rhythm":
		return row(game.BeatPads.Symbols(), body)
	case "pitch":
		return row(game.NaturalNotes.Symbols(), body)
	case "builder":
		_, bottom := Split(body, 4)
		return row(game.NaturalNotes.Symbols(), bottom)
	case "piano":
		return pianoKeys(body)
	}
	return nil
}

func row(symbols []string, area Rect) []Key {
	rects := Row(area, len(symbols))
	out := make([]Key, len(symbols))
	for i, s := range symbols {
		out[i] = Key{Symbol: s, Rect: rects[i]}
	}
	return out
}

func pianoKeys(body Rect) []Key {
	whites := row(game.NaturalNotes.Symbols(), body)
	var out []Key
	for i, k := range whites {
		sharp, ok := sharpAfter[i]
		if !ok {
			continue
		}
		bw := k.Rect.W * 6 / 10
		out = append(out, Key{Symbol: sharp, Rect: Rect{
			X: k.Rect.X + k.Rect.W + gutter/2 - bw/2,
			Y: body.Y,
			W: bw,
			H: body.H * 6 / 10,
		}})
	}
	return append(out, whites...)
}

// Cards returns one rect per Music Memory card, four to a row.
func Cards(n, w, h int) []Rect {
	return Grid(Body(w, h), n, 4)
}

// Slots returns the Piano Beat Builder melody slots.
func Slots(w, h int) []Rect {
	top, _ := Split(Body(w, h), 4)
	return Row(top, game.MelodyMaxLength)
}

// Compose paints f into a w×h window.
func Compose(f Frame, w, h int) []Box {
	boxes := []Box{{Rect: Rect{W: w, H: h}, Color: Palette.Background}}
	header := Header(w, h)

	switch st := f.State.(type) {
	case game.ChallengeState:
		boxes = append(boxes, Box{Rect: header, Color: PhaseColor(st.Phase)})
		cleared := st.Level - 1
		if st.Phase == game.PhaseComplete {
			cleared = st.MaxLevel
		}
		boxes = append(boxes, pips(header, st.MaxLevel, cleared)...)
		presenting := st.Phase == game.PhasePresenting
		boxes = append(boxes, keyBoxes(f.Game, Keys(f.Game, w, h), f.Lit, presenting)...)

	case game.MatchState:
		color := Palette.Awaiting
		if st.GameOver {
			color = Palette.Complete
		}
		boxes = append(boxes, Box{Rect: header, Color: color})
		boxes = append(boxes, pips(header, len(st.Cards)/2, st.Score/game.PointsPerClear)...)
		for i, r := range Cards(len(st.Cards), w, h) {
			boxes = append(boxes, Box{Rect: r, Color: cardColor(st.Cards[i])})
		}

	case game.MelodyState:
		color := Palette.Idle
		if st.IsPlaying {
			color = Palette.Presenting
		}
		boxes = append(boxes, Box{Rect: header, Color: color})
		for i, r := range Slots(w, h) {
			c := Palette.EmptySlot
			if i < len(st.Melody) {
				c = SymbolColor(symbolIndex(game.NaturalNotes, st.Melody[i]))
			}
			boxes = append(boxes, Box{Rect: r, Color: c})
		}
		boxes = append(boxes, keyBoxes(f.Game, Keys(f.Game, w, h), f.Lit, false)...)

	case game.PianoState:
		boxes = append(boxes, Box{Rect: header, Color: Palette.Panel})
		active := make(map[string]bool, len(st.Active))
		for _, n := range st.Active {
			active[n] = true
		}
		keys := Keys(f.Game, w, h)
		// whites first so the sharps paint over them
		for i := len(keys) - 1; i >= 0; i-- {
			k := keys[i]
			c := Palette.WhiteKey
			if len(k.Symbol) > 1 {
				c = Palette.BlackKey
			}
			if active[k.Symbol] {
				c = SymbolColor(symbolIndex(game.ChromaticNotes, k.Symbol))
			}
			boxes = append(boxes, Box{Rect: k.Rect.Inset(1), Color: c})
		}
	}
	return boxes
}

// PhaseColor is the header colour for a challenge phase.
func PhaseColor(p game.Phase) RGB {
	switch p {
	case game.PhasePresenting:
		return Palette.Presenting
	case game.PhaseAwaitingInput:
		return Palette.Awaiting
	case game.PhaseAdvancing:
		return Palette.Advancing
	case game.PhaseFailed:
		return Palette.Failed
	case game.PhaseComplete:
		return Palette.Complete
	}
	return Palette.Idle
}

// pips draws n progress squares on the header and fills the first on.
func pips(header Rect, n, on int) []Box {
	if n <= 0 {
		return nil
	}
	size := header.H / 2
	out := make([]Box, n)
	for i := range out {
		c := Palette.ProgressOff
		if i < on {
			c = Palette.Progress
		}
		out[i] = Box{
			Rect:  Rect{X: header.X + margin + i*(size+gutter), Y: header.Y + header.H/4, W: size, H: size},
			Color: c,
		}
	}
	return out
}

func keyBoxes(gameID string, keys []Key, lit map[string]bool, dim bool) []Box {
	info, _ := game.Lookup(gameID)
	out := make([]Box, len(keys))
	for i, k := range keys {
		c := SymbolColor(symbolIndex(info.Tones, k.Symbol))
		switch {
		case lit[k.Symbol]:
			c = c.Add(litBoost, litBoost, litBoost)
		case dim:
			c = c.Mul(dimLevel)
		}
		out[i] = Box{Rect: k.Rect, Color: c}
	}
	return out
}

func cardColor(c game.Card) RGB {
	switch {
	case c.IsMatched:
		return SymbolColor(symbolIndex(game.Instruments, c.SymbolID)).Mul(dimLevel)
	case c.IsFlipped:
		return SymbolColor(symbolIndex(game.Instruments, c.SymbolID))
	}
	return Palette.CardBack
}

func symbolIndex(t game.ToneTable, symbol string) int {
	for i, ts := range t {
		if ts.Symbol == symbol {
			return i
		}
	}
	return 0
}

package view

import (
	"strconv"
	"strings"

	"melodyland/internal/game"
)

// KeyDown maps a key press to an action for gameID. Keys are lower-case
// names: letters, digits, "space", "enter", "backspace", "escape".
func KeyDown(gameID, key string) (game.Action, bool) {
	switch gameID {
	case "rhythm":
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(game.BeatPads) {
			return game.Action{Name: "input", Symbol: strconv.Itoa(n - 1)}, true
		}
		return challengeKey(key)
	case "pitch":
		if note, ok := naturalNote(key); ok {
			return game.Action{Name: "input", Symbol: note}, true
		}
		if key == "p" {
			return game.Action{Name: "replay"}, true
		}
		return challengeKey(key)
	case "builder":
		if note, ok := naturalNote(key); ok {
			return game.Action{Name: "press", Note: note}, true
		}
		switch key {
		case "enter":
			return game.Action{Name: "play"}, true
		case "backspace":
			return game.Action{Name: "clear"}, true
		}
	case "memory":
		if key == "r" || key == "space" {
			return game.Action{Name: "restart"}, true
		}
	case "piano":
		if _, ok := game.PianoKeys[key]; ok {
			return game.Action{Name: "down", Key: key}, true
		}
	}
	return game.Action{}, false
}

// KeyUp maps a key release. Only the piano cares.
func KeyUp(gameID, key string) (game.Action, bool) {
	if gameID != "piano" {
		return game.Action{}, false
	}
	if _, ok := game.PianoKeys[key]; !ok {
		return game.Action{}, false
	}
	return game.Action{Name: "up", Key: key}, true
}

func challengeKey(key string) (game.Action, bool) {
	switch key {
	case "space":
		return game.Action{Name: "start"}, true
	case "r":
		return game.Action{Name: "reset"}, true
	case "escape":
		return game.Action{Name: "dismiss"}, true
	}
	return game.Action{}, false
}

func naturalNote(key string) (string, bool) {
	note := strings.ToUpper(key)
	if _, ok := game.NaturalNotes.Frequency(note); ok {
		return note, true
	}
	return "", false
}

// Click maps a click at (x, y) in a w×h window to an action.
func Click(gameID string, state any, w, h, x, y int) (game.Action, bool) {
	if st, ok := state.(game.MatchState); ok {
		for i, r := range Cards(len(st.Cards), w, h) {
			if r.Contains(x, y) {
				return game.Action{Name: "flip", Card: i}, true
			}
		}
		return game.Action{}, false
	}
	for _, k := range Keys(gameID, w, h) {
		if !k.Rect.Contains(x, y) {
			continue
		}
		switch gameID {
		case "rhythm", "pitch":
			return game.Action{Name: "input", Symbol: k.Symbol}, true
		case "builder":
			return game.Action{Name: "press", Note: k.Symbol}, true
		case "piano":
			return game.Action{Name: "tap", Note: k.Symbol}, true
		}
	}
	return game.Action{}, false
}

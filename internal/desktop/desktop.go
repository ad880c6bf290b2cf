// Package desktop is the GLFW window front-end: every game in one window,
// drawn as coloured rectangles, driven by keyboard and mouse.
package desktop

import (
	"errors"
	"log"
	"time"

	"melodyland/internal/game"
)

// ErrUnavailable is returned by builds without the window front-end.
var ErrUnavailable = errors.New("desktop front-end not built in (nodesktop)")

// Config is what Run needs. Env.Sched is replaced by Loop.
type Config struct {
	Loop   *game.Loop
	Env    game.Env
	Game   string // catalog id shown first
	Logger *log.Logger
}

// flashFor is how long a presented symbol stays lit.
func flashFor(gameID string) time.Duration {
	switch gameID {
	case "rhythm":
		return game.RhythmTone
	case "pitch":
		return game.PitchTone
	case "builder":
		return game.MelodyTone
	}
	return 200 * time.Millisecond
}

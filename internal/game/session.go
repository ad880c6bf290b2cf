package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownGame   = errors.New("unknown game")
	ErrUnknownAction = errors.New("unknown action")
)

// Action is one player operation addressed to a Session by name.
type Action struct {
	Name   string `json:"-"`
	Symbol string `json:"symbol,omitempty"`
	Card   int    `json:"card"`
	Key    string `json:"key,omitempty"`
	Note   string `json:"note,omitempty"`
}

// Session holds exactly one game of any kind behind a common action surface.
type Session struct {
	Game      string
	Challenge *Challenge
	Match     *MatchGame
	Builder   *MelodyBuilder
	Piano     *Piano
}

// NewSession builds the game registered under id in the Catalog.
func NewSession(id string, env Env) (*Session, error) {
	s := &Session{Game: id}
	switch id {
	case "rhythm":
		s.Challenge = NewRhythmMaster(env)
	case "pitch":
		s.Challenge = NewPitchPerfect(env)
	case "memory":
		s.Match = NewMatchGame(env)
	case "builder":
		s.Builder = NewMelodyBuilder(env)
	case "piano":
		s.Piano = NewPiano(env)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGame, id)
	}
	return s, nil
}

// Apply runs a. The bool is false when the game ignored the action in its
// current state; the error is only for actions the game does not have.
func (s *Session) Apply(a Action) (bool, error) {
	name := strings.ToLower(a.Name)
	switch {
	case s.Challenge != nil:
		switch name {
		case "start":
			return s.Challenge.Start(), nil
		case "input", "submit":
			return s.Challenge.Submit(a.Symbol), nil
		case "reset":
			return s.Challenge.Reset(), nil
		case "replay":
			return s.Challenge.Replay(), nil
		case "dismiss":
			return s.Challenge.DismissFailure(), nil
		}
	case s.Match != nil:
		switch name {
		case "flip":
			return s.Match.Flip(a.Card), nil
		case "restart", "start", "reset":
			return s.Match.Restart(), nil
		}
	case s.Builder != nil:
		switch name {
		case "press":
			return s.Builder.Press(a.Note), nil
		case "play":
			return s.Builder.Play(), nil
		case "clear":
			return s.Builder.Clear(), nil
		}
	case s.Piano != nil:
		switch name {
		case "down":
			return s.Piano.KeyDown(a.Key), nil
		case "up":
			return s.Piano.KeyUp(a.Key), nil
		case "tap":
			return s.Piano.Tap(a.Note), nil
		}
	}
	return false, fmt.Errorf("%w: %s has no %q", ErrUnknownAction, s.Game, a.Name)
}

// State returns the game's render record.
func (s *Session) State() any {
	switch {
	case s.Challenge != nil:
		return s.Challenge.State()
	case s.Match != nil:
		return s.Match.State()
	case s.Builder != nil:
		return s.Builder.State()
	case s.Piano != nil:
		return s.Piano.State()
	}
	return nil
}

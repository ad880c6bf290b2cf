package server

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"melodyland/internal/game"
)

var ErrNoSession = errors.New("no such session")

type entry struct {
	sess *game.Session
	used time.Time
}

// Hub owns every live session. All access goes through the game loop.
type Hub struct {
	loop     *game.Loop
	env      game.Env
	sessions map[string]*entry
}

// NewHub serves sessions built from env, scheduled on loop.
func NewHub(loop *game.Loop, env game.Env) *Hub {
	env.Sched = loop
	return &Hub{loop: loop, env: env, sessions: make(map[string]*entry)}
}

func (h *Hub) call(fn func()) error {
	return h.loop.Call(fn)
}

// Create starts a new session of kind gameID.
func (h *Hub) Create(gameID string) (id string, state any, err error) {
	callErr := h.call(func() {
		var s *game.Session
		s, err = game.NewSession(gameID, h.env)
		if err != nil {
			return
		}
		id = uuid.New().String()
		h.sessions[id] = &entry{sess: s, used: h.loop.Now()}
		state = s.State()
	})
	if callErr != nil {
		return "", nil, callErr
	}
	return id, state, err
}

func (h *Hub) State(id string) (state any, err error) {
	callErr := h.call(func() {
		e, ok := h.sessions[id]
		if !ok {
			err = ErrNoSession
			return
		}
		state = e.sess.State()
	})
	if callErr != nil {
		return nil, callErr
	}
	return state, err
}

// Delete drops a session. Its pending callbacks fire into a game nobody reads.
func (h *Hub) Delete(id string) (err error) {
	callErr := h.call(func() {
		if _, ok := h.sessions[id]; !ok {
			err = ErrNoSession
			return
		}
		delete(h.sessions, id)
	})
	if callErr != nil {
		return callErr
	}
	return err
}

// Apply runs a on session id and returns whether it was accepted plus the new state.
func (h *Hub) Apply(id string, a game.Action) (accepted bool, state any, err error) {
	callErr := h.call(func() {
		e, ok := h.sessions[id]
		if !ok {
			err = ErrNoSession
			return
		}
		e.used = h.loop.Now()
		accepted, err = e.sess.Apply(a)
		state = e.sess.State()
	})
	if callErr != nil {
		return false, nil, callErr
	}
	return accepted, state, err
}

// Load replaces a builder session's melody.
func (h *Hub) Load(id string, notes []string) (accepted bool, state any, err error) {
	callErr := h.call(func() {
		e, ok := h.sessions[id]
		if !ok {
			err = ErrNoSession
			return
		}
		if e.sess.Builder == nil {
			err = game.ErrUnknownAction
			return
		}
		e.used = h.loop.Now()
		accepted = e.sess.Builder.Load(notes)
		state = e.sess.State()
	})
	if callErr != nil {
		return false, nil, callErr
	}
	return accepted, state, err
}

func (h *Hub) SetVolume(v float64) {
	h.loop.Do(func() { h.env.Synth.SetVolume(v) })
}

func (h *Hub) Volume() (v float64) {
	h.call(func() { v = h.env.Synth.Volume() })
	return v
}

// Len returns the number of live sessions.
func (h *Hub) Len() (n int) {
	h.call(func() { n = len(h.sessions) })
	return n
}

// Sweep drops sessions unused for at least idle and returns how many went.
func (h *Hub) Sweep(idle time.Duration) (n int) {
	h.call(func() {
		now := h.loop.Now()
		for id, e := range h.sessions {
			if now.Sub(e.used) >= idle {
				delete(h.sessions, id)
				n++
			}
		}
	})
	return n
}

// RunSweeper sweeps every interval until ctx is done.
func (h *Hub) RunSweeper(ctx context.Context, interval, idle time.Duration, onSweep func(n int)) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := h.Sweep(idle); n > 0 && onSweep != nil {
				onSweep(n)
			}
		}
	}
}

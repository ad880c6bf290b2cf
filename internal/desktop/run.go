//go:build !nodesktop

package desktop

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"melodyland/internal/game"
	"melodyland/internal/view"
)

// Run opens the window and blocks until it is closed or ctx is done.
// It must be called from the main goroutine.
func Run(ctx context.Context, cfg Config) error {
	runtime.LockOSThread()

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	window, err := initWindow("Melodyland")
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	env := cfg.Env
	env.Sched = cfg.Loop
	if env.Bus == nil {
		env.Bus = game.NewEventBus()
	}

	var (
		sessions []*game.Session
		cur      int
		lit      = map[string]time.Time{}
		setupErr error
	)
	err = cfg.Loop.Call(func() {
		for i, info := range game.Catalog {
			s, err := game.NewSession(info.ID, env)
			if err != nil {
				setupErr = err
				return
			}
			if info.ID == cfg.Game {
				cur = i
			}
			sessions = append(sessions, s)
		}
		env.Bus.Subscribe(game.EventSymbolPresented, func(e game.Event) {
			if e.Game == sessions[cur].Game {
				lit[e.Symbol] = cfg.Loop.Now().Add(flashFor(e.Game))
			}
		})
	})
	if err != nil {
		return err
	}
	if setupErr != nil {
		return setupErr
	}

	apply := func(s *game.Session, a game.Action) {
		if _, err := s.Apply(a); err != nil {
			logger.Printf("%s: %v", s.Game, err)
		}
	}

	input := NewInput()
	title := ""
	for !window.ShouldClose() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		glfw.PollEvents()
		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		pressed, released := input.Edges(window)
		clicked := input.JustClicked(window, glfw.MouseButtonLeft)
		mx, my := CursorPos(window, fbW, fbH)

		var frame view.Frame
		err := cfg.Loop.Call(func() {
			for _, k := range pressed {
				if k == "tab" {
					cur = (cur + 1) % len(sessions)
					clear(lit)
					continue
				}
				if a, ok := view.KeyDown(sessions[cur].Game, k); ok {
					apply(sessions[cur], a)
				}
			}
			for _, k := range released {
				if a, ok := view.KeyUp(sessions[cur].Game, k); ok {
					apply(sessions[cur], a)
				}
			}
			s := sessions[cur]
			if clicked {
				if a, ok := view.Click(s.Game, s.State(), fbW, fbH, mx, my); ok {
					apply(s, a)
				}
			}

			now := cfg.Loop.Now()
			on := make(map[string]bool, len(lit))
			for sym, until := range lit {
				if now.Before(until) {
					on[sym] = true
				} else {
					delete(lit, sym)
				}
			}
			frame = view.Frame{Game: s.Game, State: s.State(), Lit: on}
		})
		if err != nil {
			return err
		}

		if t := view.Title(frame.Game, frame.State); t != title {
			window.SetTitle(t)
			title = t
		}
		draw(view.Compose(frame, fbW, fbH), fbH)
		window.SwapBuffers()
	}
	return nil
}

// draw fills each box with a scissored clear. Boxes are top-left based;
// GL scissor rects are bottom-left based.
func draw(boxes []view.Box, fbH int) {
	gl.Enable(gl.SCISSOR_TEST)
	for _, b := range boxes {
		r, g, bl := b.Color.Floats()
		gl.Scissor(int32(b.X), int32(fbH-b.Y-b.H), int32(b.W), int32(b.H))
		gl.ClearColor(r, g, bl, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)
	}
	gl.Disable(gl.SCISSOR_TEST)
}

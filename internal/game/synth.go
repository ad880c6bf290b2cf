package game

import (
	"log"
	"time"

	"melodyland/internal/audio"
)

// Synth fires tones at the current volume. Volume changes only affect
// tones fired afterwards.
type Synth struct {
	out    audio.Renderer
	volume float64
	bus    *EventBus
	logger *log.Logger
}

// NewSynth wraps out. A nil logger logs to log.Default().
func NewSynth(out audio.Renderer, volume float64, bus *EventBus, logger *log.Logger) *Synth {
	if out == nil {
		out = audio.Discard
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Synth{out: out, volume: clamp(volume, 0, 1), bus: bus, logger: logger}
}

func (s *Synth) Volume() float64 { return s.volume }

func (s *Synth) SetVolume(v float64) { s.volume = clamp(v, 0, 1) }

// Play fires one tone. A render failure is logged and published as
// EventAudioFailed; it is never returned to game logic.
func (s *Synth) Play(game string, frequency float64, d time.Duration) {
	err := s.out.Play(audio.NewTone(frequency, s.volume, d))
	if err == nil {
		return
	}
	s.logger.Printf("tone %.2fHz for %s: %v", frequency, game, err)
	s.bus.Emit(Event{Type: EventAudioFailed, Game: game, Err: err})
}

// Env is what every game is built from.
type Env struct {
	Sched Scheduler
	Synth *Synth
	Rand  *Rand
	Bus   *EventBus // optional
}

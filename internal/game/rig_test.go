package game

import (
	"io"
	"log"
	"time"

	"melodyland/internal/audio"
)

type rig struct {
	clock  *ManualClock
	rec    *audio.Recorder
	bus    *EventBus
	env    Env
	events []Event
}

func newRig(seed uint64) *rig {
	r := &rig{clock: NewManualClock(), rec: &audio.Recorder{}, bus: NewEventBus()}
	synth := NewSynth(r.rec, 0.5, r.bus, log.New(io.Discard, "", 0))
	r.env = Env{Sched: r.clock, Synth: synth, Rand: NewRand(seed), Bus: r.bus}
	for _, t := range []EventType{
		EventSymbolPresented, EventLevelCleared, EventSessionComplete,
		EventSessionFailed, EventBoardCleared, EventAudioFailed,
	} {
		r.bus.Subscribe(t, func(e Event) { r.events = append(r.events, e) })
	}
	return r
}

func (r *rig) count(t EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// present advances past the lead-in and the whole presentation of c's target.
func (r *rig) present(c *Challenge) {
	cfg := c.Config()
	r.clock.Advance(cfg.LeadIn + time.Duration(len(c.Target()))*cfg.Gap)
}

func wrongSymbol(table ToneTable, right string) string {
	for _, ts := range table {
		if ts.Symbol != right {
			return ts.Symbol
		}
	}
	return ""
}

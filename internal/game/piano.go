package game

import "sort"

// PianoKeys maps computer keys to ChromaticNotes, laid out like a keyboard:
// the home row is the white keys, the row above holds the sharps.
var PianoKeys = map[string]string{
	"a": "C", "w": "C#", "s": "D", "e": "D#", "d": "E", "f": "F",
	"t": "F#", "g": "G", "y": "G#", "h": "A", "u": "A#", "j": "B",
}

// PianoState lists the notes currently lit.
type PianoState struct {
	Active []string `json:"active"`
}

// Piano is free play: every key sounds, nothing is scored.
type Piano struct {
	sched  Scheduler
	synth  *Synth
	bus    *EventBus
	held   map[string]bool // computer keys down
	tapped map[string]int  // note -> pending tap releases
}

func NewPiano(env Env) *Piano {
	return &Piano{
		sched:  env.Sched,
		synth:  env.Synth,
		bus:    env.Bus,
		held:   make(map[string]bool),
		tapped: make(map[string]int),
	}
}

// KeyDown sounds the bound note. Auto-repeat of a held key is ignored.
func (p *Piano) KeyDown(key string) bool {
	note, ok := PianoKeys[key]
	if !ok || p.held[key] {
		return false
	}
	p.held[key] = true
	p.sound(note)
	return true
}

func (p *Piano) KeyUp(key string) bool {
	if !p.held[key] {
		return false
	}
	delete(p.held, key)
	p.changed()
	return true
}

// Tap sounds a note by name and lights it briefly.
func (p *Piano) Tap(note string) bool {
	if _, ok := ChromaticNotes.Frequency(note); !ok {
		return false
	}
	p.tapped[note]++
	p.sound(note)
	p.sched.After(PianoTapHold, func() {
		if p.tapped[note]--; p.tapped[note] <= 0 {
			delete(p.tapped, note)
		}
		p.changed()
	})
	return true
}

func (p *Piano) State() PianoState {
	lit := make(map[string]bool)
	for key := range p.held {
		lit[PianoKeys[key]] = true
	}
	for note := range p.tapped {
		lit[note] = true
	}
	active := make([]string, 0, len(lit))
	for _, ts := range ChromaticNotes {
		if lit[ts.Symbol] {
			active = append(active, ts.Symbol)
		}
	}
	return PianoState{Active: active}
}

// KeyFor returns the computer key bound to note.
func KeyFor(note string) (string, bool) {
	keys := make([]string, 0, len(PianoKeys))
	for k := range PianoKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if PianoKeys[k] == note {
			return k, true
		}
	}
	return "", false
}

func (p *Piano) sound(note string) {
	freq, _ := ChromaticNotes.Frequency(note)
	p.synth.Play("piano", freq, PianoTone)
	p.changed()
}

func (p *Piano) changed() {
	p.bus.Emit(Event{Type: EventStateChanged, Game: "piano"})
}

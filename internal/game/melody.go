package game

// MelodyState is the Piano Beat Builder's render record.
type MelodyState struct {
	Melody    []string `json:"melody"`
	IsPlaying bool     `json:"isPlaying"`
	MaxLength int      `json:"maxLength"`
}

// MelodyBuilder collects up to MelodyMaxLength notes and plays them back.
// There is nothing to win or lose.
type MelodyBuilder struct {
	synth     *Synth
	bus       *EventBus
	presenter *Presenter
	melody    []string
	playing   bool
}

func NewMelodyBuilder(env Env) *MelodyBuilder {
	return &MelodyBuilder{
		synth:     env.Synth,
		bus:       env.Bus,
		presenter: NewPresenter("builder", env, NaturalNotes, MelodyGap, MelodyTone),
	}
}

// Press sounds note and appends it.
func (b *MelodyBuilder) Press(note string) bool {
	if b.playing || len(b.melody) >= MelodyMaxLength {
		return false
	}
	freq, ok := NaturalNotes.Frequency(note)
	if !ok {
		return false
	}
	b.synth.Play("builder", freq, MelodyTone)
	b.melody = append(b.melody, note)
	b.changed()
	return true
}

// Play sounds the whole melody. Press and Clear are blocked until it ends.
func (b *MelodyBuilder) Play() bool {
	if b.playing || len(b.melody) == 0 {
		return false
	}
	b.playing = true
	b.changed()
	b.presenter.Present(b.melody, MelodyLeadIn, func() bool { return true }, func() {
		b.playing = false
		b.changed()
	})
	return true
}

func (b *MelodyBuilder) Clear() bool {
	if b.playing || len(b.melody) == 0 {
		return false
	}
	b.melody = nil
	b.changed()
	return true
}

// Load replaces the melody, e.g. from an imported file. Unknown notes are
// skipped and the result is capped at MelodyMaxLength.
func (b *MelodyBuilder) Load(notes []string) bool {
	if b.playing {
		return false
	}
	var melody []string
	for _, n := range notes {
		if len(melody) == MelodyMaxLength {
			break
		}
		if _, ok := NaturalNotes.Frequency(n); ok {
			melody = append(melody, n)
		}
	}
	b.melody = melody
	b.changed()
	return true
}

func (b *MelodyBuilder) State() MelodyState {
	return MelodyState{
		Melody:    append([]string{}, b.melody...),
		IsPlaying: b.playing,
		MaxLength: MelodyMaxLength,
	}
}

func (b *MelodyBuilder) changed() {
	b.bus.Emit(Event{Type: EventStateChanged, Game: "builder"})
}

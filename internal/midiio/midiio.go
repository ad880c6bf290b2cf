// Package midiio moves Piano Beat Builder melodies in and out of Standard MIDI Files.
package midiio

import (
	"errors"
	"fmt"
	"io"
	"time"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"melodyland/internal/game"
)

const (
	TicksPerQuarter = 96
	Tempo           = 120.0
	Velocity        = 100

	// middle C, the first note of game.NaturalNotes
	baseKey = 60
)

var quarter = time.Duration(float64(time.Minute) / Tempo)

// semitone offsets from C for each natural note
var offsets = map[string]uint8{"C": 0, "D": 2, "E": 4, "F": 5, "G": 7, "A": 9, "B": 11}

var names = func() map[uint8]string {
	m := make(map[uint8]string, len(offsets))
	for n, o := range offsets {
		m[o] = n
	}
	return m
}()

// ErrEmptyMelody is returned when there is nothing to write.
var ErrEmptyMelody = errors.New("empty melody")

// Ticks converts a duration to ticks at Tempo. Never less than one tick.
func Ticks(d time.Duration) uint32 {
	t := uint32(d * TicksPerQuarter / quarter)
	if t == 0 {
		return 1
	}
	return t
}

// WriteMelody writes notes as one track, each note sounding for gap.
// Names outside game.NaturalNotes are skipped.
func WriteMelody(w io.Writer, notes []string, gap time.Duration) error {
	length := Ticks(gap)

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(Tempo))
	n := 0
	for _, name := range notes {
		off, ok := offsets[name]
		if !ok {
			continue
		}
		key := uint8(baseKey) + off
		tr.Add(0, midi.NoteOn(0, key, Velocity))
		tr.Add(length, midi.NoteOff(0, key))
		n++
	}
	if n == 0 {
		return ErrEmptyMelody
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(TicksPerQuarter)
	if err := s.Add(tr); err != nil {
		return fmt.Errorf("adding track: %w", err)
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("writing midi: %w", err)
	}
	return nil
}

// ReadMelody returns the natural notes started in r, in file order, in any
// octave, capped at game.MelodyMaxLength. Sharps and flats are skipped.
func ReadMelody(r io.Reader) (notes []string, err error) {
	// the smf reader can panic on malformed input
	defer func() {
		if p := recover(); p != nil {
			notes, err = nil, fmt.Errorf("parsing midi: %v", p)
		}
	}()

	s, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("parsing midi: %w", err)
	}
	for _, tr := range s.Tracks {
		for _, ev := range tr {
			var ch, key, vel uint8
			if !midi.Message(ev.Message).GetNoteStart(&ch, &key, &vel) {
				continue
			}
			name, ok := names[key%12]
			if !ok {
				continue
			}
			if _, ok := game.NaturalNotes.Frequency(name); !ok {
				continue
			}
			notes = append(notes, name)
			if len(notes) == game.MelodyMaxLength {
				return notes, nil
			}
		}
	}
	return notes, nil
}

package game

// ToneSpec binds a game symbol to the frequency it sounds at.
type ToneSpec struct {
	Symbol    string  `json:"symbol"`
	Frequency float64 `json:"frequency"`
}

// ToneTable is an ordered, immutable symbol set.
type ToneTable []ToneSpec

// Frequency looks up a symbol.
func (t ToneTable) Frequency(symbol string) (float64, bool) {
	for _, ts := range t {
		if ts.Symbol == symbol {
			return ts.Frequency, true
		}
	}
	return 0, false
}

// Symbols returns the symbols in table order.
func (t ToneTable) Symbols() []string {
	out := make([]string, len(t))
	for i, ts := range t {
		out[i] = ts.Symbol
	}
	return out
}

// BeatPads are Rhythm Master's four pads: C4, D4, E4, G4.
var BeatPads = ToneTable{
	{"0", 261.63},
	{"1", 293.66},
	{"2", 329.63},
	{"3", 392.00},
}

// NaturalNotes is the C major scale from C4.
var NaturalNotes = ToneTable{
	{"C", 261.63},
	{"D", 293.66},
	{"E", 329.63},
	{"F", 349.23},
	{"G", 392.00},
	{"A", 440.00},
	{"B", 493.88},
}

// ChromaticNotes is one octave from C4, sharps included.
var ChromaticNotes = ToneTable{
	{"C", 261.63},
	{"C#", 277.18},
	{"D", 293.66},
	{"D#", 311.13},
	{"E", 329.63},
	{"F", 349.23},
	{"F#", 369.99},
	{"G", 392.00},
	{"G#", 415.30},
	{"A", 440.00},
	{"A#", 466.16},
	{"B", 493.88},
}

// Instruments are the Music Memory card faces. Each card cues its own pitch.
var Instruments = ToneTable{
	{"piano", 261.63},
	{"guitar", 329.63},
	{"drum", 130.81},
	{"violin", 440.00},
	{"flute", 523.25},
	{"trumpet", 392.00},
}

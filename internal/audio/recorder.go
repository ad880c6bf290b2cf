package audio

import "sync"

// Recorder is a Renderer that remembers every tone instead of sounding it.
// Set Err to make every Play fail after recording.
type Recorder struct {
	mu    sync.Mutex
	tones []Tone
	Err   error
}

func (r *Recorder) Play(t Tone) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tones = append(r.tones, t)
	return r.Err
}

// Tones returns a copy of the recorded tones in play order.
func (r *Recorder) Tones() []Tone {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Tone(nil), r.tones...)
}

// Frequencies returns the recorded tone frequencies in play order.
func (r *Recorder) Frequencies() []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]float64, len(r.tones))
	for i, t := range r.tones {
		out[i] = t.Frequency
	}
	return out
}

// Len returns how many tones were played.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tones)
}

// Reset forgets recorded tones.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tones = nil
}

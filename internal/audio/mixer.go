package audio

import "sync"

// MaxVoices bounds how many tones can sound at once on one device.
const MaxVoices = 16

type voice struct {
	tone   Tone
	frame  int
	frames int
	serial uint64
	active bool
}

// Mixer is an endless io.Reader that sums a fixed pool of voices.
// When every voice is busy the oldest one is stolen.
type Mixer struct {
	mu     sync.Mutex
	voices [MaxVoices]voice
	serial uint64
}

// NewMixer returns an idle mixer.
func NewMixer() *Mixer {
	return &Mixer{}
}

// Play starts t on a free voice. It never fails.
func (m *Mixer) Play(t Tone) error {
	n := t.Frames()
	if n == 0 {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.serial++
	slot := 0
	for i := range m.voices {
		if !m.voices[i].active {
			slot = i
			break
		}
		if m.voices[i].serial < m.voices[slot].serial {
			slot = i
		}
	}
	m.voices[slot] = voice{tone: t, frames: n, serial: m.serial, active: true}
	return nil
}

// Active returns the number of voices currently sounding.
func (m *Mixer) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for i := range m.voices {
		if m.voices[i].active {
			n++
		}
	}
	return n
}

// Read fills p with mixed stereo float32 frames. Idle voices contribute silence,
// so Read never returns io.EOF and the output player stays open.
func (m *Mixer) Read(p []byte) (int, error) {
	frames := len(p) / bytesPerFrame
	if frames == 0 {
		return 0, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := 0; i < frames; i++ {
		s := 0.0
		for v := range m.voices {
			vc := &m.voices[v]
			if !vc.active {
				continue
			}
			s += vc.tone.Sample(vc.frame)
			vc.frame++
			if vc.frame >= vc.frames {
				vc.active = false
			}
		}
		putStereoF32(p, i, softSat(s))
	}
	return frames * bytesPerFrame, nil
}

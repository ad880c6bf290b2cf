package audio

import (
	"math"
	"time"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)

	bytesPerFrame = 8
)

// Envelope levels for every tone the games fire.
const (
	PeakGain  = 0.3
	FloorGain = 0.01

	// releaseTail fades the last few milliseconds to zero so a tone never ends on a click.
	releaseTail = 5 * time.Millisecond
)

// Tone is one fire-and-forget sine note.
type Tone struct {
	Frequency float64
	Gain      float64
	Duration  time.Duration
}

// NewTone builds a tone whose peak gain is PeakGain scaled by volume.
// A zero volume still yields a tone: silent, but with its full duration.
func NewTone(frequency, volume float64, d time.Duration) Tone {
	return Tone{
		Frequency: frequency,
		Gain:      PeakGain * clampF(volume, 0, 1),
		Duration:  d,
	}
}

// Frames returns the number of sample frames the tone spans.
func (t Tone) Frames() int {
	if t.Duration <= 0 {
		return 0
	}
	return int(t.Duration.Seconds() * SampleRate)
}

// Envelope returns the gain at sec seconds into the tone.
// The gain ramps exponentially from Gain to FloorGain over the duration.
func (t Tone) Envelope(sec float64) float64 {
	dur := t.Duration.Seconds()
	if t.Gain <= 0 || dur <= 0 || sec < 0 || sec >= dur {
		return 0
	}
	g := t.Gain
	if t.Gain > FloorGain {
		g = t.Gain * math.Pow(FloorGain/t.Gain, sec/dur)
	}
	tail := releaseTail.Seconds()
	if left := dur - sec; left < tail && tail < dur {
		g *= left / tail
	}
	return g
}

// Sample returns the mono sample at frame i.
func (t Tone) Sample(i int) float64 {
	sec := float64(i) / SampleRate
	return math.Sin(2*math.Pi*t.Frequency*sec) * t.Envelope(sec)
}

// Render returns the whole tone as a stereo float32 buffer.
func (t Tone) Render() []byte {
	n := t.Frames()
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		putStereoF32(buf, i, t.Sample(i))
	}
	return buf
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*bytesPerFrame) }

// softSat squashes the voice sum into (-1, 1). It is smooth and monotonic,
// so a sum crossing full scale bends instead of stepping.
func softSat(x float64) float64 {
	return math.Tanh(x)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

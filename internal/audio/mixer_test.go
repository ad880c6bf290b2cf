package audio

import (
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func leftSample(buf []byte, i int) float64 {
	return float64(math.Float32frombits(binary.LittleEndian.Uint32(buf[i*8:])))
}

func TestMixerIdleReadsSilence(t *testing.T) {
	m := NewMixer()
	buf := make([]byte, 64*bytesPerFrame)
	n, err := m.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, len(buf), n)
	for i := 0; i < 64; i++ {
		assert.Equal(t, 0.0, leftSample(buf, i))
	}
}

func TestMixerIgnoresPartialFrames(t *testing.T) {
	m := NewMixer()
	n, err := m.Read(make([]byte, 7))
	assert.NoError(t, err)
	assert.Equal(t, 0, n)
	n, _ = m.Read(make([]byte, 20))
	assert.Equal(t, 16, n)
}

func TestMixerVoiceEndsAfterDuration(t *testing.T) {
	m := NewMixer()
	tone := NewTone(440, 1, 10*time.Millisecond)
	assert.NoError(t, m.Play(tone))
	assert.Equal(t, 1, m.Active())

	buf := make([]byte, tone.Frames()*bytesPerFrame)
	_, _ = m.Read(buf)
	assert.Equal(t, 0, m.Active())
	assert.InDelta(t, softSat(tone.Sample(5)), leftSample(buf, 5), 1e-6)
}

func TestMixerStealsOldestVoice(t *testing.T) {
	m := NewMixer()
	for i := 0; i < MaxVoices+3; i++ {
		_ = m.Play(NewTone(float64(100+i), 1, time.Second))
	}
	assert.Equal(t, MaxVoices, m.Active())

	seen := map[float64]bool{}
	for _, v := range m.voices {
		seen[v.tone.Frequency] = true
	}
	assert.False(t, seen[100])
	assert.False(t, seen[102])
	assert.True(t, seen[float64(100+MaxVoices+2)])
}

func TestMixerSkipsEmptyTones(t *testing.T) {
	m := NewMixer()
	assert.NoError(t, m.Play(Tone{Frequency: 440}))
	assert.Equal(t, 0, m.Active())
}

func TestSoftSatIsContinuousAcrossFullScale(t *testing.T) {
	assert := assert.New(t)
	for _, x := range []float64{1, -1, 2, -2} {
		below, above := softSat(x-1e-6), softSat(x+1e-6)
		assert.InDelta(below, above, 1e-5, "jump at %v", x)
		assert.Less(below, above, "not rising at %v", x)
	}
	assert.Less(math.Abs(softSat(40)), 1.0+1e-12)
	assert.Equal(0.0, softSat(0))
}

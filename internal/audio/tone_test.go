package audio

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewToneScalesPeakByVolume(t *testing.T) {
	assert := assert.New(t)
	assert.InDelta(0.15, NewTone(440, 0.5, time.Second).Gain, 1e-9)
	assert.InDelta(PeakGain, NewTone(440, 3, time.Second).Gain, 1e-9)
	assert.Equal(0.0, NewTone(440, -1, time.Second).Gain)
}

func TestEnvelopeDecaysToFloor(t *testing.T) {
	tone := NewTone(440, 1, time.Second)
	assert := assert.New(t)
	assert.InDelta(PeakGain, tone.Envelope(0), 1e-9)
	// Halfway through an exponential ramp sits at the geometric mean.
	assert.InDelta(math.Sqrt(PeakGain*FloorGain), tone.Envelope(0.5), 1e-6)
	assert.InDelta(FloorGain, tone.Envelope(0.99), 0.002)
	assert.Equal(0.0, tone.Envelope(1.0))
	assert.Equal(0.0, tone.Envelope(-0.1))
	for sec := 0.0; sec < 0.99; sec += 0.05 {
		assert.Greater(tone.Envelope(sec), tone.Envelope(sec+0.05))
	}
}

func TestZeroVolumeKeepsDuration(t *testing.T) {
	tone := NewTone(261.63, 0, 200*time.Millisecond)
	assert.Equal(t, int(0.2*SampleRate), tone.Frames())
	for i := 0; i < tone.Frames(); i += 97 {
		assert.Equal(t, 0.0, tone.Sample(i))
	}
}

func TestRenderWritesBothChannels(t *testing.T) {
	tone := NewTone(440, 1, 10*time.Millisecond)
	buf := tone.Render()
	assert.Len(t, buf, tone.Frames()*bytesPerFrame)
	for i := 0; i < tone.Frames(); i++ {
		assert.Equal(t, buf[i*8:i*8+4], buf[i*8+4:i*8+8])
	}
}

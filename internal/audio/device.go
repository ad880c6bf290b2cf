//go:build !audio_stub

package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

// Device is the shared sound output: one oto context and one player
// streaming a Mixer.
type Device struct {
	ctx    *oto.Context
	ready  chan struct{}
	mixer  *Mixer
	once   sync.Once
	player oto.Player
}

// Open initializes the audio system.
func Open() (*Device, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, fmt.Errorf("audio: open context: %w", err)
	}
	return &Device{ctx: ctx, ready: ready, mixer: NewMixer()}, nil
}

// WaitReady blocks until the context is up or timeout passes.
func (d *Device) WaitReady(timeout time.Duration) bool {
	select {
	case <-d.ready:
		return true
	case <-time.After(timeout):
		return false
	}
}

// Play queues t on the mixer. It returns ErrNotReady until the
// context has finished initializing.
func (d *Device) Play(t Tone) error {
	select {
	case <-d.ready:
	default:
		return ErrNotReady
	}
	d.once.Do(func() {
		d.player = d.ctx.NewPlayer(d.mixer)
		d.player.Play()
	})
	return d.mixer.Play(t)
}

// Close stops the output player.
func (d *Device) Close() error {
	if d.player == nil {
		return nil
	}
	return d.player.Close()
}

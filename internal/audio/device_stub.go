//go:build audio_stub

package audio

import "time"

// Device is a silent stand-in used when built with the audio_stub tag.
type Device struct {
	mixer *Mixer
}

func Open() (*Device, error)        { return &Device{mixer: NewMixer()}, nil }
func (d *Device) Play(t Tone) error { return nil }
func (d *Device) Close() error      { return nil }

func (d *Device) WaitReady(time.Duration) bool { return true }

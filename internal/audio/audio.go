// Package audio renders the games' sine tones and sends them to the sound device.
package audio

import "errors"

// ErrNotReady is returned while the output device is still starting up.
var ErrNotReady = errors.New("audio: device not ready")

// Renderer is the tone-rendering capability the games are built on.
// Each call is an independent voice; implementations keep no back-reference
// to tones they already started.
type Renderer interface {
	Play(t Tone) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(t Tone) error

func (f RendererFunc) Play(t Tone) error { return f(t) }

// Discard is a Renderer that drops every tone.
var Discard Renderer = RendererFunc(func(Tone) error { return nil })

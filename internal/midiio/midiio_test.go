package midiio

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"melodyland/internal/game"
)

func TestMelodyRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	melody := []string{"E", "D", "C", "D", "E", "E", "E"}
	require.NoError(t, WriteMelody(&buf, melody, game.MelodyGap))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("MThd")))

	got, err := ReadMelody(&buf)
	require.NoError(t, err)
	assert.Equal(t, melody, got)
}

func TestReadMelodyCapsLength(t *testing.T) {
	var buf bytes.Buffer
	long := strings.Split("C D E F G A B C D E", " ")
	require.NoError(t, WriteMelody(&buf, long, game.MelodyGap))

	got, err := ReadMelody(&buf)
	require.NoError(t, err)
	assert.Equal(t, long[:game.MelodyMaxLength], got)
}

func TestWriteMelodySkipsUnknownNotes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMelody(&buf, []string{"C", "H", "G"}, game.MelodyGap))
	got, err := ReadMelody(&buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "G"}, got)

	assert.ErrorIs(t, WriteMelody(&bytes.Buffer{}, []string{"X"}, game.MelodyGap), ErrEmptyMelody)
}

func TestReadMelodyRejectsGarbage(t *testing.T) {
	_, err := ReadMelody(strings.NewReader("not a midi file"))
	assert.Error(t, err)
}

func TestTicks(t *testing.T) {
	assert.Equal(t, uint32(TicksPerQuarter), Ticks(500*time.Millisecond))
	assert.Equal(t, uint32(86), Ticks(450*time.Millisecond))
	assert.Equal(t, uint32(1), Ticks(0))
}

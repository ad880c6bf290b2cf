package results

import (
	"context"
	"io"
	"log"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"melodyland/internal/game"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "results.db"), log.New(io.Discard, "", 0))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	base := time.UnixMilli(1_700_000_000_000)

	for i, g := range []string{"rhythm", "pitch", "memory"} {
		r := &Result{Game: g, Level: i + 1, Score: 10 * i, Outcome: OutcomePassed,
			Duration: time.Duration(i) * time.Second, FinishedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, s.Record(ctx, r))
		assert.NotEmpty(t, r.ID)
	}

	got, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "memory", got[0].Game)
	assert.Equal(t, "pitch", got[1].Game)
	assert.Equal(t, 2*time.Second, got[0].Duration)
	assert.True(t, got[0].FinishedAt.Equal(base.Add(2*time.Minute)))

	all, err := s.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestReopenKeepsResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")
	s, err := Open(path, nil)
	require.NoError(t, err)
	require.NoError(t, s.Record(context.Background(), &Result{Game: "rhythm", Outcome: OutcomeFailed}))
	require.NoError(t, s.Close())

	s, err = Open(path, nil)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, OutcomeFailed, got[0].Outcome)
}

func TestSubscribeRecordsOutcomes(t *testing.T) {
	s := openTemp(t)
	bus := game.NewEventBus()
	s.Subscribe(bus)

	bus.Emit(game.Event{Type: game.EventSessionComplete, Game: "pitch", Level: 6, Score: 50, Elapsed: 42 * time.Second})
	bus.Emit(game.Event{Type: game.EventBoardCleared, Game: "memory", Score: 60, Moves: 9})
	bus.Emit(game.Event{Type: game.EventSessionFailed, Game: "rhythm", Level: 2, Score: 10})
	bus.Emit(game.Event{Type: game.EventLevelCleared, Game: "rhythm"})

	var got []Result
	require.Eventually(t, func() bool {
		var err error
		got, err = s.Recent(context.Background(), 10)
		return err == nil && len(got) == 3
	}, 2*time.Second, 5*time.Millisecond)

	byGame := map[string]Result{}
	for _, r := range got {
		byGame[r.Game] = r
	}
	assert.Equal(t, OutcomePassed, byGame["pitch"].Outcome)
	assert.Equal(t, 42*time.Second, byGame["pitch"].Duration)
	assert.Equal(t, 9, byGame["memory"].Moves)
	assert.Equal(t, OutcomeCleared, byGame["memory"].Outcome)
	assert.Equal(t, OutcomeFailed, byGame["rhythm"].Outcome)
	assert.Equal(t, 2, byGame["rhythm"].Level)
}

func TestResultJSON(t *testing.T) {
	b, err := (Result{ID: "x", Game: "pitch", Duration: 1500 * time.Millisecond}).MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(b), `"durationMs":1500`)
	assert.Contains(t, string(b), `"game":"pitch"`)
}

func TestCloseWritesQueuedResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")
	s, err := Open(path, log.New(io.Discard, "", 0))
	require.NoError(t, err)
	bus := game.NewEventBus()
	s.Subscribe(bus)
	for i := 0; i < 5; i++ {
		bus.Emit(game.Event{Type: game.EventSessionFailed, Game: "rhythm", Level: i + 1})
	}
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	// Events after Close are dropped, not panics.
	bus.Emit(game.Event{Type: game.EventSessionFailed, Game: "rhythm"})

	s, err = Open(path, nil)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, got, 5)
}

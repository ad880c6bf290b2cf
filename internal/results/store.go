// Package results keeps a local log of finished game sessions in SQLite.
// It records outcomes only; sessions are never resumed from it.
package results

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"melodyland/internal/game"
)

const (
	OutcomePassed  = "passed"
	OutcomeFailed  = "failed"
	OutcomeCleared = "cleared"
)

// Result is one finished session.
type Result struct {
	ID         string        `json:"id"`
	Game       string        `json:"game"`
	Level      int           `json:"level"`
	Score      int           `json:"score"`
	Moves      int           `json:"moves"`
	Outcome    string        `json:"outcome"`
	Duration   time.Duration `json:"-"`
	FinishedAt time.Time     `json:"finishedAt"`
}

// MarshalJSON reports Duration in whole milliseconds.
func (r Result) MarshalJSON() ([]byte, error) {
	type plain Result
	return json.Marshal(struct {
		plain
		DurationMs int64 `json:"durationMs"`
	}{plain(r), r.Duration.Milliseconds()})
}

// queueSize bounds how many finished sessions may wait for the writer.
const queueSize = 64

// Store persists results. Results published on the event bus are written by
// a single writer goroutine so the game loop never waits on the disk.
type Store struct {
	db     *sql.DB
	logger *log.Logger

	mu      sync.RWMutex
	closed  bool
	queue   chan *Result
	done    chan struct{}
	once    sync.Once
	closeEr error
}

// Open opens (or creates) the database at path and migrates it.
func Open(path string, logger *log.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("results: open db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("results: enable WAL: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}
	s := &Store{
		db:     db,
		logger: logger,
		queue:  make(chan *Result, queueSize),
		done:   make(chan struct{}),
	}
	if err := s.Migrate(); err != nil {
		db.Close()
		return nil, err
	}
	go s.writer()
	return s, nil
}

// Close writes every queued result, then closes the database.
func (s *Store) Close() error {
	s.once.Do(func() {
		s.mu.Lock()
		s.closed = true
		close(s.queue)
		s.mu.Unlock()
		<-s.done
		s.closeEr = s.db.Close()
	})
	return s.closeEr
}

func (s *Store) writer() {
	defer close(s.done)
	for r := range s.queue {
		if err := s.Record(context.Background(), r); err != nil {
			s.logger.Printf("recording %s %s: %v", r.Game, r.Outcome, err)
		}
	}
}

// enqueue hands r to the writer without blocking. It reports false when the
// store is closed or the queue is full.
func (s *Store) enqueue(r *Result) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return false
	}
	select {
	case s.queue <- r:
		return true
	default:
		return false
	}
}

// Migrate creates the results table.
func (s *Store) Migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS results (
			id TEXT PRIMARY KEY,
			game TEXT NOT NULL,
			level INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL DEFAULT 0,
			moves INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			finished_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_results_finished ON results(finished_at DESC)`,
	}
	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("results: migrate: %w", err)
		}
	}
	return nil
}

// Record inserts r, filling in ID and FinishedAt when empty.
func (s *Store) Record(ctx context.Context, r *Result) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.FinishedAt.IsZero() {
		r.FinishedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO results (id, game, level, score, moves, outcome, duration_ms, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Game, r.Level, r.Score, r.Moves, r.Outcome,
		r.Duration.Milliseconds(), r.FinishedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("results: insert: %w", err)
	}
	return nil
}

// Recent returns up to limit results, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, game, level, score, moves, outcome, duration_ms, finished_at
		 FROM results ORDER BY finished_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("results: query: %w", err)
	}
	defer rows.Close()

	out := []Result{}
	for rows.Next() {
		var r Result
		var durMs, finished int64
		if err := rows.Scan(&r.ID, &r.Game, &r.Level, &r.Score, &r.Moves, &r.Outcome, &durMs, &finished); err != nil {
			return nil, fmt.Errorf("results: scan: %w", err)
		}
		r.Duration = time.Duration(durMs) * time.Millisecond
		r.FinishedAt = time.UnixMilli(finished)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Subscribe records every finished session published on bus. Handlers only
// queue the result; write errors are logged and never reach the game.
func (s *Store) Subscribe(bus *game.EventBus) {
	record := func(outcome string) game.EventHandler {
		return func(e game.Event) {
			r := &Result{
				Game:       e.Game,
				Level:      e.Level,
				Score:      e.Score,
				Moves:      e.Moves,
				Outcome:    outcome,
				Duration:   e.Elapsed,
				FinishedAt: time.Now(),
			}
			if !s.enqueue(r) {
				s.logger.Printf("dropped %s %s result: store closed or busy", e.Game, outcome)
			}
		}
	}
	bus.Subscribe(game.EventSessionComplete, record(OutcomePassed))
	bus.Subscribe(game.EventSessionFailed, record(OutcomeFailed))
	bus.Subscribe(game.EventBoardCleared, record(OutcomeCleared))
}

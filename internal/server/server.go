// Package server exposes game sessions over a loopback JSON API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"melodyland/internal/game"
	"melodyland/internal/midiio"
	"melodyland/internal/results"
)

// Options tune the server. Zero values take the defaults below.
type Options struct {
	ActionRate     rate.Limit
	ActionBurst    int
	VolumeDebounce time.Duration
	IdleTimeout    time.Duration
	SweepInterval  time.Duration
	Logger         *log.Logger
}

const (
	DefaultActionRate     = rate.Limit(50)
	DefaultActionBurst    = 20
	DefaultVolumeDebounce = 50 * time.Millisecond
	DefaultIdleTimeout    = 30 * time.Minute
	DefaultSweepInterval  = time.Minute

	maxBody = 64 << 10
)

// Server handles HTTP requests
type Server struct {
	hub     *Hub
	store   *results.Store
	logger  *log.Logger
	opts    Options
	limiter *rate.Limiter
	start   time.Time

	debounced func(func())
	volMu     sync.Mutex
	pending   float64
}

// New builds a server over hub. store may be nil when no results log is kept.
func New(hub *Hub, store *results.Store, opts Options) *Server {
	if opts.ActionRate == 0 {
		opts.ActionRate = DefaultActionRate
	}
	if opts.ActionBurst == 0 {
		opts.ActionBurst = DefaultActionBurst
	}
	if opts.VolumeDebounce == 0 {
		opts.VolumeDebounce = DefaultVolumeDebounce
	}
	if opts.IdleTimeout == 0 {
		opts.IdleTimeout = DefaultIdleTimeout
	}
	if opts.SweepInterval == 0 {
		opts.SweepInterval = DefaultSweepInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stdout, "[server] ", log.LstdFlags|log.Lshortfile)
	}
	return &Server{
		hub:       hub,
		store:     store,
		logger:    logger,
		opts:      opts,
		limiter:   rate.NewLimiter(opts.ActionRate, opts.ActionBurst),
		start:     time.Now(),
		debounced: debounce.New(opts.VolumeDebounce),
	}
}

// Routes sets up the HTTP routes with middleware
func (s *Server) Routes() http.Handler {
	r := mux.NewRouter().StrictSlash(true)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/games", s.handleListGames).Methods(http.MethodGet)
	api.HandleFunc("/sessions", s.handleCreateSession).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}", s.handleGetSession).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", s.handleDeleteSession).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{id}/melody", s.handleLoadMelody).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{id}/{action}", s.handleAction).Methods(http.MethodPost)
	api.HandleFunc("/volume", s.handleGetVolume).Methods(http.MethodGet)
	api.HandleFunc("/volume", s.handleSetVolume).Methods(http.MethodPut)
	api.HandleFunc("/results", s.handleResults).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(r)
}

// ListenAndServe serves on addr until ctx is cancelled, sweeping idle sessions meanwhile.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go s.hub.RunSweeper(ctx, s.opts.SweepInterval, s.opts.IdleTimeout, func(n int) {
		s.logger.Printf("swept %d idle sessions", n)
	})
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdown)
	}()
	s.logger.Printf("listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Printf("encoding response: %v", err)
	}
}

// decodeBody decodes an optional JSON body into v. An empty body is fine.
func decodeBody(r *http.Request, v any) error {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBody)).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// hubError maps a Hub error onto a response.
func (s *Server) hubError(w http.ResponseWriter, r *http.Request, err error, ctx map[string]any) {
	switch {
	case errors.Is(err, ErrNoSession):
		s.writeError(w, r, http.StatusNotFound, ErrTypeNotFound, err.Error(), ctx)
	case errors.Is(err, game.ErrUnknownGame), errors.Is(err, game.ErrUnknownAction):
		s.writeError(w, r, http.StatusBadRequest, ErrTypeValidation, err.Error(), ctx)
	case errors.Is(err, game.ErrLoopStopped):
		s.writeError(w, r, http.StatusServiceUnavailable, ErrTypeUnavailable, err.Error(), ctx)
	default:
		s.writeError(w, r, http.StatusInternalServerError, ErrTypeInternal, err.Error(), ctx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": s.hub.Len(),
		"uptime":   time.Since(s.start).Round(time.Second).String(),
	})
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"games": game.Catalog})
}

type createRequest struct {
	Game string `json:"game"`
}

type sessionResponse struct {
	ID    string `json:"id"`
	State any    `json:"state"`
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeValidation, "invalid JSON body", map[string]any{"cause": err.Error()})
		return
	}
	id, state, err := s.hub.Create(req.Game)
	if err != nil {
		s.hubError(w, r, err, map[string]any{"game": req.Game})
		return
	}
	s.writeJSON(w, http.StatusCreated, sessionResponse{ID: id, State: state})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	state, err := s.hub.State(id)
	if err != nil {
		s.hubError(w, r, err, map[string]any{"id": id})
		return
	}
	s.writeJSON(w, http.StatusOK, sessionResponse{ID: id, State: state})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.hub.Delete(id); err != nil {
		s.hubError(w, r, err, map[string]any{"id": id})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type actionResponse struct {
	Accepted bool `json:"accepted"`
	State    any  `json:"state"`
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if !s.limiter.Allow() {
		s.writeError(w, r, http.StatusTooManyRequests, ErrTypeRateLimited, "too many actions", nil)
		return
	}
	var a game.Action
	if err := decodeBody(r, &a); err != nil {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeValidation, "invalid JSON body", map[string]any{"cause": err.Error()})
		return
	}
	a.Name = vars["action"]
	accepted, state, err := s.hub.Apply(vars["id"], a)
	if err != nil {
		s.hubError(w, r, err, map[string]any{"id": vars["id"], "action": a.Name})
		return
	}
	s.writeJSON(w, http.StatusOK, actionResponse{Accepted: accepted, State: state})
}

// handleLoadMelody replaces a builder session's melody with the notes of an
// uploaded MIDI file.
func (s *Server) handleLoadMelody(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	notes, err := midiio.ReadMelody(io.LimitReader(r.Body, maxBody))
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeValidation, "invalid MIDI file", map[string]any{"cause": err.Error()})
		return
	}
	accepted, state, err := s.hub.Load(id, notes)
	if err != nil {
		s.hubError(w, r, err, map[string]any{"id": id})
		return
	}
	s.writeJSON(w, http.StatusOK, actionResponse{Accepted: accepted, State: state})
}

type volumeBody struct {
	Volume *float64 `json:"volume"`
}

func (s *Server) handleGetVolume(w http.ResponseWriter, r *http.Request) {
	v := s.hub.Volume()
	s.writeJSON(w, http.StatusOK, volumeBody{Volume: &v})
}

// handleSetVolume coalesces slider drags: only the last value inside the
// debounce window reaches the synth.
func (s *Server) handleSetVolume(w http.ResponseWriter, r *http.Request) {
	var body volumeBody
	if err := decodeBody(r, &body); err != nil || body.Volume == nil {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeValidation, "volume is required", nil)
		return
	}
	v := *body.Volume
	if v < 0 || v > 1 {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeValidation, "volume must be within [0, 1]",
			map[string]any{"volume": v})
		return
	}
	s.volMu.Lock()
	s.pending = v
	s.volMu.Unlock()
	s.debounced(func() {
		s.volMu.Lock()
		v := s.pending
		s.volMu.Unlock()
		s.hub.SetVolume(v)
	})
	s.writeJSON(w, http.StatusAccepted, volumeBody{Volume: &v})
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if q := r.URL.Query().Get("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 1 || n > 500 {
			s.writeError(w, r, http.StatusBadRequest, ErrTypeValidation, "limit must be between 1 and 500",
				map[string]any{"limit": q})
			return
		}
		limit = n
	}
	if s.store == nil {
		s.writeJSON(w, http.StatusOK, map[string]any{"results": []results.Result{}})
		return
	}
	list, err := s.store.Recent(r.Context(), limit)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, ErrTypeInternal, err.Error(), nil)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"results": list})
}

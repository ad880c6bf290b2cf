package game

import (
	"slices"
	"time"
)

// MatchRule decides when submitted input is checked against the target.
type MatchRule int

const (
	// MatchPrefix checks every symbol as it arrives; the first wrong one fails.
	MatchPrefix MatchRule = iota
	// MatchExact checks once the input is as long as the target.
	MatchExact
)

// ChallengeConfig is everything that differs between challenge games.
type ChallengeConfig struct {
	Name     string
	Tones    ToneTable
	MaxLevel int
	Length   LengthFunc
	Rule     MatchRule

	Tone         time.Duration // how long each symbol sounds
	Gap          time.Duration // onset spacing while presenting; 0 plays at once
	LeadIn       time.Duration
	AdvanceDelay time.Duration
	FailDelay    time.Duration

	SuccessFeedback string
	Replayable      bool
}

// RhythmConfig is Rhythm Master: repeat a growing beat-pad sequence.
func RhythmConfig() ChallengeConfig {
	return ChallengeConfig{
		Name:            "rhythm",
		Tones:           BeatPads,
		MaxLevel:        RhythmMaxLevel,
		Length:          RhythmSequenceLength,
		Rule:            MatchPrefix,
		Tone:            RhythmTone,
		Gap:             RhythmGap,
		LeadIn:          LeadIn,
		AdvanceDelay:    AdvanceDelay,
		FailDelay:       FailDelay,
		SuccessFeedback: FeedbackGreat,
	}
}

// PitchConfig is Pitch Perfect: name the single note that was played.
func PitchConfig() ChallengeConfig {
	return ChallengeConfig{
		Name:            "pitch",
		Tones:           NaturalNotes,
		MaxLevel:        PitchMaxLevel,
		Length:          PitchSequenceLength,
		Rule:            MatchExact,
		Tone:            PitchTone,
		LeadIn:          LeadIn,
		AdvanceDelay:    AdvanceDelay,
		FailDelay:       FailDelay,
		SuccessFeedback: FeedbackCorrect,
		Replayable:      true,
	}
}

// ChallengeState is the record a renderer polls after each operation.
type ChallengeState struct {
	Game         string   `json:"game"`
	Phase        Phase    `json:"phase"`
	Level        int      `json:"level"`
	MaxLevel     int      `json:"maxLevel"`
	Score        int      `json:"score"`
	Feedback     string   `json:"feedback"`
	IsPlaying    bool     `json:"isPlaying"`
	IsPresenting bool     `json:"isPresenting"`
	FailNotice   bool     `json:"failNotice"`
	TargetLength int      `json:"targetLength"`
	Input        []string `json:"input"`
}

// Challenge runs the present, await input, validate, advance-or-fail loop.
//
// Every deferred step captures the session token it was armed under and
// does nothing if the token has moved on, so a Reset during a
// presentation or an advance delay can never be undone by a late callback.
type Challenge struct {
	cfg       ChallengeConfig
	sched     Scheduler
	synth     *Synth
	bus       *EventBus
	gen       *Generator
	presenter *Presenter

	phase      Phase
	level      int
	score      int
	feedback   string
	target     []string
	input      []string
	failNotice bool
	token      uint64
	startedAt  time.Time
}

func NewChallenge(cfg ChallengeConfig, env Env) *Challenge {
	c := &Challenge{
		cfg:   cfg,
		sched: env.Sched,
		synth: env.Synth,
		bus:   env.Bus,
		gen:   NewGenerator(cfg.Tones, cfg.Length, env.Rand),
		level: 1,
	}
	c.presenter = NewPresenter(cfg.Name, env, cfg.Tones, cfg.Gap, cfg.Tone)
	c.presenter.OnSymbol = func(s string) {
		c.bus.Emit(Event{Type: EventSymbolPresented, Game: cfg.Name, Symbol: s, Level: c.level})
	}
	return c
}

func NewRhythmMaster(env Env) *Challenge { return NewChallenge(RhythmConfig(), env) }

func NewPitchPerfect(env Env) *Challenge { return NewChallenge(PitchConfig(), env) }

func (c *Challenge) Config() ChallengeConfig { return c.cfg }

// Start begins a session at level 1. Only valid while idle.
func (c *Challenge) Start() bool {
	if c.phase != PhaseIdle {
		return false
	}
	c.token++
	c.level = 1
	c.score = 0
	c.feedback = ""
	c.failNotice = false
	c.startedAt = c.sched.Now()
	c.beginLevel()
	return true
}

// Submit feeds one symbol. It is ignored unless input is awaited.
func (c *Challenge) Submit(symbol string) bool {
	if c.phase != PhaseAwaitingInput || c.level > c.cfg.MaxLevel {
		return false
	}
	freq, ok := c.cfg.Tones.Frequency(symbol)
	if !ok {
		return false
	}
	c.synth.Play(c.cfg.Name, freq, c.cfg.Tone)
	c.input = append(c.input, symbol)

	if !c.matches() {
		c.fail()
		return true
	}
	if len(c.input) < len(c.target) {
		c.changed()
		return true
	}
	if c.level >= c.cfg.MaxLevel {
		c.complete()
		return true
	}
	c.advance()
	return true
}

// Replay sounds the current target again without touching the score.
func (c *Challenge) Replay() bool {
	if !c.cfg.Replayable || c.phase != PhaseAwaitingInput {
		return false
	}
	tok := c.token
	if c.cfg.Gap <= 0 {
		c.presenter.Present(c.target, 0, c.live(tok), func() {})
		return true
	}
	c.input = c.input[:0]
	c.phase = PhasePresenting
	c.changed()
	c.presenter.Present(c.target, 0, c.live(tok), func() { c.await() })
	return true
}

// Reset returns to the idle state from anywhere. The fail notice is left
// for the player to dismiss.
func (c *Challenge) Reset() bool {
	c.token++
	c.phase = PhaseIdle
	c.level = 1
	c.score = 0
	c.feedback = ""
	c.target = nil
	c.input = nil
	c.changed()
	return true
}

// DismissFailure hides the "Game Over" notice.
func (c *Challenge) DismissFailure() bool {
	if !c.failNotice {
		return false
	}
	c.failNotice = false
	c.changed()
	return true
}

func (c *Challenge) State() ChallengeState {
	return ChallengeState{
		Game:         c.cfg.Name,
		Phase:        c.phase,
		Level:        c.level,
		MaxLevel:     c.cfg.MaxLevel,
		Score:        c.score,
		Feedback:     c.feedback,
		IsPlaying:    c.phase.Active(),
		IsPresenting: c.phase == PhasePresenting,
		FailNotice:   c.failNotice,
		TargetLength: len(c.target),
		Input:        append([]string{}, c.input...),
	}
}

// Target returns a copy of the symbols the current level expects.
func (c *Challenge) Target() []string {
	return append([]string(nil), c.target...)
}

func (c *Challenge) beginLevel() {
	c.target = c.gen.Generate(c.level)
	c.input = c.input[:0]
	c.phase = PhasePresenting
	c.changed()
	c.presenter.Present(c.target, c.cfg.LeadIn, c.live(c.token), func() { c.await() })
}

func (c *Challenge) await() {
	c.phase = PhaseAwaitingInput
	c.changed()
}

func (c *Challenge) matches() bool {
	switch c.cfg.Rule {
	case MatchExact:
		if len(c.input) < len(c.target) {
			return true
		}
		return slices.Equal(c.input, c.target)
	default:
		i := len(c.input) - 1
		return i < len(c.target) && c.input[i] == c.target[i]
	}
}

func (c *Challenge) complete() {
	c.phase = PhaseComplete
	c.feedback = FeedbackPassed
	c.input = nil
	c.changed()
	c.bus.Emit(c.event(EventSessionComplete))
}

func (c *Challenge) advance() {
	c.phase = PhaseAdvancing
	c.feedback = c.cfg.SuccessFeedback
	c.score += PointsPerClear
	c.changed()
	c.bus.Emit(c.event(EventLevelCleared))

	tok := c.token
	c.sched.After(c.cfg.AdvanceDelay, func() {
		if tok != c.token {
			return
		}
		c.level++
		c.feedback = ""
		c.beginLevel()
	})
}

func (c *Challenge) fail() {
	c.phase = PhaseFailed
	c.failNotice = true
	c.changed()
	c.bus.Emit(c.event(EventSessionFailed))

	tok := c.token
	c.sched.After(c.cfg.FailDelay, func() {
		if tok != c.token {
			return
		}
		c.Reset()
	})
}

func (c *Challenge) live(tok uint64) func() bool {
	return func() bool { return tok == c.token }
}

func (c *Challenge) changed() {
	c.bus.Emit(Event{Type: EventStateChanged, Game: c.cfg.Name, Level: c.level, Score: c.score})
}

func (c *Challenge) event(t EventType) Event {
	return Event{
		Type:    t,
		Game:    c.cfg.Name,
		Level:   c.level,
		Score:   c.score,
		Elapsed: c.sched.Now().Sub(c.startedAt),
	}
}

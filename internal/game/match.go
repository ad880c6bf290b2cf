package game

import "time"

// Card is one Music Memory tile. ID is its board position.
type Card struct {
	ID        int    `json:"id"`
	SymbolID  string `json:"symbolId"`
	IsFlipped bool   `json:"isFlipped"`
	IsMatched bool   `json:"isMatched"`
}

// MatchState is the Music Memory render record.
type MatchState struct {
	Cards    []Card `json:"cards"`
	Moves    int    `json:"moves"`
	Score    int    `json:"score"`
	GameOver bool   `json:"gameOver"`
}

// MatchGame pairs face-down cards. Every symbol is on exactly two cards.
type MatchGame struct {
	sched   Scheduler
	synth   *Synth
	bus     *EventBus
	rng     *Rand
	symbols ToneTable

	cards     []Card
	up        []int
	moves     int
	score     int
	over      bool
	token     uint64
	startedAt time.Time
}

// NewMatchGame deals a shuffled board of the Instruments.
func NewMatchGame(env Env) *MatchGame {
	return NewMatchGameWith(env, Instruments)
}

// NewMatchGameWith deals a board of 2×len(symbols) cards.
func NewMatchGameWith(env Env, symbols ToneTable) *MatchGame {
	g := &MatchGame{
		sched:   env.Sched,
		synth:   env.Synth,
		bus:     env.Bus,
		rng:     env.Rand,
		symbols: symbols,
	}
	g.deal()
	return g
}

// Flip turns card id face up.
func (g *MatchGame) Flip(id int) bool {
	if g.over || id < 0 || id >= len(g.cards) || len(g.up) == 2 {
		return false
	}
	card := &g.cards[id]
	if card.IsFlipped || card.IsMatched {
		return false
	}
	card.IsFlipped = true
	g.up = append(g.up, id)
	if freq, ok := g.symbols.Frequency(card.SymbolID); ok {
		g.synth.Play("memory", freq, MatchCueTone)
	}
	if len(g.up) == 2 {
		g.resolve()
	}
	g.changed()
	return true
}

// Restart reshuffles and clears moves, score and game over.
func (g *MatchGame) Restart() bool {
	g.deal()
	g.changed()
	return true
}

func (g *MatchGame) State() MatchState {
	return MatchState{
		Cards:    append([]Card(nil), g.cards...),
		Moves:    g.moves,
		Score:    g.score,
		GameOver: g.over,
	}
}

func (g *MatchGame) resolve() {
	g.moves++
	a, b := &g.cards[g.up[0]], &g.cards[g.up[1]]
	if a.SymbolID == b.SymbolID {
		g.synth.Play("memory", MatchCueFreq, MatchCueTone)
		a.IsMatched, b.IsMatched = true, true
		g.score += PointsPerClear
		g.up = g.up[:0]
		if g.allMatched() {
			g.over = true
			g.bus.Emit(Event{
				Type:    EventBoardCleared,
				Game:    "memory",
				Score:   g.score,
				Moves:   g.moves,
				Elapsed: g.sched.Now().Sub(g.startedAt),
			})
		}
		return
	}
	g.synth.Play("memory", MissCueFreq, MatchCueTone)
	tok := g.token
	ia, ib := g.up[0], g.up[1]
	g.sched.After(MatchFlipBack, func() {
		if tok != g.token {
			return
		}
		g.cards[ia].IsFlipped = false
		g.cards[ib].IsFlipped = false
		g.up = g.up[:0]
		g.changed()
	})
}

func (g *MatchGame) allMatched() bool {
	for _, c := range g.cards {
		if !c.IsMatched {
			return false
		}
	}
	return true
}

func (g *MatchGame) deal() {
	g.token++
	deck := make([]string, 0, 2*len(g.symbols))
	for _, s := range g.symbols {
		deck = append(deck, s.Symbol, s.Symbol)
	}
	g.rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	g.cards = make([]Card, len(deck))
	for i, s := range deck {
		g.cards[i] = Card{ID: i, SymbolID: s}
	}
	g.up = nil
	g.moves = 0
	g.score = 0
	g.over = false
	g.startedAt = g.sched.Now()
}

func (g *MatchGame) changed() {
	g.bus.Emit(Event{Type: EventStateChanged, Game: "memory", Score: g.score, Moves: g.moves})
}

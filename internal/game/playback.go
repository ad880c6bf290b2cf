package game

import "time"

// Presenter plays a sequence one symbol at a time as a chain of timer steps.
type Presenter struct {
	game  string
	sched Scheduler
	synth *Synth
	tones ToneTable
	gap   time.Duration
	tone  time.Duration

	// OnSymbol, if set, runs as each symbol sounds.
	OnSymbol func(symbol string)
}

func NewPresenter(game string, env Env, tones ToneTable, gap, tone time.Duration) *Presenter {
	return &Presenter{game: game, sched: env.Sched, synth: env.Synth, tones: tones, gap: gap, tone: tone}
}

// Present waits lead, then sounds seq[0], seq[1], ... gap apart, and calls
// done one gap after the last symbol. With a zero gap every symbol sounds at
// once and done follows immediately. The chain stops silently as soon as
// live reports false.
func (p *Presenter) Present(seq []string, lead time.Duration, live func() bool, done func()) {
	seq = append([]string(nil), seq...)
	var step func(i int)
	step = func(i int) {
		if !live() {
			return
		}
		if p.gap <= 0 {
			for _, s := range seq {
				p.sound(s)
			}
			done()
			return
		}
		if i == len(seq) {
			done()
			return
		}
		p.sound(seq[i])
		p.sched.After(p.gap, func() { step(i + 1) })
	}
	if lead <= 0 {
		step(0)
		return
	}
	p.sched.After(lead, func() { step(0) })
}

func (p *Presenter) sound(symbol string) {
	freq, ok := p.tones.Frequency(symbol)
	if !ok {
		return
	}
	p.synth.Play(p.game, freq, p.tone)
	if p.OnSymbol != nil {
		p.OnSymbol(symbol)
	}
}

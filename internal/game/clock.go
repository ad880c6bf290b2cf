package game

import (
	"sort"
	"time"
)

// Scheduler defers work. Callbacks run on the same goroutine as the
// game that armed them, one at a time.
type Scheduler interface {
	After(d time.Duration, fn func())
	Now() time.Time
}

type timer struct {
	at  time.Time
	seq uint64
	fn  func()
}

// ManualClock is a Scheduler whose time only moves when Advance is called.
type ManualClock struct {
	now    time.Time
	seq    uint64
	timers []timer
}

func NewManualClock() *ManualClock {
	return &ManualClock{now: time.Unix(0, 0).UTC()}
}

func (c *ManualClock) Now() time.Time { return c.now }

func (c *ManualClock) After(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	c.seq++
	c.timers = append(c.timers, timer{at: c.now.Add(d), seq: c.seq, fn: fn})
	sort.SliceStable(c.timers, func(i, j int) bool {
		if c.timers[i].at.Equal(c.timers[j].at) {
			return c.timers[i].seq < c.timers[j].seq
		}
		return c.timers[i].at.Before(c.timers[j].at)
	})
}

// Advance moves time forward by d, firing due callbacks in deadline order.
// Callbacks armed while advancing fire too if they fall inside the window.
func (c *ManualClock) Advance(d time.Duration) {
	end := c.now.Add(d)
	for len(c.timers) > 0 && !c.timers[0].at.After(end) {
		t := c.timers[0]
		c.timers = c.timers[1:]
		c.now = t.at
		t.fn()
	}
	c.now = end
}

// Pending returns how many callbacks are still armed.
func (c *ManualClock) Pending() int { return len(c.timers) }

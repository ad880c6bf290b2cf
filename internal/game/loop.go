package game

import (
	"context"
	"errors"
	"time"
)

// ErrLoopStopped is returned by Call once the loop has stopped.
var ErrLoopStopped = errors.New("game loop stopped")

// Loop is the single goroutine every game operation and deferred callback
// runs on. Games are not safe for use from any other goroutine.
type Loop struct {
	work chan func()
	done chan struct{}
}

func NewLoop() *Loop {
	return &Loop{
		work: make(chan func(), 64),
		done: make(chan struct{}),
	}
}

// Run processes work until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) {
	defer close(l.done)
	for {
		select {
		case <-ctx.Done():
			return
		case fn := <-l.work:
			fn()
		}
	}
}

// Do queues fn. It is dropped if the loop has stopped.
func (l *Loop) Do(fn func()) {
	select {
	case l.work <- fn:
	case <-l.done:
	}
}

// Call runs fn on the loop and waits for it. It returns ErrLoopStopped if
// the loop stopped first. Calling it from the loop itself deadlocks.
func (l *Loop) Call(fn func()) error {
	ran := make(chan struct{})
	l.Do(func() {
		fn()
		close(ran)
	})
	select {
	case <-ran:
		return nil
	case <-l.done:
		select {
		case <-ran:
			return nil
		default:
			return ErrLoopStopped
		}
	}
}

func (l *Loop) After(d time.Duration, fn func()) {
	time.AfterFunc(d, func() { l.Do(fn) })
}

func (l *Loop) Now() time.Time { return time.Now() }

// Done is closed once Run returns.
func (l *Loop) Done() <-chan struct{} { return l.done }

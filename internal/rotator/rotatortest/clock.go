// Package rotatortest provides a manual clock for driving rotator sessions
// in tests without waiting on wall time.
package rotatortest

import (
	"sync"
	"time"

	"github.com/louisbranch/voraglobal/internal/rotator"
)

// DefaultFireTimeout bounds how long Fire waits for a session to take a tick.
const DefaultFireTimeout = 200 * time.Millisecond

// Clock records every ticker it creates so tests can fire them by hand.
type Clock struct {
	mu      sync.Mutex
	tickers []*Ticker
}

// NewClock returns an empty manual clock.
func NewClock() *Clock {
	return &Clock{}
}

// NewTicker implements rotator.Clock.
func (c *Clock) NewTicker(d time.Duration) rotator.Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &Ticker{interval: d, ch: make(chan time.Time)}
	c.tickers = append(c.tickers, t)
	return t
}

// Created returns how many tickers were ever created.
func (c *Clock) Created() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tickers)
}

// Live returns how many created tickers have not been stopped.
func (c *Clock) Live() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	live := 0
	for _, t := range c.tickers {
		if !t.Stopped() {
			live++
		}
	}
	return live
}

// Latest returns the most recently created ticker, or nil.
func (c *Clock) Latest() *Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.tickers) == 0 {
		return nil
	}
	return c.tickers[len(c.tickers)-1]
}

// Fire simulates one interval elapse on the latest ticker. It reports
// whether a running session received the tick.
func (c *Clock) Fire() bool {
	t := c.Latest()
	if t == nil {
		return false
	}
	return t.Fire(DefaultFireTimeout)
}

// Ticker is a manually fired rotator.Ticker.
type Ticker struct {
	mu       sync.Mutex
	interval time.Duration
	stopped  bool
	ch       chan time.Time
}

// C implements rotator.Ticker.
func (t *Ticker) C() <-chan time.Time { return t.ch }

// Stop implements rotator.Ticker.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
}

// Stopped reports whether Stop was called.
func (t *Ticker) Stopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

// Interval returns the interval the ticker was created with.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Fire delivers one tick, waiting up to timeout for a receiver.
func (t *Ticker) Fire(timeout time.Duration) bool {
	if t.Stopped() {
		return false
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case t.ch <- time.Now():
		return true
	case <-timer.C:
		return false
	}
}

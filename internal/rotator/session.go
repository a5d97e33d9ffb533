package rotator

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultInterval is how often a started session advances on its own.
const DefaultInterval = 5 * time.Second

var (
	// ErrAlreadyStarted is returned when Start is called more than once.
	ErrAlreadyStarted = errors.New("rotator session already started")
	// ErrStopped is returned when a stopped session is asked to start.
	ErrStopped = errors.New("rotator session stopped")
	// ErrInvalidInterval is returned for non-positive intervals.
	ErrInvalidInterval = errors.New("rotation interval must be positive")
)

// Option configures a Session.
type Option func(*sessionOptions)

type sessionOptions struct {
	clock    Clock
	interval time.Duration
}

// WithClock replaces the system clock, mostly for tests.
func WithClock(clock Clock) Option {
	return func(o *sessionOptions) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithInterval sets the auto-advance interval.
func WithInterval(d time.Duration) Option {
	return func(o *sessionOptions) {
		o.interval = d
	}
}

// Session owns one Rotator and the timer that advances it.
//
// Manual navigation and timer ticks go through the same lock and are
// indistinguishable; manual moves never reset or pause the timer. The timer
// goroutine is joined by Stop, so once Stop returns nothing mutates the
// rotator again.
type Session[T any] struct {
	mu       sync.Mutex
	rot      *Rotator[T]
	clock    Clock
	interval time.Duration

	parent  context.Context
	started bool
	stopped bool
	cancel  context.CancelFunc
	done    chan struct{}

	subs    map[int]chan Snapshot[T]
	nextSub int
}

// NewSession builds an idle session over items. The timer is not running
// until Start is called.
func NewSession[T any](items []T, opts ...Option) (*Session[T], error) {
	options := sessionOptions{clock: SystemClock(), interval: DefaultInterval}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	if options.interval <= 0 {
		return nil, ErrInvalidInterval
	}
	rot, err := New(items)
	if err != nil {
		return nil, err
	}
	return &Session[T]{
		rot:      rot,
		clock:    options.clock,
		interval: options.interval,
		subs:     map[int]chan Snapshot[T]{},
	}, nil
}

// Start launches the auto-advance timer. It succeeds exactly once; the
// timer stops when ctx is cancelled or Stop is called, whichever comes first.
func (s *Session[T]) Start(ctx context.Context) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return ErrStopped
	}
	if s.started {
		return ErrAlreadyStarted
	}
	s.started = true
	s.parent = ctx
	s.startTimerLocked()
	return nil
}

// Stop cancels the timer and waits for its goroutine to exit. Subscriber
// channels are closed. Stop is idempotent and safe on a never-started session.
func (s *Session[T]) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	done := s.cancelTimerLocked()
	for id, ch := range s.subs {
		close(ch)
		delete(s.subs, id)
	}
	s.mu.Unlock()

	if done != nil {
		<-done
	}
}

// SetInterval changes the auto-advance interval. A running timer is
// cancelled and joined before its replacement starts.
func (s *Session[T]) SetInterval(d time.Duration) error {
	if d <= 0 {
		return ErrInvalidInterval
	}
	s.mu.Lock()
	if d == s.interval {
		s.mu.Unlock()
		return nil
	}
	s.interval = d
	done := s.cancelTimerLocked()
	s.mu.Unlock()

	if done != nil {
		<-done
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started && !s.stopped && s.done == nil {
		s.startTimerLocked()
	}
	return nil
}

// Interval returns the current auto-advance interval.
func (s *Session[T]) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

// Running reports whether a timer is live.
func (s *Session[T]) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done != nil
}

// Next advances one position.
func (s *Session[T]) Next() Snapshot[T] {
	return s.mutate(func(r *Rotator[T]) { r.Next() })
}

// Previous retreats one position.
func (s *Session[T]) Previous() Snapshot[T] {
	return s.mutate(func(r *Rotator[T]) { r.Previous() })
}

// JumpTo moves to position i. Callers must check i against Len first.
func (s *Session[T]) JumpTo(i int) Snapshot[T] {
	return s.mutate(func(r *Rotator[T]) { r.JumpTo(i) })
}

// Len returns the number of entries.
func (s *Session[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rot.Len()
}

// Snapshot returns the current index and visible window.
func (s *Session[T]) Snapshot() Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rot.Snapshot()
}

// Subscribe returns a channel that receives the latest snapshot after each
// change. Slow readers only ever see the most recent snapshot. The returned
// func unsubscribes; the channel is closed on unsubscribe or Stop.
func (s *Session[T]) Subscribe() (<-chan Snapshot[T], func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan Snapshot[T], 1)
	if s.stopped {
		close(ch)
		return ch, func() {}
	}
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if sub, ok := s.subs[id]; ok {
				close(sub)
				delete(s.subs, id)
			}
		})
	}
}

func (s *Session[T]) mutate(fn func(*Rotator[T])) Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.rot)
	snap := s.rot.Snapshot()
	s.publishLocked(snap)
	return snap
}

func (s *Session[T]) publishLocked(snap Snapshot[T]) {
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		ch <- snap
	}
}

func (s *Session[T]) startTimerLocked() {
	ctx, cancel := context.WithCancel(s.parent)
	ticker := s.clock.NewTicker(s.interval)
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done
	go s.run(ctx, ticker, done)
}

// cancelTimerLocked cancels the live timer and returns the channel that
// closes once its goroutine has exited, or nil when no timer is live.
func (s *Session[T]) cancelTimerLocked() chan struct{} {
	if s.cancel == nil {
		return nil
	}
	s.cancel()
	done := s.done
	s.cancel = nil
	s.done = nil
	return done
}

func (s *Session[T]) run(ctx context.Context, ticker Ticker, done chan struct{}) {
	defer close(done)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.releaseIfCurrent(done)
			return
		case <-ticker.C():
			s.tick(ctx)
		}
	}
}

// tick advances unless the timer was cancelled while waiting for the lock.
func (s *Session[T]) tick(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ctx.Err() != nil {
		return
	}
	s.rot.Next()
	s.publishLocked(s.rot.Snapshot())
}

// releaseIfCurrent clears the timer handle when the parent context ends
// without Stop, so Running reports false.
func (s *Session[T]) releaseIfCurrent(done chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done == done {
		s.cancel()
		s.cancel = nil
		s.done = nil
	}
}

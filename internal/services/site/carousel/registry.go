// Package carousel tracks the testimonial carousels rendered by home pages.
//
// Every home page render creates a view with its own rotator session. The
// view is mounted while the browser holds its event stream open: mounting
// starts the auto-advance timer and unmounting stops it and forgets the
// view. Views that are rendered but never mounted, for example by crawlers
// or clients without scripting, are swept after an idle TTL.
package carousel

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/louisbranch/voraglobal/internal/content"
	"github.com/louisbranch/voraglobal/internal/platform/timeouts"
	"github.com/louisbranch/voraglobal/internal/rotator"
	"go.uber.org/zap"
)

// DefaultMaxViews bounds live views when Config.MaxViews is zero.
const DefaultMaxViews = 1000

var (
	// ErrNotFound is returned for unknown or already unmounted views.
	ErrNotFound = errors.New("carousel view not found")
	// ErrCapacity is returned when the registry holds MaxViews views.
	ErrCapacity = errors.New("carousel view capacity reached")
	// ErrAlreadyMounted is returned when a second stream mounts a view.
	ErrAlreadyMounted = errors.New("carousel view already mounted")
	// ErrClosed is returned after Close.
	ErrClosed = errors.New("carousel registry closed")
)

// Session is the rotator session a view owns.
type Session = rotator.Session[content.Testimonial]

// Snapshot is one observed carousel state.
type Snapshot = rotator.Snapshot[content.Testimonial]

// Config tunes a Registry.
type Config struct {
	// Interval is the auto-advance interval for new sessions.
	Interval time.Duration
	// MaxViews bounds live views.
	MaxViews int
	// IdleTTL is how long an unmounted view survives.
	IdleTTL time.Duration
	// Clock drives session timers and the sweeper.
	Clock rotator.Clock
	// Now reports wall time for idle accounting.
	Now    func() time.Time
	Logger *zap.Logger
}

// View is one rendered carousel.
type View struct {
	id      string
	session *Session

	// guarded by Registry.mu
	mounted  bool
	lastSeen time.Time
}

// ID returns the view identifier embedded in the page.
func (v *View) ID() string { return v.id }

// Session returns the view's rotator session.
func (v *View) Session() *Session { return v.session }

// Registry owns every live view.
type Registry struct {
	mu       sync.Mutex
	views    map[string]*View
	interval time.Duration
	closed   bool

	maxViews int
	idleTTL  time.Duration
	clock    rotator.Clock
	now      func() time.Time
	logger   *zap.Logger
}

// New builds a Registry, filling zero Config fields with defaults.
func New(cfg Config) (*Registry, error) {
	if cfg.Interval == 0 {
		cfg.Interval = rotator.DefaultInterval
	}
	if cfg.Interval < 0 {
		return nil, rotator.ErrInvalidInterval
	}
	if cfg.MaxViews <= 0 {
		cfg.MaxViews = DefaultMaxViews
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = timeouts.CarouselIdle
	}
	if cfg.Clock == nil {
		cfg.Clock = rotator.SystemClock()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Registry{
		views:    map[string]*View{},
		interval: cfg.Interval,
		maxViews: cfg.MaxViews,
		idleTTL:  cfg.IdleTTL,
		clock:    cfg.Clock,
		now:      cfg.Now,
		logger:   cfg.Logger,
	}, nil
}

// Create registers a new unmounted view over items positioned at start.
// start must be within [0, len(items)).
func (r *Registry) Create(items []content.Testimonial, start int) (*View, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, ErrClosed
	}
	if len(r.views) >= r.maxViews {
		return nil, ErrCapacity
	}
	session, err := rotator.NewSession(items,
		rotator.WithInterval(r.interval),
		rotator.WithClock(r.clock),
	)
	if err != nil {
		return nil, fmt.Errorf("create carousel session: %w", err)
	}
	if start < 0 || start >= session.Len() {
		return nil, fmt.Errorf("carousel start %d out of range [0, %d)", start, session.Len())
	}
	if start != 0 {
		session.JumpTo(start)
	}
	view := &View{id: uuid.NewString(), session: session, lastSeen: r.now()}
	r.views[view.id] = view
	return view, nil
}

// Get returns a live view and refreshes its idle deadline.
func (r *Registry) Get(id string) (*View, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	view, ok := r.views[id]
	if !ok {
		return nil, ErrNotFound
	}
	view.lastSeen = r.now()
	return view, nil
}

// Mount starts the view's timer bound to ctx. A view mounts once; the
// caller must Unmount when its stream ends.
func (r *Registry) Mount(ctx context.Context, id string) (*View, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, ErrClosed
	}
	view, ok := r.views[id]
	if !ok {
		return nil, ErrNotFound
	}
	if view.mounted {
		return nil, ErrAlreadyMounted
	}
	if err := view.session.Start(ctx); err != nil {
		return nil, fmt.Errorf("start carousel session: %w", err)
	}
	view.mounted = true
	view.lastSeen = r.now()
	return view, nil
}

// Unmount stops the view's timer and forgets the view. Unknown ids are
// ignored.
func (r *Registry) Unmount(id string) {
	r.mu.Lock()
	view, ok := r.views[id]
	if ok {
		delete(r.views, id)
	}
	r.mu.Unlock()
	if ok {
		view.session.Stop()
	}
}

// Sweep evicts unmounted views idle past the TTL and reports how many
// were removed.
func (r *Registry) Sweep() int {
	now := r.now()
	r.mu.Lock()
	var expired []*View
	for id, view := range r.views {
		if view.mounted || now.Sub(view.lastSeen) < r.idleTTL {
			continue
		}
		expired = append(expired, view)
		delete(r.views, id)
	}
	r.mu.Unlock()
	for _, view := range expired {
		view.session.Stop()
	}
	return len(expired)
}

// Run sweeps idle views every half TTL until ctx is cancelled, then closes
// the registry.
func (r *Registry) Run(ctx context.Context) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	ticker := r.clock.NewTicker(r.idleTTL / 2)
	defer ticker.Stop()
	defer r.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C():
			if n := r.Sweep(); n > 0 {
				r.logger.Debug("carousel views swept", zap.Int("evicted", n), zap.Int("live", r.Len()))
			}
		}
	}
}

// SetInterval changes the interval of every live session and of sessions
// created afterwards.
func (r *Registry) SetInterval(d time.Duration) error {
	if d <= 0 {
		return rotator.ErrInvalidInterval
	}
	r.mu.Lock()
	r.interval = d
	sessions := make([]*Session, 0, len(r.views))
	for _, view := range r.views {
		sessions = append(sessions, view.session)
	}
	r.mu.Unlock()
	for _, session := range sessions {
		if err := session.SetInterval(d); err != nil {
			return err
		}
	}
	return nil
}

// Interval returns the interval applied to new sessions.
func (r *Registry) Interval() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.interval
}

// Len returns the number of live views.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}

// Close stops every session and rejects further views.
func (r *Registry) Close() {
	r.mu.Lock()
	r.closed = true
	views := r.views
	r.views = map[string]*View{}
	r.mu.Unlock()
	for _, view := range views {
		view.session.Stop()
	}
}

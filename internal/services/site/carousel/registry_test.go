package carousel

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/louisbranch/voraglobal/internal/content"
	"github.com/louisbranch/voraglobal/internal/rotator/rotatortest"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var testimonials = []content.Testimonial{
	{Name: "A", Quote: "a"},
	{Name: "B", Quote: "b"},
	{Name: "C", Quote: "c"},
}

type fakeNow struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeNow) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeNow) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func newRegistry(t *testing.T, cfg Config) *Registry {
	t.Helper()
	r, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(r.Close)
	return r
}

func TestCreateStartsAtRequestedIndex(t *testing.T) {
	t.Parallel()

	r := newRegistry(t, Config{Clock: rotatortest.NewClock()})
	view, err := r.Create(testimonials, 2)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	snap := view.Session().Snapshot()
	if snap.Index != 2 {
		t.Fatalf("Index = %d, want 2", snap.Index)
	}
	if snap.Window[1].Name != "A" {
		t.Fatalf("Window[1] = %q, want A", snap.Window[1].Name)
	}
	if got, err := r.Get(view.ID()); err != nil || got != view {
		t.Fatalf("Get() = (%v, %v), want created view", got, err)
	}
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	r := newRegistry(t, Config{Clock: rotatortest.NewClock()})
	if _, err := r.Create(nil, 0); err == nil {
		t.Fatal("expected error for empty testimonials")
	}
	if _, err := r.Create(testimonials, 3); err == nil {
		t.Fatal("expected error for out-of-range start")
	}
	if r.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", r.Len())
	}
}

func TestCreateRespectsCapacity(t *testing.T) {
	t.Parallel()

	r := newRegistry(t, Config{MaxViews: 1, Clock: rotatortest.NewClock()})
	if _, err := r.Create(testimonials, 0); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := r.Create(testimonials, 0); !errors.Is(err, ErrCapacity) {
		t.Fatalf("Create() error = %v, want %v", err, ErrCapacity)
	}
}

func TestMountStartsTimerAndUnmountStopsIt(t *testing.T) {
	t.Parallel()

	clock := rotatortest.NewClock()
	r := newRegistry(t, Config{Clock: clock})
	view, err := r.Create(testimonials, 0)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if clock.Live() != 0 {
		t.Fatalf("live timers before mount = %d, want 0", clock.Live())
	}

	if _, err := r.Mount(context.Background(), view.ID()); err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if _, err := r.Mount(context.Background(), view.ID()); !errors.Is(err, ErrAlreadyMounted) {
		t.Fatalf("second Mount() error = %v, want %v", err, ErrAlreadyMounted)
	}
	if clock.Live() != 1 {
		t.Fatalf("live timers after mount = %d, want 1", clock.Live())
	}

	updates, cancel := view.Session().Subscribe()
	defer cancel()
	if !clock.Fire() {
		t.Fatal("timer did not take the tick")
	}
	if snap := <-updates; snap.Index != 1 {
		t.Fatalf("Index after tick = %d, want 1", snap.Index)
	}

	r.Unmount(view.ID())
	if clock.Live() != 0 {
		t.Fatalf("live timers after unmount = %d, want 0", clock.Live())
	}
	if _, err := r.Get(view.ID()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get() after unmount error = %v, want %v", err, ErrNotFound)
	}
	r.Unmount(view.ID())
}

func TestMountUnknownView(t *testing.T) {
	t.Parallel()

	r := newRegistry(t, Config{Clock: rotatortest.NewClock()})
	if _, err := r.Mount(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Mount() error = %v, want %v", err, ErrNotFound)
	}
}

func TestSweepEvictsIdleUnmountedViews(t *testing.T) {
	t.Parallel()

	now := &fakeNow{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	r := newRegistry(t, Config{IdleTTL: time.Minute, Clock: rotatortest.NewClock(), Now: now.Now})
	idle, err := r.Create(testimonials, 0)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	mounted, err := r.Create(testimonials, 0)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := r.Mount(context.Background(), mounted.ID()); err != nil {
		t.Fatalf("Mount() error = %v", err)
	}

	now.Advance(30 * time.Second)
	if n := r.Sweep(); n != 0 {
		t.Fatalf("Sweep() before TTL = %d, want 0", n)
	}
	now.Advance(31 * time.Second)
	if n := r.Sweep(); n != 1 {
		t.Fatalf("Sweep() after TTL = %d, want 1", n)
	}
	if _, err := r.Get(idle.ID()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("idle view survived sweep: %v", err)
	}
	if _, err := r.Get(mounted.ID()); err != nil {
		t.Fatalf("mounted view was swept: %v", err)
	}
}

func TestGetRefreshesIdleDeadline(t *testing.T) {
	t.Parallel()

	now := &fakeNow{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	r := newRegistry(t, Config{IdleTTL: time.Minute, Clock: rotatortest.NewClock(), Now: now.Now})
	view, err := r.Create(testimonials, 0)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	now.Advance(50 * time.Second)
	if _, err := r.Get(view.ID()); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	now.Advance(50 * time.Second)
	if n := r.Sweep(); n != 0 {
		t.Fatalf("Sweep() = %d, want 0 after refresh", n)
	}
}

func TestSetIntervalPropagatesToLiveSessions(t *testing.T) {
	t.Parallel()

	clock := rotatortest.NewClock()
	r := newRegistry(t, Config{Interval: time.Second, Clock: clock})
	view, err := r.Create(testimonials, 0)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := r.Mount(context.Background(), view.ID()); err != nil {
		t.Fatalf("Mount() error = %v", err)
	}

	if err := r.SetInterval(3 * time.Second); err != nil {
		t.Fatalf("SetInterval() error = %v", err)
	}
	if got := view.Session().Interval(); got != 3*time.Second {
		t.Fatalf("session interval = %v, want 3s", got)
	}
	if got := clock.Latest().Interval(); got != 3*time.Second {
		t.Fatalf("live ticker interval = %v, want 3s", got)
	}
	if clock.Live() != 1 {
		t.Fatalf("live timers = %d, want 1", clock.Live())
	}

	later, err := r.Create(testimonials, 0)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got := later.Session().Interval(); got != 3*time.Second {
		t.Fatalf("new session interval = %v, want 3s", got)
	}
	if err := r.SetInterval(0); err == nil {
		t.Fatal("expected invalid interval error")
	}
}

func TestRunClosesRegistryOnCancel(t *testing.T) {
	t.Parallel()

	clock := rotatortest.NewClock()
	r := newRegistry(t, Config{Clock: clock})
	view, err := r.Create(testimonials, 0)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := r.Mount(context.Background(), view.ID()); err != nil {
		t.Fatalf("Mount() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if r.Len() != 0 {
		t.Fatalf("Len() after Run = %d, want 0", r.Len())
	}
	if clock.Live() != 0 {
		t.Fatalf("live tickers after Run = %d, want 0", clock.Live())
	}
	if _, err := r.Create(testimonials, 0); !errors.Is(err, ErrClosed) {
		t.Fatalf("Create() after close error = %v, want %v", err, ErrClosed)
	}
}

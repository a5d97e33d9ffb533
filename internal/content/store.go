package content

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const defaultReloadDebounce = 250 * time.Millisecond

// Store serves the current Site. Readers always see a complete, validated
// Site; a reload swaps the pointer and never edits a published value.
type Store struct {
	current  atomic.Pointer[Site]
	logger   *zap.Logger
	debounce time.Duration
}

// NewStore publishes initial as the current content.
func NewStore(initial *Site, logger *zap.Logger) (*Store, error) {
	if initial == nil {
		return nil, errors.New("initial content is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{logger: logger, debounce: defaultReloadDebounce}
	s.current.Store(initial)
	return s, nil
}

// Current returns the published content.
func (s *Store) Current() *Site {
	return s.current.Load()
}

// Watch reloads path whenever it changes until ctx is cancelled. The parent
// directory is watched because editors often replace files on save. A file
// that fails to load or validate is logged and the previous content stays
// published. onReload runs after each successful swap.
func (s *Store) Watch(ctx context.Context, path string, onReload func(*Site)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create content watcher: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve content path: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch content dir: %w", err)
	}

	debounce := time.NewTimer(time.Hour)
	debounce.Stop()
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			debounce.Reset(s.debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("content watcher error", zap.Error(err))
		case <-debounce.C:
			s.reload(abs, onReload)
		}
	}
}

func (s *Store) reload(path string, onReload func(*Site)) {
	site, err := LoadFile(path)
	if err != nil {
		s.logger.Warn("content reload rejected", zap.String("path", path), zap.Error(err))
		return
	}
	s.current.Store(site)
	s.logger.Info("content reloaded",
		zap.String("path", path),
		zap.Int("testimonials", len(site.Testimonials)),
		zap.Duration("interval", site.Carousel.Interval),
	)
	if onReload != nil {
		onReload(site)
	}
}

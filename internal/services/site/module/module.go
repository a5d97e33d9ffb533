// Package module defines the feature contract used by site composition.
package module

import (
	"net/http"
	"time"

	"github.com/louisbranch/voraglobal/internal/content"
	"github.com/louisbranch/voraglobal/internal/services/site/carousel"
	"go.uber.org/zap"
)

// Dependencies carries the shared services modules mount against.
type Dependencies struct {
	// Content returns the currently published site content.
	Content func() *content.Site
	// Carousels tracks live testimonial carousels.
	Carousels *carousel.Registry
	// AssetBaseURL prefixes relative image references.
	AssetBaseURL string
	// ContactDelay is the simulated submission latency.
	ContactDelay time.Duration
	// Now reports wall time; the footer year comes from it.
	Now    func() time.Time
	Logger *zap.Logger
}

// Site returns the current content or nil when none is wired.
func (d Dependencies) Site() *content.Site {
	if d.Content == nil {
		return nil
	}
	return d.Content()
}

// Clock returns Now or time.Now.
func (d Dependencies) Clock() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// Log returns Logger or a no-op logger.
func (d Dependencies) Log() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by site composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}

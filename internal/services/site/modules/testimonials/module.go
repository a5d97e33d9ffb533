// Package testimonials serves the live testimonial carousel: window
// fragments, manual navigation and the auto-advance event stream.
package testimonials

import (
	"net/http"

	module "github.com/louisbranch/voraglobal/internal/services/site/module"
	"github.com/louisbranch/voraglobal/internal/services/site/routepath"
)

// Module provides carousel routes.
type Module struct{}

// New returns a testimonials module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "testimonials" }

// Mount wires carousel route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.TestimonialsPrefix, Handler: mux}, nil
}

func registerRoutes(mux *http.ServeMux, h handlers) {
	mux.HandleFunc(http.MethodGet+" "+routepath.TestimonialPattern, h.handleWindow)
	mux.HandleFunc(http.MethodPost+" "+routepath.TestimonialNext, h.handleNext)
	mux.HandleFunc(http.MethodPost+" "+routepath.TestimonialPrevious, h.handlePrevious)
	mux.HandleFunc(http.MethodPost+" "+routepath.TestimonialJump, h.handleJump)
	mux.HandleFunc(http.MethodGet+" "+routepath.TestimonialEvents, h.handleEvents)
}

// Package pages serves the home, about and services pages plus the health
// check and the not-found fallback.
package pages

import (
	"net/http"

	module "github.com/louisbranch/voraglobal/internal/services/site/module"
	"github.com/louisbranch/voraglobal/internal/services/site/routepath"
)

// Module provides the static page routes.
type Module struct{}

// New returns a pages module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "pages" }

// Mount wires page route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.Home, Handler: mux}, nil
}

func registerRoutes(mux *http.ServeMux, h handlers) {
	mux.HandleFunc(http.MethodGet+" "+routepath.Home+"{$}", h.handleHome)
	mux.HandleFunc(http.MethodGet+" "+routepath.About, h.handleAbout)
	mux.HandleFunc(http.MethodGet+" "+routepath.Services, h.handleServices)
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	mux.HandleFunc("/{rest...}", h.handleNotFound)
}

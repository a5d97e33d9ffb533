// Package contact serves the contact page and its form submission.
package contact

import (
	"net/http"

	module "github.com/louisbranch/voraglobal/internal/services/site/module"
	"github.com/louisbranch/voraglobal/internal/services/site/routepath"
)

// Module provides contact routes.
type Module struct{}

// New returns a contact module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "contact" }

// Mount wires contact route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.Contact, Handler: mux}, nil
}

func registerRoutes(mux *http.ServeMux, h handlers) {
	mux.HandleFunc(http.MethodGet+" "+routepath.Contact, h.handleContact)
	mux.HandleFunc(http.MethodPost+" "+routepath.Contact, h.handleSubmit)
}

// Package modules lists the feature modules the site composes.
package modules

import (
	module "github.com/louisbranch/voraglobal/internal/services/site/module"
	"github.com/louisbranch/voraglobal/internal/services/site/modules/contact"
	"github.com/louisbranch/voraglobal/internal/services/site/modules/pages"
	"github.com/louisbranch/voraglobal/internal/services/site/modules/testimonials"
)

// DefaultModules returns the site's stable modules.
func DefaultModules() []module.Module {
	return []module.Module{
		pages.New(),
		testimonials.New(),
		contact.New(),
	}
}

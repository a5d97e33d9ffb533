package templates

import (
	"github.com/louisbranch/voraglobal/internal/platform/icons"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Icon references a symbol from the Lucide sprite embedded in Document.
func Icon(name string) g.Node {
	name = icons.NameOrDefault(name)
	return g.El("svg",
		Class("icon icon-"+name),
		Aria("hidden", "true"),
		g.El("use", g.Attr("href", "#"+icons.LucideSymbolID(name))),
	)
}

func iconSprite() g.Node {
	return g.Raw(icons.LucideSprite())
}

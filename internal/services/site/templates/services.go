package templates

import (
	"github.com/louisbranch/voraglobal/internal/content"
	sitei18n "github.com/louisbranch/voraglobal/internal/services/site/platform/i18n"
	"github.com/louisbranch/voraglobal/internal/services/site/routepath"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

var serviceHeroImages = []string{"service_hero_1", "service_hero_2", "service_hero_3", "service_hero_4"}

// ServicesPage renders the services page: hero image grid and feature cards.
func ServicesPage(loc sitei18n.Localizer, site *content.Site, assetBase string) g.Node {
	var grid []string
	for _, name := range serviceHeroImages {
		if ref := site.Image(name); ref != "" {
			grid = append(grid, ImageURL(assetBase, ref, heroWidth))
		}
	}
	return g.Group{
		Section(
			Class("hero services-hero"),
			Div(
				Class("hero-content"),
				H1(g.Text(loc.Sprintf("services.hero.title"))),
				P(g.Text(loc.Sprintf("services.hero.subtitle"))),
			),
			Div(Class("hero-grid"), g.Group(g.Map(grid, func(src string) g.Node {
				return Img(Src(src), Alt(""), g.Attr("loading", "lazy"))
			}))),
		),
		Section(
			Class("services-features"),
			H2(Class("section-title"), g.Text(loc.Sprintf("services.features.title"))),
			g.Group(g.Map(site.Features, func(f content.Feature) g.Node {
				return Article(
					ID(f.ID),
					Class("feature-card"),
					g.If(site.Image(f.Illustration) != "", Img(Src(AssetURL(assetBase, site.Image(f.Illustration))), Alt(f.Title), g.Attr("loading", "lazy"))),
					Div(
						H3(g.Text(f.Title)),
						P(g.Text(f.Description)),
						g.If(f.CTA != "", A(Class("btn btn-primary"), Href(routepath.Contact), g.Text(f.CTA))),
					),
				)
			})),
		),
	}
}

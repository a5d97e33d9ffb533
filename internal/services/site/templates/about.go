package templates

import (
	"github.com/louisbranch/voraglobal/internal/content"
	sitei18n "github.com/louisbranch/voraglobal/internal/services/site/platform/i18n"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// AboutPage renders the about page: hero, mission statement and pillars.
func AboutPage(loc sitei18n.Localizer, site *content.Site, assetBase string) g.Node {
	return g.Group{
		pageHero(loc.Sprintf("about.hero.title"), loc.Sprintf("about.hero.subtitle"), ImageURL(assetBase, site.Image("about_hero"), heroWidth)),
		Section(
			Class("about-mission"),
			g.If(site.Image("about_mission") != "", Img(Src(AssetURL(assetBase, site.Image("about_mission"))), Alt(""), g.Attr("loading", "lazy"))),
			Div(
				H2(Class("section-title"), g.Text(loc.Sprintf("about.mission.title"))),
				P(g.Text(loc.Sprintf("about.mission.body"))),
			),
		),
		Section(
			Class("about-pillars"),
			H2(Class("section-title"), g.Text(loc.Sprintf("about.pillars.title"))),
			Div(Class("pillar-grid"), g.Group(g.Map(site.Pillars, func(p content.Pillar) g.Node {
				return Article(
					Class("pillar"),
					Icon(p.Icon),
					H3(g.Text(p.Title)),
					P(g.Text(p.Text)),
				)
			}))),
		),
	}
}

func pageHero(title string, subtitle string, image string) g.Node {
	var background g.Node
	if image != "" {
		background = g.Attr("style", "background-image: url('"+image+"')")
	}
	return Section(
		Class("hero page-hero"),
		background,
		Div(
			Class("hero-content"),
			H1(g.Text(title)),
			P(g.Text(subtitle)),
		),
	)
}

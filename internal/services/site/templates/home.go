package templates

import (
	"github.com/louisbranch/voraglobal/internal/content"
	sitei18n "github.com/louisbranch/voraglobal/internal/services/site/platform/i18n"
	"github.com/louisbranch/voraglobal/internal/services/site/routepath"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// HomePage renders the landing page.
func HomePage(loc sitei18n.Localizer, site *content.Site, assetBase string, carousel TestimonialsView) g.Node {
	return g.Group{
		Section(
			Class("hero home-hero"),
			g.Attr("style", "background-image: url('"+ImageURL(assetBase, site.Image("hero_background"), heroWidth)+"')"),
			Div(
				Class("hero-content"),
				H1(g.Text(loc.Sprintf("home.hero.title"))),
				P(g.Text(loc.Sprintf("home.hero.subtitle"))),
				A(Class("btn btn-primary"), Href(routepath.Services), g.Text(loc.Sprintf("home.hero.cta"))),
			),
		),
		Section(
			Class("home-about"),
			H2(Class("section-title"), g.Text(loc.Sprintf("home.about.title"))),
			P(g.Text(loc.Sprintf("home.about.body"))),
		),
		Section(
			Class("home-services"),
			H2(Class("section-title"), g.Text(loc.Sprintf("home.services.title"))),
			Div(Class("flip-grid"), g.Group(g.Map(site.Services, serviceCard))),
		),
		Section(
			Class("home-process"),
			H2(Class("section-title"), g.Text(loc.Sprintf("home.process.title"))),
			Div(Class("process-steps"), g.Group(g.Map(site.Processes, func(p content.Process) g.Node {
				return Article(
					Class("process-step"),
					Span(Class("process-id"), g.Text(p.ID)),
					g.If(site.Image(p.Image) != "", Img(Src(AssetURL(assetBase, site.Image(p.Image))), Alt(p.Title), g.Attr("loading", "lazy"))),
					H3(g.Text(p.Title)),
					P(g.Text(p.Description)),
				)
			}))),
		),
		TestimonialsSection(loc, carousel),
		callToAction(loc, site, assetBase),
	}
}

func serviceCard(s content.Service) g.Node {
	return Div(
		Class("flip-card"),
		g.Attr("tabindex", "0"),
		Div(
			Class("flip-card-inner"),
			Div(
				Class("flip-card-front"),
				Icon(s.Icon),
				H3(g.Text(s.Title)),
				Ul(g.Group(g.Map(s.Items, func(item string) g.Node { return Li(g.Text(item)) }))),
			),
			Div(
				Class("flip-card-back"),
				H3(g.Text(s.Title)),
				Ul(g.Group(g.Map(s.BackItems, func(item string) g.Node { return Li(g.Text(item)) }))),
			),
		),
	)
}

func callToAction(loc sitei18n.Localizer, site *content.Site, assetBase string) g.Node {
	link := site.WhatsAppURL()
	return Section(
		Class("cta"),
		g.If(site.Image("call_to_action") != "", Img(Class("cta-image"), Src(AssetURL(assetBase, site.Image("call_to_action"))), Alt(""), g.Attr("loading", "lazy"))),
		Div(
			Class("cta-content"),
			H2(g.Text(loc.Sprintf("home.cta.title"))),
			P(g.Text(loc.Sprintf("home.cta.body"))),
			g.If(link != "", A(Class("btn btn-whatsapp"), Href(link), Target("_blank"), Rel("noopener"), g.Text(loc.Sprintf("home.cta.whatsapp")))),
		),
	)
}

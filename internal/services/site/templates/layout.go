package templates

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/voraglobal/internal/content"
	sitei18n "github.com/louisbranch/voraglobal/internal/services/site/platform/i18n"
	"github.com/louisbranch/voraglobal/internal/services/site/routepath"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	htmxScript    = "https://unpkg.com/htmx.org@2.0.4"
	htmxSSEScript = "https://unpkg.com/htmx-ext-sse@2.2.2/sse.js"
)

// Chrome carries the page-independent inputs of the document shell.
type Chrome struct {
	Title        string
	Lang         language.Tag
	Loc          sitei18n.Localizer
	Site         *content.Site
	AssetBaseURL string
	Path         string
	RawQuery     string
	Year         int
}

// PageTitle joins a page title with the brand name.
func PageTitle(loc sitei18n.Localizer, site *content.Site, title string) string {
	brand := brandName(site)
	if title == "" {
		return brand
	}
	return loc.Sprintf("core.title.suffix", title, brand)
}

// Document renders a full HTML document around page.
func Document(ctx context.Context, chrome Chrome, page templ.Component) g.Node {
	return Doctype(
		HTML(
			Lang(chrome.Lang.String()),
			g.Attr("dir", sitei18n.Direction(chrome.Lang)),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(PageTitle(chrome.Loc, chrome.Site, chrome.Title))),
				Link(Rel("stylesheet"), Href(routepath.StaticPrefix+"site.css")),
				Script(Src(htmxScript), g.Attr("defer")),
				Script(Src(htmxSSEScript), g.Attr("defer")),
				Script(Src(routepath.StaticPrefix+"site.js"), g.Attr("defer")),
			),
			Body(
				iconSprite(),
				SiteNavbar(chrome),
				Main(ID("main"), embed(ctx, page)),
				SiteFooter(chrome),
			),
		),
	)
}

// MainContent renders the swap payload for HTMX navigation: the page
// fragment plus a title element htmx applies to the document.
func MainContent(ctx context.Context, chrome Chrome, page templ.Component) g.Node {
	return g.Group{
		TitleEl(g.Text(PageTitle(chrome.Loc, chrome.Site, chrome.Title))),
		embed(ctx, page),
	}
}

type navLink struct {
	href string
	key  string
}

// SiteNavbar renders the primary navigation.
func SiteNavbar(chrome Chrome) g.Node {
	loc := chrome.Loc
	links := []navLink{
		{routepath.Home, "core.nav.home"},
		{routepath.About, "core.nav.about"},
		{routepath.Services, "core.nav.services"},
		{routepath.Contact, "core.nav.contact"},
	}
	alternate := sitei18n.AlternateTag(chrome.Lang)
	navLinks := g.Map(links, func(link navLink) g.Node {
		active := link.href == chrome.Path
		return Li(
			A(
				Href(link.href),
				g.Attr("hx-get", link.href),
				g.Attr("hx-target", "#main"),
				g.Attr("hx-push-url", "true"),
				classes("nav-link", active, "active"),
				g.If(active, Aria("current", "page")),
				g.Text(loc.Sprintf(link.key)),
			),
		)
	})
	return Nav(
		Class("navbar"),
		Aria("label", "Primary"),
		Div(
			Class("navbar-inner"),
			A(Href(routepath.Home), Class("navbar-logo"),
				Img(Src(AssetURL(chrome.AssetBaseURL, chrome.Site.Image("logo"))), Alt(brandName(chrome.Site))),
			),
			Button(
				Type("button"),
				Class("navbar-toggle"),
				Aria("controls", "navbar-menu"),
				Aria("expanded", "false"),
				Span(Class("sr-only"), g.Text(loc.Sprintf("core.nav.menu"))),
			),
			Ul(ID("navbar-menu"), Class("navbar-links"), g.Group(navLinks)),
			Div(
				Class("navbar-actions"),
				g.If(chrome.Site.WhatsAppURL() != "",
					A(Class("btn btn-primary"), Href(chrome.Site.WhatsAppURL()), Target("_blank"), Rel("noopener"),
						g.Text(loc.Sprintf("core.nav.consult")),
					),
				),
				A(
					Class("navbar-lang"),
					Href(sitei18n.LanguageURL(chrome.Path, chrome.RawQuery, alternate)),
					Lang(alternate.String()),
					g.Text(loc.Sprintf("core.nav.language")),
				),
			),
		),
	)
}

// SiteFooter renders the footer with quick links, social profiles and
// contact details.
func SiteFooter(chrome Chrome) g.Node {
	loc := chrome.Loc
	site := chrome.Site
	return Footer(
		Class("footer"),
		Div(
			Class("footer-grid"),
			Div(
				Img(Class("footer-logo"), Src(AssetURL(chrome.AssetBaseURL, site.Image("logo"))), Alt(brandName(site))),
				P(g.Text(loc.Sprintf("core.footer.tagline"))),
			),
			Div(
				H3(g.Text(loc.Sprintf("core.footer.quick_links"))),
				Ul(
					Li(A(Href(routepath.Home), g.Text(loc.Sprintf("core.nav.home")))),
					Li(A(Href(routepath.About), g.Text(loc.Sprintf("core.nav.about")))),
					Li(A(Href(routepath.Services), g.Text(loc.Sprintf("core.nav.services")))),
					Li(A(Href(routepath.Contact), g.Text(loc.Sprintf("core.nav.contact")))),
				),
			),
			Div(
				H3(g.Text(loc.Sprintf("core.footer.follow"))),
				socialLinks(site.Social),
			),
			Div(
				H3(g.Text(loc.Sprintf("core.footer.contact"))),
				g.If(site.Contact.Email != "", P(A(Href("mailto:"+site.Contact.Email), g.Text(site.Contact.Email)))),
				g.If(site.Contact.Phone != "", P(A(Href("tel:"+site.Contact.Phone), g.Text(site.Contact.Phone)))),
			),
		),
		P(Class("footer-rights"), g.Text(loc.Sprintf("core.footer.rights", strconv.Itoa(chrome.Year), brandName(site)))),
	)
}

func socialLinks(links []content.SocialLink) g.Node {
	if len(links) == 0 {
		return nil
	}
	return Ul(
		Class("social-links"),
		g.Group(g.Map(links, func(link content.SocialLink) g.Node {
			return Li(A(Href(link.Href), Aria("label", link.Label), Rel("noopener"), g.Text(link.Label)))
		})),
	)
}

func brandName(site *content.Site) string {
	if site == nil || site.Brand == "" {
		return "Vora Global"
	}
	return site.Brand
}

// classes renders base plus extra when cond holds.
func classes(base string, cond bool, extra string) g.Node {
	if cond {
		return Class(base + " " + extra)
	}
	return Class(base)
}

package templates

import (
	"strconv"

	"github.com/louisbranch/voraglobal/internal/content"
	sitei18n "github.com/louisbranch/voraglobal/internal/services/site/platform/i18n"
	"github.com/louisbranch/voraglobal/internal/services/site/routepath"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ContactFormElementID is the id of the swappable contact form.
const ContactFormElementID = "contact-form"

// FieldError is a localized validation message for one form field.
type FieldError struct {
	Key  string
	Args []any
}

// ContactFormView is the render state of the contact form.
type ContactFormView struct {
	Name       string
	Email      string
	Phone      string
	Subject    string
	Message    string
	MaxMessage int
	Errors     map[string]FieldError
	// Submitted replaces the form with the thank-you note.
	Submitted bool
}

// ContactPage renders the contact page: hero, form, social links and map.
func ContactPage(loc sitei18n.Localizer, site *content.Site, assetBase string, form ContactFormView) g.Node {
	return g.Group{
		pageHero(loc.Sprintf("contact.hero.title"), loc.Sprintf("contact.hero.subtitle"), ImageURL(assetBase, site.Image("contact_hero"), heroWidth)),
		Section(
			Class("contact-body"),
			Div(
				Class("contact-form-panel"),
				H2(g.Text(loc.Sprintf("contact.form.title"))),
				g.If(form.Submitted, ContactThanks(loc, form.Name)),
				g.If(!form.Submitted, ContactFormFragment(loc, form)),
			),
			Aside(
				Class("contact-aside"),
				g.If(site.Image("form_right") != "", Img(Src(AssetURL(assetBase, site.Image("form_right"))), Alt(""), g.Attr("loading", "lazy"))),
				H3(g.Text(loc.Sprintf("contact.social.title"))),
				socialLinks(site.Social),
				g.If(site.WhatsAppURL() != "", A(Class("btn btn-whatsapp"), Href(site.WhatsAppURL()), Target("_blank"), Rel("noopener"), g.Text(loc.Sprintf("home.cta.whatsapp")))),
			),
		),
		locationMap(loc, site.Contact.Map),
	}
}

// ContactFormFragment renders the form with submitted values and field
// errors. HTMX swaps the whole form with the server response.
func ContactFormFragment(loc sitei18n.Localizer, form ContactFormView) g.Node {
	return FormEl(
		ID(ContactFormElementID),
		Class("contact-form"),
		Action(routepath.Contact),
		Method("post"),
		g.Attr("hx-post", routepath.Contact),
		g.Attr("hx-target", "this"),
		g.Attr("hx-swap", "outerHTML"),
		g.Attr("hx-disabled-elt", "find button"),
		g.Attr("novalidate"),
		Div(
			Class("form-grid"),
			formInput(loc, form, "name", "text", form.Name, "contact.form.name", true),
			formInput(loc, form, "email", "email", form.Email, "contact.form.email", true),
			formInput(loc, form, "phone", "tel", form.Phone, "contact.form.phone", false),
			formInput(loc, form, "subject", "text", form.Subject, "contact.form.subject", false),
		),
		Div(
			classes("form-field", hasError(form, "message"), "invalid"),
			Label(For("message"), g.Text(loc.Sprintf("contact.form.message"))),
			Textarea(
				ID("message"),
				Name("message"),
				Rows("4"),
				g.If(form.MaxMessage > 0, g.Attr("maxlength", strconv.Itoa(form.MaxMessage))),
				g.Text(form.Message),
			),
			fieldError(loc, form, "message"),
		),
		Button(
			Type("submit"),
			Class("btn btn-primary"),
			Span(Class("label-idle"), g.Text(loc.Sprintf("contact.form.submit"))),
			Span(Class("label-busy"), g.Text(loc.Sprintf("contact.form.sending"))),
		),
	)
}

// ContactThanks replaces the form after a successful submission.
func ContactThanks(loc sitei18n.Localizer, name string) g.Node {
	return Div(
		ID(ContactFormElementID),
		Class("contact-thanks"),
		g.Attr("role", "status"),
		H3(g.Text(loc.Sprintf("contact.thanks.title", name))),
		P(g.Text(loc.Sprintf("contact.thanks.body"))),
	)
}

func formInput(loc sitei18n.Localizer, form ContactFormView, name string, kind string, value string, labelKey string, required bool) g.Node {
	return Div(
		classes("form-field", hasError(form, name), "invalid"),
		Label(For(name), g.Text(loc.Sprintf(labelKey))),
		Input(
			ID(name),
			Name(name),
			Type(kind),
			Value(value),
			Placeholder(loc.Sprintf(labelKey)),
			g.If(required, Required()),
		),
		fieldError(loc, form, name),
	)
}

func hasError(form ContactFormView, field string) bool {
	_, ok := form.Errors[field]
	return ok
}

func fieldError(loc sitei18n.Localizer, form ContactFormView, field string) g.Node {
	fe, ok := form.Errors[field]
	if !ok {
		return nil
	}
	return P(Class("field-error"), ID(field+"-error"), g.Text(loc.Sprintf(fe.Key, fe.Args...)))
}

func locationMap(loc sitei18n.Localizer, m content.Map) g.Node {
	if m.EmbedURL == "" {
		return nil
	}
	return Section(
		Class("map"),
		H2(Class("section-title"), g.Text(loc.Sprintf("contact.map.title"))),
		IFrame(
			Src(m.EmbedURL),
			Title(m.Title),
			g.Attr("loading", "lazy"),
			g.Attr("referrerpolicy", "no-referrer-when-downgrade"),
			g.Attr("allowfullscreen"),
		),
		g.If(len(m.Address) > 0, Address(g.Group(g.Map(m.Address, func(line string) g.Node {
			return Span(Class("address-line"), g.Text(line))
		})))),
	)
}

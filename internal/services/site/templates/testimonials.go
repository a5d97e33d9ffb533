package templates

import (
	"fmt"

	"github.com/louisbranch/voraglobal/internal/content"
	"github.com/louisbranch/voraglobal/internal/platform/icons"
	"github.com/louisbranch/voraglobal/internal/rotator"
	sitei18n "github.com/louisbranch/voraglobal/internal/services/site/platform/i18n"
	"github.com/louisbranch/voraglobal/internal/services/site/routepath"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// WindowElementID is the id of the swappable testimonial window.
const WindowElementID = "testimonial-window"

// TestimonialsView is the render state of one carousel. ViewID is empty
// when the page was rendered without a live carousel; controls then fall
// back to plain links. AssetBaseURL resolves relative avatar references.
type TestimonialsView struct {
	ViewID       string
	Index        int
	Len          int
	Window       [2]content.Testimonial
	AssetBaseURL string
}

// TestimonialsFromSnapshot builds the render state for a rotator snapshot.
func TestimonialsFromSnapshot(viewID string, snap rotator.Snapshot[content.Testimonial]) TestimonialsView {
	return TestimonialsView{ViewID: viewID, Index: snap.Index, Len: snap.Len, Window: snap.Window}
}

// TestimonialsSection renders the home page testimonials block. With a live
// view the window subscribes to the view's event stream.
func TestimonialsSection(loc sitei18n.Localizer, view TestimonialsView) g.Node {
	var stream g.Node
	if view.ViewID != "" {
		stream = g.Group{
			g.Attr("hx-ext", "sse"),
			g.Attr("sse-connect", routepath.TestimonialEventsFor(view.ViewID)),
			g.Attr("sse-swap", "window"),
			g.Attr("hx-swap", "innerHTML"),
		}
	}
	return Section(
		ID(routepath.TestimonialsAnchor),
		Class("testimonials"),
		H2(Class("section-title"), g.Text(loc.Sprintf("home.testimonials.title"))),
		Div(Class("testimonials-stream"), stream, TestimonialsWindow(loc, view)),
	)
}

// TestimonialsWindow renders the two visible testimonials, the previous and
// next controls and one selector per testimonial with the current one
// marked active.
func TestimonialsWindow(loc sitei18n.Localizer, view TestimonialsView) g.Node {
	n := view.Len
	if n <= 0 {
		return nil
	}
	prev := (view.Index - 1 + n) % n
	next := (view.Index + 1) % n
	selectors := make([]int, n)
	for i := range selectors {
		selectors[i] = i
	}
	return Div(
		ID(WindowElementID),
		Class("testimonial-window"),
		g.Attr("data-index", fmt.Sprint(view.Index)),
		Div(
			Class("testimonial-cards"),
			testimonialCard(view.Window[0], "primary", view.AssetBaseURL),
			testimonialCard(view.Window[1], "secondary", view.AssetBaseURL),
		),
		Div(
			Class("testimonial-controls"),
			navControl(view, routepath.TestimonialPreviousFor, prev, "prev", loc.Sprintf("home.testimonials.previous"), icons.ChevronLeft),
			Div(
				Class("testimonial-selectors"),
				g.Group(g.Map(selectors, func(i int) g.Node {
					active := i == view.Index
					return A(
						classes("selector", active, "active"),
						Href(routepath.HomeAtTestimonial(i)),
						Aria("label", loc.Sprintf("home.testimonials.select", i+1)),
						g.If(active, Aria("current", "true")),
						g.If(view.ViewID != "", g.Group{
							g.Attr("hx-post", routepath.TestimonialJumpFor(view.ViewID)),
							g.Attr("hx-vals", fmt.Sprintf(`{"%s": "%d"}`, routepath.TestimonialIndexField, i)),
							g.Attr("hx-target", "#"+WindowElementID),
							g.Attr("hx-swap", "outerHTML"),
						}),
					)
				})),
			),
			navControl(view, routepath.TestimonialNextFor, next, "next", loc.Sprintf("home.testimonials.next"), icons.ChevronRight),
		),
	)
}

func navControl(view TestimonialsView, route func(string) string, fallback int, class string, label string, icon string) g.Node {
	return A(
		Class("testimonial-nav "+class),
		Href(routepath.HomeAtTestimonial(fallback)),
		Aria("label", label),
		g.If(view.ViewID != "", g.Group{
			g.Attr("hx-post", route(view.ViewID)),
			g.Attr("hx-target", "#"+WindowElementID),
			g.Attr("hx-swap", "outerHTML"),
		}),
		Icon(icon),
	)
}

func testimonialCard(t content.Testimonial, slot string, assetBase string) g.Node {
	return Article(
		Class("testimonial-card "+slot),
		g.If(t.ImageURL != "", Img(Class("testimonial-avatar"), Src(AssetURL(assetBase, t.ImageURL)), Alt(t.Name), g.Attr("loading", "lazy"))),
		Icon(icons.Quote),
		BlockQuote(P(g.Text(t.Quote))),
		P(Class("testimonial-name"), Strong(g.Text(t.Name))),
		g.If(t.Role != "", P(Class("testimonial-role"), g.Text(t.Role))),
	)
}

package pages

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/louisbranch/voraglobal/internal/content"
	"github.com/louisbranch/voraglobal/internal/rotator"
	"github.com/louisbranch/voraglobal/internal/services/site/carousel"
	module "github.com/louisbranch/voraglobal/internal/services/site/module"
	"github.com/louisbranch/voraglobal/internal/services/site/platform/httpx"
	sitei18n "github.com/louisbranch/voraglobal/internal/services/site/platform/i18n"
	"github.com/louisbranch/voraglobal/internal/services/site/platform/weberror"
	"github.com/louisbranch/voraglobal/internal/services/site/routepath"
	"github.com/louisbranch/voraglobal/internal/services/site/templates"
	"go.uber.org/zap"
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	site := h.deps.Site()
	if site == nil {
		weberror.WriteAppError(w, r, http.StatusInternalServerError, h.deps)
		return
	}
	view, err := h.carouselView(site, startIndex(r, len(site.Testimonials)))
	if err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
		return
	}
	view.AssetBaseURL = h.deps.AssetBaseURL
	loc, lang := sitei18n.ResolveLocalizer(w, r)
	h.write(w, r, loc, lang, loc.Sprintf("home.title"),
		templates.HomePage(loc, site, h.deps.AssetBaseURL, view))
}

// carouselView registers a live carousel for this render. When the
// registry is full or absent the page renders a stateless carousel whose
// controls are plain links.
func (h handlers) carouselView(site *content.Site, start int) (templates.TestimonialsView, error) {
	if h.deps.Carousels != nil {
		view, err := h.deps.Carousels.Create(site.Testimonials, start)
		switch {
		case err == nil:
			return templates.TestimonialsFromSnapshot(view.ID(), view.Session().Snapshot()), nil
		case errors.Is(err, carousel.ErrCapacity), errors.Is(err, carousel.ErrClosed):
			h.deps.Log().Debug("carousel unavailable, rendering stateless", zap.Error(err))
		default:
			return templates.TestimonialsView{}, err
		}
	}
	rot, err := rotator.New(site.Testimonials)
	if err != nil {
		return templates.TestimonialsView{}, err
	}
	rot.JumpTo(start)
	return templates.TestimonialsFromSnapshot("", rot.Snapshot()), nil
}

// startIndex reads the fallback position from the query string. Anything
// missing, malformed or out of range starts at the first testimonial.
func startIndex(r *http.Request, n int) int {
	raw := strings.TrimSpace(r.URL.Query().Get(routepath.TestimonialQueryKey))
	if raw == "" {
		return 0
	}
	i, err := strconv.Atoi(raw)
	if err != nil || i < 0 || i >= n {
		return 0
	}
	return i
}

func (h handlers) handleAbout(w http.ResponseWriter, r *http.Request) {
	site := h.deps.Site()
	if site == nil {
		weberror.WriteAppError(w, r, http.StatusInternalServerError, h.deps)
		return
	}
	loc, lang := sitei18n.ResolveLocalizer(w, r)
	h.write(w, r, loc, lang, loc.Sprintf("about.title"),
		templates.AboutPage(loc, site, h.deps.AssetBaseURL))
}

func (h handlers) handleServices(w http.ResponseWriter, r *http.Request) {
	site := h.deps.Site()
	if site == nil {
		weberror.WriteAppError(w, r, http.StatusInternalServerError, h.deps)
		return
	}
	loc, lang := sitei18n.ResolveLocalizer(w, r)
	h.write(w, r, loc, lang, loc.Sprintf("services.title"),
		templates.ServicesPage(loc, site, h.deps.AssetBaseURL))
}

func (handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteText(w, http.StatusOK, "ok")
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}

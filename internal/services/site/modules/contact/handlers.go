package contact

import (
	"bytes"
	"net/http"
	"time"
	"unicode/utf8"

	module "github.com/louisbranch/voraglobal/internal/services/site/module"
	apperrors "github.com/louisbranch/voraglobal/internal/services/site/platform/errors"
	"github.com/louisbranch/voraglobal/internal/services/site/platform/httpx"
	sitei18n "github.com/louisbranch/voraglobal/internal/services/site/platform/i18n"
	"github.com/louisbranch/voraglobal/internal/services/site/platform/pagerender"
	"github.com/louisbranch/voraglobal/internal/services/site/platform/weberror"
	"github.com/louisbranch/voraglobal/internal/services/site/templates"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

func (h handlers) handleContact(w http.ResponseWriter, r *http.Request) {
	site := h.deps.Site()
	if site == nil {
		weberror.WriteAppError(w, r, http.StatusInternalServerError, h.deps)
		return
	}
	loc, lang := sitei18n.ResolveLocalizer(w, r)
	h.writePage(w, r, loc, lang, http.StatusOK,
		templates.ContactPage(loc, site, h.deps.AssetBaseURL, templates.ContactFormView{MaxMessage: MaxMessageRunes}))
}

// handleSubmit validates the form. HTMX callers get the swapped form or
// thank-you fragment; plain form posts get the whole page.
func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	site := h.deps.Site()
	if site == nil {
		weberror.WriteAppError(w, r, http.StatusInternalServerError, h.deps)
		return
	}
	sub, err := parseSubmission(r)
	if err != nil {
		weberror.WriteModuleError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "", err), h.deps)
		return
	}
	loc, lang := sitei18n.ResolveLocalizer(w, r)
	if errs := sub.validate(); len(errs) > 0 {
		form := sub.view(errs)
		if httpx.IsHTMXRequest(r) {
			h.writeFragment(w, http.StatusBadRequest, templates.ContactFormFragment(loc, form))
			return
		}
		h.writePage(w, r, loc, lang, http.StatusBadRequest, templates.ContactPage(loc, site, h.deps.AssetBaseURL, form))
		return
	}

	if !h.wait(r) {
		return
	}
	h.deps.Log().Info("contact request received",
		zap.String("subject", sub.Subject),
		zap.Int("message_runes", utf8.RuneCountInString(sub.Message)),
		zap.String("request_id", r.Header.Get(httpx.RequestIDHeader)),
	)

	if httpx.IsHTMXRequest(r) {
		h.writeFragment(w, http.StatusOK, templates.ContactThanks(loc, sub.Name))
		return
	}
	form := sub.view(nil)
	form.Submitted = true
	h.writePage(w, r, loc, lang, http.StatusOK, templates.ContactPage(loc, site, h.deps.AssetBaseURL, form))
}

// wait holds the submission for the configured delay. It reports false
// when the client went away first.
func (h handlers) wait(r *http.Request) bool {
	if h.deps.ContactDelay <= 0 {
		return true
	}
	timer := time.NewTimer(h.deps.ContactDelay)
	defer timer.Stop()
	select {
	case <-r.Context().Done():
		return false
	case <-timer.C:
		return true
	}
}

func (h handlers) writeFragment(w http.ResponseWriter, status int, node g.Node) {
	var buf bytes.Buffer
	if err := node.Render(&buf); err != nil {
		h.deps.Log().Warn("render contact fragment", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if err := httpx.WriteHTML(w, status, buf.String()); err != nil {
		h.deps.Log().Debug("write contact fragment", zap.Error(err))
	}
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, loc sitei18n.Localizer, lang language.Tag, status int, body g.Node) {
	err := pagerender.WriteLocalizedPage(w, r, h.deps, loc, lang, pagerender.ModulePage{
		Title:      loc.Sprintf("contact.title"),
		StatusCode: status,
		Fragment:   templates.Component(body),
	})
	if err != nil {
		h.deps.Log().Warn("render contact page", zap.Error(err))
	}
}

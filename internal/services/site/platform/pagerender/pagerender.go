// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	module "github.com/louisbranch/voraglobal/internal/services/site/module"
	"github.com/louisbranch/voraglobal/internal/services/site/platform/httpx"
	sitei18n "github.com/louisbranch/voraglobal/internal/services/site/platform/i18n"
	"github.com/louisbranch/voraglobal/internal/services/site/templates"
	"golang.org/x/text/language"
)

// ModulePage describes a module page response for both full-page and HTMX
// flows.
type ModulePage struct {
	Title      string
	StatusCode int
	Fragment   templ.Component
}

// WriteModulePage writes a full document, or only the main content for HTMX
// requests.
func WriteModulePage(w http.ResponseWriter, r *http.Request, deps module.Dependencies, page ModulePage) error {
	if w == nil {
		return nil
	}
	loc, lang := sitei18n.ResolveLocalizer(w, r)
	return WriteLocalizedPage(w, r, deps, loc, lang, page)
}

// WriteLocalizedPage is WriteModulePage with an already resolved language,
// for handlers that localized their fragment.
func WriteLocalizedPage(w http.ResponseWriter, r *http.Request, deps module.Dependencies, loc sitei18n.Localizer, lang language.Tag, page ModulePage) error {
	if w == nil {
		return nil
	}
	site := deps.Site()
	if site == nil {
		return errors.New("site content is not configured")
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = templ.NopComponent
	}
	chrome := templates.Chrome{
		Title:        page.Title,
		Lang:         lang,
		Loc:          loc,
		Site:         site,
		AssetBaseURL: deps.AssetBaseURL,
		Year:         deps.Clock().Year(),
	}
	if r != nil {
		chrome.Path = r.URL.Path
		chrome.RawQuery = r.URL.RawQuery
	}

	ctx := httpx.RequestContext(r)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Add("Vary", "HX-Request")
	w.WriteHeader(statusCode)
	if httpx.IsHTMXRequest(r) {
		return templates.MainContent(ctx, chrome, fragment).Render(w)
	}
	return templates.Document(ctx, chrome, fragment).Render(w)
}

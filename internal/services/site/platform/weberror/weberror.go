// Package weberror renders shared error responses for site modules.
package weberror

import (
	"net/http"
	"strings"

	module "github.com/louisbranch/voraglobal/internal/services/site/module"
	apperrors "github.com/louisbranch/voraglobal/internal/services/site/platform/errors"
	"github.com/louisbranch/voraglobal/internal/services/site/platform/httpx"
	sitei18n "github.com/louisbranch/voraglobal/internal/services/site/platform/i18n"
	"github.com/louisbranch/voraglobal/internal/services/site/platform/pagerender"
	"github.com/louisbranch/voraglobal/internal/services/site/templates"
	"go.uber.org/zap"
)

// ShouldRenderAppError reports whether status should use the error page.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc sitei18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	return http.StatusText(statusCode)
}

// WriteAppError writes a localized error page for full-page and HTMX
// requests.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, deps module.Dependencies) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	loc, lang := sitei18n.ResolveLocalizer(w, r)
	if deps.Site() == nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
		return
	}
	err := pagerender.WriteLocalizedPage(w, r, deps, loc, lang, pagerender.ModulePage{
		Title:      templates.ErrorPageTitle(loc, statusCode),
		StatusCode: statusCode,
		Fragment:   templates.Component(templates.ErrorState(loc, statusCode)),
	})
	if err != nil {
		deps.Log().Warn("render error page", zap.Int("status", statusCode), zap.Error(err))
	}
}

// WriteModuleError writes a module-safe localized error response. Not found
// and server failures get the error page; client errors get a short text
// body so HTMX callers can surface it.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode >= http.StatusInternalServerError {
		deps.Log().Error("request failed",
			zap.String("path", r.URL.Path),
			zap.String("request_id", r.Header.Get(httpx.RequestIDHeader)),
			zap.Error(err),
		)
	}
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, deps)
		return
	}
	loc, _ := sitei18n.ResolveLocalizer(w, r)
	http.Error(w, PublicMessage(loc, err), statusCode)
}

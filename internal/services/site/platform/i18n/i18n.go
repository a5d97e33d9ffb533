// Package i18n resolves the request language and its message printer.
package i18n

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/louisbranch/voraglobal/internal/platform/i18n"
	"github.com/louisbranch/voraglobal/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "vora_lang"
)

// Localizer formats catalog messages. *message.Printer satisfies it.
type Localizer interface {
	Sprintf(key message.Reference, a ...any) string
}

// ResolveTag determines the best language for the request. The bool reports
// whether the choice came from the query string and should be persisted.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return i18n.DefaultTag(), false
	}
	if value := strings.TrimSpace(r.URL.Query().Get(LangParam)); value != "" {
		if tag, ok := i18n.ParseTag(value); ok {
			return tag, true
		}
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := i18n.ParseTag(cookie.Value); ok {
			return tag, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return i18n.MatchTags(tags), false
		}
	}
	return i18n.DefaultTag(), false
}

// Printer returns a message printer backed by the embedded catalogs.
func Printer(tag language.Tag) *message.Printer {
	catalog.Default()
	return message.NewPrinter(tag)
}

// ResolveLocalizer resolves the request language, persisting an explicit
// choice as a cookie, and returns its printer.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request) (Localizer, language.Tag) {
	tag, persist := ResolveTag(r)
	if persist && w != nil {
		http.SetCookie(w, &http.Cookie{
			Name:     LangCookieName,
			Value:    tag.String(),
			Path:     "/",
			MaxAge:   int((365 * 24 * time.Hour).Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return Printer(tag), tag
}

// AlternateTag returns the supported language other than tag, used by the
// navbar language toggle.
func AlternateTag(tag language.Tag) language.Tag {
	for _, candidate := range i18n.SupportedTags() {
		if candidate != tag {
			return candidate
		}
	}
	return i18n.DefaultTag()
}

// LanguageURL returns path with the language parameter set to tag.
func LanguageURL(path string, rawQuery string, tag language.Tag) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "/"
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set(LangParam, tag.String())
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}

// Direction returns the HTML dir attribute for tag.
func Direction(tag language.Tag) string {
	if i18n.IsRTL(tag) {
		return "rtl"
	}
	return "ltr"
}

package templates

import (
	"net/http"
	"strconv"

	sitei18n "github.com/louisbranch/voraglobal/internal/services/site/platform/i18n"
	"github.com/louisbranch/voraglobal/internal/services/site/routepath"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ErrorPageTitle returns the localized title for an error status.
func ErrorPageTitle(loc sitei18n.Localizer, status int) string {
	if status == http.StatusNotFound {
		return loc.Sprintf("errors.not_found.title")
	}
	return loc.Sprintf("errors.server.title")
}

// ErrorState renders the app error body for status.
func ErrorState(loc sitei18n.Localizer, status int) g.Node {
	messageKey := "errors.server.message"
	if status == http.StatusNotFound {
		messageKey = "errors.not_found.message"
	}
	return Section(
		Class("error-state"),
		P(Class("error-code"), g.Text(strconv.Itoa(status))),
		H1(g.Text(ErrorPageTitle(loc, status))),
		P(g.Text(loc.Sprintf(messageKey))),
		A(Class("btn btn-primary"), Href(routepath.Home), g.Text(loc.Sprintf("errors.back_home"))),
	)
}

package pages

import (
	"net/http"

	sitei18n "github.com/louisbranch/voraglobal/internal/services/site/platform/i18n"
	"github.com/louisbranch/voraglobal/internal/services/site/platform/pagerender"
	"github.com/louisbranch/voraglobal/internal/services/site/templates"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
)

func (h handlers) write(w http.ResponseWriter, r *http.Request, loc sitei18n.Localizer, lang language.Tag, title string, body g.Node) {
	err := pagerender.WriteLocalizedPage(w, r, h.deps, loc, lang, pagerender.ModulePage{
		Title:    title,
		Fragment: templates.Component(body),
	})
	if err != nil {
		h.deps.Log().Warn("render page", zap.String("path", r.URL.Path), zap.Error(err))
	}
}

package testimonials

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/louisbranch/voraglobal/internal/services/site/carousel"
	module "github.com/louisbranch/voraglobal/internal/services/site/module"
	apperrors "github.com/louisbranch/voraglobal/internal/services/site/platform/errors"
	"github.com/louisbranch/voraglobal/internal/services/site/platform/httpx"
	sitei18n "github.com/louisbranch/voraglobal/internal/services/site/platform/i18n"
	"github.com/louisbranch/voraglobal/internal/services/site/platform/weberror"
	"github.com/louisbranch/voraglobal/internal/services/site/routepath"
	"github.com/louisbranch/voraglobal/internal/services/site/templates"
	"go.uber.org/zap"
)

const (
	keyNotFound     = "errors.carousel.not_found"
	keyInvalidIndex = "errors.carousel.invalid_index"
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

func (h handlers) handleWindow(w http.ResponseWriter, r *http.Request) {
	view, ok := h.lookup(w, r)
	if !ok {
		return
	}
	h.writeWindow(w, r, view.ID(), view.Session().Snapshot())
}

func (h handlers) handleNext(w http.ResponseWriter, r *http.Request) {
	view, ok := h.lookup(w, r)
	if !ok {
		return
	}
	h.writeWindow(w, r, view.ID(), view.Session().Next())
}

func (h handlers) handlePrevious(w http.ResponseWriter, r *http.Request) {
	view, ok := h.lookup(w, r)
	if !ok {
		return
	}
	h.writeWindow(w, r, view.ID(), view.Session().Previous())
}

func (h handlers) handleJump(w http.ResponseWriter, r *http.Request) {
	view, ok := h.lookup(w, r)
	if !ok {
		return
	}
	index, err := parseIndex(r, view.Session().Len())
	if err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
		return
	}
	h.writeWindow(w, r, view.ID(), view.Session().JumpTo(index))
}

// parseIndex reads the jump target from the form. The rotator treats an
// out-of-range jump as a programming error, so the bounds check lives here.
func parseIndex(r *http.Request, n int) (int, error) {
	if err := r.ParseForm(); err != nil {
		return 0, apperrors.Wrap(apperrors.KindInvalidInput, keyInvalidIndex, err)
	}
	raw := strings.TrimSpace(r.PostForm.Get(routepath.TestimonialIndexField))
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.KindInvalidInput, keyInvalidIndex, err)
	}
	if index < 0 || index >= n {
		return 0, apperrors.EK(apperrors.KindInvalidInput, keyInvalidIndex,
			fmt.Sprintf("index %d out of range [0, %d)", index, n))
	}
	return index, nil
}

func (h handlers) lookup(w http.ResponseWriter, r *http.Request) (*carousel.View, bool) {
	if h.deps.Carousels == nil {
		weberror.WriteModuleError(w, r, apperrors.EK(apperrors.KindNotFound, keyNotFound, "carousel registry is not configured"), h.deps)
		return nil, false
	}
	view, err := h.deps.Carousels.Get(r.PathValue("viewID"))
	if err != nil {
		weberror.WriteModuleError(w, r, mapRegistryError(err), h.deps)
		return nil, false
	}
	return view, true
}

func mapRegistryError(err error) error {
	switch {
	case errors.Is(err, carousel.ErrNotFound):
		return apperrors.Wrap(apperrors.KindNotFound, keyNotFound, err)
	case errors.Is(err, carousel.ErrAlreadyMounted):
		return apperrors.Wrap(apperrors.KindConflict, "", err)
	case errors.Is(err, carousel.ErrClosed):
		return apperrors.Wrap(apperrors.KindUnavailable, "", err)
	default:
		return err
	}
}

func (h handlers) writeWindow(w http.ResponseWriter, r *http.Request, viewID string, snap carousel.Snapshot) {
	loc, _ := sitei18n.ResolveLocalizer(w, r)
	var buf bytes.Buffer
	view := templates.TestimonialsFromSnapshot(viewID, snap)
	view.AssetBaseURL = h.deps.AssetBaseURL
	if err := templates.TestimonialsWindow(loc, view).Render(&buf); err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	if err := httpx.WriteHTML(w, http.StatusOK, buf.String()); err != nil {
		h.deps.Log().Debug("write carousel window", zap.Error(err))
	}
}

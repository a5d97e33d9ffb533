package testimonials

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/voraglobal/internal/platform/timeouts"
	"github.com/louisbranch/voraglobal/internal/services/site/carousel"
	apperrors "github.com/louisbranch/voraglobal/internal/services/site/platform/errors"
	sitei18n "github.com/louisbranch/voraglobal/internal/services/site/platform/i18n"
	"github.com/louisbranch/voraglobal/internal/services/site/platform/weberror"
	"github.com/louisbranch/voraglobal/internal/services/site/templates"
	"go.uber.org/zap"
)

// windowEvent is the event name the page's sse-swap listens for.
const windowEvent = "window"

// handleEvents mounts the view for the lifetime of the request and streams
// a rendered window after every change. The first event carries the
// current state so a reconnecting client resynchronizes.
func (h handlers) handleEvents(w http.ResponseWriter, r *http.Request) {
	if h.deps.Carousels == nil {
		weberror.WriteModuleError(w, r, apperrors.EK(apperrors.KindNotFound, keyNotFound, "carousel registry is not configured"), h.deps)
		return
	}
	id := r.PathValue("viewID")
	ctx := r.Context()
	view, err := h.deps.Carousels.Mount(ctx, id)
	if err != nil {
		weberror.WriteModuleError(w, r, mapRegistryError(err), h.deps)
		return
	}
	defer h.deps.Carousels.Unmount(id)

	updates, unsubscribe := view.Session().Subscribe()
	defer unsubscribe()

	loc, _ := sitei18n.ResolveLocalizer(w, r)
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	rc := http.NewResponseController(w)
	send := func(snap carousel.Snapshot) error {
		var buf bytes.Buffer
		window := templates.TestimonialsFromSnapshot(id, snap)
		window.AssetBaseURL = h.deps.AssetBaseURL
		if err := templates.TestimonialsWindow(loc, window).Render(&buf); err != nil {
			return err
		}
		if err := writeEvent(w, windowEvent, buf.String()); err != nil {
			return err
		}
		return rc.Flush()
	}

	log := h.deps.Log().With(zap.String("view_id", id))
	log.Debug("carousel stream mounted")
	defer log.Debug("carousel stream unmounted")

	if err := send(view.Session().Snapshot()); err != nil {
		log.Debug("carousel stream write", zap.Error(err))
		return
	}

	heartbeat := time.NewTicker(timeouts.StreamHeartbeat)
	defer heartbeat.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case snap, ok := <-updates:
			if !ok {
				return
			}
			if err := send(snap); err != nil {
				log.Debug("carousel stream write", zap.Error(err))
				return
			}
		case <-heartbeat.C:
			if _, err := io.WriteString(w, ": keepalive\n\n"); err != nil {
				return
			}
			if err := rc.Flush(); err != nil {
				return
			}
		}
	}
}

// writeEvent writes one server-sent event. Multi-line payloads become one
// data field per line.
func writeEvent(w io.Writer, event string, data string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "event: %s\n", event)
	for _, line := range strings.Split(data, "\n") {
		fmt.Fprintf(&b, "data: %s\n", line)
	}
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// Package templates renders the site's pages and fragments.
//
// Markup is built with gomponents nodes; handlers and the page renderer
// exchange it as templ components.
package templates

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/voraglobal/internal/platform/assets/imagecdn"
	"github.com/louisbranch/voraglobal/internal/services/site/routepath"
	g "maragu.dev/gomponents"
)

// Component adapts a node to the templ component contract.
func Component(node g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if node == nil {
			return nil
		}
		return node.Render(w)
	})
}

// embed renders a templ component in place inside a node tree.
func embed(ctx context.Context, c templ.Component) g.Node {
	if c == nil {
		return nil
	}
	return g.NodeFunc(func(w io.Writer) error {
		return c.Render(ctx, w)
	})
}

// heroWidth is the delivery width requested for full-bleed backgrounds.
const heroWidth = 1920

// AssetURL resolves a content image reference against base. Absolute
// references are returned unchanged.
func AssetURL(base string, ref string) string {
	return ImageURL(base, ref, 0)
}

// ImageURL is AssetURL with a delivery width hint for CDNs that resize.
func ImageURL(base string, ref string, widthPX int) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if parsed, err := url.Parse(ref); err == nil && parsed.IsAbs() {
		return ref
	}
	if strings.TrimSpace(base) == "" {
		base = routepath.StaticPrefix + "images"
	}
	req := imagecdn.Request{AssetID: ref}
	if widthPX > 0 {
		req.Delivery = &imagecdn.Delivery{WidthPX: widthPX}
	}
	resolved, err := imagecdn.New(base).URL(req)
	if err != nil {
		return ""
	}
	return resolved
}

// Package imagecdn resolves site image references to delivery URLs.
//
// A flat CDN serves files as stored. A Cloudinary upload base additionally
// receives format, quality and width transforms in the path.
package imagecdn

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
)

// ErrAssetIDRequired is returned when a request names no asset.
var ErrAssetIDRequired = errors.New("asset id is required")

const cloudinaryHost = "res.cloudinary.com"

// Delivery describes how a client wants the asset sized.
type Delivery struct {
	WidthPX int
}

// Request identifies one asset. AssetID is the path below the CDN base and
// may already carry its extension.
type Request struct {
	AssetID   string
	Extension string
	Delivery  *Delivery
}

// CDN builds asset URLs below a base URL.
type CDN struct {
	base       string
	cloudinary bool
}

// New returns a CDN rooted at base.
func New(base string) CDN {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	cdn := CDN{base: base}
	if parsed, err := url.Parse(base); err == nil && parsed.Host == cloudinaryHost {
		cdn.cloudinary = true
	}
	return cdn
}

// URL resolves req to a delivery URL.
func (c CDN) URL(req Request) (string, error) {
	asset := strings.Trim(strings.TrimSpace(req.AssetID), "/")
	if asset == "" {
		return "", ErrAssetIDRequired
	}
	ext := strings.TrimSpace(req.Extension)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	parts := []string{c.base}
	if c.cloudinary {
		parts = append(parts, deliveryTransform(req.Delivery))
	}
	parts = append(parts, asset+ext)
	return strings.Join(parts, "/"), nil
}

func deliveryTransform(d *Delivery) string {
	transform := "f_auto,q_auto,dpr_auto"
	if d != nil && d.WidthPX > 0 {
		transform += ",c_limit,w_" + strconv.Itoa(d.WidthPX)
	}
	return transform
}

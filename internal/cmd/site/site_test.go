package site

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/voraglobal/internal/content"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("site", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	want := Config{
		HTTPAddr:         "localhost:8090",
		MaxCarouselViews: 1000,
		CarouselIdleTTL:  2 * time.Minute,
		ContactDelay:     2 * time.Second,
		LogLevel:         "info",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("ParseConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfigEnvAndFlags(t *testing.T) {
	t.Setenv("VORA_SITE_HTTP_ADDR", "0.0.0.0:9000")
	t.Setenv("VORA_SITE_ROTATION_INTERVAL", "3s")
	t.Setenv("VORA_SITE_CONTACT_DELAY", "0s")

	fs := flag.NewFlagSet("site", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-max-carousel-views", "5", "-content-file", "site.yaml"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "0.0.0.0:9000" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "0.0.0.0:9000")
	}
	if cfg.RotationInterval != 3*time.Second {
		t.Fatalf("RotationInterval = %v, want 3s", cfg.RotationInterval)
	}
	if cfg.ContactDelay != 0 {
		t.Fatalf("ContactDelay = %v, want 0", cfg.ContactDelay)
	}
	if cfg.MaxCarouselViews != 5 {
		t.Fatalf("MaxCarouselViews = %d, want 5", cfg.MaxCarouselViews)
	}
	if cfg.ContentFile != "site.yaml" {
		t.Fatalf("ContentFile = %q, want site.yaml", cfg.ContentFile)
	}
}

func TestParseConfigFlagOverridesEnv(t *testing.T) {
	t.Setenv("VORA_SITE_HTTP_ADDR", "0.0.0.0:9000")

	fs := flag.NewFlagSet("site", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "127.0.0.1:9100"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9100" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9100")
	}
}

func TestParseConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "negative interval", args: []string{"-rotation-interval", "-1s"}},
		{name: "zero views", args: []string{"-max-carousel-views", "0"}},
		{name: "zero idle ttl", args: []string{"-carousel-idle-ttl", "0s"}},
		{name: "empty addr", args: []string{"-http-addr", " "}},
		{name: "unknown flag", args: []string{"-nope"}},
	}
	for _, tc := range tests {
		fs := flag.NewFlagSet("site", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		if _, err := ParseConfig(fs, tc.args); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestParseConfigRejectsMalformedEnv(t *testing.T) {
	t.Setenv("VORA_SITE_CONTACT_DELAY", "soon")

	fs := flag.NewFlagSet("site", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected env parse error")
	}
}

func TestRotationIntervalPrefersOverride(t *testing.T) {
	t.Parallel()

	site := &content.Site{Carousel: content.Carousel{Interval: 5 * time.Second}}
	if got := rotationInterval(Config{}, site); got != 5*time.Second {
		t.Fatalf("rotationInterval() = %v, want 5s", got)
	}
	if got := rotationInterval(Config{RotationInterval: time.Second}, site); got != time.Second {
		t.Fatalf("rotationInterval() = %v, want 1s", got)
	}
}

func TestLoadContentFallsBackToEmbedded(t *testing.T) {
	t.Parallel()

	site, err := loadContent("")
	if err != nil {
		t.Fatalf("loadContent() error = %v", err)
	}
	if site.Brand != "Vora Global" {
		t.Fatalf("Brand = %q, want Vora Global", site.Brand)
	}
	if _, err := loadContent("/does/not/exist.yaml"); err == nil {
		t.Fatal("expected error for missing content file")
	}
}

package pagerender

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/voraglobal/internal/content"
	module "github.com/louisbranch/voraglobal/internal/services/site/module"
)

func testDeps(t *testing.T) module.Dependencies {
	t.Helper()
	site, err := content.LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded() error = %v", err)
	}
	return module.Dependencies{
		Content: func() *content.Site { return site },
		Now:     func() time.Time { return time.Date(2031, time.March, 1, 0, 0, 0, 0, time.UTC) },
	}
}

func TestWriteModulePageRendersHTMXFragmentWithStatus(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/about", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()

	err := WriteModulePage(rr, req, testDeps(t), ModulePage{
		Title:      "About",
		StatusCode: http.StatusCreated,
		Fragment:   textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusCreated)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `id="fragment-root"`) {
		t.Fatalf("body missing fragment marker: %q", body)
	}
	if !strings.Contains(body, "<title>About | Vora Global</title>") {
		t.Fatalf("body missing title element: %q", body)
	}
	if strings.Contains(strings.ToLower(body), "<!doctype html") || strings.Contains(strings.ToLower(body), "<html") {
		t.Fatalf("expected htmx fragment without full document wrapper")
	}
}

func TestWriteModulePageRendersFullDocument(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/about", nil)
	rr := httptest.NewRecorder()

	err := WriteModulePage(rr, req, testDeps(t), ModulePage{
		Title:    "About",
		Fragment: textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content-type = %q, want %q", got, "text/html; charset=utf-8")
	}
	if got := rr.Header().Get("Vary"); got != "HX-Request" {
		t.Fatalf("vary = %q, want HX-Request", got)
	}
	body := rr.Body.String()
	for _, marker := range []string{`id="main"`, `id="fragment-root"`, `lang="en-US"`, `dir="ltr"`, "2031", "htmx"} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q", marker)
		}
	}
}

func TestWriteModulePageUsesRightToLeftForArabic(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/about?lang=ar", nil)
	rr := httptest.NewRecorder()
	if err := WriteModulePage(rr, req, testDeps(t), ModulePage{Title: "x"}); err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `dir="rtl"`) || !strings.Contains(body, `lang="ar-AE"`) {
		t.Fatalf("expected arabic rtl document, got %q", body[:min(len(body), 300)])
	}
}

func TestWriteModulePageRequiresContent(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if err := WriteModulePage(httptest.NewRecorder(), req, module.Dependencies{}, ModulePage{}); err == nil {
		t.Fatal("expected error without site content")
	}
}

type textComponent string

func (c textComponent) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(c))
	return err
}

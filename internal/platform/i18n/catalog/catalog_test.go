package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	t.Parallel()

	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	if !bundle.HasLocale(BaseLocale) {
		t.Fatalf("expected base locale %s", BaseLocale)
	}
	if !bundle.HasLocale("ar-AE") {
		t.Fatal("expected locale ar-AE")
	}
	if got, ok := bundle.Message("en-US", "core.nav.home"); !ok || got != "Home" {
		t.Fatalf("Message(en-US, core.nav.home) = (%q, %v), want (Home, true)", got, ok)
	}
}

func TestEmbeddedLocalesAreComplete(t *testing.T) {
	t.Parallel()

	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	for _, locale := range bundle.Locales() {
		if missing := bundle.MissingKeys(locale); len(missing) > 0 {
			t.Fatalf("locale %s missing keys %v", locale, missing)
		}
	}
}

func TestMessageFallsBackToBaseLocale(t *testing.T) {
	t.Parallel()

	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	got, ok := bundle.Message("fr-FR", "errors.back_home")
	if !ok || got != "Back to Home" {
		t.Fatalf("Message(fr-FR) = (%q, %v), want base locale text", got, ok)
	}
	if _, ok := bundle.Message("en-US", "does.not.exist"); ok {
		t.Fatal("expected unknown key to miss")
	}
}

func TestDefaultRegistersWithPrinter(t *testing.T) {
	t.Parallel()

	_ = Default()
	p := message.NewPrinter(language.MustParse("ar"))
	if got := p.Sprintf("core.nav.home"); got != "الرئيسية" {
		t.Fatalf("ar printer = %q, want Arabic home label", got)
	}
	en := message.NewPrinter(language.MustParse("en-US"))
	if got := en.Sprintf("core.footer.rights", "2026", "Vora Global"); got != "© 2026 Vora Global. All rights reserved." {
		t.Fatalf("en printer = %q", got)
	}
}

func TestLoadFromFSRejectsCoreKeyOutsideCoreNamespace(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/site.yaml"), `locale: "en-US"
namespace: "site"
messages:
  "core.bad": "nope"
`)
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/core.yaml"), `locale: "en-US"
namespace: "core"
messages:
  "core.good": "ok"
`)

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadFromFSRejectsDuplicateKeysAcrossNamespaces(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/core.yaml"), `locale: "en-US"
namespace: "core"
messages:
  "a.key": "a"
`)
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/site.yaml"), `locale: "en-US"
namespace: "site"
messages:
  "a.key": "b"
`)

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected duplicate key error")
	}
}

func TestLoadFromFSRejectsMismatchedLocale(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/core.yaml"), `locale: "ar-AE"
namespace: "core"
messages:
  "core.x": "x"
`)

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected locale mismatch error")
	}
}

func TestLoadFromFSRequiresBaseLocale(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/ar-AE/core.yaml"), `locale: "ar-AE"
namespace: "core"
messages:
  "core.x": "x"
`)

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected missing base locale error")
	}
}

func mustWriteFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

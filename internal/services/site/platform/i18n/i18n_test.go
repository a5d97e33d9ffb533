package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTagPrecedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		target      string
		cookie      string
		accept      string
		want        string
		wantPersist bool
	}{
		{name: "default", target: "/", want: "en-US"},
		{name: "query wins", target: "/?lang=ar", cookie: "en-US", accept: "en", want: "ar-AE", wantPersist: true},
		{name: "unsupported query ignored", target: "/?lang=fr", accept: "ar", want: "ar-AE"},
		{name: "cookie before header", target: "/", cookie: "ar-AE", accept: "en-US", want: "ar-AE"},
		{name: "accept language", target: "/", accept: "de;q=0.9, ar-SA;q=0.8", want: "ar-AE"},
		{name: "bad accept language", target: "/", accept: ";;;", want: "en-US"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LangCookieName, Value: tc.cookie})
			}
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}
			tag, persist := ResolveTag(req)
			if tag.String() != tc.want || persist != tc.wantPersist {
				t.Fatalf("ResolveTag() = (%s, %v), want (%s, %v)", tag, persist, tc.want, tc.wantPersist)
			}
		})
	}
}

func TestResolveLocalizerPersistsQueryChoice(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	loc, tag := ResolveLocalizer(rr, httptest.NewRequest(http.MethodGet, "/?lang=ar-AE", nil))
	if tag.String() != "ar-AE" {
		t.Fatalf("tag = %s, want ar-AE", tag)
	}
	if got := loc.Sprintf("core.nav.contact"); got != "اتصل بنا" {
		t.Fatalf("contact label = %q, want Arabic", got)
	}
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != LangCookieName || cookies[0].Value != "ar-AE" {
		t.Fatalf("cookies = %v, want %s=ar-AE", cookies, LangCookieName)
	}

	rr = httptest.NewRecorder()
	ResolveLocalizer(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if len(rr.Result().Cookies()) != 0 {
		t.Fatal("expected no cookie without explicit choice")
	}
}

func TestLanguageURL(t *testing.T) {
	t.Parallel()

	got := LanguageURL("/", "testimonial=2", language.MustParse("ar-AE"))
	if got != "/?lang=ar-AE&testimonial=2" {
		t.Fatalf("LanguageURL() = %q", got)
	}
	if got := LanguageURL("", "", language.MustParse("en-US")); got != "/?lang=en-US" {
		t.Fatalf("LanguageURL(empty) = %q", got)
	}
}

func TestAlternateTagAndDirection(t *testing.T) {
	t.Parallel()

	en := language.MustParse("en-US")
	ar := language.MustParse("ar-AE")
	if AlternateTag(en) != ar || AlternateTag(ar) != en {
		t.Fatal("expected en-US and ar-AE to alternate")
	}
	if Direction(ar) != "rtl" || Direction(en) != "ltr" {
		t.Fatalf("Direction() = (%s, %s)", Direction(ar), Direction(en))
	}
}

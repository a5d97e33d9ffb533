package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestParseTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  string
		ok    bool
	}{
		{value: "en-US", want: "en-US", ok: true},
		{value: "ar-AE", want: "ar-AE", ok: true},
		{value: "ar", want: "ar-AE", ok: true},
		{value: " en ", want: "en-US", ok: true},
		{value: "fr-FR", want: "en-US", ok: false},
		{value: "not a tag", want: "en-US", ok: false},
		{value: "", want: "en-US", ok: false},
	}
	for _, tc := range tests {
		got, ok := ParseTag(tc.value)
		if ok != tc.ok || got.String() != tc.want {
			t.Fatalf("ParseTag(%q) = (%s, %v), want (%s, %v)", tc.value, got, ok, tc.want, tc.ok)
		}
	}
}

func TestMatchTags(t *testing.T) {
	t.Parallel()

	if got := MatchTags(nil); got != DefaultTag() {
		t.Fatalf("MatchTags(nil) = %s, want %s", got, DefaultTag())
	}
	got := MatchTags([]language.Tag{language.MustParse("de"), language.MustParse("ar-SA")})
	if got.String() != "ar-AE" {
		t.Fatalf("MatchTags(de, ar-SA) = %s, want ar-AE", got)
	}
}

func TestSupportedTagsReturnsCopy(t *testing.T) {
	t.Parallel()

	tags := SupportedTags()
	tags[0] = language.French
	if SupportedTags()[0] != DefaultTag() {
		t.Fatal("SupportedTags exposed internal slice")
	}
}

func TestIsRTL(t *testing.T) {
	t.Parallel()

	if !IsRTL(language.MustParse("ar-AE")) {
		t.Fatal("expected ar-AE to be right to left")
	}
	if IsRTL(DefaultTag()) {
		t.Fatal("expected en-US to be left to right")
	}
}

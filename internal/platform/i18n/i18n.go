// Package i18n defines the languages the site is translated into.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

var (
	defaultTag = language.MustParse("en-US")
	arabicTag  = language.MustParse("ar-AE")

	supportedTags = []language.Tag{defaultTag, arabicTag}
	matcher       = language.NewMatcher(supportedTags)
)

// DefaultTag returns the fallback language.
func DefaultTag() language.Tag {
	return defaultTag
}

// SupportedTags returns the supported languages in preference order.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// ParseTag parses value and reports whether it names a supported language.
// Regional variants resolve to the supported tag sharing their base.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return defaultTag, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return defaultTag, false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence < language.High {
		return defaultTag, false
	}
	return supportedTags[index], true
}

// MatchTags picks the best supported language for an ordered preference list.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return defaultTag
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return defaultTag
	}
	return supportedTags[index]
}

// IsRTL reports whether tag is written right to left.
func IsRTL(tag language.Tag) bool {
	base, _ := tag.Base()
	arabic, _ := arabicTag.Base()
	return base == arabic
}

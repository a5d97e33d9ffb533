package icons

import "strings"

const lucideSymbolPrefix = "lucide-"

var lucideSprite = buildSprite()

// LucideSymbolID returns the sprite symbol ID for a Lucide icon name.
func LucideSymbolID(name string) string {
	return lucideSymbolPrefix + NameOrDefault(name)
}

// LucideSprite returns the hidden SVG sprite holding every cataloged icon.
func LucideSprite() string {
	return lucideSprite
}

func buildSprite() string {
	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" style="display:none" aria-hidden="true">`)
	for _, def := range catalog {
		b.WriteString(`<symbol id="`)
		b.WriteString(lucideSymbolPrefix + def.Name)
		b.WriteString(`" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">`)
		b.WriteString(def.body)
		b.WriteString(`</symbol>`)
	}
	b.WriteString(`</svg>`)
	return b.String()
}

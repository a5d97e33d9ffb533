package icons

import (
	"slices"
	"strings"
)

// Lucide names used by the site content and chrome.
const (
	Sparkle       = "sparkle"
	TrendingUp    = "trending-up"
	Users         = "users"
	Zap           = "zap"
	Eye           = "eye"
	Target        = "target"
	CPU           = "cpu"
	Quote         = "quote"
	ChevronLeft   = "chevron-left"
	ChevronRight  = "chevron-right"
	MessageCircle = "message-circle"
	Mail          = "mail"
	Phone         = "phone"
	MapPin        = "map-pin"
)

// Definition describes a cataloged icon.
type Definition struct {
	Name        string
	Description string
	body        string
}

var catalog = []Definition{
	{
		Name:        Sparkle,
		Description: "Fallback for unknown icon names.",
		body:        `<path d="M9.937 15.5A2 2 0 0 0 8.5 14.063l-6.135-1.582a.5.5 0 0 1 0-.962L8.5 9.936A2 2 0 0 0 9.937 8.5l1.582-6.135a.5.5 0 0 1 .963 0L14.063 8.5A2 2 0 0 0 15.5 9.937l6.135 1.581a.5.5 0 0 1 0 .964L15.5 14.063a2 2 0 0 0-1.437 1.437l-1.582 6.135a.5.5 0 0 1-.963 0z"/>`,
	},
	{
		Name:        TrendingUp,
		Description: "Property investment service.",
		body:        `<polyline points="22 7 13.5 15.5 8.5 10.5 2 17"/><polyline points="16 7 22 7 22 13"/>`,
	},
	{
		Name:        Users,
		Description: "Lead generation service.",
		body:        `<path d="M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2"/><circle cx="9" cy="7" r="4"/><path d="M22 21v-2a4 4 0 0 0-3-3.87"/><path d="M16 3.13a4 4 0 0 1 0 7.75"/>`,
	},
	{
		Name:        Zap,
		Description: "Real estate solutions service.",
		body:        `<path d="M4 14a1 1 0 0 1-.78-1.63l9.9-10.2a.5.5 0 0 1 .86.46l-1.92 6.02A1 1 0 0 0 13 10h7a1 1 0 0 1 .78 1.63l-9.9 10.2a.5.5 0 0 1-.86-.46l1.92-6.02A1 1 0 0 0 11 14z"/>`,
	},
	{
		Name:        Eye,
		Description: "Transparency pillar.",
		body:        `<path d="M2.062 12.348a1 1 0 0 1 0-.696 10.75 10.75 0 0 1 19.876 0 1 1 0 0 1 0 .696 10.75 10.75 0 0 1-19.876 0"/><circle cx="12" cy="12" r="3"/>`,
	},
	{
		Name:        Target,
		Description: "Results pillar.",
		body:        `<circle cx="12" cy="12" r="10"/><circle cx="12" cy="12" r="6"/><circle cx="12" cy="12" r="2"/>`,
	},
	{
		Name:        CPU,
		Description: "Technology pillar.",
		body:        `<rect width="16" height="16" x="4" y="4" rx="2"/><rect width="6" height="6" x="9" y="9" rx="1"/><path d="M15 2v2"/><path d="M15 20v2"/><path d="M2 15h2"/><path d="M2 9h2"/><path d="M20 15h2"/><path d="M20 9h2"/><path d="M9 2v2"/><path d="M9 20v2"/>`,
	},
	{
		Name:        Quote,
		Description: "Testimonial card decoration.",
		body:        `<path d="M16 3a2 2 0 0 0-2 2v6a2 2 0 0 0 2 2 1 1 0 0 1 1 1v1a2 2 0 0 1-2 2 1 1 0 0 0-1 1v2a1 1 0 0 0 1 1 6 6 0 0 0 6-6V5a2 2 0 0 0-2-2z"/><path d="M5 3a2 2 0 0 0-2 2v6a2 2 0 0 0 2 2 1 1 0 0 1 1 1v1a2 2 0 0 1-2 2 1 1 0 0 0-1 1v2a1 1 0 0 0 1 1 6 6 0 0 0 6-6V5a2 2 0 0 0-2-2z"/>`,
	},
	{
		Name:        ChevronLeft,
		Description: "Previous testimonial control.",
		body:        `<path d="m15 18-6-6 6-6"/>`,
	},
	{
		Name:        ChevronRight,
		Description: "Next testimonial control.",
		body:        `<path d="m9 18 6-6-6-6"/>`,
	},
	{
		Name:        MessageCircle,
		Description: "WhatsApp consultation link.",
		body:        `<path d="M7.9 20A9 9 0 1 0 4 16.1L2 22Z"/>`,
	},
	{
		Name:        Mail,
		Description: "Contact email.",
		body:        `<rect width="20" height="16" x="2" y="4" rx="2"/><path d="m22 7-8.97 5.7a1.94 1.94 0 0 1-2.06 0L2 7"/>`,
	},
	{
		Name:        Phone,
		Description: "Contact phone.",
		body:        `<path d="M22 16.92v3a2 2 0 0 1-2.18 2 19.79 19.79 0 0 1-8.63-3.07 19.5 19.5 0 0 1-6-6 19.79 19.79 0 0 1-3.07-8.67A2 2 0 0 1 4.11 2h3a2 2 0 0 1 2 1.72 12.84 12.84 0 0 0 .7 2.81 2 2 0 0 1-.45 2.11L8.09 9.91a16 16 0 0 0 6 6l1.27-1.27a2 2 0 0 1 2.11-.45 12.84 12.84 0 0 0 2.81.7A2 2 0 0 1 22 16.92z"/>`,
	},
	{
		Name:        MapPin,
		Description: "Office address.",
		body:        `<path d="M20 10c0 4.993-5.539 10.193-7.399 11.799a1 1 0 0 1-1.202 0C9.539 20.193 4 14.993 4 10a8 8 0 0 1 16 0"/><circle cx="12" cy="10" r="3"/>`,
	},
}

// Catalog returns a copy of the icon catalog definitions.
func Catalog() []Definition {
	return slices.Clone(catalog)
}

// Known reports whether name is cataloged.
func Known(name string) bool {
	return slices.ContainsFunc(catalog, func(def Definition) bool { return def.Name == name })
}

// NameOrDefault provides a renderable name even when name is unknown.
func NameOrDefault(name string) string {
	name = strings.TrimSpace(name)
	if Known(name) {
		return name
	}
	return Sparkle
}

// CatalogMarkdown renders the icon catalog as markdown.
func CatalogMarkdown() string {
	var builder strings.Builder
	builder.WriteString("# Icon Catalog\n\n")
	builder.WriteString("| Lucide name | Description |\n")
	builder.WriteString("| --- | --- |\n")
	for _, def := range catalog {
		builder.WriteString("| ")
		builder.WriteString(def.Name)
		builder.WriteString(" | ")
		builder.WriteString(def.Description)
		builder.WriteString(" |\n")
	}
	return builder.String()
}

// Package content loads the static copy, imagery references and contact
// settings the site renders. Content is read once and never mutated; a
// reload produces a new Site value.
package content

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Validation errors returned by Site.Validate.
var (
	ErrNoTestimonials          = errors.New("at least one testimonial is required")
	ErrTestimonialMissingName  = errors.New("testimonial name is required")
	ErrTestimonialMissingQuote = errors.New("testimonial quote is required")
	ErrInvalidInterval         = errors.New("carousel.interval must be positive")
	ErrDuplicateServiceTitle   = errors.New("service titles must be unique")
	ErrDuplicateProcessID      = errors.New("process ids must be unique")
	ErrDuplicateFeatureID      = errors.New("feature ids must be unique")
	ErrInvalidWhatsAppNumber   = errors.New("contact.whatsapp.number must contain digits only")
)

// Testimonial is one client quote shown by the carousel.
type Testimonial struct {
	Name     string `yaml:"name"`
	Role     string `yaml:"role"`
	Quote    string `yaml:"quote"`
	ImageURL string `yaml:"image_url"`
}

// Service is a core-service flip card on the home page.
type Service struct {
	Title     string   `yaml:"title"`
	Icon      string   `yaml:"icon"`
	Items     []string `yaml:"items"`
	BackItems []string `yaml:"back_items"`
}

// Process is one numbered step of the work process.
type Process struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
}

// Pillar is one mission pillar on the about page.
type Pillar struct {
	Icon  string `yaml:"icon"`
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

// Feature is a premium-service card on the services page.
type Feature struct {
	ID           string `yaml:"id"`
	Title        string `yaml:"title"`
	Description  string `yaml:"description"`
	Illustration string `yaml:"illustration"`
	CTA          string `yaml:"cta"`
}

// SocialLink is a footer and contact-page social profile.
type SocialLink struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// WhatsApp configures the consultation deep link.
type WhatsApp struct {
	Number  string `yaml:"number"`
	Message string `yaml:"message"`
}

// Map configures the embedded location map.
type Map struct {
	Title    string   `yaml:"title"`
	EmbedURL string   `yaml:"embed_url"`
	Address  []string `yaml:"address"`
}

// Contact groups the ways a visitor can reach the brand.
type Contact struct {
	WhatsApp WhatsApp `yaml:"whatsapp"`
	Email    string   `yaml:"email"`
	Phone    string   `yaml:"phone"`
	Map      Map      `yaml:"map"`
}

// Carousel configures testimonial rotation.
type Carousel struct {
	Interval time.Duration `yaml:"interval"`
}

// Site is the complete content set.
type Site struct {
	Brand        string            `yaml:"brand"`
	Images       map[string]string `yaml:"images"`
	Carousel     Carousel          `yaml:"carousel"`
	Testimonials []Testimonial     `yaml:"testimonials"`
	Services     []Service         `yaml:"services"`
	Processes    []Process         `yaml:"processes"`
	Pillars      []Pillar          `yaml:"pillars"`
	Features     []Feature         `yaml:"features"`
	Social       []SocialLink      `yaml:"social"`
	Contact      Contact           `yaml:"contact"`
}

// Validate checks the invariants the pages and carousel depend on.
func (s *Site) Validate() error {
	if s == nil {
		return errors.New("site content is required")
	}
	if len(s.Testimonials) == 0 {
		return ErrNoTestimonials
	}
	for i, t := range s.Testimonials {
		if strings.TrimSpace(t.Name) == "" {
			return fmt.Errorf("testimonial %d: %w", i, ErrTestimonialMissingName)
		}
		if strings.TrimSpace(t.Quote) == "" {
			return fmt.Errorf("testimonial %d: %w", i, ErrTestimonialMissingQuote)
		}
	}
	if s.Carousel.Interval <= 0 {
		return ErrInvalidInterval
	}
	if err := unique(s.Services, func(v Service) string { return v.Title }, ErrDuplicateServiceTitle); err != nil {
		return err
	}
	if err := unique(s.Processes, func(v Process) string { return v.ID }, ErrDuplicateProcessID); err != nil {
		return err
	}
	if err := unique(s.Features, func(v Feature) string { return v.ID }, ErrDuplicateFeatureID); err != nil {
		return err
	}
	if number := s.Contact.WhatsApp.Number; number != "" && strings.Trim(number, "0123456789") != "" {
		return ErrInvalidWhatsAppNumber
	}
	return nil
}

func unique[T any](values []T, key func(T) string, sentinel error) error {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		k := strings.TrimSpace(key(v))
		if _, ok := seen[k]; ok {
			return fmt.Errorf("%w: %q", sentinel, k)
		}
		seen[k] = struct{}{}
	}
	return nil
}

// Image returns the named image reference, or "" when unknown.
func (s *Site) Image(name string) string {
	if s == nil {
		return ""
	}
	return s.Images[name]
}

// WhatsAppURL builds the wa.me deep link with the prefilled message.
func (s *Site) WhatsAppURL() string {
	if s == nil || s.Contact.WhatsApp.Number == "" {
		return ""
	}
	link := url.URL{Scheme: "https", Host: "wa.me", Path: "/" + s.Contact.WhatsApp.Number}
	if msg := strings.TrimSpace(s.Contact.WhatsApp.Message); msg != "" {
		link.RawQuery = url.Values{"text": {msg}}.Encode()
	}
	return link.String()
}

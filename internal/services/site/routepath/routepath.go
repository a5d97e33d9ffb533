// Package routepath stores canonical HTTP paths for site modules.
package routepath

import (
	"net/url"
	"strconv"
)

const (
	Home                  = "/"
	About                 = "/about"
	Services              = "/services"
	Contact               = "/contact-us"
	Health                = "/up"
	StaticPrefix          = "/static/"
	TestimonialsPrefix    = "/testimonials/"
	TestimonialPattern    = TestimonialsPrefix + "{viewID}"
	TestimonialNext       = TestimonialsPrefix + "{viewID}/next"
	TestimonialPrevious   = TestimonialsPrefix + "{viewID}/previous"
	TestimonialJump       = TestimonialsPrefix + "{viewID}/jump"
	TestimonialEvents     = TestimonialsPrefix + "{viewID}/events"
	TestimonialQueryKey   = "testimonial"
	TestimonialsAnchor    = "testimonials"
	TestimonialIndexField = "index"
)

// Testimonial returns the carousel window route for a view.
func Testimonial(viewID string) string {
	return TestimonialsPrefix + url.PathEscape(viewID)
}

// TestimonialNextFor returns the advance route for a view.
func TestimonialNextFor(viewID string) string {
	return Testimonial(viewID) + "/next"
}

// TestimonialPreviousFor returns the retreat route for a view.
func TestimonialPreviousFor(viewID string) string {
	return Testimonial(viewID) + "/previous"
}

// TestimonialJumpFor returns the jump route for a view.
func TestimonialJumpFor(viewID string) string {
	return Testimonial(viewID) + "/jump"
}

// TestimonialEventsFor returns the event stream route for a view.
func TestimonialEventsFor(viewID string) string {
	return Testimonial(viewID) + "/events"
}

// HomeAtTestimonial returns the home page positioned at testimonial index,
// used by clients without scripting.
func HomeAtTestimonial(index int) string {
	return Home + "?" + TestimonialQueryKey + "=" + strconv.Itoa(index) + "#" + TestimonialsAnchor
}

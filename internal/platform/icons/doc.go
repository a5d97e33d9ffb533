// Package icons defines the Lucide icons the site renders.
//
// Content refers to icons by their Lucide name. Pages embed the sprite once
// and reference each symbol by id, so unknown names fall back to a generic
// glyph instead of rendering nothing.
package icons

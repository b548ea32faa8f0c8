// Package typeface provides glyph providers: the per-character outlines,
// advances, bitmaps and metrics consumed by the text printer.
package typeface

import (
	"image/color"

	"github.com/gogpu/textpath/vertex"
)

// Style is the glyph provider contract. A Style is shared and owned by
// the caller; consumers keep a reference and query it on every layout.
//
// All distances are in pixels. Outlines are y-up with the pen at (0, 0)
// and the baseline on y = 0.
type Style interface {
	// EmSize returns the nominal line height.
	EmSize() float64

	// Ascent returns the distance from the baseline to the top of the
	// font (positive).
	Ascent() float64

	// Descent returns the distance from the baseline to the bottom of the
	// font (positive).
	Descent() float64

	// Advance returns the non-negative pen advance after text[i]. It may
	// consult text[i+1] for pair kerning; a following '\n' is never
	// kerned against.
	Advance(text []rune, i int) float64

	// Glyph returns the outline of r, or nil if r has no visible glyph.
	Glyph(r rune) vertex.Source

	// Bitmap returns r rasterized in color c, or nil if r has no visible
	// glyph.
	Bitmap(r rune, c color.Color) *Bitmap
}

// Config holds configuration shared by the font-backed providers.
type Config struct {
	// CacheSize bounds each per-face glyph cache (outlines, advances,
	// kerning pairs, bitmaps).
	// Default: 512
	CacheSize int

	// Tolerance is the curve flattening tolerance in pixels.
	// Default: vertex.DefaultTolerance
	Tolerance float64
}

// DefaultConfig returns the default provider configuration.
func DefaultConfig() Config {
	return Config{
		CacheSize: 512,
		Tolerance: vertex.DefaultTolerance,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.CacheSize <= 0 {
		c.CacheSize = d.CacheSize
	}
	if c.Tolerance <= 0 {
		c.Tolerance = d.Tolerance
	}
	return c
}

// kernable reports whether text[i] has a following character on the same
// line to kern against.
func kernable(text []rune, i int) bool {
	return i+1 < len(text) && text[i+1] != '\n'
}

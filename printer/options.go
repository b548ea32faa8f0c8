package printer

import "github.com/gogpu/textpath"

// Option configures a Printer during creation.
//
// Example:
//
//	p, err := printer.New("Hello", face,
//	    printer.WithOrigin(textpath.Pt(256, 5)),
//	    printer.WithJustification(printer.Center))
type Option func(*options)

// options holds optional configuration for Printer creation.
type options struct {
	origin        textpath.Point
	justification Justification
	baseline      Baseline
	drawFromCache bool
}

// defaultOptions returns the default printer options.
func defaultOptions() options {
	return options{
		justification: Left,
		baseline:      Text,
	}
}

// WithOrigin sets the point every glyph is positioned relative to.
func WithOrigin(p textpath.Point) Option {
	return func(o *options) {
		o.origin = p
	}
}

// WithJustification sets the horizontal alignment of each line.
func WithJustification(j Justification) Option {
	return func(o *options) {
		o.justification = j
	}
}

// WithBaseline sets the vertical reference of the text block.
func WithBaseline(b Baseline) Option {
	return func(o *options) {
		o.baseline = b
	}
}

// WithDrawFromCache makes Render blit pre-rasterized glyph bitmaps
// instead of handing the vector path to the renderer.
func WithDrawFromCache(enabled bool) Option {
	return func(o *options) {
		o.drawFromCache = enabled
	}
}

// Package printer lays out text with a glyph provider and exposes it as a
// path command stream, along with measurement, caret offsets and hit
// testing.
//
// Coordinates are y-up. The pen starts on the first line's baseline and
// moves down one em per newline; only '\n' separates lines.
//
// A Printer is not safe for concurrent use: its memoized size is updated
// on read.
package printer

import (
	"github.com/gogpu/textpath"
	"github.com/gogpu/textpath/typeface"
)

// Printer turns a string into positioned glyph outlines.
type Printer struct {
	text  string
	runes []rune
	style typeface.Style

	origin        textpath.Point
	justification Justification
	baseline      Baseline
	drawFromCache bool

	// size memoizes Size() for the current text and style.
	size      textpath.Size
	sizeValid bool
}

// New creates a printer for text using style. The default configuration
// is Left justification, Text baseline and origin (0, 0).
func New(text string, style typeface.Style, opts ...Option) (*Printer, error) {
	if style == nil {
		return nil, ErrNilStyle
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := &Printer{
		text:          text,
		runes:         []rune(text),
		style:         style,
		origin:        o.origin,
		justification: o.justification,
		baseline:      o.baseline,
		drawFromCache: o.drawFromCache,
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// NewFrom creates a printer for text that copies every other property
// (style, origin, justification, baseline, render policy) from other.
func NewFrom(text string, other *Printer) *Printer {
	return &Printer{
		text:          text,
		runes:         []rune(text),
		style:         other.style,
		origin:        other.origin,
		justification: other.justification,
		baseline:      other.baseline,
		drawFromCache: other.drawFromCache,
	}
}

// Text returns the printed text.
func (p *Printer) Text() string {
	return p.text
}

// SetText replaces the printed text.
func (p *Printer) SetText(text string) {
	if text == p.text {
		return
	}
	p.text = text
	p.runes = []rune(text)
	p.sizeValid = false
}

// Style returns the glyph provider.
func (p *Printer) Style() typeface.Style {
	return p.style
}

// SetStyle replaces the glyph provider. The memoized size is always
// discarded, so re-setting the same style after changing it externally
// forces a new measurement.
func (p *Printer) SetStyle(style typeface.Style) error {
	if style == nil {
		return ErrNilStyle
	}
	p.style = style
	p.sizeValid = false
	return nil
}

// Origin returns the point the text block is positioned relative to.
func (p *Printer) Origin() textpath.Point {
	return p.origin
}

// SetOrigin moves the text block.
func (p *Printer) SetOrigin(origin textpath.Point) {
	p.origin = origin
}

// Justification returns the line alignment.
func (p *Printer) Justification() Justification {
	return p.justification
}

// SetJustification changes the line alignment.
func (p *Printer) SetJustification(j Justification) error {
	if !j.Valid() {
		return &ConfigError{Setting: "justification", Value: int(j)}
	}
	p.justification = j
	return nil
}

// Baseline returns the vertical reference.
func (p *Printer) Baseline() Baseline {
	return p.baseline
}

// SetBaseline changes the vertical reference.
func (p *Printer) SetBaseline(b Baseline) error {
	if !b.Valid() {
		return &ConfigError{Setting: "baseline", Value: int(b)}
	}
	p.baseline = b
	return nil
}

// DrawFromCache reports whether Render blits cached glyph bitmaps.
func (p *Printer) DrawFromCache() bool {
	return p.drawFromCache
}

// SetDrawFromCache selects the render policy.
func (p *Printer) SetDrawFromCache(enabled bool) {
	p.drawFromCache = enabled
}

// validate checks that every switch in the printer has a rule for the
// current configuration.
func (p *Printer) validate() error {
	if _, err := p.justify(0); err != nil {
		return err
	}
	_, err := p.baselineY()
	return err
}

package printer

import (
	"image/color"

	"github.com/gogpu/textpath"
	"github.com/gogpu/textpath/typeface"
	"github.com/gogpu/textpath/vertex"
)

// Renderer draws what a Printer produces. raster.Canvas implements it.
type Renderer interface {
	// Render fills a path command stream with color c.
	Render(src vertex.Source, c color.Color)

	// RenderBitmap draws a pre-rasterized glyph with its pen at the
	// layout-space point at.
	RenderBitmap(b *typeface.Bitmap, at textpath.Point)
}

// Render draws the text with r. By default the printer itself is handed
// to r as a vector source; with DrawFromCache each glyph's cached bitmap
// is blitted at the same pen positions instead.
func (p *Printer) Render(r Renderer, c color.Color) error {
	if p.drawFromCache {
		return p.renderFromCache(r, c)
	}
	if err := p.validate(); err != nil {
		return err
	}
	r.Render(p, c)
	return nil
}

func (p *Printer) renderFromCache(r Renderer, c color.Color) error {
	pens, err := p.pens()
	if err != nil {
		return err
	}
	for ch, pen := range pens {
		b := p.style.Bitmap(ch, c)
		if b == nil {
			continue
		}
		r.RenderBitmap(b, pen.Add(p.origin))
	}
	return nil
}

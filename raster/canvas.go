// Package raster draws path command streams and glyph bitmaps into an
// in-memory RGBA image.
//
// Canvas implements printer.Renderer. Input coordinates are y-up with the
// origin at the bottom-left corner of the image; rows are flipped when
// drawing.
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/textpath"
	"github.com/gogpu/textpath/typeface"
	"github.com/gogpu/textpath/vertex"
)

// Canvas is an RGBA drawing surface.
type Canvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

// NewCanvas creates a transparent canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		z:   vector.NewRasterizer(width, height),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.img.Rect.Dx() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

// Image returns the backing image. Drawing continues to modify it.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// Render fills src with col using the nonzero winding rule and composites
// it over the canvas.
func (c *Canvas) Render(src vertex.Source, col color.Color) {
	w, h := c.Width(), c.Height()
	if w == 0 || h == 0 {
		return
	}
	c.z.Reset(w, h)
	c.z.DrawOp = draw.Over

	fh := float64(h)
	open := false
	for v := range src.Vertices() {
		x, y := float32(v.Point.X), float32(fh-v.Point.Y)
		switch v.Cmd {
		case vertex.MoveTo:
			if open {
				c.z.ClosePath()
			}
			c.z.MoveTo(x, y)
			open = true
		case vertex.LineTo:
			if open {
				c.z.LineTo(x, y)
			}
		case vertex.Close:
			if open {
				c.z.ClosePath()
				open = false
			}
		}
		if v.Cmd == vertex.Stop {
			break
		}
	}
	if open {
		c.z.ClosePath()
	}
	c.z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// RenderBitmap composites b with its pen at the y-up point at. The pen is
// rounded to the nearest pixel.
func (c *Canvas) RenderBitmap(b *typeface.Bitmap, at textpath.Point) {
	if b == nil || b.Image == nil {
		return
	}
	pen := image.Pt(int(math.Round(at.X)), c.Height()-int(math.Round(at.Y)))
	r := b.Image.Bounds().Add(pen).Add(b.Offset)
	draw.Draw(c.img, r, b.Image, b.Image.Bounds().Min, draw.Over)
}

// EncodePNG writes the canvas to w as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := c.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

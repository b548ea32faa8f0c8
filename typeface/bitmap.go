package typeface

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/textpath"
	"github.com/gogpu/textpath/internal/cache"
	"github.com/gogpu/textpath/vertex"
)

// Bitmap is a pre-rasterized glyph.
type Bitmap struct {
	// Image holds the colored glyph; its bounds start at (0, 0).
	Image *image.RGBA

	// Offset is the position of Image's top-left pixel relative to the
	// pen, in y-down pixel units (the x/image/font convention).
	Offset image.Point
}

// Rasterize renders an outline into a Bitmap filled with c using the
// nonzero winding rule. It returns nil for an outline with no area.
func Rasterize(src vertex.Source, c color.Color) *Bitmap {
	r, ok := vertex.Bounds(src)
	if !ok || r.Empty() {
		return nil
	}

	// Outline space is y-up; bitmap rows run downward.
	minX := int(math.Floor(r.MinX))
	maxX := int(math.Ceil(r.MaxX))
	top := int(math.Floor(-r.MaxY))
	bottom := int(math.Ceil(-r.MinY))
	w, h := maxX-minX, bottom-top
	if w <= 0 || h <= 0 {
		return nil
	}

	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Src
	toPixel := func(p textpath.Point) (float32, float32) {
		return float32(p.X - float64(minX)), float32(-p.Y - float64(top))
	}
	fillOutline(z, src, toPixel)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	z.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
	return &Bitmap{Image: img, Offset: image.Pt(minX, top)}
}

// fillOutline feeds src into z, closing every subpath explicitly since
// the rasterizer does not close on MoveTo.
func fillOutline(z *vector.Rasterizer, src vertex.Source, toPixel func(textpath.Point) (float32, float32)) {
	open := false
	for v := range src.Vertices() {
		switch v.Cmd {
		case vertex.MoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(toPixel(v.Point))
			open = true
		case vertex.LineTo:
			if open {
				z.LineTo(toPixel(v.Point))
			}
		case vertex.Close:
			if open {
				z.ClosePath()
				open = false
			}
		case vertex.Stop:
			if open {
				z.ClosePath()
			}
			return
		}
	}
}

// bitmapKey identifies a cached bitmap. Colors are normalized to RGBA64
// so any color.Color can key the cache.
type bitmapKey struct {
	r rune
	c color.RGBA64
}

// bitmapCache rasterizes glyphs on demand and keeps the results.
type bitmapCache struct {
	entries *cache.Cache[bitmapKey, *Bitmap]
}

func newBitmapCache(size int) *bitmapCache {
	return &bitmapCache{entries: cache.New[bitmapKey, *Bitmap](size)}
}

func (bc *bitmapCache) get(r rune, c color.Color, glyph func(rune) vertex.Source) *Bitmap {
	key := bitmapKey{r: r, c: color.RGBA64Model.Convert(c).(color.RGBA64)}
	return bc.entries.GetOrCreate(key, func() *Bitmap {
		textpath.Logger().Debug("typeface: rasterizing glyph", "rune", string(r))
		outline := glyph(r)
		if outline == nil {
			return nil
		}
		return Rasterize(outline, c)
	})
}

package typeface

import (
	"bytes"
	"image/color"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/textpath"
	"github.com/gogpu/textpath/internal/cache"
	"github.com/gogpu/textpath/vertex"
)

// GoTextFace is a Style backed by go-text/typesetting's font parser.
// It reads the same fonts as Face through an independent parser and
// applies no pair kerning: advances come from the hmtx table only.
//
// GoTextFace is safe for concurrent use.
type GoTextFace struct {
	size   float64
	scale  float64 // pixels per font unit
	config Config

	ascent  float64
	descent float64

	// mu guards face; gtfont.Face keeps internal caches and is not safe
	// for concurrent use.
	mu   sync.Mutex
	face *gtfont.Face

	outlines *cache.Cache[rune, *vertex.Storage]
	advances *cache.Cache[rune, float64]
	bitmaps  *bitmapCache
}

// ParseGoText parses font data with go-text/typesetting and returns a
// face at size pixels per em.
func ParseGoText(data []byte, size float64, cfg Config) (*GoTextFace, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, &ParseError{Parser: "go-text", Err: err}
	}

	cfg = cfg.withDefaults()
	f := &GoTextFace{
		size:     size,
		scale:    size / float64(face.Upem()),
		config:   cfg,
		face:     face,
		outlines: cache.New[rune, *vertex.Storage](cfg.CacheSize),
		advances: cache.New[rune, float64](cfg.CacheSize),
		bitmaps:  newBitmapCache(cfg.CacheSize),
	}
	if ext, ok := face.FontHExtents(); ok {
		f.ascent = float64(ext.Ascender) * f.scale
		f.descent = -float64(ext.Descender) * f.scale
	} else {
		f.ascent = 0.8 * size
		f.descent = 0.2 * size
	}

	textpath.Logger().Info("typeface: go-text face created", "size", size, "upem", face.Upem())
	return f, nil
}

// Size returns the face size in pixels per em.
func (f *GoTextFace) Size() float64 { return f.size }

// EmSize implements Style.
func (f *GoTextFace) EmSize() float64 { return f.size }

// Ascent implements Style.
func (f *GoTextFace) Ascent() float64 { return f.ascent }

// Descent implements Style.
func (f *GoTextFace) Descent() float64 { return f.descent }

// Advance implements Style.
func (f *GoTextFace) Advance(text []rune, i int) float64 {
	r := text[i]
	adv := f.advances.GetOrCreate(r, func() float64 {
		f.mu.Lock()
		defer f.mu.Unlock()

		gid, ok := f.face.NominalGlyph(r)
		if !ok {
			return 0
		}
		return float64(f.face.HorizontalAdvance(gid)) * f.scale
	})
	return max(adv, 0)
}

// Glyph implements Style.
func (f *GoTextFace) Glyph(r rune) vertex.Source {
	s := f.outlines.GetOrCreate(r, func() *vertex.Storage {
		return f.loadOutline(r)
	})
	if s == nil {
		return nil
	}
	return s
}

// Bitmap implements Style.
func (f *GoTextFace) Bitmap(r rune, c color.Color) *Bitmap {
	return f.bitmaps.get(r, c, f.Glyph)
}

// loadOutline converts the glyph outline of r (font units, y-up) into a
// Storage in pixels.
func (f *GoTextFace) loadOutline(r rune) *vertex.Storage {
	f.mu.Lock()
	defer f.mu.Unlock()

	textpath.Logger().Debug("typeface: loading go-text outline", "rune", string(r))
	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		return nil
	}
	outline, ok := f.face.GlyphData(gid).(gtfont.GlyphOutline)
	if !ok || len(outline.Segments) == 0 {
		return nil
	}

	pt := func(p gtfont.SegmentPoint) textpath.Point {
		return textpath.Pt(float64(p.X)*f.scale, float64(p.Y)*f.scale)
	}

	s := vertex.NewStorage(f.config.Tolerance)
	open := false
	for _, seg := range outline.Segments {
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			if open {
				s.Close()
			}
			p := pt(seg.Args[0])
			s.MoveTo(p.X, p.Y)
			open = true
		case ot.SegmentOpLineTo:
			p := pt(seg.Args[0])
			s.LineTo(p.X, p.Y)
		case ot.SegmentOpQuadTo:
			c, p := pt(seg.Args[0]), pt(seg.Args[1])
			s.QuadTo(c.X, c.Y, p.X, p.Y)
		case ot.SegmentOpCubeTo:
			c1, c2, p := pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2])
			s.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
		}
	}
	if open {
		s.Close()
	}
	return s
}

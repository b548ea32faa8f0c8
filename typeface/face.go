package typeface

import (
	"image/color"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/textpath"
	"github.com/gogpu/textpath/internal/cache"
	"github.com/gogpu/textpath/vertex"
)

// Face is a Style backed by a TrueType/OpenType font parsed with
// golang.org/x/image/font/sfnt. Pair kerning comes from the font's kern
// table.
//
// Face is safe for concurrent use.
type Face struct {
	font   *sfnt.Font
	size   float64
	ppem   fixed.Int26_6
	config Config

	ascent  float64
	descent float64

	// mu guards buf; sfnt.Buffer is not safe for concurrent use.
	mu  sync.Mutex
	buf sfnt.Buffer

	outlines *cache.Cache[rune, *vertex.Storage]
	advances *cache.Cache[rune, float64]
	kerns    *cache.Cache[[2]rune, float64]
	bitmaps  *bitmapCache
}

// Default returns a Face for the Go Regular font at size pixels per em.
func Default(size float64) (*Face, error) {
	return Parse(goregular.TTF, size)
}

// Parse parses font data and returns a Face at size pixels per em using
// the default configuration.
func Parse(data []byte, size float64) (*Face, error) {
	return NewFace(data, size, DefaultConfig())
}

// NewFace parses font data and returns a Face at size pixels per em.
func NewFace(data []byte, size float64, cfg Config) (*Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	parsed, err := sfnt.Parse(data)
	if err != nil {
		return nil, &ParseError{Parser: "sfnt", Err: err}
	}

	cfg = cfg.withDefaults()
	f := &Face{
		font:     parsed,
		size:     size,
		ppem:     fixed.Int26_6(size * 64),
		config:   cfg,
		outlines: cache.New[rune, *vertex.Storage](cfg.CacheSize),
		advances: cache.New[rune, float64](cfg.CacheSize),
		kerns:    cache.New[[2]rune, float64](cfg.CacheSize),
		bitmaps:  newBitmapCache(cfg.CacheSize),
	}

	m, err := parsed.Metrics(&f.buf, f.ppem, font.HintingNone)
	if err != nil {
		return nil, &ParseError{Parser: "sfnt", Err: err}
	}
	f.ascent = fixedToFloat(m.Ascent)
	f.descent = fixedToFloat(m.Descent)
	if f.descent < 0 {
		f.descent = -f.descent
	}

	name, _ := parsed.Name(&f.buf, sfnt.NameIDFull)
	textpath.Logger().Info("typeface: face created", "font", name, "size", size)
	return f, nil
}

// Size returns the face size in pixels per em.
func (f *Face) Size() float64 { return f.size }

// EmSize implements Style.
func (f *Face) EmSize() float64 { return f.size }

// Ascent implements Style.
func (f *Face) Ascent() float64 { return f.ascent }

// Descent implements Style.
func (f *Face) Descent() float64 { return f.descent }

// Advance implements Style.
func (f *Face) Advance(text []rune, i int) float64 {
	r := text[i]
	adv := f.advances.GetOrCreate(r, func() float64 {
		return f.loadAdvance(r)
	})
	if kernable(text, i) {
		pair := [2]rune{r, text[i+1]}
		adv += f.kerns.GetOrCreate(pair, func() float64 {
			return f.loadKern(pair)
		})
	}
	return max(adv, 0)
}

// Glyph implements Style.
func (f *Face) Glyph(r rune) vertex.Source {
	s := f.outlines.GetOrCreate(r, func() *vertex.Storage {
		return f.loadOutline(r)
	})
	if s == nil {
		return nil
	}
	return s
}

// Bitmap implements Style.
func (f *Face) Bitmap(r rune, c color.Color) *Bitmap {
	return f.bitmaps.get(r, c, f.Glyph)
}

// CacheStats returns statistics of the outline cache.
func (f *Face) CacheStats() cache.Stats {
	return f.outlines.Stats()
}

func (f *Face) glyphIndex(r rune) sfnt.GlyphIndex {
	idx, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0
	}
	return idx
}

func (f *Face) loadAdvance(r rune) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	adv, err := f.font.GlyphAdvance(&f.buf, f.glyphIndex(r), f.ppem, font.HintingNone)
	if err != nil {
		textpath.Logger().Warn("typeface: glyph advance", "rune", string(r), "err", err)
		return 0
	}
	return fixedToFloat(adv)
}

func (f *Face) loadKern(pair [2]rune) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	k, err := f.font.Kern(&f.buf, f.glyphIndex(pair[0]), f.glyphIndex(pair[1]), f.ppem, font.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat(k)
}

// loadOutline converts the sfnt segments of r into a y-up Storage.
// The segments alias f.buf, so they are consumed under the lock.
func (f *Face) loadOutline(r rune) *vertex.Storage {
	f.mu.Lock()
	defer f.mu.Unlock()

	textpath.Logger().Debug("typeface: loading outline", "rune", string(r))
	idx := f.glyphIndex(r)
	if idx == 0 {
		return nil
	}
	segments, err := f.font.LoadGlyph(&f.buf, idx, f.ppem, nil)
	if err != nil {
		textpath.Logger().Warn("typeface: load glyph", "rune", string(r), "err", err)
		return nil
	}
	if len(segments) == 0 {
		return nil
	}

	s := vertex.NewStorage(f.config.Tolerance)
	open := false
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				s.Close()
			}
			p := fixedToPoint(seg.Args[0])
			s.MoveTo(p.X, p.Y)
			open = true
		case sfnt.SegmentOpLineTo:
			p := fixedToPoint(seg.Args[0])
			s.LineTo(p.X, p.Y)
		case sfnt.SegmentOpQuadTo:
			c := fixedToPoint(seg.Args[0])
			p := fixedToPoint(seg.Args[1])
			s.QuadTo(c.X, c.Y, p.X, p.Y)
		case sfnt.SegmentOpCubeTo:
			c1 := fixedToPoint(seg.Args[0])
			c2 := fixedToPoint(seg.Args[1])
			p := fixedToPoint(seg.Args[2])
			s.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
		}
	}
	if open {
		s.Close()
	}
	return s
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

// fixedToPoint converts a y-down sfnt point to y-up layout space.
func fixedToPoint(p fixed.Point26_6) textpath.Point {
	return textpath.Pt(fixedToFloat(p.X), -fixedToFloat(p.Y))
}

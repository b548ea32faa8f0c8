package typeface

import (
	"image/color"
	"unicode"

	"github.com/gogpu/textpath/vertex"
)

// BoxFace is a synthetic fixed-pitch provider: every visible rune is an
// advance-wide box from the baseline to the ascent. It needs no font data,
// which makes layouts exactly predictable.
//
// BoxFace is safe for concurrent use once constructed; do not modify
// Kerning after it is shared.
type BoxFace struct {
	em      float64
	advance float64
	ascent  float64
	descent float64

	// Kerning adds a signed adjustment to the advance of the first rune
	// of each pair.
	Kerning map[[2]rune]float64

	bitmaps *bitmapCache
}

// NewBoxFace returns a face with the given advance and em height.
// Ascent is 0.8 em and descent 0.2 em.
func NewBoxFace(advance, em float64) *BoxFace {
	return NewBoxFaceWithMetrics(advance, em, 0.8*em, 0.2*em)
}

// NewBoxFaceWithMetrics returns a face with explicit metrics.
func NewBoxFaceWithMetrics(advance, em, ascent, descent float64) *BoxFace {
	return &BoxFace{
		em:      em,
		advance: advance,
		ascent:  ascent,
		descent: descent,
		bitmaps: newBitmapCache(DefaultConfig().CacheSize),
	}
}

// EmSize implements Style.
func (f *BoxFace) EmSize() float64 { return f.em }

// Ascent implements Style.
func (f *BoxFace) Ascent() float64 { return f.ascent }

// Descent implements Style.
func (f *BoxFace) Descent() float64 { return f.descent }

// Advance implements Style.
func (f *BoxFace) Advance(text []rune, i int) float64 {
	adv := f.advance
	if kernable(text, i) {
		adv += f.Kerning[[2]rune{text[i], text[i+1]}]
	}
	return max(adv, 0)
}

// Glyph implements Style.
func (f *BoxFace) Glyph(r rune) vertex.Source {
	if unicode.IsSpace(r) || !unicode.IsPrint(r) {
		return nil
	}
	s := vertex.NewStorage(0)
	s.MoveTo(0, 0)
	s.LineTo(f.advance, 0)
	s.LineTo(f.advance, f.ascent)
	s.LineTo(0, f.ascent)
	s.Close()
	return s
}

// Bitmap implements Style.
func (f *BoxFace) Bitmap(r rune, c color.Color) *Bitmap {
	return f.bitmaps.get(r, c, f.Glyph)
}

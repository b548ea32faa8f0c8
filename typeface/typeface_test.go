package typeface

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/textpath/vertex"
)

// testFace creates the Go Regular face at size 16.
func testFace(t *testing.T) *Face {
	t.Helper()
	f, err := Default(16)
	if err != nil {
		t.Fatalf("Default(16) failed: %v", err)
	}
	return f
}

func lastIsSingleStop(t *testing.T, src vertex.Source) {
	t.Helper()
	vs := vertex.Collect(src)
	stops := 0
	for _, v := range vs {
		if v.Cmd == vertex.Stop {
			stops++
		}
	}
	if stops != 1 || vs[len(vs)-1].Cmd != vertex.Stop {
		t.Errorf("stream has %d Stop commands (last %v), want exactly one at the end", stops, vs[len(vs)-1].Cmd)
	}
}

func TestBoxFace_Advance(t *testing.T) {
	f := NewBoxFace(10, 20)
	f.Kerning = map[[2]rune]float64{
		{'A', 'V'}: -3,
		{'A', 'W'}: -50,
	}

	tests := []struct {
		name string
		text string
		i    int
		want float64
	}{
		{"plain", "AB", 0, 10},
		{"last rune", "AB", 1, 10},
		{"kerned pair", "AV", 0, 7},
		{"clamped to zero", "AW", 0, 0},
		{"no kerning across newline", "A\nV", 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Advance([]rune(tt.text), tt.i); got != tt.want {
				t.Errorf("Advance(%q, %d) = %v, want %v", tt.text, tt.i, got, tt.want)
			}
		})
	}
}

func TestBoxFace_Metrics(t *testing.T) {
	f := NewBoxFace(10, 20)
	if f.EmSize() != 20 || f.Ascent() != 16 || f.Descent() != 4 {
		t.Errorf("metrics = %v/%v/%v, want 20/16/4", f.EmSize(), f.Ascent(), f.Descent())
	}
}

func TestBoxFace_Glyph(t *testing.T) {
	f := NewBoxFace(10, 20)
	if f.Glyph(' ') != nil {
		t.Error("Glyph(' ') should be nil")
	}
	if f.Glyph('\n') != nil {
		t.Error("Glyph('\\n') should be nil")
	}
	g := f.Glyph('A')
	if g == nil {
		t.Fatal("Glyph('A') is nil")
	}
	lastIsSingleStop(t, g)
	r, ok := vertex.Bounds(g)
	if !ok || r.MinX != 0 || r.MaxX != 10 || r.MinY != 0 || r.MaxY != 16 {
		t.Errorf("Bounds(Glyph('A')) = %+v, want [0,0]-[10,16]", r)
	}
}

func TestRasterize_Box(t *testing.T) {
	f := NewBoxFaceWithMetrics(10, 10, 8, 2)
	red := color.RGBA{R: 0xff, A: 0xff}

	b := Rasterize(f.Glyph('X'), red)
	if b == nil {
		t.Fatal("Rasterize returned nil")
	}
	if got := b.Image.Bounds(); got != image.Rect(0, 0, 10, 8) {
		t.Errorf("bitmap bounds = %v, want (0,0)-(10,8)", got)
	}
	if b.Offset != image.Pt(0, -8) {
		t.Errorf("bitmap offset = %v, want (0,-8)", b.Offset)
	}
	px := b.Image.RGBAAt(5, 4)
	if px.R < 0xf0 || px.A < 0xf0 || px.G != 0 {
		t.Errorf("interior pixel = %v, want opaque red", px)
	}
}

func TestRasterize_Empty(t *testing.T) {
	if b := Rasterize(vertex.NewStorage(0), color.Black); b != nil {
		t.Error("Rasterize of empty outline should be nil")
	}
}

func TestBitmapCache(t *testing.T) {
	f := NewBoxFace(10, 20)
	a := f.Bitmap('A', color.Black)
	b := f.Bitmap('A', color.Gray16{Y: 0})
	if a == nil || a != b {
		t.Error("equal colors should share one cached bitmap")
	}
	if c := f.Bitmap('A', color.White); c == a {
		t.Error("different colors must not share a bitmap")
	}
	if f.Bitmap(' ', color.Black) != nil {
		t.Error("Bitmap(' ') should be nil")
	}
}

func TestFace_Errors(t *testing.T) {
	if _, err := Parse(nil, 16); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("Parse(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := Parse(goregular.TTF, 0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Parse(size 0) error = %v, want ErrInvalidSize", err)
	}
	_, err := Parse([]byte("not a font"), 16)
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Parser != "sfnt" {
		t.Errorf("Parse(garbage) error = %v, want *ParseError from sfnt", err)
	}
	if _, err := ParseGoText(nil, 16, DefaultConfig()); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("ParseGoText(nil) error = %v, want ErrEmptyFontData", err)
	}
}

func TestFace_Metrics(t *testing.T) {
	f := testFace(t)
	if f.EmSize() != 16 {
		t.Errorf("EmSize() = %v, want 16", f.EmSize())
	}
	if f.Ascent() <= 0 || f.Ascent() > 32 {
		t.Errorf("Ascent() = %v, want a positive value near the em size", f.Ascent())
	}
	if f.Descent() <= 0 || f.Descent() > f.Ascent() {
		t.Errorf("Descent() = %v, want positive and below ascent %v", f.Descent(), f.Ascent())
	}
}

func TestFace_Advance(t *testing.T) {
	f := testFace(t)
	i := f.Advance([]rune("i"), 0)
	w := f.Advance([]rune("W"), 0)
	if i <= 0 || w <= i {
		t.Errorf("Advance: i=%v W=%v, want 0 < i < W", i, w)
	}
	for _, s := range []string{"AV", "To", "ab"} {
		if got := f.Advance([]rune(s), 0); got < 0 {
			t.Errorf("Advance(%q, 0) = %v, want non-negative", s, got)
		}
	}
}

func TestFace_Glyph(t *testing.T) {
	f := testFace(t)
	if f.Glyph(' ') != nil {
		t.Error("Glyph(' ') should be nil (no outline)")
	}
	if f.Glyph('\U0010FFFD') != nil {
		t.Error("Glyph for an unmapped rune should be nil")
	}

	h := f.Glyph('H')
	if h == nil {
		t.Fatal("Glyph('H') is nil")
	}
	lastIsSingleStop(t, h)

	r, ok := vertex.Bounds(h)
	if !ok {
		t.Fatal("Glyph('H') has no vertices")
	}
	adv := f.Advance([]rune("H"), 0)
	if r.MinX < 0 || r.MaxX > adv || r.MinY < -0.5 || r.MaxY > f.Ascent() {
		t.Errorf("Bounds(H) = %+v, want inside [0,%v]x[0,%v] (y-up)", r, adv, f.Ascent())
	}

	// Second lookup is served from the cache.
	f.Glyph('H')
	if s := f.CacheStats(); s.Hits == 0 {
		t.Errorf("CacheStats() = %+v, want at least one hit", s)
	}
}

func TestFace_Bitmap(t *testing.T) {
	f := testFace(t)
	b := f.Bitmap('o', color.Black)
	if b == nil {
		t.Fatal("Bitmap('o') is nil")
	}
	// The glyph sits above the baseline: its image starts above the pen.
	if b.Offset.Y >= 0 {
		t.Errorf("Bitmap('o').Offset = %v, want negative Y (above baseline)", b.Offset)
	}
	// The center of an 'o' is its counter and stays empty.
	bb := b.Image.Bounds()
	if a := b.Image.RGBAAt(bb.Dx()/2, bb.Dy()/2).A; a > 0x80 {
		t.Errorf("center of 'o' has alpha %#x, want mostly transparent", a)
	}
}

func TestGoTextFace_AgreesWithSfnt(t *testing.T) {
	gt, err := ParseGoText(goregular.TTF, 16, Config{})
	if err != nil {
		t.Fatalf("ParseGoText failed: %v", err)
	}
	sf := testFace(t)

	for _, r := range "AHWgi" {
		text := []rune{r}
		a, b := gt.Advance(text, 0), sf.Advance(text, 0)
		if math.Abs(a-b) > 0.5 {
			t.Errorf("advance of %q: go-text %v, sfnt %v", r, a, b)
		}
	}
	if math.Abs(gt.Ascent()-sf.Ascent()) > 1 {
		t.Errorf("ascent: go-text %v, sfnt %v", gt.Ascent(), sf.Ascent())
	}

	g := gt.Glyph('H')
	if g == nil {
		t.Fatal("go-text Glyph('H') is nil")
	}
	lastIsSingleStop(t, g)
	gb, ok := vertex.Bounds(g)
	if !ok {
		t.Fatal("go-text Glyph('H') has no vertices")
	}
	sb, _ := vertex.Bounds(sf.Glyph('H'))
	for _, d := range []float64{gb.MinX - sb.MinX, gb.MinY - sb.MinY, gb.MaxX - sb.MaxX, gb.MaxY - sb.MaxY} {
		if math.Abs(d) > 0.5 {
			t.Errorf("outline bounds of 'H': go-text %+v, sfnt %+v", gb, sb)
			break
		}
	}
	if gt.Glyph(' ') != nil {
		t.Error("go-text Glyph(' ') should be nil")
	}
	if gt.Bitmap('H', color.Black) == nil {
		t.Error("go-text Bitmap('H') is nil")
	}
}

package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/textpath"
	"github.com/gogpu/textpath/printer"
	"github.com/gogpu/textpath/typeface"
	"github.com/gogpu/textpath/vertex"
)

var opaqueBlack = color.RGBA{A: 0xff}

func rect(x0, y0, x1, y1 float64) *vertex.Storage {
	s := vertex.NewStorage(0)
	s.MoveTo(x0, y0)
	s.LineTo(x1, y0)
	s.LineTo(x1, y1)
	s.LineTo(x0, y1)
	s.Close()
	return s
}

func TestCanvas_RenderFlipsY(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Render(rect(2, 2, 8, 8), color.Black)

	img := c.Image()
	if got := img.RGBAAt(5, 15); got != opaqueBlack {
		t.Errorf("pixel inside rect = %v, want %v", got, opaqueBlack)
	}
	if got := img.RGBAAt(5, 5); got.A != 0 {
		t.Errorf("pixel mirrored above rect = %v, want transparent", got)
	}
	if got := img.RGBAAt(15, 15); got.A != 0 {
		t.Errorf("pixel right of rect = %v, want transparent", got)
	}
}

func TestCanvas_RenderUnclosedSubpath(t *testing.T) {
	s := vertex.NewStorage(0)
	s.MoveTo(0, 0)
	s.LineTo(10, 0)
	s.LineTo(10, 10)
	s.LineTo(0, 10)

	c := NewCanvas(10, 10)
	c.Render(s, color.Black)
	if got := c.Image().RGBAAt(5, 5); got != opaqueBlack {
		t.Errorf("pixel inside open subpath = %v, want %v", got, opaqueBlack)
	}
}

func TestCanvas_Clear(t *testing.T) {
	c := NewCanvas(4, 4)
	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	c.Clear(white)
	if got := c.Image().RGBAAt(3, 3); got != white {
		t.Errorf("pixel after Clear = %v, want %v", got, white)
	}
}

func TestCanvas_RenderBitmap(t *testing.T) {
	face := typeface.NewBoxFace(10, 20)
	b := face.Bitmap('A', color.Black)
	if b == nil {
		t.Fatal("Bitmap('A') = nil")
	}

	c := NewCanvas(40, 40)
	c.RenderBitmap(b, textpath.Pt(2, 4))

	img := c.Image()
	// Pen at device (2, 36); the box spans rows 20..35 and columns 2..11.
	if got := img.RGBAAt(5, 30); got != opaqueBlack {
		t.Errorf("pixel inside glyph = %v, want %v", got, opaqueBlack)
	}
	if got := img.RGBAAt(5, 37); got.A != 0 {
		t.Errorf("pixel below baseline = %v, want transparent", got)
	}
	if got := img.RGBAAt(13, 30); got.A != 0 {
		t.Errorf("pixel right of glyph = %v, want transparent", got)
	}

	c.RenderBitmap(nil, textpath.Pt(0, 0))
}

func TestCanvas_PrinterPoliciesAgree(t *testing.T) {
	face := typeface.NewBoxFace(10, 20)
	p, err := printer.New("AB", face, printer.WithOrigin(textpath.Pt(5, 10)))
	if err != nil {
		t.Fatal(err)
	}

	vec := NewCanvas(40, 40)
	if err := p.Render(vec, color.Black); err != nil {
		t.Fatal(err)
	}
	p.SetDrawFromCache(true)
	cached := NewCanvas(40, 40)
	if err := p.Render(cached, color.Black); err != nil {
		t.Fatal(err)
	}

	for _, pt := range [][2]int{{6, 29}, {14, 20}, {24, 15}, {2, 20}, {30, 20}, {10, 35}} {
		a := vec.Image().RGBAAt(pt[0], pt[1])
		b := cached.Image().RGBAAt(pt[0], pt[1])
		if a != b {
			t.Errorf("pixel %v: vector %v, cached %v", pt, a, b)
		}
	}
	if got := vec.Image().RGBAAt(14, 20); got != opaqueBlack {
		t.Errorf("vector pixel inside text = %v, want %v", got, opaqueBlack)
	}
}

func TestCanvas_SavePNG(t *testing.T) {
	c := NewCanvas(8, 6)
	c.Render(rect(0, 0, 4, 4), color.Black)

	path := filepath.Join(t.TempDir(), "out.png")
	if err := c.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if got := img.Bounds().Size(); got.X != 8 || got.Y != 6 {
		t.Errorf("decoded size = %v, want 8x6", got)
	}
}

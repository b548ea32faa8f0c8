// Command textdemo lays out a string and renders it to a PNG file.
//
// By default it draws "Hello World!" centered at the bottom of a 512x512
// canvas using the built-in Go Regular font:
//
//	textdemo -text "Hello World!" -size 24 -out hello.png
package main

import (
	"flag"
	"image/color"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/textpath"
	"github.com/gogpu/textpath/printer"
	"github.com/gogpu/textpath/raster"
	"github.com/gogpu/textpath/typeface"
	"github.com/gogpu/textpath/vertex"
)

func main() {
	var (
		text     = flag.String("text", "Hello World!", "text to print; \\r and \\r\\n become line breaks")
		size     = flag.Float64("size", 24, "font size in pixels")
		fontPath = flag.String("font", "", "TrueType/OpenType font file (default: Go Regular)")
		goText   = flag.Bool("gotext", false, "parse -font with go-text/typesetting instead of x/image/font/sfnt")
		justify  = flag.String("justify", "center", "justification: left, center or right")
		baseline = flag.String("baseline", "boundsbottom", "baseline: boundstop, boundscenter, textcenter, text or boundsbottom")
		cached   = flag.Bool("cached", false, "blit cached glyph bitmaps instead of filling the vector path")
		width    = flag.Int("width", 512, "image width")
		height   = flag.Int("height", 512, "image height")
		output   = flag.String("out", "textdemo.png", "output file")
		verbose  = flag.Bool("v", false, "log layout and cache activity")
	)
	flag.Parse()

	if *verbose {
		textpath.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	style, err := loadStyle(*fontPath, *size, *goText)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	j, err := printer.ParseJustification(*justify)
	if err != nil {
		log.Fatalf("Invalid -justify: %v", err)
	}
	b, err := printer.ParseBaseline(*baseline)
	if err != nil {
		log.Fatalf("Invalid -baseline: %v", err)
	}

	normalized, err := printer.Normalize(*text)
	if err != nil {
		log.Fatalf("Invalid -text: %v", err)
	}
	p, err := printer.New(normalized, style,
		printer.WithJustification(j),
		printer.WithBaseline(b),
		printer.WithDrawFromCache(*cached))
	if err != nil {
		log.Fatalf("Failed to create printer: %v", err)
	}

	canvas := raster.NewCanvas(*width, *height)
	canvas.Clear(color.White)

	// Center horizontally, 5px above the bottom edge.
	at := textpath.Pt(float64(*width)/2, 5)
	if *cached {
		p.SetOrigin(at)
		err = p.Render(canvas, color.Black)
	} else {
		canvas.Render(vertex.Translate(p, at.X, at.Y), color.Black)
	}
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	if err := canvas.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	sz := p.Size()
	log.Printf("Text saved to %s (%dx%d, %d lines, %.1fx%.1f)\n",
		*output, *width, *height, p.NumLines(), sz.Width, sz.Height)
}

func loadStyle(path string, size float64, goText bool) (typeface.Style, error) {
	if path == "" {
		return typeface.Default(size)
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	if goText {
		return typeface.ParseGoText(data, size, typeface.DefaultConfig())
	}
	return typeface.NewFace(data, size, typeface.DefaultConfig())
}

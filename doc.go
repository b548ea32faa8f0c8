// Package textpath turns text into vector paths.
//
// # Overview
//
// textpath lays out a (possibly multi-line) string with a glyph provider
// and produces a stream of move/line/close/stop commands, the same path
// abstraction every other shape uses. It also measures text, computes
// caret offsets and maps points back to caret positions.
//
// # Quick Start
//
//	face, _ := typeface.Default(30)
//	p, _ := printer.New("Hello World!", face,
//	    printer.WithJustification(printer.Center))
//
//	canvas := raster.NewCanvas(512, 512)
//	canvas.Render(vertex.Translate(p, 256, 5), color.Black)
//	canvas.SavePNG("hello.png")
//
// # Architecture
//
//   - textpath: Point, Size, Rect, Matrix and the package logger
//   - vertex: the path command stream (Source, Cursor, Storage, Transform)
//   - typeface: glyph providers (sfnt, go-text, fixed-box)
//   - printer: layout, measurement, hit-testing and render policies
//   - raster: a software canvas that consumes vertex sources
//
// # Coordinate System
//
// Layout uses y-up coordinates: the first line's baseline sits at the
// origin (for the Text baseline) and each following line is one em
// lower. The raster canvas flips Y when drawing.
package textpath

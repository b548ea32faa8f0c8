package vertex

import (
	"iter"

	"github.com/gogpu/textpath"
)

// Transformed decorates a Source, applying a matrix to every MoveTo,
// LineTo and Close position; Stop is passed through unchanged. The wrapped source is never modified, so a laid-out
// block of text can be placed anywhere without running layout again.
type Transformed struct {
	src    Source
	matrix textpath.Matrix
}

// Transform wraps src with the affine transformation m.
func Transform(src Source, m textpath.Matrix) *Transformed {
	return &Transformed{src: src, matrix: m}
}

// Translate wraps src with a translation by (dx, dy).
func Translate(src Source, dx, dy float64) *Transformed {
	return Transform(src, textpath.Translate(dx, dy))
}

// Source returns the wrapped source.
func (t *Transformed) Source() Source {
	return t.src
}

// Matrix returns the applied transformation.
func (t *Transformed) Matrix() textpath.Matrix {
	return t.matrix
}

// Vertices implements Source.
func (t *Transformed) Vertices() iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for v := range t.src.Vertices() {
			if v.Cmd != Stop {
				v.Point = t.matrix.TransformPoint(v.Point)
			}
			if !yield(v) {
				return
			}
		}
	}
}

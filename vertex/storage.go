package vertex

import (
	"iter"

	"github.com/gogpu/textpath"
)

// DefaultTolerance is the maximum distance, in path units, between a
// curve and the line segments that replace it.
const DefaultTolerance = 0.1

// Storage is a slice-backed Source. Curves are flattened into LineTo
// vertices as they are added, so the stored stream only ever contains
// MoveTo, LineTo and Close.
//
// The zero value is an empty path using DefaultTolerance.
type Storage struct {
	vertices  []Vertex
	start     textpath.Point
	current   textpath.Point
	tolerance float64
}

// NewStorage creates an empty path that flattens curves to the given
// tolerance. A non-positive tolerance selects DefaultTolerance.
func NewStorage(tolerance float64) *Storage {
	return &Storage{tolerance: tolerance}
}

// MoveTo starts a new subpath.
func (s *Storage) MoveTo(x, y float64) {
	pt := textpath.Pt(x, y)
	s.vertices = append(s.vertices, Vertex{Cmd: MoveTo, Point: pt})
	s.start = pt
	s.current = pt
}

// LineTo adds a straight segment.
func (s *Storage) LineTo(x, y float64) {
	pt := textpath.Pt(x, y)
	s.vertices = append(s.vertices, Vertex{Cmd: LineTo, Point: pt})
	s.current = pt
}

// QuadTo adds a quadratic Bezier curve, flattened to line segments.
func (s *Storage) QuadTo(cx, cy, x, y float64) {
	flattenQuadratic(s.current, textpath.Pt(cx, cy), textpath.Pt(x, y), s.tol(), 0, s.lineTo)
	s.current = textpath.Pt(x, y)
}

// CubicTo adds a cubic Bezier curve, flattened to line segments.
func (s *Storage) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	flattenCubic(s.current, textpath.Pt(c1x, c1y), textpath.Pt(c2x, c2y), textpath.Pt(x, y), s.tol(), 0, s.lineTo)
	s.current = textpath.Pt(x, y)
}

// Close closes the current subpath.
func (s *Storage) Close() {
	s.vertices = append(s.vertices, Vertex{Cmd: Close, Point: s.start})
	s.current = s.start
}

// Len returns the number of stored vertices, not counting the final Stop.
func (s *Storage) Len() int {
	return len(s.vertices)
}

// Reset removes all vertices, keeping the allocated capacity.
func (s *Storage) Reset() {
	s.vertices = s.vertices[:0]
	s.start = textpath.Point{}
	s.current = textpath.Point{}
}

// Vertices implements Source.
func (s *Storage) Vertices() iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for _, v := range s.vertices {
			if !yield(v) {
				return
			}
		}
		yield(Vertex{Cmd: Stop})
	}
}

func (s *Storage) lineTo(p textpath.Point) {
	s.vertices = append(s.vertices, Vertex{Cmd: LineTo, Point: p})
}

func (s *Storage) tol() float64 {
	if s.tolerance <= 0 {
		return DefaultTolerance
	}
	return s.tolerance
}

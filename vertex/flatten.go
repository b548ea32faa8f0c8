package vertex

import (
	"math"

	"github.com/gogpu/textpath"
)

// maxFlattenDepth bounds recursive subdivision; 2^10 segments per curve is
// far beyond what any glyph needs at sane tolerances.
const maxFlattenDepth = 10

// flattenQuadratic emits line endpoints approximating the quadratic Bezier
// p0-p1-p2, excluding p0.
func flattenQuadratic(p0, p1, p2 textpath.Point, tolerance float64, depth int, emit func(textpath.Point)) {
	if depth >= maxFlattenDepth || distanceToLine(p1, p0, p2) < tolerance {
		emit(p2)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)

	flattenQuadratic(p0, q0, q2, tolerance, depth+1, emit)
	flattenQuadratic(q2, q1, p2, tolerance, depth+1, emit)
}

// flattenCubic emits line endpoints approximating the cubic Bezier
// p0-p1-p2-p3, excluding p0. Subdivision uses de Casteljau's algorithm.
func flattenCubic(p0, p1, p2, p3 textpath.Point, tolerance float64, depth int, emit func(textpath.Point)) {
	dist := math.Max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3))
	if depth >= maxFlattenDepth || dist < tolerance {
		emit(p3)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	flattenCubic(p0, q0, r0, s, tolerance, depth+1, emit)
	flattenCubic(s, r1, q2, p3, tolerance, depth+1, emit)
}

// distanceToLine returns the distance from p to the segment (a, b).
func distanceToLine(p, a, b textpath.Point) float64 {
	ab := b.Sub(a)
	abLen2 := ab.LengthSquared()
	if abLen2 < 1e-20 {
		return p.Sub(a).Length()
	}

	ap := p.Sub(a)
	t := (ap.X*ab.X + ap.Y*ab.Y) / abLen2
	switch {
	case t < 0:
		return p.Sub(a).Length()
	case t > 1:
		return p.Sub(b).Length()
	}
	return p.Sub(a.Add(ab.Mul(t))).Length()
}

package printer

import (
	"math"

	"github.com/gogpu/textpath"
)

// CharacterIndexToStartBefore returns the caret index nearest to pt, in
// the coordinate space of Offset.
//
// Candidates are the caret before every character plus the one after the
// last. The nearest line wins first (squared vertical distance), then the
// nearest caret on it (squared horizontal distance); on an exact tie the
// earlier caret is kept. For "TEXT", a point left of the middle of 'T'
// maps to 0 and one between the middles of 'T' and 'E' maps to 1.
//
// A '\r' anywhere in the text aborts with an *InvariantError wrapping
// ErrRawCarriageReturn.
func (p *Printer) CharacterIndexToStartBefore(pt textpath.Point) (int, error) {
	em := p.style.EmSize()

	best := 0
	bestDY, bestDX := math.MaxFloat64, math.MaxFloat64
	var pen textpath.Point
	consider := func(i int) {
		d := pt.Sub(pen)
		dy, dx := d.Y*d.Y, d.X*d.X
		switch {
		case dy < bestDY:
			best, bestDY, bestDX = i, dy, dx
		case dy == bestDY && dx < bestDX:
			best, bestDX = i, dx
		}
	}

	for i, r := range p.runes {
		if r == '\r' {
			return -1, &InvariantError{Index: i, Err: ErrRawCarriageReturn}
		}
		consider(i)
		if r == '\n' {
			pen.X = 0
			pen.Y -= em
			continue
		}
		pen.X += p.style.Advance(p.runes, i)
	}
	consider(len(p.runes))
	return best, nil
}

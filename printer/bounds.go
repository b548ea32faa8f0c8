package printer

import "github.com/gogpu/textpath"

// LocalBounds returns the rectangle the text block occupies, derived from
// Size, the justification and the font metrics:
//
//   - horizontally [0, w] for Left, [-w/2, w/2] for Center, [-w, 0] for Right
//   - vertically [-descent, h-descent], moved down by ascent/2 for
//     BoundsCenter
//
// and finally offset by the origin.
func (p *Printer) LocalBounds() (textpath.Rect, error) {
	size := p.Size()
	descent := p.style.Descent()

	var r textpath.Rect
	switch p.justification {
	case Left:
		r = textpath.Rect{MinX: 0, MaxX: size.Width}
	case Center:
		r = textpath.Rect{MinX: -size.Width / 2, MaxX: size.Width / 2}
	case Right:
		r = textpath.Rect{MinX: -size.Width, MaxX: 0}
	default:
		return textpath.Rect{}, &ConfigError{Setting: "justification", Value: int(p.justification)}
	}
	r.MinY = -descent
	r.MaxY = size.Height - descent

	switch p.baseline {
	case BoundsCenter:
		r = r.Offset(0, -p.style.Ascent()/2)
	case BoundsTop, TextCenter, Text, BoundsBottom:
	default:
		return textpath.Rect{}, &ConfigError{Setting: "baseline", Value: int(p.baseline)}
	}

	return r.Offset(p.origin.X, p.origin.Y), nil
}

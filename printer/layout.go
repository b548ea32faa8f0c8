package printer

import (
	"iter"

	"github.com/gogpu/textpath"
	"github.com/gogpu/textpath/typeface"
	"github.com/gogpu/textpath/vertex"
)

// Vertices implements vertex.Source: the outline of every glyph,
// translated to its pen position plus the origin, followed by a single
// Stop at the origin. Stops inside glyph outlines are dropped.
//
// Vertices panics with a *ConfigError if the justification or baseline
// has no layout rule; New and the setters reject such values.
func (p *Printer) Vertices() iter.Seq[vertex.Vertex] {
	pens, err := p.pens()
	if err != nil {
		panic(err)
	}
	style, origin := p.style, p.origin

	return func(yield func(vertex.Vertex) bool) {
		for r, pen := range pens {
			glyph := style.Glyph(r)
			if glyph == nil {
				continue
			}
			at := pen.Add(origin)
			for v := range glyph.Vertices() {
				if v.Cmd == vertex.Stop {
					continue
				}
				v.Point = v.Point.Add(at)
				if !yield(v) {
					return
				}
			}
		}
		yield(vertex.Vertex{Cmd: vertex.Stop, Point: origin})
	}
}

// pens yields every non-newline rune with its pen position in layout
// space (origin not applied). The vector and cached-raster render paths
// both consume this walk, so their glyph placement is identical.
func (p *Printer) pens() (iter.Seq2[rune, textpath.Point], error) {
	startY, err := p.baselineY()
	if err != nil {
		return nil, err
	}
	if _, err := p.justify(0); err != nil {
		return nil, err
	}
	runes, style, j := p.runes, p.style, p.justification

	return func(yield func(rune, textpath.Point) bool) {
		pen := textpath.Pt(lineStartX(style, j, runes, 0), startY)
		for i, r := range runes {
			if r == '\n' {
				pen.X = lineStartX(style, j, runes, i+1)
				pen.Y -= style.EmSize()
				continue
			}
			if !yield(r, pen) {
				return
			}
			pen.X += style.Advance(runes, i)
		}
	}, nil
}

// lineStartX returns the pen x for the line starting at index start.
// The justification has been validated by the caller.
func lineStartX(style typeface.Style, j Justification, runes []rune, start int) float64 {
	end := start
	for end < len(runes) && runes[end] != '\n' {
		end++
	}
	x, _ := justify(j, measure(style, runes, start, end-1).Width)
	return x
}

// justify maps a line width to the pen x of its first character.
func (p *Printer) justify(width float64) (float64, error) {
	return justify(p.justification, width)
}

func justify(j Justification, width float64) (float64, error) {
	switch j {
	case Left:
		return 0, nil
	case Center:
		return -width / 2, nil
	case Right:
		return -width, nil
	default:
		return 0, &ConfigError{Setting: "justification", Value: int(j)}
	}
}

// baselineY returns the pen y of the first line.
func (p *Printer) baselineY() (float64, error) {
	ascent, descent := p.style.Ascent(), p.style.Descent()
	switch p.baseline {
	case Text:
		return 0, nil
	case BoundsTop:
		return -ascent, nil
	case BoundsCenter:
		return -ascent / 2, nil
	case TextCenter:
		return -(ascent - descent) / 2, nil
	case BoundsBottom:
		return descent + float64(p.NumLines()-1)*p.style.EmSize(), nil
	default:
		return 0, &ConfigError{Setting: "baseline", Value: int(p.baseline)}
	}
}

package printer

import (
	"github.com/gogpu/textpath"
	"github.com/gogpu/textpath/typeface"
)

// Size returns the size of the printed text: the widest line's advance
// sum by one em per line. The result is memoized until the text or style
// changes.
func (p *Printer) Size() textpath.Size {
	if !p.sizeValid {
		p.size = measure(p.style, p.runes, 0, len(p.runes)-1)
		p.sizeValid = true
		textpath.Logger().Debug("printer: measured text",
			"runes", len(p.runes), "width", p.size.Width, "height", p.size.Height)
	}
	return p.size
}

// SizeOf returns the size text would have with this printer's style.
// It is not memoized.
func (p *Printer) SizeOf(text string) textpath.Size {
	runes := []rune(text)
	return measure(p.style, runes, 0, len(runes)-1)
}

// RangeSize returns the size of the characters start..end (inclusive) of
// the printed text. Indices are clamped to the text.
func (p *Printer) RangeSize(start, end int) textpath.Size {
	return measure(p.style, p.runes, start, end)
}

// RangeSizeOf is RangeSize over an arbitrary string.
func (p *Printer) RangeSizeOf(text string, start, end int) textpath.Size {
	return measure(p.style, []rune(text), start, end)
}

// measure accumulates advances over runes[start..end]. Height starts at
// one em and grows by one em per newline in the range.
func measure(style typeface.Style, runes []rune, start, end int) textpath.Size {
	em := style.EmSize()
	size := textpath.Size{Height: em}

	start = max(start, 0)
	end = min(end, len(runes)-1)
	lineX := 0.0
	for i := start; i <= end; i++ {
		if runes[i] == '\n' {
			lineX = 0
			size.Height += em
			continue
		}
		lineX += style.Advance(runes, i)
		size.Width = max(size.Width, lineX)
	}
	return size
}

// NumLines returns the number of lines in the printed text (at least 1).
func (p *Printer) NumLines() int {
	return p.NumLinesInRange(0, len(p.runes)-1)
}

// NumLinesInRange returns one plus the number of newlines among the
// characters start..end (inclusive, clamped).
func (p *Printer) NumLinesInRange(start, end int) int {
	start = max(start, 0)
	end = min(end, len(p.runes)-1)
	lines := 1
	for i := start; i <= end; i++ {
		if p.runes[i] == '\n' {
			lines++
		}
	}
	return lines
}

// Offset walks the characters start..end (inclusive) from (0, 0) and
// returns the pen position after the last one. A newline resets x and
// moves y down one em. Justification and origin are not applied.
func (p *Printer) Offset(start, end int) textpath.Point {
	em := p.style.EmSize()
	var pen textpath.Point

	start = max(start, 0)
	end = min(end, len(p.runes)-1)
	for i := start; i <= end; i++ {
		if p.runes[i] == '\n' {
			pen.X = 0
			pen.Y -= em
			continue
		}
		pen.X += p.style.Advance(p.runes, i)
	}
	return pen
}

// OffsetLeftOf returns the caret position immediately before character i.
func (p *Printer) OffsetLeftOf(i int) textpath.Point {
	return p.Offset(0, i-1)
}

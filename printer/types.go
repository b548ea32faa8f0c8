package printer

import (
	"fmt"
	"strings"
)

// Justification selects where each line starts relative to the origin.
type Justification uint8

const (
	// Left starts every line at the origin.
	Left Justification = iota

	// Center centers every line on the origin.
	Center

	// Right ends every line at the origin.
	Right

	justificationCount
)

// String returns a string representation of the justification.
func (j Justification) String() string {
	switch j {
	case Left:
		return "Left"
	case Center:
		return "Center"
	case Right:
		return "Right"
	default:
		return fmt.Sprintf("Justification(%d)", uint8(j))
	}
}

// Valid reports whether j is a known justification.
func (j Justification) Valid() bool {
	return j < justificationCount
}

// ParseJustification parses a justification name, ignoring case.
func ParseJustification(s string) (Justification, error) {
	for j := range justificationCount {
		if strings.EqualFold(s, j.String()) {
			return j, nil
		}
	}
	return 0, fmt.Errorf("%w: justification %q", ErrUnsupported, s)
}

// Baseline selects the vertical reference of the first line relative to
// the origin.
type Baseline uint8

const (
	// BoundsTop puts the top of the first line's ascent on the origin.
	BoundsTop Baseline = iota

	// BoundsCenter puts the middle of the first line's ascent on the
	// origin.
	BoundsCenter

	// TextCenter puts the middle of the first line, between descent and
	// ascent, on the origin.
	TextCenter

	// Text puts the first line's baseline on the origin.
	Text

	// BoundsBottom puts the lowest descent of the last line on the origin.
	BoundsBottom

	baselineCount
)

// String returns a string representation of the baseline.
func (b Baseline) String() string {
	switch b {
	case BoundsTop:
		return "BoundsTop"
	case BoundsCenter:
		return "BoundsCenter"
	case TextCenter:
		return "TextCenter"
	case Text:
		return "Text"
	case BoundsBottom:
		return "BoundsBottom"
	default:
		return fmt.Sprintf("Baseline(%d)", uint8(b))
	}
}

// Valid reports whether b is a known baseline.
func (b Baseline) Valid() bool {
	return b < baselineCount
}

// ParseBaseline parses a baseline name, ignoring case.
func ParseBaseline(s string) (Baseline, error) {
	for b := range baselineCount {
		if strings.EqualFold(s, b.String()) {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: baseline %q", ErrUnsupported, s)
}

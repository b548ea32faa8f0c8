// Package vertex provides the path command stream shared by every
// path-producing shape: text, glyph outlines and transformed copies of
// either.
package vertex

import (
	"fmt"

	"github.com/gogpu/textpath"
)

// Command is the drawing command carried by a Vertex.
type Command uint8

const (
	// Stop terminates a stream. Its position carries no meaning.
	Stop Command = iota

	// MoveTo starts a new subpath at the vertex position.
	MoveTo

	// LineTo draws a straight line to the vertex position.
	LineTo

	// Close closes the current subpath.
	Close
)

// String returns a string representation of the command.
func (c Command) String() string {
	switch c {
	case Stop:
		return "Stop"
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case Close:
		return "Close"
	default:
		return fmt.Sprintf("Command(%d)", uint8(c))
	}
}

// IsVertex reports whether the command carries a position.
func (c Command) IsVertex() bool {
	return c == MoveTo || c == LineTo
}

// Vertex is one element of a path command stream.
type Vertex struct {
	Cmd   Command
	Point textpath.Point
}

// V is a convenience constructor for a Vertex.
func V(cmd Command, x, y float64) Vertex {
	return Vertex{Cmd: cmd, Point: textpath.Pt(x, y)}
}

// String formats the vertex as "MoveTo(1, 2)".
func (v Vertex) String() string {
	if !v.Cmd.IsVertex() {
		return v.Cmd.String()
	}
	return fmt.Sprintf("%s(%g, %g)", v.Cmd, v.Point.X, v.Point.Y)
}

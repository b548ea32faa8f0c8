package vertex

import (
	"iter"

	"github.com/gogpu/textpath"
)

// Source produces a path command stream.
//
// Vertices must return a finite sequence ending in exactly one Stop, and
// every call must start a fresh, independent traversal.
type Source interface {
	Vertices() iter.Seq[Vertex]
}

// Cursor is a pull-based reader over a Source: rewind, then fetch
// vertices one at a time until Stop.
//
// A Cursor is not safe for concurrent use. Call Close when abandoning a
// traversal early to release the underlying iterator.
type Cursor struct {
	src  Source
	next func() (Vertex, bool)
	stop func()
}

// NewCursor returns a cursor positioned at the start of src.
func NewCursor(src Source) *Cursor {
	return &Cursor{src: src}
}

// Rewind restarts the traversal from the first vertex.
func (c *Cursor) Rewind() {
	c.Close()
	c.next, c.stop = iter.Pull(c.src.Vertices())
}

// Vertex returns the current command and position and advances the
// cursor. Once the stream is exhausted it keeps returning Stop.
func (c *Cursor) Vertex() (Command, textpath.Point) {
	if c.next == nil {
		c.Rewind()
	}
	v, ok := c.next()
	if !ok {
		return Stop, textpath.Point{}
	}
	return v.Cmd, v.Point
}

// Close releases the current traversal, if any.
func (c *Cursor) Close() {
	if c.stop != nil {
		c.stop()
	}
	c.next, c.stop = nil, nil
}

// Collect materializes a source into a slice, Stop included.
func Collect(src Source) []Vertex {
	var out []Vertex
	for v := range src.Vertices() {
		out = append(out, v)
	}
	return out
}

// Bounds returns the bounding box of all MoveTo and LineTo positions in
// src. It reports false if the stream has no positioned vertex.
func Bounds(src Source) (textpath.Rect, bool) {
	var r textpath.Rect
	found := false
	for v := range src.Vertices() {
		if !v.Cmd.IsVertex() {
			continue
		}
		pt := textpath.Rect{MinX: v.Point.X, MinY: v.Point.Y, MaxX: v.Point.X, MaxY: v.Point.Y}
		if !found {
			r = pt
			found = true
			continue
		}
		r = r.Union(pt)
	}
	return r, found
}

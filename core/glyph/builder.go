package glyph

import (
	"github.com/npillmayer/glyphpath/core"
)

// Visitor receives the primitive events of an outline decomposition, in
// source order. Returning a non-nil error from any method aborts the walk.
//
// The decomposition contract guarantees that each contour is opened by
// exactly one MoveTo, followed by zero or more LineTo/QuadTo/CubeTo events
// up to the next MoveTo or the end of the outline.
type Visitor interface {
	MoveTo(to Point) error
	LineTo(to Point) error
	QuadTo(ctrl, to Point) error
	CubeTo(ctrl1, ctrl2, to Point) error
}

// PathBuilder is a Visitor that mirrors the event stream into a Path,
// preserving order. It does no geometric reasoning whatsoever.
//
// A PathBuilder is good for a single decomposition pass. It is not safe for
// concurrent use, nor does it need to be: the accumulating path has exactly
// one owner until the pass completes.
type PathBuilder struct {
	path Path
	cur  int // index of the open contour; -1 until the first MoveTo
}

var _ Visitor = &PathBuilder{}

// NewPathBuilder creates an empty PathBuilder.
func NewPathBuilder() *PathBuilder {
	return &PathBuilder{cur: -1}
}

// MoveTo opens a new contour starting at to.
func (b *PathBuilder) MoveTo(to Point) error {
	b.path = append(b.path, Contour{{Kind: MoveTo, To: to}})
	b.cur = len(b.path) - 1
	tracer().Debugf("contour #%d starts at (%d,%d)", b.cur+1, to.X, to.Y)
	return nil
}

// LineTo appends a straight edge to the open contour.
func (b *PathBuilder) LineTo(to Point) error {
	if b.cur < 0 {
		return core.Error(core.EDECOMPOSE, "line event before start of any contour")
	}
	b.path[b.cur] = append(b.path[b.cur], Segment{Kind: LineTo, To: to})
	return nil
}

// QuadTo appends a quadratic Bézier arc to the open contour. The arc runs
// from the previous segment's end point through ctrl to to.
func (b *PathBuilder) QuadTo(ctrl, to Point) error {
	if b.cur < 0 {
		return core.Error(core.EDECOMPOSE, "curve event before start of any contour")
	}
	b.path[b.cur] = append(b.path[b.cur], Segment{Kind: QuadTo, To: to, Control: ctrl})
	return nil
}

// CubeTo drops a cubic Bézier arc. TrueType outlines consist of quadratic
// splines only and never produce this event; outline formats that do emit
// cubics are degraded by omitting the arc, without raising an error.
func (b *PathBuilder) CubeTo(ctrl1, ctrl2, to Point) error {
	tracer().Debugf("dropping cubic arc to (%d,%d)", to.X, to.Y)
	return nil
}

// Path returns the accumulated path. The result is only complete after a
// decomposition pass has run to its end; callers must discard it when the
// pass reported an error.
func (b *PathBuilder) Path() Path {
	return b.path
}

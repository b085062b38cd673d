/*
Package glyph holds a structured representation of a glyph's vector outline.

A glyph outline is an ordered sequence of closed contours. Each contour is
an ordered sequence of path segments: it starts with a single move, followed
by straight edges and quadratic Bézier arcs. Closure of a contour back to
its starting point is implied and not stored as a segment. All coordinates
are integer font design units, i.e. the coordinate space native to the font
file, independent of any rendering pixel size.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package glyph

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'glyphpath.glyph'.
func tracer() tracing.Trace {
	return tracing.Select("glyphpath.glyph")
}

// Point is a position in font design units.
type Point struct {
	X, Y int32
}

// SegmentKind classifies the segments of a contour.
type SegmentKind int8

// Segment kinds. Cubic Bézier arcs are accepted at the decomposition
// boundary, but are never materialized as segments (see PathBuilder.CubeTo).
const (
	MoveTo SegmentKind = iota // start of a contour
	LineTo                    // straight edge
	QuadTo                    // quadratic Bézier arc
)

func (k SegmentKind) String() string {
	switch k {
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case QuadTo:
		return "QuadTo"
	}
	return "InvalidSegment"
}

// Segment is one typed element of a contour. Control is the zero point and
// carries no meaning unless Kind is QuadTo.
type Segment struct {
	Kind    SegmentKind
	To      Point // end point of the segment
	Control Point // control point of a quadratic arc
}

// Contour is one closed sub-path of a glyph outline, e.g. the outer
// boundary of 'O' or its inner hole. A complete contour always starts with
// a single MoveTo segment and is never empty.
type Contour []Segment

// Path is a complete glyph outline. Contour order mirrors the order in the
// font's outline data; it is semantically meaningful, as contours may be
// fills or holes depending on winding. Winding is not computed here.
type Path []Contour

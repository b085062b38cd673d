package glyph

import (
	"fmt"
	"io"
	"strings"
)

// Render writes a fixed-width textual rendering of a path to w, intended
// for terminal or log consumption, not for round-trip parsing.
//
// Contours are numbered starting at 1, with the number right-aligned to
// width 2. Coordinates are printed right-aligned to width 5, in font
// design units:
//
//    Contour # 1
//       MoveTo (    0,     0)
//       LineTo (  100,     0)
//       QuadTo (  150,    50) (  100,   100)
//
func Render(w io.Writer, path Path) error {
	for i, contour := range path {
		if _, err := fmt.Fprintf(w, "   Contour #%2d\n", i+1); err != nil {
			return err
		}
		for _, seg := range contour {
			var err error
			switch seg.Kind {
			case MoveTo, LineTo:
				_, err = fmt.Fprintf(w, "      %s (%5d, %5d)\n", seg.Kind, seg.To.X, seg.To.Y)
			case QuadTo:
				_, err = fmt.Fprintf(w, "      QuadTo (%5d, %5d) (%5d, %5d)\n",
					seg.Control.X, seg.Control.Y, seg.To.X, seg.To.Y)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// String renders the path as by Render.
func (p Path) String() string {
	var sb strings.Builder
	Render(&sb, p) // strings.Builder does not fail
	return sb.String()
}

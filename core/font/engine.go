package font

import (
	"encoding/binary"

	"github.com/npillmayer/glyphpath/core"
	"github.com/npillmayer/glyphpath/core/glyph"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Engine drives the font engine. It owns a working buffer which the SFNT
// machinery reuses across calls, so an Engine must not be shared between
// goroutines.
type Engine struct {
	buf sfnt.Buffer
}

// NewEngine readies the font engine. A non-nil error carries code EENGINE.
func NewEngine() (*Engine, error) {
	return &Engine{}, nil
}

// OpenFont opens and parses a font file, returning a face handle for it.
func (e *Engine) OpenFont(path string) (*Face, error) {
	f, err := LoadOpenTypeFont(path)
	if err != nil {
		return nil, err
	}
	return &Face{engine: e, font: f}, nil
}

// Face is a handle onto one opened font.
type Face struct {
	engine *Engine
	font   *ScalableFont
}

// NewFace wraps an already parsed font into a face handle, e.g. the
// fallback font or a font resolved by the resources package.
func (e *Engine) NewFace(f *ScalableFont) *Face {
	return &Face{engine: e, font: f}
}

// Font returns the underlying font of a face.
func (f *Face) Font() *ScalableFont {
	return f.font
}

// GlyphIndex maps a character to the font's glyph index for it. Glyph
// index 0 signals that the font has no glyph for the character.
func (f *Face) GlyphIndex(r rune) (sfnt.GlyphIndex, error) {
	gid, err := f.font.SFNT.GlyphIndex(&f.engine.buf, r)
	if err != nil {
		return 0, core.WrapError(err, core.ENOGLYPH, "character map lookup failed for %q", r)
	}
	return gid, nil
}

// HasOutlines reports whether the font carries vector outlines, i.e. a
// 'glyf' or CFF table. Bitmap-only fonts have neither and cannot be
// decomposed.
func (f *Face) HasOutlines() bool {
	return hasOutlineTable(f.font.Binary)
}

// hasOutlineTable scans the font's table directory for an outline table.
// The directory starts with a 12 byte header, followed by 16 byte records
// with the table tag in the first 4 bytes.
func hasOutlineTable(fontdata []byte) bool {
	if len(fontdata) < 12 {
		return false
	}
	n := int(binary.BigEndian.Uint16(fontdata[4:6]))
	for i := 0; i < n; i++ {
		rec := 12 + 16*i
		if rec+16 > len(fontdata) {
			return false
		}
		switch string(fontdata[rec : rec+4]) {
		case "glyf", "CFF ", "CFF2":
			return true
		}
	}
	return false
}

// Outline is one glyph's vector outline as the engine reports it: a flat
// stream of path primitives in 26.6 fixed point, y-axis pointing down.
type Outline struct {
	segments sfnt.Segments
}

// GlyphOutline loads a glyph's outline, unscaled and unhinted. Loading at
// ppem == unitsPerEm makes the raw 26.6 coordinate values numerically
// equal to font design units.
func (f *Face) GlyphOutline(gid sfnt.GlyphIndex) (Outline, error) {
	upem := fixed.Int26_6(f.font.SFNT.UnitsPerEm())
	segs, err := f.font.SFNT.LoadGlyph(&f.engine.buf, gid, upem, nil)
	if err != nil {
		return Outline{}, core.WrapError(err, core.EGLYPHLOAD, "cannot load glyph #%d", gid)
	}
	tracer().Debugf("glyph #%d has %d outline segments", gid, len(segs))
	return Outline{segments: segs}, nil
}

// DecomposeOutline walks an outline and reports every primitive to v, in
// source order. Each contour is opened by exactly one move event, followed
// by its edge and arc events. A non-nil error from v aborts the walk and
// is returned unchanged; the visitor's partial state must then be
// discarded by the caller.
func DecomposeOutline(o Outline, v glyph.Visitor) error {
	for _, seg := range o.segments {
		var err error
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			err = v.MoveTo(point(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			err = v.LineTo(point(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			err = v.QuadTo(point(seg.Args[0]), point(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			err = v.CubeTo(point(seg.Args[0]), point(seg.Args[1]), point(seg.Args[2]))
		default:
			err = core.Error(core.EDECOMPOSE, "outline contains unknown segment type %d", seg.Op)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// point converts an engine coordinate to font design units. The engine
// reports y-down coordinates; font design space is y-up.
func point(p fixed.Point26_6) glyph.Point {
	return glyph.Point{X: int32(p.X), Y: -int32(p.Y)}
}

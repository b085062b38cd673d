package font

import (
	"encoding/binary"
	"testing"

	"github.com/npillmayer/glyphpath/core"
	"github.com/npillmayer/glyphpath/core/glyph"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestGlyphIndex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphpath.fonts")
	defer teardown()
	//
	face := fallbackFace(t)
	gid, err := face.GlyphIndex('A')
	require.NoError(t, err)
	require.NotZero(t, gid, "expected 'A' to be mapped in Go Sans")
	//
	gid, err = face.GlyphIndex('\uFFFE') // a noncharacter, mapped by no font
	require.NoError(t, err)
	require.Zero(t, gid, "expected no glyph for U+FFFE")
}

func TestDecomposePath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphpath.fonts")
	defer teardown()
	//
	path := decomposeChar(t, 'o')
	require.NotEmpty(t, path)
	require.Len(t, path, 2, "'o' has an outer boundary and a hole")
	quads := 0
	for i, contour := range path {
		require.NotEmpty(t, contour, "contour %d is empty", i+1)
		require.Equal(t, glyph.MoveTo, contour[0].Kind,
			"contour %d does not start with a move", i+1)
		for j, seg := range contour[1:] {
			require.NotEqual(t, glyph.MoveTo, seg.Kind,
				"stray move within contour %d at segment %d", i+1, j+2)
			if seg.Kind == glyph.QuadTo {
				quads++
				require.NotEqual(t, glyph.Point{}, seg.Control,
					"quadratic arc without control point")
			}
		}
	}
	require.NotZero(t, quads, "a round 'o' must contain quadratic arcs")
}

func TestDecomposeIsRepeatable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphpath.fonts")
	defer teardown()
	//
	first := decomposeChar(t, 'B')
	second := decomposeChar(t, 'B')
	require.Equal(t, first, second, "two passes over the same glyph differ")
}

func TestDecomposeAbortsOnVisitorError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphpath.fonts")
	defer teardown()
	//
	engine, err := NewEngine()
	require.NoError(t, err)
	face := engine.NewFace(FallbackFont())
	gid, err := face.GlyphIndex('X')
	require.NoError(t, err)
	outline, err := face.GlyphOutline(gid)
	require.NoError(t, err)
	v := &abortingVisitor{}
	err = DecomposeOutline(outline, v)
	require.Error(t, err)
	require.Equal(t, 1, v.calls, "walk continued after the visitor failed")
}

func TestHasOutlineTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphpath.fonts")
	defer teardown()
	//
	if !hasOutlineTable(FallbackFont().Binary) {
		t.Errorf("expected Go Sans to carry a glyf table")
	}
	if hasOutlineTable(fakeDirectory("EBDT", "EBLC")) {
		t.Errorf("bitmap-only table directory must not count as outline font")
	}
	if !hasOutlineTable(fakeDirectory("cmap", "CFF ")) {
		t.Errorf("expected CFF table directory to count as outline font")
	}
	if hasOutlineTable([]byte{0, 1}) {
		t.Errorf("truncated font data must not count as outline font")
	}
}

// ---------------------------------------------------------------------------

func fallbackFace(t *testing.T) *Face {
	engine, err := NewEngine()
	if err != nil {
		t.Fatal(err)
	}
	return engine.NewFace(FallbackFont())
}

func decomposeChar(t *testing.T, r rune) glyph.Path {
	face := fallbackFace(t)
	gid, err := face.GlyphIndex(r)
	if err != nil || gid == 0 {
		t.Fatalf("no glyph for %q in fallback font", r)
	}
	outline, err := face.GlyphOutline(gid)
	if err != nil {
		t.Fatal(err)
	}
	b := glyph.NewPathBuilder()
	if err := DecomposeOutline(outline, b); err != nil {
		t.Fatal(err)
	}
	return b.Path()
}

// fakeDirectory builds a minimal SFNT table directory listing the given tags.
func fakeDirectory(tags ...string) []byte {
	buf := make([]byte, 12+16*len(tags))
	binary.BigEndian.PutUint32(buf[0:4], 0x00010000)
	binary.BigEndian.PutUint16(buf[4:6], uint16(len(tags)))
	for i, tag := range tags {
		copy(buf[12+16*i:], tag)
	}
	return buf
}

type abortingVisitor struct {
	calls int
}

func (v *abortingVisitor) MoveTo(to glyph.Point) error {
	v.calls++
	return core.Error(core.EDECOMPOSE, "aborting after first event")
}

func (v *abortingVisitor) LineTo(to glyph.Point) error {
	v.calls++
	return core.Error(core.EDECOMPOSE, "aborting after first event")
}

func (v *abortingVisitor) QuadTo(ctrl, to glyph.Point) error {
	v.calls++
	return core.Error(core.EDECOMPOSE, "aborting after first event")
}

func (v *abortingVisitor) CubeTo(ctrl1, ctrl2, to glyph.Point) error {
	v.calls++
	return core.Error(core.EDECOMPOSE, "aborting after first event")
}

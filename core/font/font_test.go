package font

import (
	"testing"

	"github.com/npillmayer/glyphpath/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLoadMissingFontFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphpath.fonts")
	defer teardown()
	//
	_, err := LoadOpenTypeFont("no/such/font.ttf")
	if err == nil {
		t.Fatal("expected loading of missing file to fail, hasn't")
	}
	if core.Code(err) != core.EFONTOPEN {
		t.Errorf("expected error code %d, have %d", core.EFONTOPEN, core.Code(err))
	}
}

func TestParseGarbage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphpath.fonts")
	defer teardown()
	//
	_, err := ParseOpenTypeFont([]byte("this is not a font program"))
	if err == nil {
		t.Fatal("expected parsing of garbage data to fail, hasn't")
	}
	if core.Code(err) != core.EFONTFORMAT {
		t.Errorf("expected error code %d, have %d", core.EFONTFORMAT, core.Code(err))
	}
}

func TestFallbackFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphpath.fonts")
	defer teardown()
	//
	f := FallbackFont()
	if f == nil || f.SFNT == nil {
		t.Fatal("fallback font not present")
	}
	if f.Fontname != "Go Sans" {
		t.Errorf("expected fallback font to be Go Sans, is %s", f.Fontname)
	}
}

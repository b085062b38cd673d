/*
Package font is the boundary to the font engine.

The engine's job is everything this tool does not want to own: parsing the
font file, mapping characters to glyph indices, and loading a glyph's
outline data. We use the SFNT machinery of golang.org/x/image for this and
confine all knowledge about it to this package.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package font

import (
	"os"
	"sync"

	"github.com/npillmayer/glyphpath/core"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// tracer traces with key 'glyphpath.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("glyphpath.fonts")
}

// ScalableFont is an in-memory font program.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

// LoadOpenTypeFont reads a font file and parses it.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, core.WrapError(err, core.EFONTOPEN, "cannot open font file %s", fontfile)
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont parses binary font data in OpenType or TrueType format.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, core.WrapError(err, core.EFONTFORMAT, "font format not recognized")
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	tracer().Debugf("parsed font %s", f.Fontname)
	return f, nil
}

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a font which is always present. Currently we use
// Go Sans.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once

var fallbackFont *ScalableFont

func loadFallbackFont() *ScalableFont {
	var err error
	gofont := &ScalableFont{
		Fontname: "Go Sans",
		Filepath: "internal",
		Binary:   goregular.TTF,
	}
	gofont.SFNT, err = sfnt.Parse(gofont.Binary)
	if err != nil {
		panic("cannot load default font") // this cannot happen
	}
	return gofont
}

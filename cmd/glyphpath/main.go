/*
glyphpath dumps the vector outline of a single character's glyph.

	glyphpath <fontfile> <character>

The glyph is looked up in the given font, its outline is extracted in raw
font design units, i.e. without scaling or hinting applied, and printed as
a structured path description, one contour at a time. This is a diagnostic
tool for inspecting the path geometry a font encodes for a character.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/npillmayer/glyphpath/core"
	"github.com/npillmayer/glyphpath/core/font"
	"github.com/npillmayer/glyphpath/core/glyph"
	"github.com/npillmayer/glyphpath/core/locate/resources"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'glyphpath.fonts'
func tracer() tracing.Trace {
	return tracing.Select("glyphpath.fonts")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":           "go",
		"trace.glyphpath.fonts":     "Error",
		"trace.glyphpath.glyph":     "Error",
		"trace.glyphpath.resources": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Fprintln(os.Stderr, "error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	os.Exit(run(os.Args[1:], os.Stdout))
}

// We use pterm for diagnostics. Stdout stays reserved for path output, so
// all pterm printers write to stderr.
func initDisplay() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
	pterm.Error.Writer = os.Stderr
}

// run executes the extraction pipeline: resolve and open the font, map the
// character to a glyph, load the glyph's outline, decompose it into a path
// and render the path to out. Every stage failure is terminal; nothing is
// written to out unless the whole pipeline succeeded.
func run(args []string, out io.Writer) int {
	if len(args) != 2 {
		return fail(core.Error(core.EUSAGE, "usage: glyphpath <fontfile> <character>"))
	}
	char, _ := utf8.DecodeRuneInString(args[1])
	if char == utf8.RuneError {
		return fail(core.Error(core.EUSAGE, "not a valid character: %q", args[1]))
	}
	engine, err := font.NewEngine()
	if err != nil {
		return fail(err)
	}
	fpath, err := resources.ResolveFont(args[0])
	if err != nil {
		return fail(err)
	}
	face, err := engine.OpenFont(fpath)
	if err != nil {
		return fail(err)
	}
	tracer().Infof("loaded font %s", face.Font().Fontname)
	gid, err := face.GlyphIndex(char)
	if err != nil {
		return fail(err)
	}
	if gid == 0 {
		return fail(core.Error(core.ENOGLYPH, "font has no glyph for character '%c'", char))
	}
	if !face.HasOutlines() {
		return fail(core.Error(core.ENOTOUTLINE, "font carries no vector outlines"))
	}
	outline, err := face.GlyphOutline(gid)
	if err != nil {
		return fail(err)
	}
	builder := glyph.NewPathBuilder()
	if err := font.DecomposeOutline(outline, builder); err != nil {
		return fail(err)
	}
	fmt.Fprintf(out, "// Successfully extracted vector data for character '%c' from %s.\n", char, fpath)
	fmt.Fprintln(out, "// Extracted Glyph Path:")
	if err := glyph.Render(out, builder.Path()); err != nil {
		return fail(core.WrapError(err, core.EINTERNAL, "cannot write path output"))
	}
	return 0
}

func fail(err error) int {
	tracer().Errorf(err.Error())
	pterm.Error.Printfln("[%d] %s", core.Code(err), core.UserMessage(err))
	return 1
}

/*
Package resources locates font resources.

A font may be given as a concrete file path, or by name, in which case it
is searched among the installed system fonts.
*/
package resources

import (
	"os"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/glyphpath/core"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'glyphpath.resources'.
func tracer() tracing.Trace {
	return tracing.Select("glyphpath.resources")
}

// ResolveFont resolves a font argument to a font file path. name is first
// tried as a path to a font file; failing that, it is looked up as the
// name of a system font.
func ResolveFont(name string) (string, error) {
	if fi, err := os.Stat(name); err == nil && !fi.IsDir() {
		return name, nil
	}
	fpath, err := findfont.Find(name)
	if err != nil || fpath == "" {
		return "", core.WrapError(err, core.EFONTOPEN, "neither a font file nor a system font: %s", name)
	}
	tracer().Debugf("%s is a system font: %s", name, fpath)
	return fpath, nil
}

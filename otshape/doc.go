/*
Package otshape orchestrates OpenType text shaping: it maps characters to
glyphs, resolves the lookups for a script/language/feature request, runs the
substitution and positioning engines of package otlayout, and returns the
final glyph run.

Shaping is a synchronous pure computation: a shape call is a function of
(text, font, script, language, enabled features) with no hidden state, so
repeated calls with identical inputs yield identical glyph runs, and multiple
calls against the same font may run concurrently without locking.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otshape

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'otshaper'
func tracer() tracing.Trace {
	return tracing.Select("otshaper")
}

/*
Package otlayout applies OpenType font layout features to glyph sequences.

It contains the script/language resolver (which features and lookups apply to
a run), the substitution engine (GSUB) and the positioning engine (GPOS),
plus the legacy kern-table fallback. All engines are pure functions over
immutable ShapedGlyph values: they return new sequences and never mutate
their input, so intermediate stages can be inspected and tested in isolation.

Anomalies in the rule tables — unknown scripts or languages, feature or
lookup indices out of range, glyph IDs beyond the 16-bit addressable range —
degrade to "no transformation applied" rather than errors. Shaping one run
incorrectly must never prevent the rest of a document from rendering.

# Status

Contextual and chaining-contextual substitution, and anchor-based mark
attachment, are recognized but not applied; see the subtable types in
package ot.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otlayout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'otshaper'
func tracer() tracing.Trace {
	return tracing.Select("otshaper")
}

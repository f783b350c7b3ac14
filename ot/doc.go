/*
Package ot provides the data model for OpenType layout: glyph identifiers,
tags, and the script → language-system → feature → lookup rule tables of the
GSUB and GPOS layout tables.

The model in this package is the hand-over point between a font-parsing
collaborator and the shaping engines in package otlayout: a parser constructs
a Font once per loaded font, and the shaping code borrows it read-only for the
duration of a shape call. Nothing in this package mutates a Font after
construction, so a single Font may serve concurrent shape calls without
locking.

Binary SFNT parsing is deliberately not part of this module; the types here
are plain Go values, not views into font file bytes.

# Links

OpenType layout explained:
https://docs.microsoft.com/en-us/typography/opentype/spec/

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ot

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// errFontFormat produces user level errors for font model inconsistencies.
func errFontFormat(message string) error {
	return fmt.Errorf("OpenType font format: %s", message)
}

// tracer writes to trace with key 'otshaper'
func tracer() tracing.Trace {
	return tracing.Select("otshaper")
}

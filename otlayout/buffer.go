package otlayout

import "github.com/npillmayer/otshaper/ot"

// ShapedGlyph is one glyph of a shaped run: a glyph ID together with its
// originating code-point and its positioning values in font design units.
//
// ShapedGlyph is an immutable value type. The engines in this package produce
// new instances rather than mutating shared ones; a sequence handed to an
// engine is never written to.
type ShapedGlyph struct {
	GID       ot.GlyphIndex
	Codepoint rune  // originating character; 0 for glyphs produced by substitution
	XAdvance  int32 // horizontal advance
	YAdvance  int32 // vertical advance
	XOffset   int32 // horizontal placement offset
	YOffset   int32 // vertical placement offset
}

// cloneGlyphs copies a glyph sequence so an engine can adjust positioning
// values without touching the caller's slice.
func cloneGlyphs(glyphs []ShapedGlyph) []ShapedGlyph {
	out := make([]ShapedGlyph, len(glyphs))
	copy(out, glyphs)
	return out
}

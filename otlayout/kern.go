package otlayout

import "github.com/npillmayer/otshaper/ot"

// ApplyKerning applies legacy kern-table pairs to a glyph sequence and
// returns the resulting sequence. The input is not modified.
//
// This is the fallback for fonts without a GPOS table: for every adjacent
// pair with both glyphs addressable, the signed kerning value is added to the
// first glyph's horizontal advance only. This is asymmetric and strictly
// weaker than GPOS pair adjustment, and the two must never both run for the
// same shape call (the orchestrator in package otshape enforces the
// exclusivity).
func ApplyKerning(glyphs []ShapedGlyph, kern ot.KernTable) []ShapedGlyph {
	if len(kern) == 0 || len(glyphs) == 0 {
		return glyphs
	}
	out := cloneGlyphs(glyphs)
	for i := 0; i+1 < len(out); i++ {
		first, second := out[i].GID, out[i+1].GID
		if !first.Addressable() || !second.Addressable() {
			continue
		}
		if delta, ok := kern[ot.GlyphPair{First: first, Second: second}]; ok {
			tracer().Debugf("kern pair (%d,%d): %d", first, second, delta)
			out[i].XAdvance += delta
		}
	}
	return out
}

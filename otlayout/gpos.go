package otlayout

import "github.com/npillmayer/otshaper/ot"

// ApplyPositioning runs an ordered list of GPOS lookups over a glyph sequence
// and returns the resulting sequence. Positioning never changes the number of
// glyphs; the result has exactly the length of the input. The input sequence
// itself is not modified (the engine works on a copy, for uniformity with the
// substitution engine and for testability).
//
// Adjustments from different subtables and lookups accumulate additively:
// later lookups add onto earlier results, they do not replace them. Lookup
// indices beyond the table's lookup list are skipped silently.
func ApplyPositioning(otf *ot.Font, glyphs []ShapedGlyph, lookups []int) []ShapedGlyph {
	if otf == nil || otf.Layout.GPos == nil || len(glyphs) == 0 {
		return glyphs
	}
	out := cloneGlyphs(glyphs)
	for _, linx := range lookups {
		lookup := otf.Layout.GPos.LookupAt(linx)
		if lookup == nil {
			tracer().Debugf("GPOS lookup index %d out of range, skipped", linx)
			continue
		}
		tracer().Debugf("applying GPOS lookup #%d, type %d, %d subtable(s)",
			linx, lookup.Type, len(lookup.Subtables))
		for _, sub := range lookup.Subtables {
			applyGPosSubtable(out, sub)
		}
	}
	return out
}

func applyGPosSubtable(glyphs []ShapedGlyph, sub ot.Subtable) {
	switch s := sub.(type) {
	case ot.SinglePos:
		gposSingle(glyphs, s)
	case ot.PairPos:
		gposPair(glyphs, s)
	case ot.MarkToBasePos, ot.MarkToMarkPos, ot.CursivePos:
		// recognized, but anchor data is not modeled; applied as no-op
		tracer().Debugf("GPOS attachment subtable type %d recognized, not applied", sub.LookupType())
	default:
		// substitution subtable in a GPOS lookup: a font defect, contribute nothing
		tracer().Errorf("GPOS lookup carries subtable of type %d, skipped", sub.LookupType())
	}
}

// GPOS LookupType 1: Single Adjustment
//
// “A single adjustment positioning subtable is used to adjust the placement
// or advance of a single glyph.” The value record is added onto the glyph's
// current values.
func gposSingle(glyphs []ShapedGlyph, sub ot.SinglePos) {
	for i := range glyphs {
		if !glyphs[i].GID.Addressable() {
			continue
		}
		val, ok := sub[glyphs[i].GID]
		if !ok {
			continue
		}
		tracer().Debugf("OT lookup GPOS 1: adjust glyph %d by %+v", glyphs[i].GID, val)
		addValueRecord(&glyphs[i], val)
	}
}

// GPOS LookupType 2: Pair Adjustment
//
// “A pair adjustment positioning subtable is used to adjust the placement or
// advances of two glyphs in relation to one another — for instance, to
// specify kerning data for pairs of glyphs.” For every adjacent pair with
// both glyphs addressable, the first value record is added to the first glyph
// and the second value record to the second glyph.
func gposPair(glyphs []ShapedGlyph, sub ot.PairPos) {
	for i := 0; i+1 < len(glyphs); i++ {
		first, second := glyphs[i].GID, glyphs[i+1].GID
		if !first.Addressable() || !second.Addressable() {
			continue
		}
		adjust, ok := sub[ot.GlyphPair{First: first, Second: second}]
		if !ok {
			continue
		}
		tracer().Debugf("OT lookup GPOS 2: adjust pair (%d,%d)", first, second)
		addValueRecord(&glyphs[i], adjust.First)
		addValueRecord(&glyphs[i+1], adjust.Second)
	}
}

func addValueRecord(g *ShapedGlyph, val ot.ValueRecord) {
	g.XOffset += val.XPlacement
	g.YOffset += val.YPlacement
	g.XAdvance += val.XAdvance
	g.YAdvance += val.YAdvance
}

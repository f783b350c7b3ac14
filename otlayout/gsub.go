package otlayout

import (
	"sort"

	"github.com/npillmayer/otshaper/ot"
	"github.com/npillmayer/otshaper/otquery"
)

// ApplySubstitutions runs an ordered list of GSUB lookups over a glyph
// sequence and returns the resulting sequence, which may be shorter or longer
// than the input. The input sequence is not modified.
//
// Lookups are applied in the order given, which must be the resolver's
// feature-declared order (see LookupIndices). Within a lookup, subtables are
// applied in table order; each subtable transforms the whole current sequence
// before the next subtable runs. Lookup indices beyond the table's lookup
// list are skipped silently — malformed or truncated tables degrade shaping
// quality, they never abort it.
func ApplySubstitutions(otf *ot.Font, glyphs []ShapedGlyph, lookups []int) []ShapedGlyph {
	if otf == nil || otf.Layout.GSub == nil || len(glyphs) == 0 {
		return glyphs
	}
	out := cloneGlyphs(glyphs)
	for _, linx := range lookups {
		lookup := otf.Layout.GSub.LookupAt(linx)
		if lookup == nil {
			tracer().Debugf("GSUB lookup index %d out of range, skipped", linx)
			continue
		}
		tracer().Debugf("applying GSUB lookup #%d, type %d, %d subtable(s)",
			linx, lookup.Type, len(lookup.Subtables))
		for _, sub := range lookup.Subtables {
			out = applyGSubSubtable(otf, out, sub)
		}
	}
	return out
}

func applyGSubSubtable(otf *ot.Font, glyphs []ShapedGlyph, sub ot.Subtable) []ShapedGlyph {
	switch s := sub.(type) {
	case ot.SingleSubst:
		return gsubSingle(otf, glyphs, s)
	case ot.MultipleSubst:
		return gsubMultiple(otf, glyphs, s)
	case ot.AlternateSubst:
		return gsubAlternate(otf, glyphs, s)
	case ot.LigatureSubst:
		return gsubLigature(otf, glyphs, s)
	default:
		// positioning subtable in a GSUB lookup: a font defect, contribute nothing
		tracer().Errorf("GSUB lookup carries subtable of type %d, skipped", sub.LookupType())
		return glyphs
	}
}

// GSUB LookupType 1: Single Substitution
//
// “Single substitution subtables tell a client to replace a single glyph with
// another glyph.” Replacement happens in place; the advance width is
// recomputed from the font's metrics for the substitute glyph, and the
// originating code-point is carried over.
func gsubSingle(otf *ot.Font, glyphs []ShapedGlyph, sub ot.SingleSubst) []ShapedGlyph {
	out := make([]ShapedGlyph, 0, len(glyphs))
	for _, g := range glyphs {
		if !g.GID.Addressable() { // 16-bit rule fields cannot refer to this glyph
			out = append(out, g)
			continue
		}
		subst, ok := sub[g.GID]
		if !ok {
			out = append(out, g)
			continue
		}
		tracer().Debugf("OT lookup GSUB 1: subst %d for %d", subst, g.GID)
		out = append(out, newShapedGlyph(otf, subst, g.Codepoint))
	}
	return out
}

// GSUB LookupType 2: Multiple Substitution
//
// “A Multiple Substitution subtable replaces a single glyph with more than
// one glyph, as when multiple glyphs replace a single ligature.” Output
// glyphs are synthesized with their own looked-up advances and carry no
// originating code-point. An empty output sequence leaves the input glyph
// unchanged (GSUB 2 must not delete glyphs).
func gsubMultiple(otf *ot.Font, glyphs []ShapedGlyph, sub ot.MultipleSubst) []ShapedGlyph {
	out := make([]ShapedGlyph, 0, len(glyphs))
	for _, g := range glyphs {
		if !g.GID.Addressable() {
			out = append(out, g)
			continue
		}
		seq, ok := sub[g.GID]
		if !ok || len(seq) == 0 {
			out = append(out, g)
			continue
		}
		tracer().Debugf("OT lookup GSUB 2: subst %v for %d", seq, g.GID)
		for _, gid := range seq {
			out = append(out, newShapedGlyph(otf, gid, 0))
		}
	}
	return out
}

// GSUB LookupType 3: Alternate Substitution
//
// “An Alternate Substitution subtable identifies any number of aesthetic
// alternatives from which a user can choose a glyph variant to replace the
// input glyph.” No selection mechanism is modeled; the first alternate is the
// deterministic default choice.
func gsubAlternate(otf *ot.Font, glyphs []ShapedGlyph, sub ot.AlternateSubst) []ShapedGlyph {
	out := make([]ShapedGlyph, 0, len(glyphs))
	for _, g := range glyphs {
		if !g.GID.Addressable() {
			out = append(out, g)
			continue
		}
		alts, ok := sub[g.GID]
		if !ok || len(alts) == 0 {
			out = append(out, g)
			continue
		}
		tracer().Debugf("OT lookup GSUB 3: subst %d for %d", alts[0], g.GID)
		out = append(out, newShapedGlyph(otf, alts[0], g.Codepoint))
	}
	return out
}

// GSUB LookupType 4: Ligature Substitution
//
// “A Ligature Substitution subtable identifies ligature substitutions where a
// single glyph replaces multiple glyphs.” The scan runs left to right; for a
// starting glyph the candidate ligatures are tried longest-first (ties broken
// by table order), and the first full match wins. The ligature glyph carries
// the originating code-point of the starting glyph for round-trip
// diagnostics, with its advance looked up fresh.
func gsubLigature(otf *ot.Font, glyphs []ShapedGlyph, sub ot.LigatureSubst) []ShapedGlyph {
	out := make([]ShapedGlyph, 0, len(glyphs))
	for i := 0; i < len(glyphs); {
		g := glyphs[i]
		if !g.GID.Addressable() {
			out = append(out, g)
			i++
			continue
		}
		candidates, ok := sub[g.GID]
		if !ok || len(candidates) == 0 {
			out = append(out, g)
			i++
			continue
		}
		lig, consumed, matched := matchLigature(glyphs, i, candidates)
		if !matched {
			out = append(out, g)
			i++
			continue
		}
		tracer().Debugf("OT lookup GSUB 4: subst %d for %d glyphs at pos %d", lig.Glyph, consumed, i)
		out = append(out, newShapedGlyph(otf, lig.Glyph, g.Codepoint))
		i += consumed
	}
	return out
}

// matchLigature tries the candidate ligatures for glyphs[pos] longest-first
// and returns the first one whose components match the following glyphs
// exactly, together with the total number of glyphs consumed (start glyph
// plus components).
func matchLigature(glyphs []ShapedGlyph, pos int, candidates []ot.Ligature) (ot.Ligature, int, bool) {
	byLength := make([]ot.Ligature, len(candidates))
	copy(byLength, candidates)
	sort.SliceStable(byLength, func(i, j int) bool { // stable: table order breaks ties
		return len(byLength[i].Components) > len(byLength[j].Components)
	})
	for _, lig := range byLength {
		if pos+len(lig.Components) >= len(glyphs) {
			continue // not enough glyphs left
		}
		match := true
		for k, comp := range lig.Components {
			if glyphs[pos+1+k].GID != comp {
				match = false
				break
			}
		}
		if match {
			return lig, len(lig.Components) + 1, true
		}
	}
	return ot.Ligature{}, 0, false
}

// newShapedGlyph synthesizes a glyph with advances looked up from the font's
// metrics and zeroed placement offsets.
func newShapedGlyph(otf *ot.Font, gid ot.GlyphIndex, codepoint rune) ShapedGlyph {
	metrics := otquery.GlyphMetrics(otf, gid)
	return ShapedGlyph{
		GID:       gid,
		Codepoint: codepoint,
		XAdvance:  int32(metrics.Advance),
		YAdvance:  int32(metrics.VAdvance),
	}
}

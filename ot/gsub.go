package ot

// GSUB subtable variants. Comments quote the OpenType specification,
// https://docs.microsoft.com/en-us/typography/opentype/spec/gsub

// SingleSubst is a GSUB LookupType 1 subtable: Single Substitution.
//
// “Single substitution subtables tell a client to replace a single glyph with
// another glyph.” The map carries input glyph → output glyph; both binary
// formats (delta and explicit array) collapse into this representation once
// parsed.
type SingleSubst map[GlyphIndex]GlyphIndex

// LookupType returns GSubLookupTypeSingle.
func (SingleSubst) LookupType() LayoutTableLookupType { return GSubLookupTypeSingle }

// MultipleSubst is a GSUB LookupType 2 subtable: Multiple Substitution.
//
// “A Multiple Substitution subtable replaces a single glyph with more than
// one glyph, as when multiple glyphs replace a single ligature.” The output
// sequences are ordered; an entry with an empty output sequence is ignored
// during application (the spec disallows deleting glyphs via GSUB 2).
type MultipleSubst map[GlyphIndex][]GlyphIndex

// LookupType returns GSubLookupTypeMultiple.
func (MultipleSubst) LookupType() LayoutTableLookupType { return GSubLookupTypeMultiple }

// AlternateSubst is a GSUB LookupType 3 subtable: Alternate Substitution.
//
// “An Alternate Substitution subtable identifies any number of aesthetic
// alternatives from which a user can choose a glyph variant to replace the
// input glyph.” No selection mechanism is modeled; application always picks
// the first alternate. The full list is kept so a future extension point can
// select without a model change.
type AlternateSubst map[GlyphIndex][]GlyphIndex

// LookupType returns GSubLookupTypeAlternate.
func (AlternateSubst) LookupType() LayoutTableLookupType { return GSubLookupTypeAlternate }

// Ligature is one ligature rule within a LigatureSubst: if the starting glyph
// (the map key) is followed by exactly the component glyphs, the whole
// sequence is replaced by the ligature glyph.
//
// Components holds the required glyphs after the starting glyph, i.e. a
// ligature of n glyphs has n-1 components, mirroring the componentGlyphIDs
// array of the binary Ligature table.
type Ligature struct {
	Glyph      GlyphIndex   // glyph ID of ligature to substitute
	Components []GlyphIndex // glyphs following the start glyph, in sequence order
}

// LigatureSubst is a GSUB LookupType 4 subtable: Ligature Substitution.
//
// “A Ligature Substitution subtable identifies ligature substitutions where a
// single glyph replaces multiple glyphs.” The map keys are the first glyph
// components of each ligature set. Candidates for one starting glyph are kept
// in table order; application tries them longest-first with ties broken by
// table order.
type LigatureSubst map[GlyphIndex][]Ligature

// LookupType returns GSubLookupTypeLigature.
func (LigatureSubst) LookupType() LayoutTableLookupType { return GSubLookupTypeLigature }

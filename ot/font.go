package ot

import "golang.org/x/image/font/sfnt"

// Font represents the layout-relevant structure of an OpenType font.
// It is the read-only hand-over artifact from a font-parsing collaborator:
// constructed once when a font is loaded, then borrowed by shape calls for
// the font's lifetime.
//
// Either or both of the GSUB and GPOS layout tables may be absent (nil); the
// shaping pipeline degrades accordingly. The legacy kern table is consulted
// only when no GPOS table is present.
type Font struct {
	Fontname   string
	UnitsPerEm sfnt.Units
	CMap       GlyphIndexMap // character to glyph mapping, mandatory
	Metrics    *MetricsTable // per-glyph advance widths, mandatory
	Layout     struct {      // OpenType core layout tables
		GSub *LayoutTable // OpenType layout GSUB, optional
		GPos *LayoutTable // OpenType layout GPOS, optional
		Kern KernTable    // legacy kern pairs, fallback for GPOS
	}
}

// GlyphIndexMap maps code-points to glyph indices, i.e. it carries the
// information of a font's cmap table.
type GlyphIndexMap map[rune]GlyphIndex

// Lookup returns the glyph index for a given code-point. The second return
// value is false if the code-point is not mapped by the font.
//
// From the OpenType specification: character codes that do not correspond to
// any glyph in the font should be mapped to glyph index 0 ('.notdef').
// Shaping in this module instead drops unmapped characters from the glyph
// sequence; see otshape.Shape.
func (m GlyphIndexMap) Lookup(codepoint rune) (GlyphIndex, bool) {
	gid, ok := m[codepoint]
	return gid, ok
}

// ReverseLookup returns a code-point producing the given glyph index.
//
// This is an inefficient operation: all code-points contained in the map are
// checked sequentially. If no code-point maps to gid, 0 is returned.
func (m GlyphIndexMap) ReverseLookup(gid GlyphIndex) rune {
	if gid == 0 {
		return 0
	}
	for r, g := range m {
		if g == gid {
			return r
		}
	}
	return 0
}

// MetricsTable carries per-glyph advance widths in font design units, i.e.
// the information of a font's hmtx table, indexed by glyph ID.
type MetricsTable struct {
	Advances        []sfnt.Units // horizontal advance per glyph ID
	VerticalAdvance sfnt.Units   // default vertical advance, 0 for horizontal-only fonts
}

// Advance returns the horizontal advance width for a glyph, or 0 if the glyph
// ID is outside the table.
func (m *MetricsTable) Advance(gid GlyphIndex) sfnt.Units {
	if m == nil || int(gid) >= len(m.Advances) {
		return 0
	}
	return m.Advances[gid]
}

// GlyphPair is a key for pairwise adjustment tables (GPOS pair adjustment and
// the legacy kern table).
type GlyphPair struct {
	First  GlyphIndex
	Second GlyphIndex
}

// KernTable is a flat map of legacy kerning pairs, i.e. the information of a
// font's kern table (format 0, horizontal). Values are signed advance deltas
// in font design units, applied to the first glyph of a pair.
//
// A kern table is a strictly weaker substitute for GPOS pair adjustment and
// must never be applied when the font has a GPOS table.
type KernTable map[GlyphPair]int32

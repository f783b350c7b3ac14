package otquery

import "golang.org/x/image/font/sfnt"

// FontMetricsInfo contains selected metric information for a font.
type FontMetricsInfo struct {
	UnitsPerEm sfnt.Units // design units per em
	MaxAdvance sfnt.Units // maximum advance width over all glyphs
}

// GlyphMetricsInfo contains metric information for a glyph.
type GlyphMetricsInfo struct {
	Advance  sfnt.Units // horizontal advance width
	VAdvance sfnt.Units // vertical advance (font default, 0 for horizontal-only fonts)
}

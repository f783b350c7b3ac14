/*
Package testfont builds a small synthetic OpenType font for tests and demos.

The font covers just enough of the Latin script to exercise the shaping
pipeline: a handful of letters, 'fi'/'ff'/'ffl' ligatures behind a 'liga'
feature, a stylistic alternate behind 'ss01', GPOS pair kerning for 'AV' and
'Va', and an equivalent legacy kern table for fonts-without-GPOS scenarios.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package testfont

import (
	"github.com/npillmayer/otshaper/ot"
	"golang.org/x/image/font/sfnt"
)

// Glyph IDs of the demo font.
const (
	GlyphF  ot.GlyphIndex = 1
	GlyphI  ot.GlyphIndex = 2
	GlyphL  ot.GlyphIndex = 3
	GlyphA  ot.GlyphIndex = 4
	GlyphV  ot.GlyphIndex = 5
	GlyphLa ot.GlyphIndex = 6 // lowercase 'a'
	GlyphLv ot.GlyphIndex = 7 // lowercase 'v'
	GlyphSp ot.GlyphIndex = 8 // space

	GlyphFi   ot.GlyphIndex = 20 // 'fi' ligature
	GlyphFfl  ot.GlyphIndex = 21 // 'ffl' ligature
	GlyphFf   ot.GlyphIndex = 22 // 'ff' ligature
	GlyphAAlt ot.GlyphIndex = 25 // stylistic alternate of 'a'
)

const glyphCount = 32

// Advances of selected glyphs, in design units (em = 1000).
const (
	AdvanceF   = 300
	AdvanceI   = 250
	AdvanceA   = 640
	AdvanceV   = 620
	AdvanceLa  = 480
	AdvanceFi  = 520
	AdvanceFfl = 800
	AdvanceFf  = 560

	KernAV = -80 // kern distance for the (A,V) pair
	KernVa = -40 // kern distance for the (V,a) pair
)

// Demo returns the synthetic demo font. Every call returns a fresh instance,
// so tests may mutate the font (e.g. strip its GPOS table) without affecting
// each other.
func Demo() *ot.Font {
	otf := &ot.Font{
		Fontname:   "otshaper-demo",
		UnitsPerEm: 1000,
		CMap: ot.GlyphIndexMap{
			'f': GlyphF, 'i': GlyphI, 'l': GlyphL,
			'A': GlyphA, 'V': GlyphV,
			'a': GlyphLa, 'v': GlyphLv, ' ': GlyphSp,
		},
	}
	advances := make([]sfnt.Units, glyphCount)
	advances[GlyphF] = AdvanceF
	advances[GlyphI] = AdvanceI
	advances[GlyphL] = 260
	advances[GlyphA] = AdvanceA
	advances[GlyphV] = AdvanceV
	advances[GlyphLa] = AdvanceLa
	advances[GlyphLv] = 460
	advances[GlyphSp] = 250
	advances[GlyphFi] = AdvanceFi
	advances[GlyphFfl] = AdvanceFfl
	advances[GlyphFf] = AdvanceFf
	advances[GlyphAAlt] = 490
	otf.Metrics = &ot.MetricsTable{Advances: advances}
	otf.Layout.GSub = demoGSub()
	otf.Layout.GPos = demoGPos()
	otf.Layout.Kern = ot.KernTable{
		{First: GlyphA, Second: GlyphV}:  KernAV,
		{First: GlyphV, Second: GlyphLa}: KernVa,
	}
	return otf
}

// demoGSub builds the substitution table: feature 'liga' (lookup 0) for the
// default language system, feature 'ss01' (lookup 1) only for 'DEU '.
func demoGSub() *ot.LayoutTable {
	return &ot.LayoutTable{
		Scripts: []ot.Script{
			{Tag: ot.DFLT, LangSys: []ot.LangSys{
				{Tag: ot.DfltLang, FeatureIndices: []int{0}},
			}},
			{Tag: ot.T("latn"), LangSys: []ot.LangSys{
				{Tag: ot.DfltLang, FeatureIndices: []int{0}},
				{Tag: ot.T("DEU "), FeatureIndices: []int{0, 1}},
			}},
		},
		Features: []ot.Feature{
			{Tag: ot.T("liga"), LookupIndices: []int{0}},
			{Tag: ot.T("ss01"), LookupIndices: []int{1}},
		},
		Lookups: []ot.Lookup{
			{Type: ot.GSubLookupTypeLigature, Subtables: []ot.Subtable{
				ot.LigatureSubst{GlyphF: {
					{Glyph: GlyphFi, Components: []ot.GlyphIndex{GlyphI}},
					{Glyph: GlyphFf, Components: []ot.GlyphIndex{GlyphF}},
					{Glyph: GlyphFfl, Components: []ot.GlyphIndex{GlyphF, GlyphL}},
				}},
			}},
			{Type: ot.GSubLookupTypeSingle, Subtables: []ot.Subtable{
				ot.SingleSubst{GlyphLa: GlyphAAlt},
			}},
		},
	}
}

// demoGPos builds the positioning table: feature 'kern' (lookup 0) for the
// default language system of both DFLT and latn.
func demoGPos() *ot.LayoutTable {
	return &ot.LayoutTable{
		Scripts: []ot.Script{
			{Tag: ot.DFLT, LangSys: []ot.LangSys{
				{Tag: ot.DfltLang, FeatureIndices: []int{0}},
			}},
			{Tag: ot.T("latn"), LangSys: []ot.LangSys{
				{Tag: ot.DfltLang, FeatureIndices: []int{0}},
			}},
		},
		Features: []ot.Feature{
			{Tag: ot.T("kern"), LookupIndices: []int{0}},
		},
		Lookups: []ot.Lookup{
			{Type: ot.GPosLookupTypePair, Subtables: []ot.Subtable{
				ot.PairPos{
					{First: GlyphA, Second: GlyphV}:  {First: ot.ValueRecord{XAdvance: KernAV}},
					{First: GlyphV, Second: GlyphLa}: {First: ot.ValueRecord{XAdvance: KernVa}},
				},
			}},
		},
	}
}

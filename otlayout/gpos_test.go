package otlayout

import (
	"testing"

	"github.com/npillmayer/otshaper/ot"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/image/font/sfnt"
)

// gposTestFont has glyphs 30='A' (advance 600) and 31='V' (advance 580).
func gposTestFont() *ot.Font {
	otf := &ot.Font{
		Fontname:   "gpos-test",
		UnitsPerEm: 1000,
		CMap:       ot.GlyphIndexMap{'A': 30, 'V': 31},
	}
	advances := make([]sfnt.Units, 40)
	advances[30], advances[31] = 600, 580
	otf.Metrics = &ot.MetricsTable{Advances: advances}
	return otf
}

func TestGPosPairAdjustment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otshaper")
	defer teardown()
	otf := gposTestFont()
	otf.Layout.GPos = &ot.LayoutTable{
		Lookups: []ot.Lookup{
			{Type: ot.GPosLookupTypePair, Subtables: []ot.Subtable{
				ot.PairPos{
					{First: 30, Second: 31}: {
						First:  ot.ValueRecord{XAdvance: -50},
						Second: ot.ValueRecord{XPlacement: -10},
					},
				},
			}},
		},
	}
	in := glyphSeq(otf, 30, 31)
	out := ApplyPositioning(otf, in, []int{0})
	if len(out) != 2 {
		t.Fatalf("positioning must not change glyph count, got %d", len(out))
	}
	if out[0].XAdvance != 600-50 {
		t.Errorf("expected first advance 550, got %d", out[0].XAdvance)
	}
	if out[1].XOffset != -10 {
		t.Errorf("expected second placement -10, got %d", out[1].XOffset)
	}
	if in[0].XAdvance != 600 {
		t.Errorf("input sequence must not be modified")
	}
}

func TestGPosAdjustmentsAccumulate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otshaper")
	defer teardown()
	// Two lookups both adjust the (A,V) pair; later lookups add onto earlier
	// results, they do not replace them.
	otf := gposTestFont()
	otf.Layout.GPos = &ot.LayoutTable{
		Lookups: []ot.Lookup{
			{Type: ot.GPosLookupTypePair, Subtables: []ot.Subtable{
				ot.PairPos{{First: 30, Second: 31}: {First: ot.ValueRecord{XAdvance: -50}}},
			}},
			{Type: ot.GPosLookupTypeSingle, Subtables: []ot.Subtable{
				ot.SinglePos{30: {XAdvance: -5, YPlacement: 12}},
			}},
		},
	}
	out := ApplyPositioning(otf, glyphSeq(otf, 30, 31), []int{0, 1})
	if out[0].XAdvance != 600-50-5 {
		t.Errorf("expected accumulated advance 545, got %d", out[0].XAdvance)
	}
	if out[0].YOffset != 12 {
		t.Errorf("expected y-placement 12, got %d", out[0].YOffset)
	}
}

func TestGPosMarkSubtablesAreNoOps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otshaper")
	defer teardown()
	otf := gposTestFont()
	otf.Layout.GPos = &ot.LayoutTable{
		Lookups: []ot.Lookup{
			{Type: ot.GPosLookupTypeMarkToBase, Subtables: []ot.Subtable{ot.MarkToBasePos{}}},
			{Type: ot.GPosLookupTypeMarkToMark, Subtables: []ot.Subtable{ot.MarkToMarkPos{}}},
			{Type: ot.GPosLookupTypeCursive, Subtables: []ot.Subtable{ot.CursivePos{}}},
		},
	}
	in := glyphSeq(otf, 30, 31)
	out := ApplyPositioning(otf, in, []int{0, 1, 2})
	for i := range out {
		if out[i] != in[i] {
			t.Errorf("attachment subtables must not change glyph #%d", i)
		}
	}
}

func TestGPosSkipsUnaddressablePairs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otshaper")
	defer teardown()
	otf := gposTestFont()
	otf.Layout.GPos = &ot.LayoutTable{
		Lookups: []ot.Lookup{
			{Type: ot.GPosLookupTypeSingle, Subtables: []ot.Subtable{
				ot.SinglePos{30: {XAdvance: -5}},
			}},
		},
	}
	big := ShapedGlyph{GID: 0x2_0000, XAdvance: 700}
	out := ApplyPositioning(otf, []ShapedGlyph{big}, []int{0})
	if out[0].XAdvance != 700 {
		t.Errorf("glyph beyond 0xFFFF must pass through unmodified")
	}
}

func TestLegacyKerningAdjustsFirstGlyphOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otshaper")
	defer teardown()
	otf := gposTestFont()
	kern := ot.KernTable{{First: 30, Second: 31}: -72}
	in := glyphSeq(otf, 30, 31)
	out := ApplyKerning(in, kern)
	if out[0].XAdvance != 600-72 {
		t.Errorf("expected kerned advance 528, got %d", out[0].XAdvance)
	}
	if out[1].XAdvance != 580 || out[1].XOffset != 0 {
		t.Errorf("legacy kerning must not touch the second glyph")
	}
	if in[0].XAdvance != 600 {
		t.Errorf("input sequence must not be modified")
	}
}

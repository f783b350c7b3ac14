package otquery

import (
	"testing"

	"github.com/npillmayer/otshaper/ot"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/sfnt"
)

func TestGlyphIndexLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otshaper")
	defer teardown()
	otf := &ot.Font{
		CMap: ot.GlyphIndexMap{'f': 10, 'i': 11},
	}
	gid, ok := GlyphIndex(otf, 'f')
	assert.True(t, ok, "expected 'f' to be mapped")
	assert.Equal(t, ot.GlyphIndex(10), gid)
	_, ok = GlyphIndex(otf, 'x')
	assert.False(t, ok, "expected 'x' to be unmapped")
}

func TestCodePointForGlyph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otshaper")
	defer teardown()
	otf := &ot.Font{
		CMap: ot.GlyphIndexMap{'f': 10, 'i': 11},
	}
	assert.Equal(t, 'i', CodePointForGlyph(otf, 11))
	assert.Equal(t, rune(0), CodePointForGlyph(otf, 99))
}

func TestGlyphMetricsOutOfRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otshaper")
	defer teardown()
	otf := &ot.Font{
		UnitsPerEm: 1000,
		Metrics:    &ot.MetricsTable{Advances: []sfnt.Units{500, 300}},
	}
	assert.Equal(t, sfnt.Units(300), GlyphMetrics(otf, 1).Advance)
	assert.Equal(t, sfnt.Units(0), GlyphMetrics(otf, 7).Advance, "out-of-range glyph has zero advance")
}

func TestFontSupportsScriptFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otshaper")
	defer teardown()
	otf := &ot.Font{}
	otf.Layout.GSub = &ot.LayoutTable{
		Scripts: []ot.Script{
			{Tag: ot.T("latn"), LangSys: []ot.LangSys{{Tag: ot.DfltLang}}},
		},
	}
	scr, lang := FontSupportsScript(otf, ot.T("latn"), ot.T("DEU "))
	assert.Equal(t, ot.T("latn"), scr)
	assert.Equal(t, ot.DfltLang, lang, "unsupported language falls back to dflt")
	scr, _ = FontSupportsScript(otf, ot.T("arab"), 0)
	assert.Equal(t, ot.DFLT, scr, "unsupported script falls back to DFLT")
}

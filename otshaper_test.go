package otshaper

import (
	"testing"

	"github.com/npillmayer/otshaper/internal/testfont"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestShapeText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otshaper")
	defer teardown()
	otf := testfont.Demo()
	run := ShapeText(otf, "fi")
	assert.Equal(t, 1, run.Len(), "expected 'fi' to shape to a single ligature glyph")
	assert.Equal(t, testfont.GlyphFi, run.Glyphs[0].GID)
	assert.EqualValues(t, testfont.AdvanceFi, run.TotalAdvance())
}

func TestShapeTextNilFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otshaper")
	defer teardown()
	run := ShapeText(nil, "fi")
	assert.Equal(t, 0, run.Len())
}

func TestShapeRun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otshaper")
	defer teardown()
	otf := testfont.Demo()
	run := ShapeRun(otf, "AV", language.MustParseScript("Latn"), language.English)
	assert.Equal(t, 2, run.Len())
	assert.EqualValues(t, testfont.AdvanceA+testfont.KernAV, run.Glyphs[0].XAdvance)
}

package otshape

import (
	"testing"

	"github.com/npillmayer/otshaper/internal/testfont"
	"github.com/npillmayer/otshaper/ot"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type ShapeTestEnviron struct {
	suite.Suite
	demo *ot.Font
}

// listen for 'go test' command --> run test methods
func TestShapeFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otshaper")
	defer teardown()
	suite.Run(t, new(ShapeTestEnviron))
}

// run once, before test suite methods
func (env *ShapeTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("otshaper").SetTraceLevel(tracing.LevelInfo)
	env.demo = testfont.Demo()
}

// run once, after test suite methods
func (env *ShapeTestEnviron) TearDownSuite() {
	env.T().Log("Tearing down test suite")
}

// --- Tests -----------------------------------------------------------------

func (env *ShapeTestEnviron) TestShapePlainRun() {
	run := Shape(env.demo, "Va", Params{})
	env.Equal(2, run.Len(), "expected two glyphs for 'Va'")
	env.Equal(testfont.GlyphV, run.Glyphs[0].GID)
	env.Equal(testfont.GlyphLa, run.Glyphs[1].GID)
	env.EqualValues(testfont.AdvanceV+testfont.KernVa+testfont.AdvanceLa, run.TotalAdvance())
}

func (env *ShapeTestEnviron) TestShapeEmptyText() {
	run := Shape(env.demo, "", Params{})
	env.Equal(0, run.Len())
	env.EqualValues(0, run.TotalAdvance())
}

func (env *ShapeTestEnviron) TestShapeIsDeterministic() {
	first := Shape(env.demo, "ffl AV fi", Params{})
	second := Shape(env.demo, "ffl AV fi", Params{})
	env.Equal(first.Glyphs, second.Glyphs, "identical inputs must shape identically")
}

func (env *ShapeTestEnviron) TestTotalAdvanceIsSumOfGlyphAdvances() {
	run := Shape(env.demo, "AV fi", Params{})
	var sum int32
	for _, g := range run.Glyphs {
		sum += g.XAdvance
	}
	env.Equal(sum, run.TotalAdvance())
}

func (env *ShapeTestEnviron) TestShapeLigature() {
	run := Shape(env.demo, "fi", Params{})
	env.Equal(1, run.Len(), "expected 'fi' to form a ligature")
	env.Equal(testfont.GlyphFi, run.Glyphs[0].GID)
	env.EqualValues(testfont.AdvanceFi, run.TotalAdvance())
}

func (env *ShapeTestEnviron) TestShapeLongestLigatureWins() {
	run := Shape(env.demo, "ffl", Params{})
	env.Equal(1, run.Len(), "expected 'ffl' to form a single ligature")
	env.Equal(testfont.GlyphFfl, run.Glyphs[0].GID)
	// with no 'l' following, the shorter 'ff' ligature must form instead
	run = Shape(env.demo, "ff", Params{})
	env.Equal(1, run.Len())
	env.Equal(testfont.GlyphFf, run.Glyphs[0].GID)
}

func (env *ShapeTestEnviron) TestDisabledFeatureIsNotApplied() {
	run := Shape(env.demo, "fi", Params{Features: DefaultFeatures().Without(ot.T("liga"))})
	env.Equal(2, run.Len(), "ligature must not form with 'liga' disabled")
	env.Equal(testfont.GlyphF, run.Glyphs[0].GID)
	env.Equal(testfont.GlyphI, run.Glyphs[1].GID)
}

func (env *ShapeTestEnviron) TestEmptyFeatureSetShapesUnchanged() {
	run := Shape(env.demo, "fi", Params{Features: FeatureSet{}})
	env.Equal(2, run.Len(), "no feature may fire with an empty feature set")
	env.EqualValues(testfont.AdvanceF+testfont.AdvanceI, run.TotalAdvance())
}

func (env *ShapeTestEnviron) TestLanguageSpecificFeature() {
	// 'ss01' substitutes the alternate 'a' form, but only for language 'DEU '
	params := Params{Language: ot.T("DEU "), Features: DefaultFeatures().With(ot.T("ss01"))}
	run := Shape(env.demo, "a", params)
	env.Equal(1, run.Len())
	env.Equal(testfont.GlyphAAlt, run.Glyphs[0].GID)
	// same feature set under the default language system: no substitution
	run = Shape(env.demo, "a", Params{Features: DefaultFeatures().With(ot.T("ss01"))})
	env.Equal(testfont.GlyphLa, run.Glyphs[0].GID)
}

func (env *ShapeTestEnviron) TestShapeKerning() {
	run := Shape(env.demo, "AV", Params{})
	env.Equal(2, run.Len())
	env.EqualValues(testfont.AdvanceA+testfont.KernAV, run.Glyphs[0].XAdvance)
	env.EqualValues(testfont.AdvanceV, run.Glyphs[1].XAdvance)
}

func (env *ShapeTestEnviron) TestKernFallbackWithoutGPos() {
	otf := testfont.Demo()
	otf.Layout.GPos = nil
	run := Shape(otf, "AV", Params{})
	env.EqualValues(testfont.AdvanceA+testfont.KernAV, run.Glyphs[0].XAdvance,
		"legacy kern pairs must apply when the font has no GPOS table")
	// kern feature off: neither GPOS nor the legacy table may fire
	run = Shape(otf, "AV", Params{Features: DefaultFeatures().Without(ot.T("kern"))})
	env.EqualValues(testfont.AdvanceA, run.Glyphs[0].XAdvance)
}

func (env *ShapeTestEnviron) TestLegacyKernIgnoredWithGPos() {
	// the demo font carries both GPOS kerning and an equivalent kern table;
	// only one of them may be applied
	run := Shape(env.demo, "AV", Params{})
	env.EqualValues(testfont.AdvanceA+testfont.KernAV, run.Glyphs[0].XAdvance)
}

func (env *ShapeTestEnviron) TestUnmappedCharactersAreDropped() {
	run := Shape(env.demo, "fxi", Params{})
	env.Equal(1, run.Len(), "dropping 'x' makes 'f' and 'i' adjacent, forming the ligature")
	env.Equal(testfont.GlyphFi, run.Glyphs[0].GID)
}

func (env *ShapeTestEnviron) TestUnknownScriptFallsBackToDefault() {
	run := Shape(env.demo, "fi", Params{Script: ot.T("grek")})
	env.Equal(1, run.Len(), "DFLT script features must apply for scripts absent from the font")
	env.Equal(testfont.GlyphFi, run.Glyphs[0].GID)
}

func (env *ShapeTestEnviron) TestShapeFontWithoutLayoutTables() {
	otf := testfont.Demo()
	otf.Layout.GSub, otf.Layout.GPos, otf.Layout.Kern = nil, nil, nil
	run := Shape(otf, "fi AV", Params{})
	env.Equal(5, run.Len(), "shaping degrades to plain cmap+metrics mapping")
	env.EqualValues(testfont.GlyphF, run.Glyphs[0].GID)
}

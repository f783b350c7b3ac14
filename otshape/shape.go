package otshape

import (
	"github.com/npillmayer/otshaper/ot"
	"github.com/npillmayer/otshaper/otlayout"
	"github.com/npillmayer/otshaper/otquery"
)

// Params selects script, language and enabled features for a shape call.
// The zero value requests Latin script with the default language system and
// the conventional default feature set.
type Params struct {
	Script   ot.Tag     // OpenType script tag, e.g. T("latn"); 0 means latn
	Language ot.Tag     // OpenType language tag, e.g. T("DEU "); 0 means dflt
	Features FeatureSet // enabled features; nil means DefaultFeatures()
}

func (p Params) withDefaults() Params {
	if p.Script == 0 {
		p.Script = ot.T("latn")
	}
	if p.Language == 0 {
		p.Language = ot.DfltLang
	}
	if p.Features == nil {
		p.Features = DefaultFeatures()
	}
	return p
}

// GlyphRun is the sole output artifact of shaping: an ordered sequence of
// shaped glyphs. It owns no reference back to font data and may be retained
// or discarded independently of the font.
type GlyphRun struct {
	Glyphs []otlayout.ShapedGlyph
}

// Len returns the number of glyphs in the run.
func (run GlyphRun) Len() int {
	return len(run.Glyphs)
}

// TotalAdvance returns the sum of the horizontal advances of all glyphs in
// the run. It is derived, never stored, so it always equals the arithmetic
// sum of the per-glyph advances.
func (run GlyphRun) TotalAdvance() int32 {
	var total int32
	for _, g := range run.Glyphs {
		total += g.XAdvance
	}
	return total
}

// Shape shapes text into a glyph run according to params.
//
// The pipeline maps each character to its glyph, initializes advances from
// the font's metrics, applies GSUB substitutions and GPOS positioning for the
// resolved script/language/features, and falls back to legacy kern pairs when
// and only when the font has no GPOS table.
//
// Characters absent from the font's character map are dropped from the
// sequence, so the run may hold fewer glyphs than text has characters;
// downstream cursor mapping must not assume equal lengths. Nothing in the
// pipeline is a fatal error: missing tables, unknown scripts and malformed
// indices all degrade to identity transforms, and the best-effort run is
// returned.
func Shape(otf *ot.Font, text string, params Params) GlyphRun {
	if otf == nil || text == "" {
		return GlyphRun{}
	}
	params = params.withDefaults()
	glyphs := mapGlyphs(otf, text)
	if len(glyphs) == 0 {
		return GlyphRun{}
	}
	if otf.Layout.GSub != nil {
		lookups := otlayout.LookupIndices(otf.Layout.GSub, params.Script, params.Language, params.Features)
		tracer().Debugf("shaping %q: %d GSUB lookup(s)", text, len(lookups))
		glyphs = otlayout.ApplySubstitutions(otf, glyphs, lookups)
	}
	if otf.Layout.GPos != nil {
		lookups := otlayout.LookupIndices(otf.Layout.GPos, params.Script, params.Language, params.Features)
		tracer().Debugf("shaping %q: %d GPOS lookup(s)", text, len(lookups))
		glyphs = otlayout.ApplyPositioning(otf, glyphs, lookups)
	} else if len(otf.Layout.Kern) != 0 && params.Features[ot.T("kern")] {
		tracer().Debugf("shaping %q: no GPOS, applying legacy kern pairs", text)
		glyphs = otlayout.ApplyKerning(glyphs, otf.Layout.Kern)
	}
	return GlyphRun{Glyphs: glyphs}
}

// mapGlyphs maps the characters of text to glyphs with their design-unit
// advances. Unmapped characters are dropped.
func mapGlyphs(otf *ot.Font, text string) []otlayout.ShapedGlyph {
	glyphs := make([]otlayout.ShapedGlyph, 0, len(text))
	for _, r := range text {
		gid, ok := otquery.GlyphIndex(otf, r)
		if !ok {
			tracer().Infof("code-point %#U has no glyph in font %s, dropped", r, otf.Fontname)
			continue
		}
		metrics := otquery.GlyphMetrics(otf, gid)
		glyphs = append(glyphs, otlayout.ShapedGlyph{
			GID:       gid,
			Codepoint: r,
			XAdvance:  int32(metrics.Advance),
			YAdvance:  int32(metrics.VAdvance),
		})
	}
	return glyphs
}

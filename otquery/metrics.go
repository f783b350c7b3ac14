/*
Package otquery provides read-only queries against the font model of package
ot: character-to-glyph mapping, glyph metrics and script support. It is the
interface surface the shaping orchestrator consumes from a loaded font.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otquery

import (
	"github.com/npillmayer/otshaper/ot"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'otshaper'
func tracer() tracing.Trace {
	return tracing.Select("otshaper")
}

// --- Font Information -------------------------------------------------

// FontSupportsScript returns a tuple (script-tag, language-tag) for a given
// input of a script tag and a language tag. If the language has no special
// support in the font, dflt will be returned. If the script has no support in
// the font, DFLT will be returned for the script.
func FontSupportsScript(otf *ot.Font, scr ot.Tag, lang ot.Tag) (ot.Tag, ot.Tag) {
	if otf == nil {
		return 0, 0
	}
	gsub := otf.Layout.GSub
	if gsub == nil {
		return ot.DFLT, ot.DfltLang
	}
	script := gsub.Script(scr)
	if script == nil {
		tracer().Infof("cannot find script %s in font", scr.String())
		return ot.DFLT, ot.DfltLang
	}
	tracer().Debugf("script %s is contained in GSUB", scr.String())
	if script.LangSysFor(lang) != nil {
		return scr, lang
	}
	return scr, ot.DfltLang
}

// FontMetrics retrieves selected metrics of a font.
func FontMetrics(otf *ot.Font) FontMetricsInfo {
	metrics := FontMetricsInfo{}
	if otf == nil {
		return metrics
	}
	metrics.UnitsPerEm = otf.UnitsPerEm
	if otf.Metrics != nil {
		for _, adv := range otf.Metrics.Advances {
			if adv > metrics.MaxAdvance {
				metrics.MaxAdvance = adv
			}
		}
	}
	return metrics
}

// --- Glyph Routines --------------------------------------------------------

// GlyphIndex returns the glyph index for a given code-point. The second
// return value is false if the code-point is not mapped by the font's cmap.
//
// From the OpenType specification: character codes that do not correspond to
// any glyph in the font should be mapped to glyph index 0 ('.notdef'). The
// shaping pipeline of this module drops such characters instead; callers that
// want a '.notdef' placeholder must handle the false case themselves.
func GlyphIndex(otf *ot.Font, codepoint rune) (ot.GlyphIndex, bool) {
	if otf == nil || otf.CMap == nil {
		return 0, false
	}
	return otf.CMap.Lookup(codepoint)
}

// CodePointForGlyph returns the code-point for a given glyph index.
//
// This is an inefficient operation: all code-points contained in the font's
// cmap are checked sequentially if they produce the given glyph. If the glyph
// index does not correspond to a code-point, 0 is returned.
func CodePointForGlyph(otf *ot.Font, gid ot.GlyphIndex) rune {
	if otf == nil || otf.CMap == nil {
		return 0
	}
	return otf.CMap.ReverseLookup(gid)
}

// GlyphMetrics retrieves metrics for a given glyph. A glyph ID outside the
// font's metrics table yields a zero advance.
func GlyphMetrics(otf *ot.Font, gid ot.GlyphIndex) GlyphMetricsInfo {
	metrics := GlyphMetricsInfo{}
	if otf == nil || otf.Metrics == nil {
		return metrics
	}
	metrics.Advance = otf.Metrics.Advance(gid)
	metrics.VAdvance = otf.Metrics.VerticalAdvance
	return metrics
}

// GlyphAdvance is a shorthand for the horizontal advance of a glyph, 0 if the
// glyph ID is out of range.
func GlyphAdvance(otf *ot.Font, gid ot.GlyphIndex) sfnt.Units {
	if otf == nil {
		return 0
	}
	return otf.Metrics.Advance(gid)
}

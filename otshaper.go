/*
Package otshaper shapes text with OpenType fonts.

Shaping turns a sequence of characters into a positioned sequence of glyphs,
applying the substitution (GSUB) and positioning (GPOS) rules a font defines
for a script and language. This root package offers convenience entry points
for the common cases; clients who need control over scripts, languages or the
enabled feature set use package otshape directly, and the packages ot,
otquery and otlayout expose the underlying font model, query functions and
layout engines.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otshaper

import (
	"github.com/npillmayer/otshaper/ot"
	"github.com/npillmayer/otshaper/otshape"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
)

// tracer writes to trace with key 'otshaper'
func tracer() tracing.Trace {
	return tracing.Select("otshaper")
}

// ShapeText shapes UTF-8 text as one left-to-right run in “Latin” (i.e.,
// Western) script, with the font's default language system and the
// conventional default features (standard ligatures, kerning).
//
// This is a convenience API for a very common use-case of short pieces of
// Western text. Clients who need more control over shaping, such as using
// different scripts, languages or feature sets, need to use package otshape
// directly. If otf is nil or text is empty, an empty run is returned.
func ShapeText(otf *ot.Font, text string) otshape.GlyphRun {
	return otshape.Shape(otf, text, otshape.Params{})
}

// ShapeRun shapes UTF-8 text for a BCP 47 script and language, deriving the
// OpenType script and language tags from the given x/text values.
//
// Unrecognized scripts shape under the font's DFLT script; languages not
// matched with at least low confidence shape under the default language
// system of the script.
func ShapeRun(otf *ot.Font, text string, scr language.Script, lang language.Tag) otshape.GlyphRun {
	scriptTag := otshape.ScriptTagForScript(scr)
	langTag := otshape.LanguageTagForLanguage(lang, language.Low)
	tracer().Debugf("shaping run with script %s, language %s", scriptTag, langTag)
	return otshape.Shape(otf, text, otshape.Params{
		Script:   scriptTag,
		Language: langTag,
	})
}

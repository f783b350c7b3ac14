package otlayout

import (
	"fmt"

	"github.com/npillmayer/otshaper/ot"
)

// From the specification website
// https://docs.microsoft.com/en-us/typography/opentype/spec/featuretags :
//
// “Features provide information about how to use the glyphs in a font to render a script or
// language. For example, an Arabic font might have a feature for substituting initial glyph
// forms, and a Kanji font might have a feature for positioning glyphs vertically. All
// OpenType Layout features define data for glyph substitution, glyph positioning, or both.”
//
// A feature uses ‘lookups’ to do operations on glyphs. GSUB and GPOS tables store lookups in a
// LookupList, into which features link by maintaining a list of indices into the LookupList.
// The order of the lookup indices matters.

// LookupIndices resolves the ordered list of lookup indices to apply for a
// script/language request against a layout table (GSUB or GPOS).
//
// Resolution walks script → language system → features → lookups:
//   - The script tag is looked up in the table; if absent, DFLT is tried. If
//     neither is present, the empty list is returned (pass-through shaping).
//   - Within the script, the language tag is looked up; if absent, the dflt
//     language system of that script is tried. If neither is present, the
//     empty list is returned.
//   - For every feature index of the resolved language system whose feature
//     tag is a member of enabled, all of that feature's lookup indices are
//     appended in table order.
//
// Lookup indices are appended without deduplication: a lookup index may
// legitimately be referenced by more than one feature and is then applied
// once per occurrence, matching the observed behavior of reference
// renderers.
//
// Absence is always resolved by fallback, never an error. Feature indices
// beyond the table's feature list are skipped silently.
func LookupIndices(lyt *ot.LayoutTable, script, lang ot.Tag, enabled map[ot.Tag]bool) []int {
	if lyt == nil || len(enabled) == 0 {
		return nil
	}
	scr := lyt.Script(script)
	if scr == nil && script != ot.DFLT {
		tracer().Debugf("script %s not in layout table, trying DFLT", script)
		scr = lyt.Script(ot.DFLT)
	}
	if scr == nil {
		tracer().Infof("layout table has no feature-links from script %s", script)
		return nil
	}
	lsys := scr.LangSysFor(lang)
	if lsys == nil && lang != ot.DfltLang {
		tracer().Debugf("language %s not in script %s, trying dflt", lang, scr.Tag)
		lsys = scr.LangSysFor(ot.DfltLang)
	}
	if lsys == nil {
		tracer().Infof("script %s has no language system for %s", scr.Tag, lang)
		return nil
	}
	var lookups []int
	for _, finx := range lsys.FeatureIndices {
		feat := lyt.FeatureAt(finx)
		if feat == nil { // out-of-range feature index: contributes nothing
			tracer().Debugf("feature index %d out of range, skipped", finx)
			continue
		}
		if !enabled[feat.Tag] {
			continue
		}
		tracer().Debugf("feature %s contributes lookups %v", feat.Tag, feat.LookupIndices)
		lookups = append(lookups, feat.LookupIndices...)
	}
	return lookups
}

// --- Feature tag registry --------------------------------------------------

// LayoutTagType denotes the type of an OpenType layout tag as registered here:
// https://docs.microsoft.com/en-us/typography/opentype/spec/ttoreg
type LayoutTagType uint8

const (
	GSubFeatureType LayoutTagType = 1
	GPosFeatureType LayoutTagType = 2
	ScriptType      LayoutTagType = 3
	LanguageType    LayoutTagType = 4
)

// RegisteredFeatureTags classifies commonly used layout features registered at
// https://docs.microsoft.com/en-us/typography/opentype/spec/featurelist.
//
// Please note: features 'cv01'–'cv99' and features 'ss01'–'ss20' are not
// listed here, but are recognized by IdentifyFeatureTag. Some features are
// not strictly required to exclusively be in GSUB or GPOS; the classification
// here follows their predominant use.
var RegisteredFeatureTags = map[ot.Tag]LayoutTagType{
	ot.T("aalt"): GSubFeatureType, // Access All Alternates
	ot.T("calt"): GSubFeatureType, // Contextual Alternates
	ot.T("case"): GSubFeatureType, // Case-Sensitive Forms
	ot.T("ccmp"): GSubFeatureType, // Glyph Composition / Decomposition
	ot.T("clig"): GSubFeatureType, // Contextual Ligatures
	ot.T("curs"): GPosFeatureType, // Cursive Positioning
	ot.T("c2sc"): GSubFeatureType, // Small Capitals From Capitals
	ot.T("dist"): GPosFeatureType, // Distances
	ot.T("dlig"): GSubFeatureType, // Discretionary Ligatures
	ot.T("dnom"): GSubFeatureType, // Denominators
	ot.T("frac"): GSubFeatureType, // Fractions
	ot.T("hlig"): GSubFeatureType, // Historical Ligatures
	ot.T("kern"): GPosFeatureType, // Kerning
	ot.T("liga"): GSubFeatureType, // Standard Ligatures
	ot.T("lnum"): GSubFeatureType, // Lining Figures
	ot.T("mark"): GPosFeatureType, // Mark Positioning
	ot.T("mkmk"): GPosFeatureType, // Mark to Mark Positioning
	ot.T("numr"): GSubFeatureType, // Numerators
	ot.T("onum"): GSubFeatureType, // Oldstyle Figures
	ot.T("ordn"): GSubFeatureType, // Ordinals
	ot.T("pnum"): GSubFeatureType, // Proportional Figures
	ot.T("salt"): GSubFeatureType, // Stylistic Alternates
	ot.T("sinf"): GSubFeatureType, // Scientific Inferiors
	ot.T("smcp"): GSubFeatureType, // Small Capitals
	ot.T("subs"): GSubFeatureType, // Subscript
	ot.T("sups"): GSubFeatureType, // Superscript
	ot.T("swsh"): GSubFeatureType, // Swash
	ot.T("titl"): GSubFeatureType, // Titling
	ot.T("tnum"): GSubFeatureType, // Tabular Figures
	ot.T("zero"): GSubFeatureType, // Slashed Zero
}

// IdentifyFeatureTag checks if we recognize a feature tag and reports whether
// it belongs to GSUB or GPOS.
func IdentifyFeatureTag(tag ot.Tag) (LayoutTagType, error) {
	if tag&0xffff0000 == ot.T("cv__")&0xffff0000 { // cv01 - cv99
		return GSubFeatureType, nil
	}
	if tag&0xffff0000 == ot.T("ss__")&0xffff0000 { // ss01 - ss20
		return GSubFeatureType, nil
	}
	typ, ok := RegisteredFeatureTags[tag]
	if !ok {
		return 0, errFontFormat(fmt.Sprintf("feature '%s' seems not to be registered", tag))
	}
	return typ, nil
}

// errFontFormat produces user level errors for font format anomalies.
func errFontFormat(message string) error {
	return fmt.Errorf("OpenType font format: %s", message)
}

package ot

// LayoutTable is the shared structure of the GSUB and GPOS layout tables:
// a script list, a feature list and a lookup list. Scripts address language
// systems, language systems address features, features address lookups, and
// lookups carry the typed subtables which finally act on glyph sequences.
//
// All lists are ordered as they appear in the font ("table order"); order is
// significant for lookup application.
type LayoutTable struct {
	Scripts  []Script
	Features []Feature
	Lookups  []Lookup
}

// Script returns the script entry for a given tag, or nil if the table has no
// entry for it. Callers fall back to DFLT themselves, as required by their
// resolution policy.
func (t *LayoutTable) Script(tag Tag) *Script {
	if t == nil {
		return nil
	}
	for i := range t.Scripts {
		if t.Scripts[i].Tag == tag {
			return &t.Scripts[i]
		}
	}
	return nil
}

// FeatureAt returns the feature at a given feature-list index, or nil if the
// index is out of range. Out-of-range feature indices in fonts are treated as
// "this feature contributes nothing", never as an error.
func (t *LayoutTable) FeatureAt(inx int) *Feature {
	if t == nil || inx < 0 || inx >= len(t.Features) {
		return nil
	}
	return &t.Features[inx]
}

// LookupAt returns the lookup at a given lookup-list index, or nil if the
// index is out of range.
func (t *LayoutTable) LookupAt(inx int) *Lookup {
	if t == nil || inx < 0 || inx >= len(t.Lookups) {
		return nil
	}
	return &t.Lookups[inx]
}

// Script links a script tag (e.g. 'latn') to the language systems the font
// defines for it.
type Script struct {
	Tag     Tag
	LangSys []LangSys
}

// LangSysFor returns the language system for a given tag, or nil if the
// script has no entry for it.
func (s *Script) LangSysFor(tag Tag) *LangSys {
	if s == nil {
		return nil
	}
	for i := range s.LangSys {
		if s.LangSys[i].Tag == tag {
			return &s.LangSys[i]
		}
	}
	return nil
}

// LangSys is a language system: the set of features the font enables for a
// script/language combination, as indices into the layout table's feature
// list.
type LangSys struct {
	Tag            Tag
	FeatureIndices []int
}

// Feature links a feature tag (e.g. 'liga') to the lookups implementing it,
// as indices into the layout table's lookup list. The order of the lookup
// indices matters and is preserved from the font.
type Feature struct {
	Tag           Tag
	LookupIndices []int
}

// LayoutTableLookupFlag is a flag type for lookups, see
// https://docs.microsoft.com/en-us/typography/opentype/spec/chapter2#lookupTable
type LayoutTableLookupFlag uint16

// Lookup flags, see
// https://docs.microsoft.com/en-us/typography/opentype/spec/chapter2#lookupTable
const (
	LOOKUP_FLAG_RIGHT_TO_LEFT             LayoutTableLookupFlag = 0x0001
	LOOKUP_FLAG_IGNORE_BASE_GLYPHS        LayoutTableLookupFlag = 0x0002
	LOOKUP_FLAG_IGNORE_LIGATURES          LayoutTableLookupFlag = 0x0004
	LOOKUP_FLAG_IGNORE_MARKS              LayoutTableLookupFlag = 0x0008
	LOOKUP_FLAG_USE_MARK_FILTERING_SET    LayoutTableLookupFlag = 0x0010
	LOOKUP_FLAG_MARK_ATTACHMENT_TYPE_MASK LayoutTableLookupFlag = 0xFF00
)

// LayoutTableLookupType is a type identifier for lookups. GSUB and GPOS each
// interpret the numeric values differently; see the GSubLookupType* and
// GPosLookupType* constants.
type LayoutTableLookupType uint16

// GSUB lookup types.
const (
	GSubLookupTypeSingle          LayoutTableLookupType = 1
	GSubLookupTypeMultiple        LayoutTableLookupType = 2
	GSubLookupTypeAlternate       LayoutTableLookupType = 3
	GSubLookupTypeLigature        LayoutTableLookupType = 4
	GSubLookupTypeContext         LayoutTableLookupType = 5
	GSubLookupTypeChainingContext LayoutTableLookupType = 6
	GSubLookupTypeExtensionSubs   LayoutTableLookupType = 7
	GSubLookupTypeReverseChaining LayoutTableLookupType = 8
)

// GPOS lookup types.
const (
	GPosLookupTypeSingle            LayoutTableLookupType = 1
	GPosLookupTypePair              LayoutTableLookupType = 2
	GPosLookupTypeCursive           LayoutTableLookupType = 3
	GPosLookupTypeMarkToBase        LayoutTableLookupType = 4
	GPosLookupTypeMarkToLigature    LayoutTableLookupType = 5
	GPosLookupTypeMarkToMark        LayoutTableLookupType = 6
	GPosLookupTypeContextPos        LayoutTableLookupType = 7
	GPosLookupTypeChainedContextPos LayoutTableLookupType = 8
	GPosLookupTypeExtensionPos      LayoutTableLookupType = 9
)

var gsubLookupTypeNames = []string{"Unknown(0)", "Single", "Multiple", "Alternate",
	"Ligature", "Context", "ChainingContext", "Extension", "ReverseChaining"}

var gposLookupTypeNames = []string{"Unknown(0)", "Single", "Pair", "Cursive",
	"MarkToBase", "MarkToLigature", "MarkToMark", "Context", "ChainedContext",
	"Extension"}

// GSubString interprets the lookup type as a GSUB lookup type and returns its
// name.
func (lt LayoutTableLookupType) GSubString() string {
	if int(lt) >= len(gsubLookupTypeNames) {
		return "Unknown"
	}
	return gsubLookupTypeNames[lt]
}

// GPosString interprets the lookup type as a GPOS lookup type and returns its
// name.
func (lt LayoutTableLookupType) GPosString() string {
	if int(lt) >= len(gposLookupTypeNames) {
		return "Unknown"
	}
	return gposLookupTypeNames[lt]
}

// Lookup is an ordered, typed rule applied during shaping. A lookup owns a
// list of subtables which are tried/applied in table order.
type Lookup struct {
	Type      LayoutTableLookupType
	Flag      LayoutTableLookupFlag
	Subtables []Subtable
}

// Subtable is the closed set of rule-subtable variants a lookup may carry.
// One case exists per supported GSUB/GPOS subtable kind; the engines in
// package otlayout switch exhaustively over this set, so adding a kind is a
// compile-time visible change.
//
// Implementations: SingleSubst, MultipleSubst, AlternateSubst, LigatureSubst
// (GSUB) and SinglePos, PairPos, MarkToBasePos, MarkToMarkPos, CursivePos
// (GPOS).
type Subtable interface {
	LookupType() LayoutTableLookupType
}

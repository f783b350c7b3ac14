package ot

// GPOS subtable variants. Comments quote the OpenType specification,
// https://docs.microsoft.com/en-us/typography/opentype/spec/gpos

// ValueRecord describes a positioning adjustment for one glyph, in font
// design units. All deltas are relative and accumulate additively; later
// lookups add onto earlier results, they do not replace them.
type ValueRecord struct {
	XPlacement int32 // horizontal placement offset delta
	YPlacement int32 // vertical placement offset delta
	XAdvance   int32 // horizontal advance delta
	YAdvance   int32 // vertical advance delta
}

// IsZero returns true if the record adjusts nothing.
func (v ValueRecord) IsZero() bool {
	return v == ValueRecord{}
}

// SinglePos is a GPOS LookupType 1 subtable: Single Adjustment.
//
// “A single adjustment positioning subtable is used to adjust the placement
// or advance of a single glyph.”
type SinglePos map[GlyphIndex]ValueRecord

// LookupType returns GPosLookupTypeSingle.
func (SinglePos) LookupType() LayoutTableLookupType { return GPosLookupTypeSingle }

// PairAdjust carries the two value records of a pair adjustment rule, one for
// each glyph of the pair. Either record may be zero.
type PairAdjust struct {
	First  ValueRecord
	Second ValueRecord
}

// PairPos is a GPOS LookupType 2 subtable: Pair Adjustment.
//
// “A pair adjustment positioning subtable is used to adjust the placement or
// advances of two glyphs in relation to one another — for instance, to
// specify kerning data for pairs of glyphs.”
type PairPos map[GlyphPair]PairAdjust

// LookupType returns GPosLookupTypePair.
func (PairPos) LookupType() LayoutTableLookupType { return GPosLookupTypePair }

// MarkToBasePos is a GPOS LookupType 4 subtable: MarkToBase Attachment.
//
// The variant is recognized by the positioning engine but applies as a no-op:
// mark attachment needs anchor-point data that this model does not carry.
// This is documented reduced fidelity, not a silent gap.
type MarkToBasePos struct{}

// LookupType returns GPosLookupTypeMarkToBase.
func (MarkToBasePos) LookupType() LayoutTableLookupType { return GPosLookupTypeMarkToBase }

// MarkToMarkPos is a GPOS LookupType 6 subtable: MarkToMark Attachment.
// Recognized but applied as a no-op, like MarkToBasePos.
type MarkToMarkPos struct{}

// LookupType returns GPosLookupTypeMarkToMark.
func (MarkToMarkPos) LookupType() LayoutTableLookupType { return GPosLookupTypeMarkToMark }

// CursivePos is a GPOS LookupType 3 subtable: Cursive Attachment.
// Recognized but applied as a no-op, like MarkToBasePos.
type CursivePos struct{}

// LookupType returns GPosLookupTypeCursive.
func (CursivePos) LookupType() LayoutTableLookupType { return GPosLookupTypeCursive }

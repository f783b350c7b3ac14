package ot

// GlyphIndex is a glyph index in a font.
//
// The type is wide enough to carry glyph IDs beyond 65535, but all GSUB/GPOS
// rule tables of the binary format index glyphs with 16-bit fields. Glyph IDs
// above that range therefore cannot be addressed by any lookup and will pass
// through shaping unmodified. Callers should check Addressable before using a
// glyph ID as a key into any of the rule-table maps.
type GlyphIndex uint32

// MaxAddressableGlyph is the largest glyph ID a GSUB/GPOS rule can refer to.
const MaxAddressableGlyph GlyphIndex = 0xFFFF

// Addressable returns true if g may be the subject of a layout rule, i.e. if
// it fits into the 16-bit glyph fields of the binary table format.
func (g GlyphIndex) Addressable() bool {
	return g <= MaxAddressableGlyph
}

// --- Tag -------------------------------------------------------------------

// Tag is defined by the spec as:
// Array of four uint8s (length = 32 bits) used to identify a table, design-variation axis,
// script, language system, feature, or baseline
type Tag uint32

// MakeTag creates a Tag from 4 bytes, e.g.,
//
//	MakeTag([]byte("liga"))
//
// If b is shorter or longer, it will be silently extended or cut as appropriate.
func MakeTag(b []byte) Tag {
	if b == nil {
		b = []byte{0, 0, 0, 0}
	} else if len(b) > 4 {
		b = b[:4]
	} else if len(b) < 4 {
		b = append([]byte{0, 0, 0, 0}[:4-len(b)], b...)
	}
	return Tag(u32(b))
}

// T returns a Tag from a (4-letter) string.
// If t is shorter or longer, it will be silently extended or cut as appropriate.
func T(t string) Tag {
	t = (t + "    ")[:4]
	return Tag(u32([]byte(t)))
}

func (t Tag) String() string {
	bytes := []byte{
		byte(t >> 24 & 0xff),
		byte(t >> 16 & 0xff),
		byte(t >> 8 & 0xff),
		byte(t & 0xff),
	}
	return string(bytes)
}

// Sentinel tags for script/language fallback resolution.
//
// DFLT is the script tag for features that are not script-specific. DfltLang
// is not a valid language tag per spec, but fonts commonly use it for the
// default language system of a script, and shaping falls back to it.
var (
	DFLT     = T("DFLT")
	DfltLang = T("dflt")
)

func u32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])<<0
}

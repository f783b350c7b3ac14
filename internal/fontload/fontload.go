/*
Package fontload reads OpenType font files and builds the shaping font model
from them.

Only the character map and the horizontal metrics of a binary font are
decoded; GSUB/GPOS rule tables and kern pairs have to be supplied by the
caller (the CLI reads them from a JSON font description). Shaping a font
loaded from here alone therefore degrades to plain cmap+metrics mapping.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontload

import (
	"os"
	"unicode"

	"github.com/npillmayer/otshaper/ot"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ScalableFont is a parsed scalable font with original bytes and SFNT view.
type ScalableFont struct {
	Fontname string
	Binary   []byte
	SFNT     *sfnt.Font
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	return ParseOpenTypeFont(bytez)
}

// ParseOpenTypeFont loads an OpenType font (TTF or OTF) from memory.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	f.Fontname, err = f.SFNT.Name(nil, sfnt.NameIDFull)
	return f, nil
}

// FontModel builds the shaping font model from a parsed SFNT font: name,
// units per em, character map and glyph advances.
func FontModel(sf *ScalableFont) (*ot.Font, error) {
	otf := &ot.Font{
		Fontname:   sf.Fontname,
		UnitsPerEm: sf.SFNT.UnitsPerEm(),
		CMap:       make(ot.GlyphIndexMap),
	}
	var buf sfnt.Buffer
	if err := fillCMap(sf.SFNT, &buf, otf.CMap); err != nil {
		return nil, err
	}
	advances, err := readAdvances(sf.SFNT, &buf)
	if err != nil {
		return nil, err
	}
	otf.Metrics = &ot.MetricsTable{Advances: advances}
	return otf, nil
}

// fillCMap enumerates the font's character map for the basic multilingual
// plane. The sfnt package offers no cmap iteration, so we probe code-points.
func fillCMap(f *sfnt.Font, buf *sfnt.Buffer, cmap ot.GlyphIndexMap) error {
	for r := rune(0x0020); r <= 0xFFFF; r++ {
		if unicode.Is(unicode.Cs, r) { // skip surrogates
			continue
		}
		gid, err := f.GlyphIndex(buf, r)
		if err != nil {
			return err
		}
		if gid != 0 {
			cmap[r] = ot.GlyphIndex(gid)
		}
	}
	return nil
}

// readAdvances reads the advance of every glyph, in design units. Rendering
// at a ppem equal to the units-per-em makes the scaled advance equal the
// design-unit advance.
func readAdvances(f *sfnt.Font, buf *sfnt.Buffer) ([]sfnt.Units, error) {
	upem := fixed.I(int(f.UnitsPerEm()))
	advances := make([]sfnt.Units, f.NumGlyphs())
	for gid := 0; gid < f.NumGlyphs(); gid++ {
		adv, err := f.GlyphAdvance(buf, sfnt.GlyphIndex(gid), upem, font.HintingNone)
		if err != nil {
			return nil, err
		}
		advances[gid] = sfnt.Units(adv.Round())
	}
	return advances, nil
}

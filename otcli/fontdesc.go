package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/npillmayer/otshaper/ot"
	"golang.org/x/image/font/sfnt"
)

// A font description is a JSON rendition of the font model: character map,
// advances, kern pairs and the GSUB/GPOS rule tables. It exists so the CLI
// can load hand-written fonts for experimentation without an SFNT decoder.
//
// Glyphs are identified by their numeric glyph ID; JSON object keys carry
// them as decimal strings.
type fontDesc struct {
	Name       string           `json:"name"`
	UnitsPerEm int              `json:"unitsPerEm"`
	CMap       map[string]int   `json:"cmap"` // single character -> glyph ID
	Advances   []int            `json:"advances"`
	VAdvance   int              `json:"verticalAdvance"`
	Kern       []kernPairDesc   `json:"kern"`
	GSub       *layoutTableDesc `json:"gsub"`
	GPos       *layoutTableDesc `json:"gpos"`
}

type kernPairDesc struct {
	First  int `json:"first"`
	Second int `json:"second"`
	Value  int `json:"value"`
}

type layoutTableDesc struct {
	Scripts  []scriptDesc  `json:"scripts"`
	Features []featureDesc `json:"features"`
	Lookups  []lookupDesc  `json:"lookups"`
}

type scriptDesc struct {
	Tag       string        `json:"tag"`
	Languages []langSysDesc `json:"languages"`
}

type langSysDesc struct {
	Tag      string `json:"tag"`
	Features []int  `json:"features"`
}

type featureDesc struct {
	Tag     string `json:"tag"`
	Lookups []int  `json:"lookups"`
}

type lookupDesc struct {
	Type      string         `json:"type"` // single|multiple|alternate|ligature|pair
	Subtables []subtableDesc `json:"subtables"`
}

type subtableDesc struct {
	Single    map[string]int            `json:"single,omitempty"`    // GSUB 1
	Multiple  map[string][]int          `json:"multiple,omitempty"`  // GSUB 2
	Alternate map[string][]int          `json:"alternate,omitempty"` // GSUB 3
	Ligatures map[string][]ligatureDesc `json:"ligatures,omitempty"` // GSUB 4
	Positions map[string]valueDesc      `json:"positions,omitempty"` // GPOS 1
	Pairs     []pairDesc                `json:"pairs,omitempty"`     // GPOS 2
}

type ligatureDesc struct {
	Glyph      int   `json:"glyph"`
	Components []int `json:"components"`
}

type valueDesc struct {
	XPlacement int `json:"xPlacement"`
	YPlacement int `json:"yPlacement"`
	XAdvance   int `json:"xAdvance"`
	YAdvance   int `json:"yAdvance"`
}

type pairDesc struct {
	First       int       `json:"first"`
	Second      int       `json:"second"`
	FirstValue  valueDesc `json:"firstValue"`
	SecondValue valueDesc `json:"secondValue"`
}

// loadFontDescription reads a JSON font description file and builds a font
// from it.
func loadFontDescription(path string) (*ot.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var desc fontDesc
	if err := json.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("cannot decode font description %s: %w", path, err)
	}
	return desc.build()
}

func (desc *fontDesc) build() (*ot.Font, error) {
	otf := &ot.Font{
		Fontname:   desc.Name,
		UnitsPerEm: sfnt.Units(desc.UnitsPerEm),
		CMap:       make(ot.GlyphIndexMap, len(desc.CMap)),
	}
	for key, gid := range desc.CMap {
		runes := []rune(key)
		if len(runes) != 1 {
			return nil, fmt.Errorf("cmap key must be a single character, have %q", key)
		}
		otf.CMap[runes[0]] = ot.GlyphIndex(gid)
	}
	advances := make([]sfnt.Units, len(desc.Advances))
	for i, adv := range desc.Advances {
		advances[i] = sfnt.Units(adv)
	}
	otf.Metrics = &ot.MetricsTable{
		Advances:        advances,
		VerticalAdvance: sfnt.Units(desc.VAdvance),
	}
	if len(desc.Kern) > 0 {
		otf.Layout.Kern = make(ot.KernTable, len(desc.Kern))
		for _, pair := range desc.Kern {
			key := ot.GlyphPair{First: ot.GlyphIndex(pair.First), Second: ot.GlyphIndex(pair.Second)}
			otf.Layout.Kern[key] = int32(pair.Value)
		}
	}
	var err error
	if desc.GSub != nil {
		if otf.Layout.GSub, err = desc.GSub.build("gsub"); err != nil {
			return nil, err
		}
	}
	if desc.GPos != nil {
		if otf.Layout.GPos, err = desc.GPos.build("gpos"); err != nil {
			return nil, err
		}
	}
	return otf, nil
}

func (desc *layoutTableDesc) build(kind string) (*ot.LayoutTable, error) {
	table := &ot.LayoutTable{}
	for _, scr := range desc.Scripts {
		script := ot.Script{Tag: ot.T(scr.Tag)}
		for _, lsys := range scr.Languages {
			script.LangSys = append(script.LangSys, ot.LangSys{
				Tag:            ot.T(lsys.Tag),
				FeatureIndices: lsys.Features,
			})
		}
		table.Scripts = append(table.Scripts, script)
	}
	for _, feat := range desc.Features {
		table.Features = append(table.Features, ot.Feature{
			Tag:           ot.T(feat.Tag),
			LookupIndices: feat.Lookups,
		})
	}
	for i, l := range desc.Lookups {
		lookup, err := l.build(kind)
		if err != nil {
			return nil, fmt.Errorf("lookup %d: %w", i, err)
		}
		table.Lookups = append(table.Lookups, lookup)
	}
	return table, nil
}

func (desc *lookupDesc) build(kind string) (ot.Lookup, error) {
	var lookup ot.Lookup
	switch kind + "/" + desc.Type {
	case "gsub/single":
		lookup.Type = ot.GSubLookupTypeSingle
	case "gsub/multiple":
		lookup.Type = ot.GSubLookupTypeMultiple
	case "gsub/alternate":
		lookup.Type = ot.GSubLookupTypeAlternate
	case "gsub/ligature":
		lookup.Type = ot.GSubLookupTypeLigature
	case "gpos/single":
		lookup.Type = ot.GPosLookupTypeSingle
	case "gpos/pair":
		lookup.Type = ot.GPosLookupTypePair
	default:
		return lookup, fmt.Errorf("unsupported %s lookup type %q", kind, desc.Type)
	}
	for i, sub := range desc.Subtables {
		subtable, err := sub.build(lookup.Type, kind)
		if err != nil {
			return lookup, fmt.Errorf("subtable %d: %w", i, err)
		}
		lookup.Subtables = append(lookup.Subtables, subtable)
	}
	return lookup, nil
}

func (desc *subtableDesc) build(ltype ot.LayoutTableLookupType, kind string) (ot.Subtable, error) {
	switch {
	case kind == "gsub" && ltype == ot.GSubLookupTypeSingle:
		out := make(ot.SingleSubst, len(desc.Single))
		for key, gid := range desc.Single {
			from, err := glyphKey(key)
			if err != nil {
				return nil, err
			}
			out[from] = ot.GlyphIndex(gid)
		}
		return out, nil
	case kind == "gsub" && ltype == ot.GSubLookupTypeMultiple:
		out := make(ot.MultipleSubst, len(desc.Multiple))
		for key, gids := range desc.Multiple {
			from, err := glyphKey(key)
			if err != nil {
				return nil, err
			}
			out[from] = glyphIndices(gids)
		}
		return out, nil
	case kind == "gsub" && ltype == ot.GSubLookupTypeAlternate:
		out := make(ot.AlternateSubst, len(desc.Alternate))
		for key, gids := range desc.Alternate {
			from, err := glyphKey(key)
			if err != nil {
				return nil, err
			}
			out[from] = glyphIndices(gids)
		}
		return out, nil
	case kind == "gsub" && ltype == ot.GSubLookupTypeLigature:
		out := make(ot.LigatureSubst, len(desc.Ligatures))
		for key, ligs := range desc.Ligatures {
			from, err := glyphKey(key)
			if err != nil {
				return nil, err
			}
			for _, lig := range ligs {
				out[from] = append(out[from], ot.Ligature{
					Glyph:      ot.GlyphIndex(lig.Glyph),
					Components: glyphIndices(lig.Components),
				})
			}
		}
		return out, nil
	case kind == "gpos" && ltype == ot.GPosLookupTypeSingle:
		out := make(ot.SinglePos, len(desc.Positions))
		for key, val := range desc.Positions {
			gid, err := glyphKey(key)
			if err != nil {
				return nil, err
			}
			out[gid] = val.valueRecord()
		}
		return out, nil
	case kind == "gpos" && ltype == ot.GPosLookupTypePair:
		out := make(ot.PairPos, len(desc.Pairs))
		for _, pair := range desc.Pairs {
			key := ot.GlyphPair{First: ot.GlyphIndex(pair.First), Second: ot.GlyphIndex(pair.Second)}
			out[key] = ot.PairAdjust{
				First:  pair.FirstValue.valueRecord(),
				Second: pair.SecondValue.valueRecord(),
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported subtable for lookup type %d", ltype)
}

func (val valueDesc) valueRecord() ot.ValueRecord {
	return ot.ValueRecord{
		XPlacement: int32(val.XPlacement),
		YPlacement: int32(val.YPlacement),
		XAdvance:   int32(val.XAdvance),
		YAdvance:   int32(val.YAdvance),
	}
}

func glyphKey(key string) (ot.GlyphIndex, error) {
	gid, err := strconv.ParseUint(key, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("glyph ID key must be decimal, have %q", key)
	}
	return ot.GlyphIndex(gid), nil
}

func glyphIndices(gids []int) []ot.GlyphIndex {
	out := make([]ot.GlyphIndex, len(gids))
	for i, gid := range gids {
		out[i] = ot.GlyphIndex(gid)
	}
	return out
}

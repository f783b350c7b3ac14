package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/otshaper/ot"
	"github.com/npillmayer/otshaper/otlayout"
	"github.com/npillmayer/otshaper/otquery"
	"github.com/npillmayer/otshaper/otshape"
	"github.com/pterm/pterm"
)

func fontOp(intp *Intp, op *Op) (error, bool) {
	otf := intp.font
	metrics := otquery.FontMetrics(otf)
	data := [][]string{
		{"Property", "Value"},
		{"Name", otf.Fontname},
		{"Units/em", fmt.Sprintf("%d", metrics.UnitsPerEm)},
		{"Max advance", fmt.Sprintf("%d", metrics.MaxAdvance)},
		{"Code-points", fmt.Sprintf("%d", len(otf.CMap))},
		{"GSUB", yesno(otf.Layout.GSub != nil)},
		{"GPOS", yesno(otf.Layout.GPos != nil)},
		{"kern pairs", fmt.Sprintf("%d", len(otf.Layout.Kern))},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func scriptsOp(intp *Intp, op *Op) (error, bool) {
	table, which, err := intp.selectLayoutTable(op)
	if err != nil {
		return err, false
	}
	pterm.Printf("%s has %d script(s)\n", which, len(table.Scripts))
	data := [][]string{
		{"Script", "Languages"},
	}
	for _, scr := range table.Scripts {
		langs := make([]string, len(scr.LangSys))
		for i, lsys := range scr.LangSys {
			langs[i] = lsys.Tag.String()
		}
		data = append(data, []string{scr.Tag.String(), strings.Join(langs, " ")})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func featuresOp(intp *Intp, op *Op) (error, bool) {
	table, which, err := intp.selectLayoutTable(op)
	if err != nil {
		return err, false
	}
	pterm.Printf("%s has %d feature(s)\n", which, len(table.Features))
	data := [][]string{
		{"Index", "Feature", "Kind", "Lookups"},
	}
	for i, feat := range table.Features {
		kind := "?"
		if t, err := otlayout.IdentifyFeatureTag(feat.Tag); err == nil {
			kind = formatFeatureKind(t)
		}
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			feat.Tag.String(),
			kind,
			formatIndices(feat.LookupIndices),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func lookupsOp(intp *Intp, op *Op) (error, bool) {
	table, which, err := intp.selectLayoutTable(op)
	if err != nil {
		return err, false
	}
	pterm.Printf("%s has %d lookup(s)\n", which, len(table.Lookups))
	data := [][]string{
		{"Index", "Type", "Subtables", "Flags"},
	}
	for i, lookup := range table.Lookups {
		typename := lookup.Type.GSubString()
		if which == "GPOS" {
			typename = lookup.Type.GPosString()
		}
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			typename,
			fmt.Sprintf("%d", len(lookup.Subtables)),
			formatLookupFlags(lookup.Flag),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func shapeOp(intp *Intp, op *Op) (error, bool) {
	text, ok := op.hasArg()
	if !ok {
		return fmt.Errorf("shape needs an argument, e.g. shape:ffl"), false
	}
	run := otshape.Shape(intp.font, text, otshape.Params{
		Script:   intp.script,
		Language: intp.language,
		Features: intp.features,
	})
	pterm.Printf("%q shapes to %d glyph(s), total advance %d\n",
		text, run.Len(), run.TotalAdvance())
	data := [][]string{
		{"#", "Glyph", "Char", "X-Adv", "Y-Adv", "X-Off", "Y-Off"},
	}
	for i, g := range run.Glyphs {
		char := "-"
		if g.Codepoint != 0 {
			char = string(g.Codepoint)
		}
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%d", g.GID),
			char,
			fmt.Sprintf("%d", g.XAdvance),
			fmt.Sprintf("%d", g.YAdvance),
			fmt.Sprintf("%d", g.XOffset),
			fmt.Sprintf("%d", g.YOffset),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

// selectLayoutTable picks GSUB or GPOS from an op argument, defaulting to GSUB.
func (intp *Intp) selectLayoutTable(op *Op) (*ot.LayoutTable, string, error) {
	which := strings.ToLower(op.arg)
	switch which {
	case "", "gsub":
		if intp.font.Layout.GSub == nil {
			return nil, "", fmt.Errorf("font %s has no GSUB table", intp.font.Fontname)
		}
		return intp.font.Layout.GSub, "GSUB", nil
	case "gpos":
		if intp.font.Layout.GPos == nil {
			return nil, "", fmt.Errorf("font %s has no GPOS table", intp.font.Fontname)
		}
		return intp.font.Layout.GPos, "GPOS", nil
	}
	return nil, "", fmt.Errorf("no such layout table: %s", op.arg)
}

func formatFeatureKind(t otlayout.LayoutTagType) string {
	switch t {
	case otlayout.GSubFeatureType:
		return "GSUB"
	case otlayout.GPosFeatureType:
		return "GPOS"
	}
	return "?"
}

func formatIndices(indices []int) string {
	parts := make([]string, len(indices))
	for i, inx := range indices {
		parts[i] = fmt.Sprintf("%d", inx)
	}
	return strings.Join(parts, " ")
}

func formatLookupFlags(flag ot.LayoutTableLookupFlag) string {
	if flag == 0 {
		return "-"
	}
	parts := make([]string, 0, 6)
	if flag&ot.LOOKUP_FLAG_RIGHT_TO_LEFT != 0 {
		parts = append(parts, "RightToLeft")
	}
	if flag&ot.LOOKUP_FLAG_IGNORE_BASE_GLYPHS != 0 {
		parts = append(parts, "IgnoreBase")
	}
	if flag&ot.LOOKUP_FLAG_IGNORE_LIGATURES != 0 {
		parts = append(parts, "IgnoreLigatures")
	}
	if flag&ot.LOOKUP_FLAG_IGNORE_MARKS != 0 {
		parts = append(parts, "IgnoreMarks")
	}
	if flag&ot.LOOKUP_FLAG_USE_MARK_FILTERING_SET != 0 {
		parts = append(parts, "UseMarkFilteringSet")
	}
	if flag&ot.LOOKUP_FLAG_MARK_ATTACHMENT_TYPE_MASK != 0 {
		parts = append(parts, fmt.Sprintf("MarkAttachType=%d", flag>>8))
	}
	return strings.Join(parts, "|")
}

func formatFeatureSet(fs otshape.FeatureSet) string {
	tags := make([]string, 0, len(fs))
	for tag, on := range fs {
		if on {
			tags = append(tags, tag.String())
		}
	}
	sort.Strings(tags)
	return strings.Join(tags, ",")
}

func yesno(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

package main

import (
	"path/filepath"
	"testing"

	"github.com/npillmayer/otshaper/ot"
	"github.com/npillmayer/otshaper/otshape"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLoadFontDescription(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otshaper")
	defer teardown()
	otf, err := loadFontDescription(filepath.Join("testdata", "demo-font.json"))
	if err != nil {
		t.Fatalf("cannot load font description: %s", err)
	}
	if otf.Fontname != "json-demo" {
		t.Errorf("expected font name 'json-demo', got %q", otf.Fontname)
	}
	if gid, ok := otf.CMap.Lookup('f'); !ok || gid != 1 {
		t.Errorf("expected 'f' to map to glyph 1, got %d", gid)
	}
	if otf.Layout.GSub == nil || otf.Layout.GPos == nil {
		t.Fatalf("expected GSUB and GPOS tables to be built")
	}
	if len(otf.Layout.Kern) != 1 {
		t.Errorf("expected one kern pair, got %d", len(otf.Layout.Kern))
	}
}

func TestShapeWithFontDescription(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otshaper")
	defer teardown()
	otf, err := loadFontDescription(filepath.Join("testdata", "demo-font.json"))
	if err != nil {
		t.Fatalf("cannot load font description: %s", err)
	}
	run := otshape.Shape(otf, "fi", otshape.Params{})
	if run.Len() != 1 || run.Glyphs[0].GID != ot.GlyphIndex(20) {
		t.Errorf("expected 'fi' ligature glyph 20, got %d glyph(s)", run.Len())
	}
	run = otshape.Shape(otf, "AV", otshape.Params{})
	if run.Len() != 2 || run.Glyphs[0].XAdvance != 640-80 {
		t.Errorf("expected kerned advance 560, got %d", run.Glyphs[0].XAdvance)
	}
}

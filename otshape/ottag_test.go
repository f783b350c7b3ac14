package otshape

import (
	"testing"

	"github.com/npillmayer/otshaper/ot"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/text/language"
)

func TestLanguageTagForLanguage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otshaper")
	defer teardown()
	langs := []struct {
		in  string
		out string
	}{
		{"DE", "DEU"},
		{"DE_de", "DEU"},
		{"DE_ch", "DEU"},
		{"EN_us", "ENG"},
		{"TR", "TRK"},
	}
	for _, pair := range langs {
		tag := LanguageTagForLanguage(language.Make(pair.in), language.High)
		if tag != ot.T(pair.out) {
			t.Errorf("expected language match %s, got %s", pair.out, tag)
		}
	}
}

func TestLanguageTagFallsBackToDefault(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otshaper")
	defer teardown()
	tag := LanguageTagForLanguage(language.Make("haw"), language.Exact)
	if tag != ot.DfltLang {
		t.Errorf("expected 'dflt' for unsupported language, got %s", tag)
	}
}

func TestScriptTagForScript(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otshaper")
	defer teardown()
	scripts := []struct {
		in  string
		out string
	}{
		{"Latn", "latn"},
		{"Cyrl", "cyrl"},
		{"Deva", "dev2"}, // revised Indic shaping tag
		{"Hira", "kana"}, // Hiragana and Katakana share a tag
		{"Laoo", "lao "}, // trailing space preserved
		{"Zzzz", "DFLT"},
	}
	for _, pair := range scripts {
		scr, err := language.ParseScript(pair.in)
		if err != nil {
			t.Fatalf("cannot parse test script %s: %s", pair.in, err)
		}
		tag := ScriptTagForScript(scr)
		if tag != ot.T(pair.out) {
			t.Errorf("expected script tag %q for %s, got %q", pair.out, pair.in, tag)
		}
	}
}

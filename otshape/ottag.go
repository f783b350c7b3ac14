package otshape

import (
	"strings"

	"github.com/npillmayer/otshaper/ot"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Most OpenType script tags are the ISO 15924 code, lowercased. A handful of
// scripts diverge, either because OpenType introduced a revised shaping model
// under a new tag (the Indic '…2' tags), or for historic reasons.
// See https://docs.microsoft.com/en-us/typography/opentype/spec/scripttags
var script2opentype = map[string]string{
	"Zzzz": "DFLT", // unknown
	//
	"Beng": "bng2", // Bengali
	"Deva": "dev2", // Devanagari
	"Gujr": "gjr2", // Gujarati
	"Guru": "gur2", // Gurmukhi
	"Knda": "knd2", // Kannada
	"Mlym": "mlm2", // Malayalam
	"Orya": "ory2", // Oriya
	"Taml": "tml2", // Tamil
	"Telu": "tel2", // Telugu
	"Mymr": "mym2", // Myanmar
	//
	"Hira": "kana", // Hiragana and Katakana share 'kana'
	"Kana": "kana",
	"Hans": "hani", // Han (simplified)
	"Hant": "hani", // Han (traditional)
	//
	// Spaces at the end are preserved, unlike ISO 15924
	"Laoo": "lao ", // Lao
	"Yiii": "yi  ", // Yi
	"Nkoo": "nko ", // N'Ko
	"Vaii": "vai ", // Vai
	//
	"Zmth": "math", // mathematical notation
}

// We do support this list of languages.
var supportedLanguages = map[language.Tag]string{
	language.Arabic:     "ARA",
	language.Chinese:    "ZHS",
	language.English:    "ENG",
	language.French:     "FRA",
	language.Greek:      "ELL",
	language.German:     "DEU",
	language.Hebrew:     "IWR",
	language.Italian:    "ITA",
	language.Japanese:   "JAN",
	language.Portuguese: "PTG",
	language.Romanian:   "ROM",
	language.Russian:    "RUS",
	language.Spanish:    "ESP",
	language.Turkish:    "TRK",
}

// We will try to match user-preferred language against supported languages.
var supportedLanguagesMatcher language.Matcher

func init() {
	// prepare the language matcher with our list of supported languages
	langs := make([]language.Tag, 0, len(supportedLanguages))
	for l := range supportedLanguages {
		langs = append(langs, l)
	}
	supportedLanguagesMatcher = language.NewMatcher(langs)
}

// ScriptTagForScript returns the appropriate OpenType script tag for a given
// ISO 15924 script code. Unknown or unsupported scripts map to the DFLT-tag.
func ScriptTagForScript(script language.Script) ot.Tag {
	s := script.String()
	if otScr, ok := script2opentype[s]; ok {
		return ot.T(otScr)
	}
	if len(s) != 4 {
		return ot.DFLT
	}
	return ot.T(strings.ToLower(s))
}

// LanguageTagForLanguage returns the appropriate OpenType language tag for a
// given BCP 47 language tag.
// If there is no supported language that can be matched with confidence of at
// least conf, the default language tag 'dflt' will be returned.
func LanguageTagForLanguage(lang language.Tag, conf language.Confidence) ot.Tag {
	l, _, c := supportedLanguagesMatcher.Match(lang)
	tracer().Debugf("OpenType language matched %s (%s) : %s", display.English.Tags().Name(l),
		display.Self.Name(l), c)
	if c < conf { // if matcher's confidence level is not high enough
		return ot.DfltLang
	}
	base, _ := language.Compose(l.Base()) // re-package l to cleanly match base language constant
	if ltag, ok := supportedLanguages[base]; ok {
		return ot.T(ltag)
	}
	return ot.DfltLang
}

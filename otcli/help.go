package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "shape":
		pterm.Info.Println("shape")
		pterm.Println(`
	shape:<text>   shapes <text> with the current script, language and features
	               and prints the resulting glyph run.

	The run reflects GSUB substitutions (e.g. ligatures), GPOS positioning
	(e.g. kerning) or, for fonts without GPOS, legacy kern pairs.
	`)
	case "features", "feature":
		pterm.Info.Println("features")
		pterm.Println(`
	features       lists the features of the GSUB table
	features:gpos  lists the features of the GPOS table
	on:<tag>       enables a feature for shaping, e.g. on:ss01
	off:<tag>      disables a feature, e.g. off:liga
	`)
	case "script", "scripts", "lang":
		pterm.Info.Println("scripts / languages")
		pterm.Println(`
	scripts        lists scripts and language systems of the GSUB table
	scripts:gpos   same for the GPOS table
	script:<tag>   sets the script for shaping, e.g. script:latn
	lang:<tag>     sets the language, e.g. lang:DEU (lang alone resets to dflt)

	Scripts absent from the font fall back to DFLT, languages to dflt.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	font              print a font summary
	scripts[:gpos]    list scripts and language systems
	features[:gpos]   list features
	lookups[:gpos]    list lookups
	script:<tag>      set shaping script
	lang:<tag>        set shaping language
	on:<tag>          enable a feature
	off:<tag>         disable a feature
	shape:<text>      shape text and print the glyph run
	help:<topic>      more on shape, features, scripts
	quit              leave (or <ctrl>D)
	`)
	}
}

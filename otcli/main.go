package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/otshaper/internal/fontload"
	"github.com/npillmayer/otshaper/internal/testfont"
	"github.com/npillmayer/otshaper/ot"
	"github.com/npillmayer/otshaper/otshape"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'otshaper'
func tracer() tracing.Trace {
	return tracing.Select("otshaper")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.otshaper":  "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "JSON font description to load (default: built-in demo font)")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError) // will set the correct level later
	pterm.Info.Println("Welcome to the OT shaper CLI")
	//
	// set up REPL
	repl, err := readline.New("shape > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{
		repl:     repl,
		script:   ot.T("latn"),
		language: ot.DfltLang,
		features: otshape.DefaultFeatures(),
	}
	//
	// load font to use
	if err := intp.loadFont(*fontname); err != nil { // font name provided by flag
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D")
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	font     *ot.Font
	repl     *readline.Instance
	script   ot.Tag
	language ot.Tag
	features otshape.FeatureSet
}

func (intp *Intp) String() string {
	if intp == nil || intp.font == nil {
		return "()"
	}
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("( font=%s script=%s lang=%s features=",
		intp.font.Fontname, intp.script, intp.language))
	sb.WriteString(formatFeatureSet(intp.features))
	sb.WriteString(" )")
	return sb.String()
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := intp.parseCommand(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		err, quit := intp.execute(cmd)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

type Op struct {
	code int
	arg  string
}

type Command struct {
	count int
	op    [32]Op
}

const NOOP = -1
const (
	QUIT int = iota
	// op-codes below may have arguments
	HELP
	FONT
	SCRIPTS
	FEATURES
	LOOKUPS
	SCRIPT
	LANG
	ON
	OFF
	SHAPE
)

var opMap = map[string]int{
	"quit":     QUIT,
	"help":     HELP,
	"font":     FONT,
	"scripts":  SCRIPTS,
	"features": FEATURES,
	"lookups":  LOOKUPS,
	"script":   SCRIPT,
	"lang":     LANG,
	"on":       ON,
	"off":      OFF,
	"shape":    SHAPE,
}

var opNames = []string{
	"quit",
	"help",
	"font",
	"scripts",
	"features",
	"lookups",
	"script",
	"lang",
	"on",
	"off",
	"shape",
}

var command = Command{}

func resetCommand() {
	command.count = 0
	for i := range command.op {
		command.op[i].code = NOOP
		command.op[i].arg = ""
	}
}

func (intp *Intp) parseCommand(line string) (*Command, error) {
	resetCommand()
	steps := strings.Split(line, " ")
	command.count = len(steps)
	for i, step := range steps {
		c := strings.SplitN(step, ":", 2) // e.g.  "lookups:gsub" or "shape:ffl" or "help"
		code, ok := opMap[strings.ToLower(c[0])]
		if !ok {
			code = HELP
		}
		command.op[i].code = code
		command.op[i].arg = ""
		if command.op[i].code == QUIT {
			return &command, nil
		}
		command.op[i].arg = getOptArg(c, 1)
		if command.op[i].arg == "" {
			tracer().Infof("%s", opNames[command.op[i].code])
		} else {
			tracer().Infof("%s: with argument '%s'", opNames[command.op[i].code], command.op[i].arg)
		}
	}
	return &command, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:     quitOp,
	HELP:     helpOp,
	FONT:     fontOp,
	SCRIPTS:  scriptsOp,
	FEATURES: featuresOp,
	LOOKUPS:  lookupsOp,
	SCRIPT:   scriptOp,
	LANG:     langOp,
	ON:       onOp,
	OFF:      offOp,
	SHAPE:    shapeOp,
}

func (intp *Intp) execute(cmd *Command) (err error, stop bool) {
	tracer().Debugf("cmd = %v", cmd.op)
	for _, c := range cmd.op {
		if c.code == NOOP {
			break
		}
		f, ok := commandFn[c.code]
		if !ok {
			pterm.Error.Printf("unknown command code: %d\n", c.code)
			return nil, false
		}
		err, stop = f(intp, &c)
		if err != nil {
			pterm.Error.Println(err)
			return
		}
		if stop {
			return
		}
	}
	return
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

func scriptOp(intp *Intp, op *Op) (error, bool) {
	if arg, ok := op.hasArg(); ok {
		intp.script = ot.T(arg)
	}
	return nil, false
}

func langOp(intp *Intp, op *Op) (error, bool) {
	if arg, ok := op.hasArg(); ok {
		intp.language = ot.T(arg)
	} else {
		intp.language = ot.DfltLang
	}
	return nil, false
}

func onOp(intp *Intp, op *Op) (error, bool) {
	if arg, ok := op.hasArg(); ok {
		intp.features = intp.features.With(ot.T(arg))
	}
	return nil, false
}

func offOp(intp *Intp, op *Op) (error, bool) {
	if arg, ok := op.hasArg(); ok {
		intp.features = intp.features.Without(ot.T(arg))
	}
	return nil, false
}

// --- Font Loading -----------------------------------------------------

func (intp *Intp) loadFont(fontname string) (err error) {
	if fontname == "" {
		pterm.Info.Println("no font given, using built-in demo font")
		intp.font = testfont.Demo()
		return nil
	}
	if strings.HasSuffix(fontname, ".json") {
		intp.font, err = loadFontDescription(fontname)
	} else {
		var sf *fontload.ScalableFont
		if sf, err = fontload.LoadOpenTypeFont(fontname); err != nil {
			return err
		}
		tracer().Infof("loaded SFNT font = %s", sf.Fontname)
		intp.font, err = fontload.FontModel(sf)
	}
	if err == nil {
		pterm.Printf("loaded font %s\n", intp.font.Fontname)
	}
	return
}

// ----------------------------------------------------------------------

func getOptArg(s []string, inx int) string {
	if len(s) > inx {
		return s[inx]
	}
	return ""
}

func (op *Op) hasArg() (string, bool) {
	if op.arg == "" {
		return "", false
	}
	return op.arg, true
}

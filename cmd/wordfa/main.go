package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"

	"github.com/npillmayer/wordfa/automaton"
	"github.com/npillmayer/wordfa/automaton/samples"
	"github.com/npillmayer/wordfa/description"
	"github.com/npillmayer/wordfa/description/hcldesc"
)

// main() starts an interactive CLI, where users may enter lines of input to
// be matched by an automaton. The automaton is either loaded from a
// description file or chosen from a set of samples.
//
func main() {
	initDisplay()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	load := flag.String("load", "", "Load automaton from description file (*.hcl or text format)")
	demo := flag.String("demo", "dates", "Use sample automaton ["+strings.Join(samples.Names(), "|")+"]")
	lang := flag.Bool("lang", false, "Print the language of the automaton and exit")
	maxDepth := flag.Int("max-depth", 0, "Maximum number of tokens per word of the language")
	maxWords := flag.Int("max-words", 0, "Maximum number of words of the language to print")
	distinct := flag.Bool("distinct", false, "Suppress duplicate words of the language")
	dot := flag.String("dot", "", "Export automaton to a GraphViz file")
	flag.Parse()
	//
	// set up configuration and tracing
	conf := initConfig(*tlevel)
	if *maxDepth > 0 {
		conf.Set("wordfa.max-depth", *maxDepth)
	}
	if *maxWords > 0 {
		conf.Set("wordfa.max-words", *maxWords)
	}
	if *distinct {
		conf.Set("wordfa.distinct", true)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up the automaton
	a, err := loadAutomaton(*load, *demo)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	if *dot != "" {
		if err := exportDot(a, *dot); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(2)
		}
	}
	intp := &Intp{
		out:      os.Stdout,
		reversed: make(map[string]*automaton.ReverseAutomaton),
	}
	intp.use(a)
	if *lang {
		if err := intp.printLanguage(); err != nil {
			os.Exit(1)
		}
		os.Exit(0)
	}
	for _, input := range flag.Args() {
		intp.match(input)
	}
	if len(flag.Args()) > 0 {
		os.Exit(0)
	}
	//
	// set up REPL
	repl, err := readline.New("wordfa> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp.repl = repl
	pterm.Info.Printf("Matching with automaton %q\n", a.Name())
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                         // go into interactive mode
}

// initConfig sets up configuration with koanf and tracing with the Go logger.
// Configuration values are read from a file wordfa.nt, if one is found.
func initConfig(level string) *koanfadapter.KConf {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := koanfadapter.New(nil, "wordfa", []string{"nt"})
	gconf.Initialize(conf)
	conf.Set("tracing.adapter", "go")
	if !conf.IsSet("tracelevel.root") {
		conf.Set("tracelevel.root", level)
	}
	for _, key := range []string{"wordfa.cli", "wordfa.automaton", "wordfa.description"} {
		conf.Set("tracelevel."+key, level)
	}
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		pterm.Error.Println(err.Error())
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return conf
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// loadAutomaton reads an automaton from file filename. Files with extension
// ".hcl" are HCL descriptions, all others are expected to be in text format.
// If filename is empty, the sample automaton named demo is used.
func loadAutomaton(filename string, demo string) (*automaton.Automaton, error) {
	if filename == "" {
		return samples.ByName(demo)
	}
	ext := filepath.Ext(filename)
	if strings.EqualFold(ext, ".hcl") {
		return hcldesc.Load(filename)
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to open description file: %w", err)
	}
	defer f.Close()
	a, err := description.Parse(strings.TrimSuffix(filepath.Base(filename), ext), f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return a, nil
}

func exportDot(a *automaton.Automaton, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err = a.ToGraphViz(f); err != nil {
		f.Close()
		return err
	}
	tracer().Infof("Exported automaton to %s", filename)
	return f.Close()
}

func setTraceLevel(key string, level string) {
	tracing.Select(key).SetTraceLevel(traceLevel(level))
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/wordfa/automaton"
)

// Intp is our interpreter object
type Intp struct {
	a        *automaton.Automaton
	hash     string
	reversed map[string]*automaton.ReverseAutomaton // by fingerprint
	repl     *readline.Instance
	out      io.Writer
}

// use makes a the current automaton.
func (intp *Intp) use(a *automaton.Automaton) {
	intp.a = a
	hash, err := a.Fingerprint()
	if err != nil {
		tracer().Errorf("cannot fingerprint automaton: %v", err)
	}
	intp.hash = hash
	for _, c := range a.PrefixConflicts() {
		pterm.Warning.Println(c.String())
	}
	tracer().Debugf("using automaton %q with %d states", a.Name(), a.Size())
}

// reverse returns the reversed automaton of the current automaton. Reversed
// automata are cached, keyed by the automaton's fingerprint.
func (intp *Intp) reverse() *automaton.ReverseAutomaton {
	if intp.hash == "" {
		return automaton.Reverse(intp.a)
	}
	ra, ok := intp.reversed[intp.hash]
	if !ok {
		ra = automaton.Reverse(intp.a)
		intp.reversed[intp.hash] = ra
	}
	return ra
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval evaluates a line of input. Lines starting with ':' are commands,
// every other line is matched against the current automaton.
func (intp *Intp) Eval(line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}
	if strings.HasPrefix(line, ":") {
		args := strings.Fields(line[1:])
		if len(args) == 0 {
			return false, fmt.Errorf("missing command after ':'")
		}
		return intp.Execute(args[0], args[1:])
	}
	intp.match(line)
	return false, nil
}

// match runs the automaton on input and prints the result.
func (intp *Intp) match(input string) bool {
	path, err := intp.a.Match(input)
	tracer().Debugf("path = %v", path)
	var mf *automaton.MatchFailure
	if errors.As(err, &mf) {
		pterm.Error.Printf("No match for %q in state %d\n", mf.Remaining, mf.State)
	} else if err != nil {
		pterm.Error.Println(err.Error())
	}
	ok := err == nil && path.Accepted()
	fmt.Fprintf(intp.out, "success: %v\n", ok)
	return ok
}

// Execute executes a command (without the leading ':').
func (intp *Intp) Execute(cmd string, args []string) (bool, error) {
	switch cmd {
	case "quit", "q":
		return true, nil
	case "help", "h":
		intp.help()
	case "lang":
		var opts []automaton.Option
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return false, fmt.Errorf("depth expected, have %q", args[0])
			}
			opts = append(opts, automaton.MaxDepth(n))
		}
		return false, intp.printLanguage(opts...)
	case "states":
		intp.printStates()
	case "table":
		intp.printTable()
	case "dot", "html":
		if len(args) != 1 {
			return false, fmt.Errorf(":%s needs a file name", cmd)
		}
		if cmd == "dot" {
			return false, exportDot(intp.a, args[0])
		}
		return false, exportHTML(intp.a, args[0])
	case "hash":
		fmt.Fprintln(intp.out, intp.hash)
	case "load":
		if len(args) != 1 {
			return false, fmt.Errorf(":load needs a file name")
		}
		a, err := loadAutomaton(args[0], "")
		if err != nil {
			return false, err
		}
		intp.use(a)
		pterm.Info.Printf("Matching with automaton %q\n", a.Name())
	case "demo":
		if len(args) != 1 {
			return false, fmt.Errorf(":demo needs a sample name")
		}
		a, err := loadAutomaton("", args[0])
		if err != nil {
			return false, err
		}
		intp.use(a)
		pterm.Info.Printf("Matching with automaton %q\n", a.Name())
	case "trace":
		if len(args) != 1 {
			return false, fmt.Errorf(":trace needs a level [Debug|Info|Error]")
		}
		for _, t := range []string{"wordfa.cli", "wordfa.automaton", "wordfa.description"} {
			tracer().Infof("setting trace level of %s to %s", t, args[0])
			setTraceLevel(t, args[0])
		}
	default:
		return false, fmt.Errorf("unknown command :%s, try :help", cmd)
	}
	return false, nil
}

func (intp *Intp) help() {
	pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"Command", "Description"},
		{":lang [depth]", "print the language of the automaton"},
		{":states", "print the states of the automaton as a tree"},
		{":table", "print the transition table"},
		{":dot <file>", "export the automaton to a GraphViz file"},
		{":html <file>", "export the transition table to an HTML file"},
		{":hash", "print the fingerprint of the automaton"},
		{":load <file>", "load an automaton from a description file"},
		{":demo <name>", "use a sample automaton"},
		{":trace <level>", "set the trace level"},
		{":quit", "quit"},
	}).Render()
}

// printLanguage prints every word of the language on a line by itself.
func (intp *Intp) printLanguage(opts ...automaton.Option) error {
	lang := intp.reverse().Language(opts...)
	for lang.Next() {
		fmt.Fprintln(intp.out, lang.Word())
	}
	if err := lang.Err(); err != nil {
		pterm.Error.Println(err.Error())
		if errors.Is(err, automaton.ErrInfiniteLanguage) {
			pterm.Info.Println("Language is infinite, please provide a depth limit")
		}
		return err
	}
	pterm.Info.Printf("%d words\n", lang.Count())
	return nil
}

// printStates displays the automaton as a tree: states with their
// transitions as children.
func (intp *Intp) printStates() {
	ll := pterm.LeveledList{}
	for i := 0; i < intp.a.Size(); i++ {
		s := intp.a.State(i)
		text := fmt.Sprintf("state %d", i)
		if s.Accepting() {
			text += " (final)"
		}
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: text})
		for _, t := range s.Transitions() {
			ll = append(ll, pterm.LeveledListItem{
				Level: 1,
				Text:  fmt.Sprintf("%q -> %d", t.Token, t.Target),
			})
		}
	}
	pterm.Println(intp.a.Name())
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

// printTable displays the transition table of the automaton.
func (intp *Intp) printTable() {
	table := intp.a.TransitionTable()
	data := pterm.TableData{append([]string{""}, table.Tokens()...)}
	for i := 0; i < table.States(); i++ {
		row := make([]string, 0, len(table.Tokens())+1)
		if table.Accepting(i) {
			row = append(row, fmt.Sprintf("*%d", i))
		} else {
			row = append(row, strconv.Itoa(i))
		}
		for _, token := range table.Tokens() {
			if target := table.Target(i, token); target >= 0 {
				row = append(row, strconv.Itoa(target))
			} else {
				row = append(row, "")
			}
		}
		data = append(data, row)
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func exportHTML(a *automaton.Automaton, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err = automaton.TableAsHTML(a.TransitionTable(), f); err != nil {
		f.Close()
		return err
	}
	tracer().Infof("Exported transition table to %s", filename)
	return f.Close()
}

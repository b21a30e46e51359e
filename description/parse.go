package description

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/wordfa/automaton"
)

// SyntaxError is the error type for malformed descriptions.
type SyntaxError struct {
	Line int    // line number, starting at 1; 0 if not related to a line
	Msg  string // what went wrong
	Err  error  // underlying error, if any
}

func (e *SyntaxError) Error() string {
	if e.Line == 0 {
		return e.Msg
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// ParseString reads an automaton description from a string.
func ParseString(name string, text string) (*automaton.Automaton, error) {
	return Parse(name, strings.NewReader(text))
}

// Parse reads an automaton description from r and creates an automaton with
// a given name. The automaton is validated before it is returned.
func Parse(name string, r io.Reader) (*automaton.Automaton, error) {
	p := &parser{
		b:       automaton.NewBuilder(name),
		current: -1,
	}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		p.lineno++
		lexemes, err := scanLine(scanner.Text(), p.lineno)
		if err != nil {
			return nil, err
		}
		if err = p.parseLine(lexemes); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading description %q: %w", name, err)
	}
	return p.finish()
}

type parser struct {
	b       *automaton.Builder
	lineno  int
	current int           // index of the state opened last
	dest    []destination // destinations referenced, in line order
}

// destination remembers where a target state is referenced.
type destination struct {
	state int
	line  int
}

func (p *parser) error(format string, args ...interface{}) error {
	return &SyntaxError{Line: p.lineno, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) parseLine(lexemes []lexeme) error {
	switch {
	case len(lexemes) == 0:
		return nil
	case len(lexemes) > 1 && lexemes[1].kind == tokArrow:
		return p.transition(lexemes)
	case lexemes[0].kind == tokNum:
		return p.stateHeader(lexemes)
	case lexemes[0].kind == tokArrow:
		return p.error("missing token before '->'")
	}
	return p.error("expected state index or transition, have %s", lexemes[0].text)
}

// stateHeader parses "<index>" or "<index>: final".
func (p *parser) stateHeader(lexemes []lexeme) error {
	index, err := strconv.Atoi(lexemes[0].text)
	if err != nil {
		return p.error("invalid state index %s", lexemes[0].text)
	}
	if index != p.current+1 {
		return p.error("state %d out of order, expected state %d", index, p.current+1)
	}
	sb := p.b.State(index)
	p.current = index
	if len(lexemes) == 1 {
		return nil
	}
	if lexemes[1].kind != tokColon {
		return p.error("unexpected %s after state index", lexemes[1].text)
	}
	if len(lexemes) < 3 || lexemes[2].kind != tokFinal {
		return p.error("expected 'final' after ':'")
	}
	if len(lexemes) > 3 {
		return p.error("unexpected %s after 'final'", lexemes[3].text)
	}
	sb.Final()
	return nil
}

// transition parses "<token> -> <destination>".
func (p *parser) transition(lexemes []lexeme) error {
	if p.current < 0 {
		return p.error("transition before first state")
	}
	var token string
	switch lexemes[0].kind {
	case tokNum, tokWord, tokFinal:
		token = lexemes[0].text
	case tokString:
		t, err := strconv.Unquote(lexemes[0].text)
		if err != nil {
			return p.error("invalid quoted token %s", lexemes[0].text)
		}
		token = t
	default:
		return p.error("invalid token %s", lexemes[0].text)
	}
	if token == "" {
		return &SyntaxError{Line: p.lineno, Msg: "empty token", Err: automaton.ErrEmptyToken}
	}
	if len(lexemes) < 3 {
		return p.error("missing destination state")
	}
	if lexemes[2].kind != tokNum {
		return p.error("destination state expected, have %s", lexemes[2].text)
	}
	if len(lexemes) > 3 {
		return p.error("unexpected %s after destination state", lexemes[3].text)
	}
	target, err := strconv.Atoi(lexemes[2].text)
	if err != nil {
		return p.error("invalid destination state %s", lexemes[2].text)
	}
	p.b.State(p.current).T(token, target)
	p.dest = append(p.dest, destination{state: target, line: p.lineno})
	return nil
}

func (p *parser) finish() (*automaton.Automaton, error) {
	if p.current < 0 {
		return nil, &SyntaxError{Msg: "description contains no states", Err: automaton.ErrNoStates}
	}
	for _, d := range p.dest {
		if d.state > p.current {
			return nil, &SyntaxError{
				Line: d.line,
				Msg:  fmt.Sprintf("destination state %d does not exist", d.state),
				Err:  automaton.ErrIndexOutOfRange,
			}
		}
	}
	a, err := p.b.Automaton()
	if err != nil {
		return nil, &SyntaxError{Msg: err.Error(), Err: err}
	}
	for _, c := range a.PrefixConflicts() {
		tracer().Infof("warning: %v", c)
	}
	return a, nil
}

package description

import (
	"fmt"
	"sync"

	"github.com/npillmayer/wordfa"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types of the description format.
const (
	tokNum int = iota + 1
	tokWord
	tokString
	tokArrow
	tokColon
	tokFinal
)

var tokenNames = map[int]string{
	tokNum:    "number",
	tokWord:   "word",
	tokString: "string",
	tokArrow:  "'->'",
	tokColon:  "':'",
	tokFinal:  "'final'",
}

// lexeme is a token scanned from a single line.
type lexeme struct {
	kind int
	text string
	span wordfa.Span // byte positions within the line
}

func (l lexeme) String() string {
	return fmt.Sprintf("%s %q %v", tokenNames[l.kind], l.text, l.span)
}

var lexer *lexmachine.Lexer // compiled once, in initLexer()
var lexerErr error
var initOnce sync.Once

// initLexer creates the lexmachine lexer. Patterns added earlier take
// precedence for matches of equal length, i.e. "final" and "->" win over
// bare words and digits-only words are numbers.
func initLexer() (*lexmachine.Lexer, error) {
	initOnce.Do(func() {
		lx := lexmachine.NewLexer()
		lx.Add([]byte(`\#[^\n]*`), skip)
		lx.Add([]byte(`( |\t|\r)+`), skip)
		lx.Add([]byte(`\-\>`), makeToken(tokArrow))
		lx.Add([]byte(`:`), makeToken(tokColon))
		lx.Add([]byte(`final`), makeToken(tokFinal))
		lx.Add([]byte(`[0-9]+`), makeToken(tokNum))
		lx.Add([]byte(`\"([^"\\]|\\.)*\"`), makeToken(tokString))
		lx.Add([]byte(`[^ \t\r\n":#]+`), makeToken(tokWord))
		if err := lx.Compile(); err != nil {
			tracer().Errorf("error compiling DFA: %v", err)
			lexerErr = err
			return
		}
		lexer = lx
	})
	return lexer, lexerErr
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(kind int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(kind, string(m.Bytes), m), nil
	}
}

// scanLine splits a single line of a description into lexemes.
// lineno is used for error messages only.
func scanLine(line string, lineno int) ([]lexeme, error) {
	lx, err := initLexer()
	if err != nil {
		return nil, err
	}
	scanner, err := lx.Scanner([]byte(line))
	if err != nil {
		return nil, err
	}
	var lexemes []lexeme
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if err != nil {
			if ui, ok := err.(*machines.UnconsumedInput); ok {
				return nil, &SyntaxError{
					Line: lineno,
					Msg:  fmt.Sprintf("unexpected input at column %d: %q", ui.StartColumn, rest(line, ui.StartTC)),
				}
			}
			return nil, &SyntaxError{Line: lineno, Msg: err.Error()}
		}
		token := tok.(*lexmachine.Token)
		lexemes = append(lexemes, lexeme{
			kind: token.Type,
			text: string(token.Lexeme),
			span: wordfa.MakeSpan(token.TC, len(token.Lexeme)),
		})
	}
	if len(lexemes) > 0 {
		tracer().Debugf("line %d: %v", lineno, lexemes)
	}
	return lexemes, nil
}

func rest(line string, pos int) string {
	if pos < 0 || pos >= len(line) {
		return ""
	}
	return line[pos:]
}

package description

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/wordfa/automaton"
	"github.com/npillmayer/wordfa/automaton/samples"
)

const abDescription = `
# a*ba*
0
    a -> 0
    b -> 1   # leave the loop
1: final
    a -> 1
`

func TestScanLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordfa.description")
	defer teardown()
	//
	lexemes, err := scanLine(`  "a b" -> 12 # comment`, 1)
	if err != nil {
		t.Fatal(err)
	}
	kinds := make([]int, len(lexemes))
	for i, l := range lexemes {
		kinds[i] = l.kind
	}
	if !reflect.DeepEqual(kinds, []int{tokString, tokArrow, tokNum}) {
		t.Errorf("expected string, arrow and number, have %v", lexemes)
	}
	if lexemes[0].span.From() != 2 || lexemes[0].span.Len() != 5 {
		t.Errorf("expected string to span (2…7), is %v", lexemes[0].span)
	}
	lexemes, _ = scanLine(`1: final`, 1)
	if len(lexemes) != 3 || lexemes[1].kind != tokColon || lexemes[2].kind != tokFinal {
		t.Errorf("expected number, colon and 'final', have %v", lexemes)
	}
	lexemes, _ = scanLine(`01. -> 1`, 1)
	if len(lexemes) != 3 || lexemes[0].kind != tokWord || lexemes[0].text != "01." {
		t.Errorf("expected word '01.', have %v", lexemes)
	}
	lexemes, _ = scanLine(`finally -> 1`, 1)
	if len(lexemes) != 3 || lexemes[0].kind != tokWord {
		t.Errorf("expected 'finally' to be a word, have %v", lexemes)
	}
}

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordfa.description")
	defer teardown()
	//
	a, err := ParseString("ab", abDescription)
	if err != nil {
		t.Fatal(err)
	}
	if a.Size() != 2 || a.Name() != "ab" {
		t.Errorf("expected 2 states in automaton 'ab', have %d in %q", a.Size(), a.Name())
	}
	if !a.Run("aaaaba") || a.Run("aa") {
		t.Errorf("parsed automaton does not accept a*ba*")
	}
	if !a.State(1).Accepting() || a.State(0).Accepting() {
		t.Errorf("expected only state 1 to be accepting")
	}
}

func TestParseQuotedTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordfa.description")
	defer teardown()
	//
	a, err := ParseString("hello", `
0
    "hello world" -> 1
    "say \"hi\"" -> 1
    "a->b" -> 1
    final -> 1
    2006 -> 1
1: final
`)
	if err != nil {
		t.Fatal(err)
	}
	for _, input := range []string{"hello world", `say "hi"`, "a->b", "final", "2006"} {
		if !a.Run(input) {
			t.Errorf("expected %q to be accepted", input)
		}
	}
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordfa.description")
	defer teardown()
	//
	descriptions := []struct {
		text string
		line int
	}{
		{"a -> 0\n", 1},                     // transition before state
		{"0\n  a -> x\n", 2},                // destination not a number
		{"0\n  a ->\n", 2},                  // missing destination
		{"0\n1\n3\n", 3},                    // out of order
		{"1\n", 1},                          // does not start with 0
		{"0\n\n  a -> 1\n  b -> 7\n1\n", 4}, // dangling destination
		{"0\n  \"\" -> 0\n", 2},             // empty token
		{"0\n  \"unterminated -> 0\n", 2},   // bad quotes
		{"0 final\n", 1},                    // missing colon
		{"0:\n", 1},                         // missing final
		{"0\n  a b -> 0\n", 2},              // two tokens
		{"0\n  -> 0\n", 2},                  // no token
		{"0\n  a -> 0 0\n", 2},              // trailing garbage
	}
	for i, d := range descriptions {
		_, err := ParseString("errors", d.text)
		var synerr *SyntaxError
		if !errors.As(err, &synerr) {
			t.Errorf("%d: expected syntax error, have %v", i, err)
			continue
		}
		if synerr.Line != d.line {
			t.Errorf("%d: expected error in line %d, have %v", i, d.line, synerr)
		}
		t.Logf("%d: %v", i, err)
	}
}

func TestParseErrorKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordfa.description")
	defer teardown()
	//
	_, err := ParseString("dangling", "0\n  a -> 1\n")
	if !errors.Is(err, automaton.ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, have %v", err)
	}
	_, err = ParseString("empty", "# nothing here\n")
	if !errors.Is(err, automaton.ErrNoStates) {
		t.Errorf("expected ErrNoStates, have %v", err)
	}
}

func TestWriteParseRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordfa.description")
	defer teardown()
	//
	b := automaton.NewBuilder("odd tokens")
	b.State(0).T("a b", 1).T(`"`, 1).T("x:y", 0).T("#", 1).T("->", 0).T("tab\t", 1).T("final", 1).T("42", 1)
	b.State(1).T("ü", 0).Final()
	odd, err := b.Automaton()
	if err != nil {
		t.Fatal(err)
	}
	for _, a := range []*automaton.Automaton{samples.Dates("2006"), samples.AlternatingBits(), odd} {
		var buf strings.Builder
		if err := Write(&buf, a); err != nil {
			t.Fatal(err)
		}
		reread, err := ParseString(a.Name(), buf.String())
		if err != nil {
			t.Fatalf("cannot re-read description of %q: %v\n%s", a.Name(), err, buf.String())
		}
		h1, _ := a.Fingerprint()
		h2, _ := reread.Fingerprint()
		if h1 != h2 {
			t.Errorf("expected %q to survive write and parse, description is\n%s", a.Name(), buf.String())
		}
	}
}

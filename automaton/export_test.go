package automaton

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordfa.automaton")
	defer teardown()
	//
	b := NewBuilder("quotes")
	b.State(0).T(`say "hi"`, 1)
	b.State(1).Final()
	a, _ := b.Automaton()
	var buf bytes.Buffer
	if err := a.ToGraphViz(&buf); err != nil {
		t.Fatal(err)
	}
	dot := buf.String()
	if !strings.HasPrefix(dot, "digraph {") {
		t.Errorf("expected DOT output to start with 'digraph {'")
	}
	if !strings.Contains(dot, `s000 -> s001 [label="say \"hi\""]`) {
		t.Errorf("expected escaped edge label in DOT output:\n%s", dot)
	}
	if !strings.Contains(dot, "s001 [shape=doublecircle") {
		t.Errorf("expected accepting state to be drawn as double circle:\n%s", dot)
	}
}

func TestTransitionTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordfa.automaton")
	defer teardown()
	//
	table := makeAB(t).TransitionTable()
	if !reflect.DeepEqual(table.Tokens(), []string{"a", "b"}) {
		t.Errorf("expected table columns [a b], have %v", table.Tokens())
	}
	if table.States() != 2 {
		t.Errorf("expected 2 rows, have %d", table.States())
	}
	if table.Target(0, "b") != 1 || table.Target(1, "a") != 1 || table.Target(0, "a") != 0 {
		t.Errorf("table entries do not match transitions")
	}
	if table.Target(1, "b") != -1 || table.Target(0, "c") != -1 {
		t.Errorf("expected -1 for missing transitions")
	}
	if !table.Accepting(1) || table.Accepting(0) {
		t.Errorf("expected only state 1 to be accepting")
	}
	if row := table.Row(0); !reflect.DeepEqual(row, []Transition{{"a", 0}, {"b", 1}}) {
		t.Errorf("unexpected row 0: %v", row)
	}
	var buf bytes.Buffer
	if err := TableAsHTML(table, &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<b>state 1</b>") {
		t.Errorf("expected accepting state to be bold in HTML table")
	}
}

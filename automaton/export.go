package automaton

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/wordfa/automaton/sparse"
)

// === GraphViz ==============================================================

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// ToGraphViz exports an automaton to the Graphviz Dot format.
func (a *Automaton) ToGraphViz(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(`digraph {
graph [rankdir=LR, splines=true, fontname=Helvetica, fontsize=10];
node [shape=circle, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	for i, s := range a.states {
		shape := "circle"
		if s.accepting {
			shape = "doublecircle"
		}
		fmt.Fprintf(bw, "s%03d [shape=%s fillcolor=%s label=\"%d\"]\n", i, shape, nodecolor(s), i)
	}
	for i, s := range a.states {
		for _, t := range s.Transitions() {
			fmt.Fprintf(bw, "s%03d -> s%03d [label=\"%s\"]\n", i, t.Target, dotEscaper.Replace(t.Token))
		}
	}
	bw.WriteString("}\n")
	return bw.Flush()
}

func nodecolor(state *State) string {
	if state.accepting {
		return "lightgray"
	}
	return "white"
}

// === Transition tables =====================================================

// TransitionTable is a tabular view of an automaton: rows are states,
// columns are the distinct tokens of all states in ascending order, and
// entries are target states.
type TransitionTable struct {
	tokens  []string
	columns map[string]int
	matrix  *sparse.IntMatrix
	accept  []bool
}

// TransitionTable creates the transition table for a.
func (a *Automaton) TransitionTable() *TransitionTable {
	tokset := treeset.NewWithStringComparator()
	for _, s := range a.states {
		for _, token := range s.Tokens() {
			tokset.Add(token)
		}
	}
	table := &TransitionTable{
		tokens:  make([]string, 0, tokset.Size()),
		columns: make(map[string]int, tokset.Size()),
		matrix:  sparse.NewIntMatrix(len(a.states), tokset.Size(), sparse.DefaultNullValue),
		accept:  make([]bool, len(a.states)),
	}
	for _, x := range tokset.Values() {
		token := x.(string)
		table.columns[token] = len(table.tokens)
		table.tokens = append(table.tokens, token)
	}
	tracer().Debugf("transition table of size %d x %d", len(a.states), len(table.tokens))
	for i, s := range a.states {
		table.accept[i] = s.accepting
		for _, t := range s.Transitions() {
			if err := table.matrix.Set(i, table.columns[t.Token], int32(t.Target)); err != nil {
				tracer().Errorf("transition table: %v", err)
			}
		}
	}
	return table
}

// Tokens returns the column headers of the table.
func (t *TransitionTable) Tokens() []string {
	return append([]string(nil), t.tokens...)
}

// States returns the number of rows of the table.
func (t *TransitionTable) States() int {
	return t.matrix.M()
}

// Accepting is true if state is an accepting state.
func (t *TransitionTable) Accepting(state int) bool {
	return state >= 0 && state < len(t.accept) && t.accept[state]
}

// Target returns the target of the transition for token in state,
// or -1 if there is none.
func (t *TransitionTable) Target(state int, token string) int {
	j, ok := t.columns[token]
	if !ok {
		return -1
	}
	v := t.matrix.Value(state, j)
	if v == t.matrix.NullValue() {
		return -1
	}
	return int(v)
}

// Row returns the transitions of state, ordered by token.
func (t *TransitionTable) Row(state int) []Transition {
	var row []Transition
	t.matrix.EachInRow(state, func(j int, v int32) {
		row = append(row, Transition{Token: t.tokens[j], Target: int(v)})
	})
	return row
}

// TableAsHTML exports a transition table in HTML-format.
func TableAsHTML(t *TransitionTable, w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("<html><body>\n")
	fmt.Fprintf(bw, "transition table of size = %d<p>", t.matrix.ValueCount())
	bw.WriteString("<table border=1 cellspacing=0 cellpadding=5>\n")
	bw.WriteString("<tr bgcolor=#cccccc><td></td>\n")
	for _, token := range t.tokens {
		fmt.Fprintf(bw, "<td>%s</td>", html.EscapeString(token))
	}
	bw.WriteString("</tr>\n")
	var td string // table cell
	for i := 0; i < t.matrix.M(); i++ {
		if t.accept[i] {
			fmt.Fprintf(bw, "<tr><td><b>state %d</b></td>\n", i)
		} else {
			fmt.Fprintf(bw, "<tr><td>state %d</td>\n", i)
		}
		for j := range t.tokens {
			if v := t.matrix.Value(i, j); v == t.matrix.NullValue() {
				td = "&nbsp;"
			} else {
				td = fmt.Sprintf("%d", v)
			}
			bw.WriteString("<td>")
			bw.WriteString(td)
			bw.WriteString("</td>\n")
		}
		bw.WriteString("</tr>\n")
	}
	bw.WriteString("</table></body></html>\n")
	return bw.Flush()
}

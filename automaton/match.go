package automaton

import (
	"fmt"
	"strings"

	"github.com/npillmayer/wordfa"
)

// Step is a single transition taken during a match.
type Step struct {
	From  int         // index of the state the transition leaves
	To    int         // index of the destination state
	Token string      // token consumed
	Span  wordfa.Span // position of the token within the input
}

func (st Step) String() string {
	return fmt.Sprintf("%d --%q--> %d %s", st.From, st.Token, st.To, st.Span)
}

// Path is the sequence of steps a match has taken, together with the
// state where the match ended.
type Path struct {
	Steps    []Step
	Final    int  // index of the last state reached
	accepted bool // is Final an accepting state?
}

// Accepted is true if the match consumed the complete input and ended in an
// accepting state.
func (p Path) Accepted() bool {
	return p.accepted
}

// States returns the sequence of state indices visited, starting with the
// start state.
func (p Path) States() []int {
	states := make([]int, 0, len(p.Steps)+1)
	states = append(states, 0)
	for _, st := range p.Steps {
		states = append(states, st.To)
	}
	return states
}

// Tokens returns the tokens consumed, in input order.
func (p Path) Tokens() []string {
	tokens := make([]string, len(p.Steps))
	for i, st := range p.Steps {
		tokens[i] = st.Token
	}
	return tokens
}

func (p Path) String() string {
	var b strings.Builder
	for i, s := range p.States() {
		if i > 0 {
			b.WriteString(" → ")
		}
		fmt.Fprintf(&b, "%d", s)
	}
	if p.accepted {
		b.WriteString(" (accept)")
	}
	return b.String()
}

// Run decides whether input is accepted by a. If matching gets stuck, the
// remaining input and the current state are reported to the tracer and
// false is returned.
func (a *Automaton) Run(input string) bool {
	path, err := a.Match(input)
	if err != nil {
		tracer().Errorf("%v", err)
		return false
	}
	return path.Accepted()
}

// Match consumes input, starting at state 0. In every state, prefixes of the
// remaining input are looked up as tokens in order of increasing length,
// and the first one found is consumed. Matching never backtracks.
//
// If no prefix of the remaining input is a token of the current state, Match
// returns the path taken so far and a *MatchFailure. Otherwise the returned
// path tells whether the state reached after consuming all of the input is
// accepting.
func (a *Automaton) Match(input string) (Path, error) {
	if len(a.states) == 0 {
		return Path{Final: -1}, ErrNoStates
	}
	path := Path{Steps: make([]Step, 0, 8)}
	current, pos := 0, 0
	for pos < len(input) {
		l, target := a.states[current].shortestPrefix(input[pos:])
		if l == 0 {
			path.Final = current
			return path, &MatchFailure{
				Remaining: input[pos:],
				State:     current,
				Offset:    pos,
			}
		}
		if target < 0 || target >= len(a.states) {
			path.Final = current
			return path, fmt.Errorf("state %d, token %q -> %d: %w", current,
				input[pos:pos+l], target, ErrIndexOutOfRange)
		}
		step := Step{
			From:  current,
			To:    target,
			Token: input[pos : pos+l],
			Span:  wordfa.MakeSpan(pos, l),
		}
		tracer().Debugf("match %v", step)
		path.Steps = append(path.Steps, step)
		current = target
		pos += l
	}
	path.Final = current
	path.accepted = a.states[current].accepting
	return path, nil
}

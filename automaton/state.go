package automaton

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
)

// Transition is an edge of an automaton, labelled with a token and leading
// to the state with index Target.
type Transition struct {
	Token  string
	Target int
}

func (t Transition) String() string {
	return fmt.Sprintf("%q -> %d", t.Token, t.Target)
}

// State is a state of an automaton. It maps tokens to indices of destination
// states. Tokens are kept in ascending order, which makes iteration over
// a state's transitions deterministic.
type State struct {
	transitions *treemap.Map // token string -> target int
	accepting   bool
	maxlen      int // length of the longest token
}

// NewState creates a state from a list of transitions. If a token occurs more
// than once, the last transition for it wins.
func NewState(accepting bool, transitions ...Transition) *State {
	s := &State{
		transitions: treemap.NewWithStringComparator(),
		accepting:   accepting,
	}
	for _, t := range transitions {
		s.put(t.Token, t.Target)
	}
	return s
}

func (s *State) put(token string, target int) {
	s.transitions.Put(token, target)
	if len(token) > s.maxlen {
		s.maxlen = len(token)
	}
}

// Accepting is true for final states.
func (s *State) Accepting() bool {
	return s.accepting
}

// Size returns the number of transitions leaving s.
func (s *State) Size() int {
	return s.transitions.Size()
}

// Target returns the index of the destination state for token, if any.
func (s *State) Target(token string) (int, bool) {
	if target, ok := s.transitions.Get(token); ok {
		return target.(int), true
	}
	return -1, false
}

// Transitions returns the transitions of s, ordered by token.
func (s *State) Transitions() []Transition {
	tt := make([]Transition, 0, s.transitions.Size())
	it := s.transitions.Iterator()
	for it.Next() {
		tt = append(tt, Transition{Token: it.Key().(string), Target: it.Value().(int)})
	}
	return tt
}

// Tokens returns the tokens of all transitions of s in ascending order.
func (s *State) Tokens() []string {
	tokens := make([]string, 0, s.transitions.Size())
	for _, k := range s.transitions.Keys() {
		tokens = append(tokens, k.(string))
	}
	return tokens
}

// shortestPrefix finds the shortest prefix of input which is a token of s.
// Prefix lengths are tried in increasing order, capped by the longest token.
// Returns the token's length and target, or (0, -1).
func (s *State) shortestPrefix(input string) (int, int) {
	n := len(input)
	if s.maxlen < n {
		n = s.maxlen
	}
	for l := 1; l <= n; l++ {
		if target, ok := s.transitions.Get(input[:l]); ok {
			return l, target.(int)
		}
	}
	return 0, -1
}

func (s *State) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, t := range s.Transitions() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.String())
	}
	b.WriteString("}")
	if s.accepting {
		b.WriteString(" final")
	}
	return b.String()
}

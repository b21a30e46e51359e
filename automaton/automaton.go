package automaton

import (
	"fmt"
	"strings"
)

// Automaton is a finite automaton with tokens as transition labels.
// States are addressed by their index; state 0 is the start state.
//
// Automata are built by appending states and are not modified afterwards.
// An automaton may be shared between goroutines once it is complete.
type Automaton struct {
	name   string
	states []*State
}

// New creates an automaton without any states.
func New(name string) *Automaton {
	return &Automaton{
		name:   name,
		states: make([]*State, 0, 8),
	}
}

// Name returns the name of the automaton, as given to New.
func (a *Automaton) Name() string {
	return a.name
}

// AddState appends a state and returns its index. Targets of transitions
// may refer to states which have not been added yet; call Validate after
// the last state has been added.
func (a *Automaton) AddState(s *State) int {
	if s == nil {
		s = NewState(false)
	}
	a.states = append(a.states, s)
	return len(a.states) - 1
}

// Size returns the number of states.
func (a *Automaton) Size() int {
	return len(a.states)
}

// State returns the state at index i, or nil.
func (a *Automaton) State(i int) *State {
	if i < 0 || i >= len(a.states) {
		return nil
	}
	return a.states[i]
}

// AcceptingStates returns the indices of all final states in ascending order.
func (a *Automaton) AcceptingStates() []int {
	acc := make([]int, 0, 2)
	for i, s := range a.states {
		if s.accepting {
			acc = append(acc, i)
		}
	}
	return acc
}

// Validate checks that the automaton has a start state, that no token is
// empty and that every transition leads to an existing state.
func (a *Automaton) Validate() error {
	if len(a.states) == 0 {
		return ErrNoStates
	}
	for i, s := range a.states {
		for _, t := range s.Transitions() {
			if t.Token == "" {
				return fmt.Errorf("state %d: %w", i, ErrEmptyToken)
			}
			if t.Target < 0 || t.Target >= len(a.states) {
				return fmt.Errorf("state %d, token %q -> %d: %w", i, t.Token, t.Target, ErrIndexOutOfRange)
			}
		}
	}
	return nil
}

// PrefixConflict describes a pair of tokens in one state, where Prefix is a
// proper prefix of Shadowed. The matcher will always consume Prefix, making
// Shadowed useless for input which continues with Shadowed.
type PrefixConflict struct {
	State    int
	Prefix   string
	Shadowed string
}

func (pc PrefixConflict) String() string {
	return fmt.Sprintf("state %d: %q shadows %q", pc.State, pc.Prefix, pc.Shadowed)
}

// PrefixConflicts lists all pairs of tokens within the same state, where one
// token is a prefix of another. Well-formed automata do not have any.
func (a *Automaton) PrefixConflicts() []PrefixConflict {
	var conflicts []PrefixConflict
	for i, s := range a.states {
		tokens := s.Tokens() // ascending, prefixes sort before their extensions
		for j, short := range tokens {
			for _, long := range tokens[j+1:] {
				if !strings.HasPrefix(long, short) {
					break
				}
				conflicts = append(conflicts, PrefixConflict{State: i, Prefix: short, Shadowed: long})
			}
		}
	}
	return conflicts
}

// Dump is a debugging helper
func (a *Automaton) Dump() {
	tracer().Debugf("--- automaton %q, %d states -----------", a.name, len(a.states))
	for i, s := range a.states {
		tracer().Debugf("%03d: %s", i, s)
	}
	tracer().Debugf("-------------------------")
}

func (a *Automaton) String() string {
	return fmt.Sprintf("(automaton %q | [%d])", a.name, len(a.states))
}

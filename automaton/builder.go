package automaton

import (
	"fmt"
)

// Builder is a builder type for automata. Create one with NewBuilder.
//
//    b := automaton.NewBuilder("binary")
//    b.State(0).T("0", 1).T("1", 0)            // state 0 is the start state
//    b.State(1).T("0", 1).T("1", 0).Final()    // state 1 is accepting
//    a, err := b.Automaton()
//
// States may be opened in any order and more than once, but the indices of all
// states opened must form a range 0…n-1.
type Builder struct {
	name   string
	states map[int]*StateBuilder
	maxID  int
}

// NewBuilder creates a builder for an automaton with a given name.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:   name,
		states: make(map[int]*StateBuilder),
		maxID:  -1,
	}
}

// StateBuilder collects the transitions of a single state.
type StateBuilder struct {
	b           *Builder
	id          int
	transitions []Transition
	final       bool
}

// State opens state id for adding transitions.
func (b *Builder) State(id int) *StateBuilder {
	if sb, ok := b.states[id]; ok {
		return sb
	}
	sb := &StateBuilder{b: b, id: id}
	b.states[id] = sb
	if id > b.maxID {
		b.maxID = id
	}
	return sb
}

// T adds a transition for token to state target.
func (sb *StateBuilder) T(token string, target int) *StateBuilder {
	sb.transitions = append(sb.transitions, Transition{Token: token, Target: target})
	return sb
}

// Tokens adds a transition to target for each of the tokens.
func (sb *StateBuilder) Tokens(tokens []string, target int) *StateBuilder {
	for _, token := range tokens {
		sb.T(token, target)
	}
	return sb
}

// Final marks the state as accepting.
func (sb *StateBuilder) Final() *StateBuilder {
	sb.final = true
	return sb
}

// ID returns the index of the state.
func (sb *StateBuilder) ID() int {
	return sb.id
}

// Automaton creates the automaton from the states collected so far
// and validates it.
func (b *Builder) Automaton() (*Automaton, error) {
	for id := range b.states {
		if id < 0 {
			return nil, fmt.Errorf("automaton %q: negative state index %d: %w", b.name, id, ErrIndexOutOfRange)
		}
	}
	a := New(b.name)
	for id := 0; id <= b.maxID; id++ {
		sb, ok := b.states[id]
		if !ok {
			return nil, fmt.Errorf("automaton %q: state %d never defined", b.name, id)
		}
		a.AddState(NewState(sb.final, sb.transitions...))
	}
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("automaton %q: %w", b.name, err)
	}
	a.Dump()
	return a, nil
}

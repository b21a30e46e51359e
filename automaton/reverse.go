package automaton

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// Edge is an incoming edge of a reversed state: in the original automaton
// there is a transition Source --Token--> this state.
type Edge struct {
	Source int
	Token  string
}

func (e Edge) String() string {
	return fmt.Sprintf("%d --%q-->", e.Source, e.Token)
}

// ReverseState is a state of a reversed automaton. It holds all the edges
// leading into the state at the same index in the original automaton.
type ReverseState struct {
	incoming *arraylist.List // of Edge, in insertion order
}

func newReverseState() *ReverseState {
	return &ReverseState{incoming: arraylist.New()}
}

func (rs *ReverseState) addParent(source int, token string) {
	rs.incoming.Add(Edge{Source: source, Token: token})
}

// Incoming returns the edges leading into this state.
func (rs *ReverseState) Incoming() []Edge {
	edges := make([]Edge, rs.incoming.Size())
	it := rs.incoming.Iterator()
	for it.Next() {
		edges[it.Index()] = it.Value().(Edge)
	}
	return edges
}

// ReverseAutomaton is the edge-inverted form of an automaton, used to
// enumerate the language of the automaton backwards, from the accepting
// states to the start state. Create one with Reverse.
type ReverseAutomaton struct {
	name      string
	states    []*ReverseState // index-aligned with the original states
	accepting []int           // indices of accepting states, ascending
}

// Reverse creates the reversed automaton for a. For every transition
// s --token--> d of a, (s, token) is appended to the incoming edges of d.
// States are visited in index order and transitions in token order, which
// makes the order of incoming edges deterministic.
func Reverse(a *Automaton) *ReverseAutomaton {
	ra := &ReverseAutomaton{
		name:      a.name,
		states:    make([]*ReverseState, len(a.states)),
		accepting: make([]int, 0, 2),
	}
	for i := range ra.states {
		ra.states[i] = newReverseState()
	}
	for i, s := range a.states {
		if s.accepting {
			ra.accepting = append(ra.accepting, i)
		}
		it := s.transitions.Iterator()
		for it.Next() {
			target := it.Value().(int)
			if target < 0 || target >= len(ra.states) {
				tracer().Errorf("state %d: dangling transition to %d ignored", i, target)
				continue
			}
			ra.states[target].addParent(i, it.Key().(string))
		}
	}
	return ra
}

// Size returns the number of states.
func (ra *ReverseAutomaton) Size() int {
	return len(ra.states)
}

// State returns the reversed state at index i, or nil.
func (ra *ReverseAutomaton) State(i int) *ReverseState {
	if i < 0 || i >= len(ra.states) {
		return nil
	}
	return ra.states[i]
}

// Incoming returns the edges leading into state i.
func (ra *ReverseAutomaton) Incoming(i int) []Edge {
	if rs := ra.State(i); rs != nil {
		return rs.Incoming()
	}
	return nil
}

// Accepting returns the indices of the accepting states.
func (ra *ReverseAutomaton) Accepting() []int {
	return append([]int(nil), ra.accepting...)
}

// --- Cycle detection -------------------------------------------------------

// dfsFrame is an entry of the explicit DFS stack: a state and the position of
// the next incoming edge to follow.
type dfsFrame struct {
	state int
	next  int
}

const (
	unvisited = iota
	onStack
	done
)

// Cycle searches for a cycle within the states which are backward-reachable
// from the accepting states. If one is found, the state indices along the
// cycle are returned in the order of the edges followed (backwards).
// Otherwise Cycle returns nil and the language of the automaton is finite.
func (ra *ReverseAutomaton) Cycle() []int {
	color := make([]uint8, len(ra.states))
	for _, acc := range ra.accepting {
		if color[acc] != unvisited {
			continue
		}
		if cycle := ra.cycleFrom(acc, color); cycle != nil {
			return cycle
		}
	}
	return nil
}

func (ra *ReverseAutomaton) cycleFrom(start int, color []uint8) []int {
	stack := arraystack.New()
	stack.Push(&dfsFrame{state: start})
	color[start] = onStack
	for !stack.Empty() {
		top, _ := stack.Peek()
		frame := top.(*dfsFrame)
		incoming := ra.states[frame.state].incoming
		if frame.next >= incoming.Size() {
			color[frame.state] = done
			stack.Pop()
			continue
		}
		e, _ := incoming.Get(frame.next)
		frame.next++
		parent := e.(Edge).Source
		switch color[parent] {
		case onStack:
			return cycleOnStack(stack, parent)
		case unvisited:
			color[parent] = onStack
			stack.Push(&dfsFrame{state: parent})
		}
	}
	return nil
}

// cycleOnStack extracts the cycle closing at state from the DFS stack.
func cycleOnStack(stack *arraystack.Stack, state int) []int {
	values := stack.Values() // top of stack first
	cycle := make([]int, 0, len(values))
	for i := len(values) - 1; i >= 0; i-- {
		s := values[i].(*dfsFrame).state
		if s == state {
			cycle = cycle[:0]
		}
		cycle = append(cycle, s)
	}
	return cycle
}

// IsFinite is true if no cycle is backward-reachable from any accepting state,
// i.e. if the automaton's language is finite and can be enumerated without
// a depth bound.
func (ra *ReverseAutomaton) IsFinite() bool {
	return ra.Cycle() == nil
}

// Dump is a debugging helper
func (ra *ReverseAutomaton) Dump() {
	tracer().Debugf("--- reversed %q, accepting %v -----------", ra.name, ra.accepting)
	for i, rs := range ra.states {
		tracer().Debugf("%03d: %v", i, rs.Incoming())
	}
	tracer().Debugf("-------------------------")
}

package automaton

import (
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestReverseEdges(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordfa.automaton")
	defer teardown()
	//
	a := makeAB(t)
	ra := Reverse(a)
	ra.Dump()
	if ra.Size() != 2 {
		t.Fatalf("expected reversed automaton to have 2 states, has %d", ra.Size())
	}
	if e := ra.Incoming(0); !reflect.DeepEqual(e, []Edge{{0, "a"}}) {
		t.Errorf("unexpected incoming edges for state 0: %v", e)
	}
	if e := ra.Incoming(1); !reflect.DeepEqual(e, []Edge{{0, "b"}, {1, "a"}}) {
		t.Errorf("unexpected incoming edges for state 1: %v", e)
	}
	if !reflect.DeepEqual(ra.Accepting(), []int{1}) {
		t.Errorf("expected accepting states [1], have %v", ra.Accepting())
	}
	if ra.Incoming(7) != nil || ra.State(-1) != nil {
		t.Errorf("expected no reversed state outside of range")
	}
}

func TestReverseCoversEveryTransition(t *testing.T) {
	b := NewBuilder("multi")
	b.State(0).T("x", 1).T("y", 1).T("z", 2)
	b.State(1).T("x", 2).T("y", 0)
	b.State(2).T("x", 2).Final()
	a, err := b.Automaton()
	if err != nil {
		t.Fatal(err)
	}
	ra := Reverse(a)
	count := 0
	for i := 0; i < ra.Size(); i++ {
		for _, e := range ra.Incoming(i) {
			count++
			if target, ok := a.State(e.Source).Target(e.Token); !ok || target != i {
				t.Errorf("edge %v into %d has no matching transition", e, i)
			}
		}
	}
	if count != 6 {
		t.Errorf("expected 6 edges in reversed automaton, have %d", count)
	}
}

func TestCycleDetection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordfa.automaton")
	defer teardown()
	//
	b := NewBuilder("pingpong")
	b.State(0).T("0", 1)
	b.State(1).T("1", 0).Final()
	a, _ := b.Automaton()
	ra := Reverse(a)
	if ra.IsFinite() {
		t.Errorf("expected ping-pong automaton to have an infinite language")
	}
	if cycle := ra.Cycle(); !reflect.DeepEqual(cycle, []int{1, 0}) {
		t.Errorf("expected cycle [1 0], have %v", cycle)
	}
	//
	b = NewBuilder("self-loop")
	b.State(0).T("a", 1)
	b.State(1).T("b", 1).Final()
	a, _ = b.Automaton()
	if cycle := Reverse(a).Cycle(); !reflect.DeepEqual(cycle, []int{1}) {
		t.Errorf("expected self-loop [1], have %v", cycle)
	}
	//
	b = NewBuilder("dead-end loop") // loop is not backward-reachable from state 1
	b.State(0).T("a", 1).T("b", 2)
	b.State(1).Final()
	b.State(2).T("c", 2)
	a, _ = b.Automaton()
	if !Reverse(a).IsFinite() {
		t.Errorf("expected loop behind a dead end not to make the language infinite")
	}
	if !Reverse(makeFinite(t)).IsFinite() {
		t.Errorf("expected acyclic automaton to have a finite language")
	}
}

// makeFinite creates an acyclic automaton with language {"z", "ac", "bc"}.
func makeFinite(t *testing.T) *Automaton {
	b := NewBuilder("finite")
	b.State(0).T("a", 1).T("b", 1).T("z", 2)
	b.State(1).T("c", 2)
	b.State(2).Final()
	a, err := b.Automaton()
	if err != nil {
		t.Fatal(err)
	}
	return a
}

/*
Package automaton implements finite automata with word tokens as transition
labels.

Building an Automaton

Automata are a sequence of states, where the state at index 0 is the start
state. Every state maps tokens (non-empty strings) to the index of a
destination state. Clients either append states one by one,

    a := automaton.New("ab")
    a.AddState(automaton.NewState(false, automaton.Transition{"a", 0}, automaton.Transition{"b", 1}))
    a.AddState(automaton.NewState(true, automaton.Transition{"a", 1}))
    err := a.Validate()

or use a builder object, which will validate the automaton when done:

    b := automaton.NewBuilder("ab")
    b.State(0).T("a", 0).T("b", 1)
    b.State(1).T("a", 1).Final()
    a, err := b.Automaton()

Matching Input

Run decides whether an input string is accepted:

    a.Run("aaaaba")   // true

The matcher consumes the input from left to right. In every state it
looks up prefixes of the remaining input in order of increasing length,
and the first prefix which is a token of the current state is consumed.
There is no backtracking: if a state has tokens "0" and "01", input "01"
will always consume "0" first. Automata should therefore not contain states
where one token is a prefix of another; see PrefixConflicts.

Match performs the same run, but returns the path of transitions taken and,
if the input could not be consumed, a *MatchFailure error.

Enumerating the Language

The language of an automaton may be enumerated by reversing its edges and
walking back from every accepting state to the start state:

    ra := automaton.Reverse(a)
    lang := ra.Language(automaton.MaxDepth(10))
    for lang.Next() {
        fmt.Println(lang.Word())
    }
    if err := lang.Err(); err != nil { … }

This terminates only if no cycle is backward-reachable from an accepting state.
For automata with such cycles, clients have to provide a depth bound, otherwise
enumeration will stop with ErrInfiniteLanguage.

Configuration

Limits not set as options are read from the global configuration:

    wordfa.max-depth   maximum number of tokens per word
    wordfa.max-words   maximum number of words to produce
    wordfa.max-paths   maximum number of partial paths in flight (default 1048576)
    wordfa.distinct    suppress duplicate words

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package automaton

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'wordfa.automaton'.
func tracer() tracing.Trace {
	return tracing.Select("wordfa.automaton")
}

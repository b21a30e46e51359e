package automaton

import (
	"errors"
	"fmt"
)

// Errors reported when building automata or enumerating their languages.
var (
	ErrNoStates          = errors.New("automaton has no states")
	ErrEmptyToken        = errors.New("transition token is empty")
	ErrIndexOutOfRange   = errors.New("transition target has no corresponding state")
	ErrInfiniteLanguage  = errors.New("language is infinite; enumeration needs a depth bound")
	ErrPathLimitExceeded = errors.New("number of partial paths exceeds limit")
)

// MatchFailure is returned by Match if there is no transition in the current
// state whose token is a prefix of the remaining input.
type MatchFailure struct {
	Remaining string // unconsumed input
	State     int    // index of the state where matching got stuck
	Offset    int    // position of Remaining within the input
}

func (mf *MatchFailure) Error() string {
	return fmt.Sprintf("no match for %q in state %d", mf.Remaining, mf.State)
}

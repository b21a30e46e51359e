package automaton

import (
	"fmt"

	"github.com/cnf/structhash"
)

// fingerprintVersion is passed to structhash; bump it when the shape of
// stateRecord changes.
const fingerprintVersion = 1

type stateRecord struct {
	Accepting bool
	Tokens    []string
	Targets   []int
}

type automatonRecord struct {
	States []stateRecord
}

// Fingerprint returns a hash string of the structure of a. Automata with the
// same states, transitions and accepting flags have the same fingerprint,
// independent of their names and of the order in which transitions have been
// added.
func (a *Automaton) Fingerprint() (string, error) {
	rec := automatonRecord{States: make([]stateRecord, len(a.states))}
	for i, s := range a.states {
		tt := s.Transitions()
		sr := stateRecord{
			Accepting: s.accepting,
			Tokens:    make([]string, len(tt)),
			Targets:   make([]int, len(tt)),
		}
		for j, t := range tt {
			sr.Tokens[j] = t.Token
			sr.Targets[j] = t.Target
		}
		rec.States[i] = sr
	}
	h, err := structhash.Hash(rec, fingerprintVersion)
	if err != nil {
		return "", fmt.Errorf("cannot fingerprint automaton %q: %w", a.name, err)
	}
	return h, nil
}

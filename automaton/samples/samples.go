/*
Package samples provides sample automata, built with the public builder
interface of package automaton. They serve as test fixtures and as demo
automata for the command line tool.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package samples

import (
	"fmt"

	"github.com/npillmayer/wordfa/automaton"
)

// NumberTokens formats the integers from…to (inclusive) with "%02d.",
// e.g. "01.", "02.", … as used for day and month fields of dates.
func NumberTokens(from, to int) []string {
	tokens := make([]string, 0, to-from+1)
	for n := from; n <= to; n++ {
		tokens = append(tokens, fmt.Sprintf("%02d.", n))
	}
	return tokens
}

// Dates creates an automaton accepting dates of format DD.MM.YYYY for a
// single year. Days 29 and 30 are not accepted for February, day 31 only
// for months with 31 days. Leap years are not considered.
//
//    0 --01.…28.--> 1 --01.…12.--> 4 --year--> 5 (final)
//    0 --29.,30.--> 2 --all months but 02.--> 4
//    0 --31.------> 3 --01.,03.,05.,07.,08.,10.,12.--> 4
//
func Dates(year string) *automaton.Automaton {
	months := NumberTokens(1, 12)
	b := automaton.NewBuilder("dates " + year)
	b.State(0).
		Tokens(NumberTokens(1, 28), 1).
		Tokens(NumberTokens(29, 30), 2).
		Tokens(NumberTokens(31, 31), 3)
	b.State(1).Tokens(months, 4)
	s2 := b.State(2)
	for _, m := range months {
		if m != "02." {
			s2.T(m, 4)
		}
	}
	s3 := b.State(3)
	for i := 0; i < 7; i += 2 {
		s3.T(months[i], 4) // January, March, May, July
	}
	for i := 7; i < 12; i += 2 {
		s3.T(months[i], 4) // August, October, December
	}
	b.State(4).T(year, 5)
	b.State(5).Final()
	return mustBuild(b)
}

// AlternatingBits creates an automaton over tokens "0" and "1", accepting
// every binary string which ends with "0". Its language is infinite.
func AlternatingBits() *automaton.Automaton {
	b := automaton.NewBuilder("bits")
	b.State(0).T("0", 1).T("1", 0)
	b.State(1).T("0", 1).T("1", 0).Final()
	return mustBuild(b)
}

// PingPong creates the two-state automaton 0 --"0"--> 1 --"1"--> 0 with
// state 1 accepting. Its language is 0(10)*, which is infinite.
func PingPong() *automaton.Automaton {
	b := automaton.NewBuilder("ping-pong")
	b.State(0).T("0", 1)
	b.State(1).T("1", 0).Final()
	return mustBuild(b)
}

// Names lists the names accepted by ByName.
func Names() []string {
	return []string{"dates", "bits", "pingpong"}
}

// ByName returns a sample automaton by its name (see Names).
func ByName(name string) (*automaton.Automaton, error) {
	switch name {
	case "dates":
		return Dates("2006"), nil
	case "bits":
		return AlternatingBits(), nil
	case "pingpong":
		return PingPong(), nil
	}
	return nil, fmt.Errorf("no sample automaton named %q", name)
}

// samples are static; a build error is a bug in this package.
func mustBuild(b *automaton.Builder) *automaton.Automaton {
	a, err := b.Automaton()
	if err != nil {
		panic(fmt.Sprintf("sample automaton: %v", err))
	}
	return a
}

/*
Command wordfa is an interactive command line tool for automata with word
tokens. It loads an automaton from a description file or selects one of the
built-in sample automata, and then matches input lines against it:

    wordfa -demo dates
    wordfa> 15.06.2006
    success: true
    wordfa> 31.02.2006
    success: false

With flag -lang, wordfa prints the language of the automaton and exits.
Automata with an infinite language need a depth bound (-max-depth).

Lines starting with ':' are commands; type ":help" for a list.

Configuration is read from a NestedText file "wordfa.nt" at the standard
configuration locations, if present. Flags override configuration values.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'wordfa.cli'
func tracer() tracing.Trace {
	return tracing.Select("wordfa.cli")
}

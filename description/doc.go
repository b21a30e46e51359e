/*
Package description reads and writes automata in a line-oriented text format.

Format

Every non-blank line either opens a state or adds a transition to the state
opened last. Comments start with '#' and extend to the end of the line.

    # dates of a single year
    0
        01. -> 1
        "a b" -> 2
    1: final

A line "<index>" or "<index>: final" opens a state. States have to be opened
in order 0, 1, 2, …, where state 0 is the start state. A line
"<token> -> <destination>" adds a transition. Tokens are either bare words,
which may not contain whitespace, '"', ':' or '#', or Go-style quoted strings.
Tokens containing "->" should be quoted, and "->" has to be surrounded by
whitespace.

Errors in a description are reported as *SyntaxError, carrying the line
number of the offending line.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package description

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'wordfa.description'.
func tracer() tracing.Trace {
	return tracing.Select("wordfa.description")
}

/*
Package wordfa is a toolbox for finite automata over word tokens.

Conventional automata label every edge with a single symbol. WordFA labels
edges with tokens, i.e. non-empty strings of arbitrary length, which makes it
easy to write down automata for structured strings like dates ("15.06.2006"),
where a token is a whole day or month field. Package structure is
as follows:

■ automaton: Package automaton implements token automata, a forward matcher,
the reversed automaton and the enumeration of an automaton's language.

■ description: Package description reads and writes a plain text description
format for automata. Sub-package hcldesc reads automata from HCL files.

■ cmd/wordfa: An interactive command line tool to match input lines against
an automaton and to print its language.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package wordfa

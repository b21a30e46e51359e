/*
Package hcldesc reads automata from HCL descriptions.

States are blocks labelled with a name, and transitions refer to their target
states by name. The first state block is the start state.

    name = "dates"

    state "day" {
      on {
        tokens = tokens(1, 28, "%02d.")
        to     = "month"
      }
      on {
        token = "31."
        to    = "month31"
      }
    }
    …
    state "end" {
      final = true
    }

Attribute expressions may use the functions tokens(from, to, format), range,
format, formatlist, concat, setsubtract, upper and lower.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package hcldesc

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/wordfa/automaton"
)

// tracer traces with key 'wordfa.description'.
func tracer() tracing.Trace {
	return tracing.Select("wordfa.description")
}

// fileRoot is the top-level structure of a description.
type fileRoot struct {
	Name   string        `hcl:"name,optional"`
	States []*stateBlock `hcl:"state,block"`
}

type stateBlock struct {
	Label      string     `hcl:"label,label"`
	Final      bool       `hcl:"final,optional"`
	On         []*onBlock `hcl:"on,block"`
	LabelRange hcl.Range  `hcl:"label,label_range"`
}

type onBlock struct {
	Token    *string   `hcl:"token,optional"`
	Tokens   []string  `hcl:"tokens,optional"`
	To       string    `hcl:"to"`
	ToRange  hcl.Range `hcl:"to,attr_range"`
	DefRange hcl.Range `hcl:",def_range"`
}

// Load reads a description from an HCL file.
func Load(filename string) (*automaton.Automaton, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return decodeFile(file, filename)
}

// Decode reads a description from HCL source. filename is used for
// diagnostics only.
func Decode(src []byte, filename string) (*automaton.Automaton, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL description %s: %w", filename, diags)
	}
	return decodeFile(file, filename)
}

func decodeFile(file *hcl.File, filename string) (*automaton.Automaton, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL description %s: %w", filename, diags)
	}
	if root.Name == "" {
		root.Name = filename
	}
	a, diags := translate(&root, file.Body.MissingItemRange())
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid automaton in %s: %w", filename, diags)
	}
	for _, c := range a.PrefixConflicts() {
		tracer().Infof("warning: %v", c)
	}
	return a, nil
}

// translate maps state labels to indices in order of declaration and
// builds the automaton.
func translate(root *fileRoot, missing hcl.Range) (*automaton.Automaton, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	if len(root.States) == 0 {
		diags = diags.Append(&hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "No states",
			Detail:   "An automaton needs at least one state block; the first one is the start state.",
			Subject:  &missing,
		})
		return nil, diags
	}
	index := make(map[string]int, len(root.States))
	for i, s := range root.States {
		if first, dup := index[s.Label]; dup {
			r := s.LabelRange
			diags = diags.Append(&hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate state",
				Detail:   fmt.Sprintf("State %q is already defined as state %d.", s.Label, first),
				Subject:  &r,
			})
			continue
		}
		index[s.Label] = i
	}
	b := automaton.NewBuilder(root.Name)
	for i, s := range root.States {
		sb := b.State(i)
		if s.Final {
			sb.Final()
		}
		for _, on := range s.On {
			target, ok := index[on.To]
			if !ok {
				r := on.ToRange
				diags = diags.Append(&hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Unknown target state",
					Detail:   fmt.Sprintf("There is no state labelled %q.", on.To),
					Subject:  &r,
				})
				continue
			}
			tokens := on.Tokens
			if on.Token != nil {
				tokens = append([]string{*on.Token}, tokens...)
			}
			if len(tokens) == 0 {
				r := on.DefRange
				diags = diags.Append(&hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Missing tokens",
					Detail:   "A transition needs a \"token\" or \"tokens\" attribute.",
					Subject:  &r,
				})
				continue
			}
			for _, token := range tokens {
				if token == "" {
					r := on.DefRange
					diags = diags.Append(&hcl.Diagnostic{
						Severity: hcl.DiagError,
						Summary:  "Empty token",
						Detail:   "Tokens must not be empty strings.",
						Subject:  &r,
					})
					break
				}
				sb.T(token, target)
			}
		}
		tracer().Debugf("state %q = %d", s.Label, i)
	}
	if diags.HasErrors() {
		return nil, diags
	}
	a, err := b.Automaton()
	if err != nil {
		diags = diags.Append(&hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid automaton",
			Detail:   err.Error(),
			Subject:  &missing,
		})
		return nil, diags
	}
	return a, diags
}

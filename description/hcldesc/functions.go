package hcldesc

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"
)

// maxGeneratedTokens limits the size of lists created by tokens().
const maxGeneratedTokens = 100000

// TokensFunc formats the integers of an inclusive range:
//
//     tokens(1, 3, "%02d.")   // ["01.", "02.", "03."]
//
var TokensFunc = function.New(&function.Spec{
	Description: "Formats every integer of an inclusive range as a token.",
	Params: []function.Parameter{
		{Name: "from", Type: cty.Number},
		{Name: "to", Type: cty.Number},
		{Name: "format", Type: cty.String},
	},
	Type: function.StaticReturnType(cty.List(cty.String)),
	Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
		var from, to int
		var format string
		if err := gocty.FromCtyValue(args[0], &from); err != nil {
			return cty.UnknownVal(retType), function.NewArgError(0, err)
		}
		if err := gocty.FromCtyValue(args[1], &to); err != nil {
			return cty.UnknownVal(retType), function.NewArgError(1, err)
		}
		if err := gocty.FromCtyValue(args[2], &format); err != nil {
			return cty.UnknownVal(retType), function.NewArgError(2, err)
		}
		if to < from {
			return cty.UnknownVal(retType), function.NewArgErrorf(1, "end of range %d is less than start %d", to, from)
		}
		if to-from >= maxGeneratedTokens {
			return cty.UnknownVal(retType), fmt.Errorf("range %d…%d too large, limit is %d tokens", from, to, maxGeneratedTokens)
		}
		tokens := make([]string, 0, to-from+1)
		for n := from; n <= to; n++ {
			tokens = append(tokens, fmt.Sprintf(format, n))
		}
		return gocty.ToCtyValue(tokens, retType)
	},
})

// evalContext creates the context for evaluating attribute expressions of
// descriptions. It provides functions only, no variables.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"tokens":      TokensFunc,
			"range":       stdlib.RangeFunc,
			"format":      stdlib.FormatFunc,
			"formatlist":  stdlib.FormatListFunc,
			"concat":      stdlib.ConcatFunc,
			"setsubtract": stdlib.SetSubtractFunc,
			"upper":       stdlib.UpperFunc,
			"lower":       stdlib.LowerFunc,
		},
	}
}

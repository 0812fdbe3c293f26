package lispy

import (
	"fmt"
	"io"
	"os"

	"github.com/lispy-lang/lispy/parser"
)

// LoadFile reads path, parses it as a full program, and evaluates each
// top-level expression against env in turn. A top-level expression
// that evaluates to an Error is reported on w but does not stop the
// remaining expressions from running. A failure to parse or read the
// file itself is returned as an Error Value, with the wording
// "Could not load <parser-message>".
func LoadFile(env *Environment, path string, w io.Writer) *Value {
	src, err := os.ReadFile(path)
	if err != nil {
		return Error("Could not load %s", err)
	}

	root, err := parser.Parse(string(src))
	if err != nil {
		return Error("Could not load %s", err)
	}

	for _, child := range root.Children {
		expr := Read(child)
		if expr == nil {
			continue
		}
		result := Eval(env, expr)
		if result.IsError() {
			fmt.Fprintln(w, result.String())
		}
	}
	return SExpr()
}

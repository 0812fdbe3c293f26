package lispy

import (
	"fmt"
	"os"
)

// builtinIf evaluates arg2 (then-branch) when arg1 is nonzero, else
// arg3, each retagged from QExpr to SExpr before evaluation.
func builtinIf(env *Environment, name string, args []*Value) *Value {
	if len(args) != 3 {
		return errArity(name, len(args), 3)
	}
	if errv := wantKind(name, args, 0, KindNumber, "number"); errv != nil {
		return errv
	}
	if errv := wantKind(name, args, 1, KindQExpr, "qexpr"); errv != nil {
		return errv
	}
	if errv := wantKind(name, args, 2, KindQExpr, "qexpr"); errv != nil {
		return errv
	}
	branch := args[2]
	if args[0].Num != 0 {
		branch = args[1]
	}
	return Eval(env, branch.Copy().retag(KindSExpr))
}

// builtinBindVars implements the shared shape behind `def` and `=`,
// mirroring the original C interpreter's builtin_var helper: the first
// argument is a QExpr of Symbols, the rest are the values bound to
// them pairwise. bind selects whether
// the binding lands in the root environment (`def`) or the local one
// (`=`).
func builtinBindVars(env *Environment, name string, args []*Value, bind func(*Environment, string, *Value)) *Value {
	if len(args) < 2 {
		return errArity(name, len(args), 2)
	}
	if errv := wantKind(name, args, 0, KindQExpr, "qexpr"); errv != nil {
		return errv
	}
	syms := args[0].Seq
	for i, s := range syms {
		if s.Kind != KindSymbol {
			return errType(name, i+1, s.Kind, "symbol")
		}
	}
	vals := args[1:]
	if len(syms) != len(vals) {
		return Error("Function '%s' passed too many arguments for symbols. Got %d, expected %d.", name, len(vals), len(syms))
	}
	for i, s := range syms {
		bind(env, s.Sym, vals[i].Copy())
	}
	return SExpr()
}

// builtinLambda constructs a Lambda Function capturing a fresh empty
// environment.
func builtinLambda(name string, args []*Value) *Value {
	if len(args) != 2 {
		return errArity(name, len(args), 2)
	}
	if errv := wantKind(name, args, 0, KindQExpr, "qexpr"); errv != nil {
		return errv
	}
	if errv := wantKind(name, args, 1, KindQExpr, "qexpr"); errv != nil {
		return errv
	}
	for i, s := range args[0].Seq {
		if s.Kind != KindSymbol {
			return errType(name, i+1, s.Kind, "symbol")
		}
	}
	return Lambda(args[0].Copy(), args[1].Copy(), NewEnvironment())
}

// builtinPrint prints each argument followed by a space, then a
// newline, and returns the empty SExpr. `print` accepts any arity.
func builtinPrint(args []*Value) *Value {
	for _, a := range args {
		fmt.Printf("%s ", a.String())
	}
	fmt.Println()
	return SExpr()
}

// builtinError returns an Error value wrapping a String argument.
func builtinError(name string, args []*Value) *Value {
	if len(args) != 1 {
		return errArity(name, len(args), 1)
	}
	if errv := wantKind(name, args, 0, KindString, "string"); errv != nil {
		return errv
	}
	return Error("%s", args[0].Str)
}

// builtinType names the argument's variant as a String.
func builtinType(name string, args []*Value) *Value {
	if len(args) != 1 {
		return errArity(name, len(args), 1)
	}
	return Str(args[0].Kind.String())
}

// builtinLoad reads path as a program, evaluating each top-level
// expression against env in order. Errors produced while evaluating
// individual expressions are printed (not aborted); a parse failure
// for the file itself is returned as an Error.
func builtinLoad(env *Environment, name string, args []*Value) *Value {
	if len(args) != 1 {
		return errArity(name, len(args), 1)
	}
	if errv := wantKind(name, args, 0, KindString, "string"); errv != nil {
		return errv
	}
	return LoadFile(env, args[0].Str, os.Stderr)
}

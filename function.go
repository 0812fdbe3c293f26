package lispy

import (
	"fmt"
	"io"
)

// OpID identifies a primitive operation a Builtin Function dispatches
// to. Using a small enum instead of a Go func value for the payload
// keeps equality and printing trivial: a tagged Builtin carrying a
// small op-id enum dispatched in one place, rather than function
// pointers that can't be compared or printed meaningfully.
type OpID int

const (
	opNone OpID = iota // zero value: this Function is a Lambda, not a Builtin
	OpList
	OpHead
	OpTail
	OpJoin
	OpCons
	OpLen
	OpEval
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpIf
	OpDef
	OpPut
	OpLambda
	OpPrint
	OpError
	OpType
	OpLoad
	OpEnv // supplemental: dumps the caller's visible bindings
)

// Function is the payload of a KindFunction Value: either (a) a
// Builtin identified by Name/Op, or (b) a Lambda carrying its formals,
// body and captured environment.
type Function struct {
	Name string // diagnostic name; also the builtin dispatch key

	Op OpID // opNone for a Lambda

	Formals *Value // QExpr of Symbols, Lambda only
	Body    *Value // QExpr, Lambda only
	Env     *Environment
}

// IsLambda reports whether f is a user-defined Lambda rather than a
// Builtin.
func (f *Function) IsLambda() bool { return f.Op == opNone }

// Builtin constructs a Function wrapping a primitive operation.
func Builtin(name string, op OpID) *Value {
	return &Value{Kind: KindFunction, Fun: &Function{Name: name, Op: op}}
}

// Lambda constructs a Function wrapping a user-defined closure. formals
// must be a QExpr of Symbols (optionally containing a single `&`
// marker); body must be a QExpr. env is a fresh, empty environment the
// Lambda owns for bindings made as arguments are applied.
func Lambda(formals, body *Value, env *Environment) *Value {
	return &Value{Kind: KindFunction, Fun: &Function{
		Name:    "lambda",
		Op:      opNone,
		Formals: formals,
		Body:    body,
		Env:     env,
	}}
}

// Copy duplicates a Function the way Value.Copy needs to: a Builtin is
// immutable and can be shared, but a Lambda's formals/body/env must be
// independent so that partial application can extend the copy's
// captured environment without mutating the original.
func (f *Function) Copy() *Function {
	if f == nil {
		return nil
	}
	if f.IsLambda() {
		return &Function{
			Name:    f.Name,
			Op:      opNone,
			Formals: f.Formals.Copy(),
			Body:    f.Body.Copy(),
			Env:     f.Env.Copy(),
		}
	}
	return &Function{Name: f.Name, Op: f.Op}
}

// IsEqual implements function equality: two Builtins are equal iff
// their op-id matches; two Lambdas are equal iff their formals and
// body match structurally. The captured environment is excluded
// intentionally, so two lambdas built from the same literal source
// compare equal regardless of where each was defined.
func (f *Function) IsEqual(other *Function) bool {
	if f == nil || other == nil {
		return f == other
	}
	if f.IsLambda() != other.IsLambda() {
		return false
	}
	if f.IsLambda() {
		return f.Formals.IsEqual(other.Formals) && f.Body.IsEqual(other.Body)
	}
	return f.Op == other.Op
}

// Print writes the function's textual form: `<name>` for a Builtin,
// `(-> formals body)` for a Lambda.
func (f *Function) Print(w io.Writer) (int, error) {
	if f.IsLambda() {
		n, err := io.WriteString(w, "(-> ")
		total := n
		if err != nil {
			return total, err
		}
		n, err = f.Formals.Print(w)
		total += n
		if err != nil {
			return total, err
		}
		n, err = io.WriteString(w, " ")
		total += n
		if err != nil {
			return total, err
		}
		n, err = f.Body.Print(w)
		total += n
		if err != nil {
			return total, err
		}
		n, err = io.WriteString(w, ")")
		total += n
		return total, err
	}
	return fmt.Fprintf(w, "<%s>", f.Name)
}

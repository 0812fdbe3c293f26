package lispy

// callBuiltin dispatches a Builtin Function by its OpID. Each op
// receives the already-evaluated argument list as a plain
// slice (the SExpr wrapper from evalSExpr has already been peeled off
// by the caller).
func callBuiltin(env *Environment, fn *Function, args []*Value) *Value {
	switch fn.Op {
	case OpList:
		return builtinList(args)
	case OpHead:
		return builtinHead(fn.Name, args)
	case OpTail:
		return builtinTail(fn.Name, args)
	case OpJoin:
		return builtinJoin(fn.Name, args)
	case OpCons:
		return builtinCons(fn.Name, args)
	case OpLen:
		return builtinLen(fn.Name, args)
	case OpEval:
		return builtinEval(env, fn.Name, args)
	case OpAdd, OpSub, OpMul, OpDiv, OpMod:
		return builtinArith(fn.Op, fn.Name, args)
	case OpEq:
		return builtinEquality(fn.Name, args, true)
	case OpNe:
		return builtinEquality(fn.Name, args, false)
	case OpLt, OpLe, OpGt, OpGe:
		return builtinOrder(fn.Op, fn.Name, args)
	case OpIf:
		return builtinIf(env, fn.Name, args)
	case OpDef:
		return builtinBindVars(env, fn.Name, args, (*Environment).Def)
	case OpPut:
		return builtinBindVars(env, fn.Name, args, (*Environment).Put)
	case OpLambda:
		return builtinLambda(fn.Name, args)
	case OpPrint:
		return builtinPrint(args)
	case OpError:
		return builtinError(fn.Name, args)
	case OpType:
		return builtinType(fn.Name, args)
	case OpLoad:
		return builtinLoad(env, fn.Name, args)
	case OpEnv:
		return QExpr(env.Bindings()...)
	default:
		return Error("unimplemented builtin '%s'", fn.Name)
	}
}

// RegisterBuiltins binds every primitive in the closed set into env
// under its canonical name.
func RegisterBuiltins(env *Environment) {
	table := []struct {
		name string
		op   OpID
	}{
		{"list", OpList},
		{"head", OpHead},
		{"tail", OpTail},
		{"join", OpJoin},
		{"cons", OpCons},
		{"len", OpLen},
		{"eval", OpEval},
		{"+", OpAdd},
		{"-", OpSub},
		{"*", OpMul},
		{"/", OpDiv},
		{"%", OpMod},
		{"==", OpEq},
		{"!=", OpNe},
		{"<", OpLt},
		{"<=", OpLe},
		{">", OpGt},
		{">=", OpGe},
		{"if", OpIf},
		{"def", OpDef},
		{"=", OpPut},
		{"->", OpLambda},
		{"print", OpPrint},
		{"error", OpError},
		{"type", OpType},
		{"load", OpLoad},
		{"env", OpEnv},
	}
	for _, e := range table {
		env.Def(e.name, Builtin(e.name, e.op))
	}
}

// --- argument validation helpers. Message wording is fixed exactly,
// since these strings are part of what a caller can pattern-match on.

func errArity(name string, got, want int) *Value {
	return Error("Function '%s' passed incorrect number of arguments. Got %d, expected %d.", name, got, want)
}

func errType(name string, pos int, got Kind, want string) *Value {
	return Error("Function '%s' passed incorrect type for argument %d. Got %s, expected %s.", name, pos, got, want)
}

func errEmpty(name string, pos int) *Value {
	return Error("Function '%s' passed {} for argument %d.", name, pos)
}

func wantKind(name string, args []*Value, pos int, k Kind, kindName string) *Value {
	if args[pos].Kind != k {
		return errType(name, pos+1, args[pos].Kind, kindName)
	}
	return nil
}

func wantNonEmptySeq(name string, args []*Value, pos int) *Value {
	if len(args[pos].Seq) == 0 {
		return errEmpty(name, pos+1)
	}
	return nil
}

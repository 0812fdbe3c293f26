package lispy

// builtinList retags the argument list as a QExpr.
func builtinList(args []*Value) *Value {
	return QExpr(args...)
}

// builtinHead returns a single-element QExpr holding the first element
// of a non-empty QExpr.
func builtinHead(name string, args []*Value) *Value {
	if len(args) != 1 {
		return errArity(name, len(args), 1)
	}
	if errv := wantKind(name, args, 0, KindQExpr, "qexpr"); errv != nil {
		return errv
	}
	if errv := wantNonEmptySeq(name, args, 0); errv != nil {
		return errv
	}
	return QExpr(seqPop(args[0].Copy(), 0))
}

// builtinTail returns the QExpr minus its first element.
func builtinTail(name string, args []*Value) *Value {
	if len(args) != 1 {
		return errArity(name, len(args), 1)
	}
	if errv := wantKind(name, args, 0, KindQExpr, "qexpr"); errv != nil {
		return errv
	}
	if errv := wantNonEmptySeq(name, args, 0); errv != nil {
		return errv
	}
	cp := args[0].Copy()
	seqPop(cp, 0)
	return cp
}

// builtinJoin concatenates one or more QExprs in order.
func builtinJoin(name string, args []*Value) *Value {
	if len(args) < 1 {
		return errArity(name, len(args), 1)
	}
	result := QExpr()
	for i, a := range args {
		if errv := wantKind(name, args, i, KindQExpr, "qexpr"); errv != nil {
			return errv
		}
		result = seqJoin(result, a.Copy())
	}
	return result
}

// builtinCons prepends arg1 to the QExpr arg2.
func builtinCons(name string, args []*Value) *Value {
	if len(args) != 2 {
		return errArity(name, len(args), 2)
	}
	if errv := wantKind(name, args, 1, KindQExpr, "qexpr"); errv != nil {
		return errv
	}
	head := seqAdd(QExpr(), args[0].Copy())
	return seqJoin(head, args[1].Copy())
}

// builtinLen returns the element count of a QExpr as a Number.
func builtinLen(name string, args []*Value) *Value {
	if len(args) != 1 {
		return errArity(name, len(args), 1)
	}
	if errv := wantKind(name, args, 0, KindQExpr, "qexpr"); errv != nil {
		return errv
	}
	return Number(int64(len(args[0].Seq)))
}

// builtinEval retags a QExpr to SExpr and evaluates it in env.
func builtinEval(env *Environment, name string, args []*Value) *Value {
	if len(args) != 1 {
		return errArity(name, len(args), 1)
	}
	if errv := wantKind(name, args, 0, KindQExpr, "qexpr"); errv != nil {
		return errv
	}
	return Eval(env, args[0].Copy().retag(KindSExpr))
}

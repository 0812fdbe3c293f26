package lispy

// builtinArith implements the left-fold arithmetic operators: `+ - * / %`.
// Unary `-` negates; `/` and `%` with a zero divisor produce a
// Division-by-zero Error; all arithmetic truncates toward zero, which
// is how Go's int64 division and modulo already behave.
func builtinArith(op OpID, name string, args []*Value) *Value {
	if len(args) < 1 {
		return errArity(name, len(args), 1)
	}
	for i := range args {
		if errv := wantKind(name, args, i, KindNumber, "number"); errv != nil {
			return errv
		}
	}

	if op == OpSub && len(args) == 1 {
		return Number(-args[0].Num)
	}

	acc := args[0].Num
	for _, a := range args[1:] {
		switch op {
		case OpAdd:
			acc += a.Num
		case OpSub:
			acc -= a.Num
		case OpMul:
			acc *= a.Num
		case OpDiv:
			if a.Num == 0 {
				return Error("Division by zero")
			}
			acc /= a.Num
		case OpMod:
			if a.Num == 0 {
				return Error("Division by zero")
			}
			acc %= a.Num
		}
	}
	return Number(acc)
}

// builtinEquality implements `==`/`!=`: structural equality over any
// two values, returned as a Number (0/1).
func builtinEquality(name string, args []*Value, wantEqual bool) *Value {
	if len(args) != 2 {
		return errArity(name, len(args), 2)
	}
	eq := args[0].IsEqual(args[1])
	if eq == wantEqual {
		return Number(1)
	}
	return Number(0)
}

// builtinOrder implements `< <= > >=` over Numbers, returned as a
// Number (0/1).
func builtinOrder(op OpID, name string, args []*Value) *Value {
	if len(args) != 2 {
		return errArity(name, len(args), 2)
	}
	if errv := wantKind(name, args, 0, KindNumber, "number"); errv != nil {
		return errv
	}
	if errv := wantKind(name, args, 1, KindNumber, "number"); errv != nil {
		return errv
	}
	a, b := args[0].Num, args[1].Num
	var ok bool
	switch op {
	case OpLt:
		ok = a < b
	case OpLe:
		ok = a <= b
	case OpGt:
		ok = a > b
	case OpGe:
		ok = a >= b
	}
	if ok {
		return Number(1)
	}
	return Number(0)
}

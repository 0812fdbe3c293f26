package lispy

// Apply binds the given already-evaluated argument list to fn and
// evaluates the result. Builtins are invoked directly; Lambdas are
// bound argument-by-argument with support for a
// variadic trailing `&` formal and for partial application when fewer
// arguments are supplied than the Lambda expects.
func Apply(env *Environment, fn *Function, args []*Value) *Value {
	if !fn.IsLambda() {
		return callBuiltin(env, fn, args)
	}
	return applyLambda(env, fn, args)
}

func applyLambda(env *Environment, fn *Function, args []*Value) *Value {
	given := len(args)
	total := len(fn.Formals.Seq)

	formals := make([]*Value, len(fn.Formals.Seq))
	copy(formals, fn.Formals.Seq)

	for len(args) > 0 {
		if len(formals) == 0 {
			return Error("Function passed too many arguments. Got %d, expected %d.", given, total)
		}
		sym := formals[0]
		formals = formals[1:]

		if sym.Sym == "&" {
			rest, err := bindVariadic(formals)
			if err != nil {
				return err
			}
			fn.Env.Put(rest.Sym, QExpr(args...))
			formals = nil
			args = nil
			break
		}

		fn.Env.Put(sym.Sym, args[0].Copy())
		args = args[1:]
	}

	if len(formals) > 0 && formals[0].Sym == "&" {
		rest, err := bindVariadic(formals[1:])
		if err != nil {
			return err
		}
		fn.Env.Put(rest.Sym, QExpr())
		formals = nil
	}

	if len(formals) == 0 {
		fn.Env.SetParent(env)
		body := SExpr(fn.Body.Copy().Seq...)
		return Eval(fn.Env, body)
	}

	// Partial application: hand back a fresh closure with the bindings
	// made so far, leaving the Function retrieved from the environment
	// untouched.
	partial := &Function{
		Name:    fn.Name,
		Op:      opNone,
		Formals: QExpr(formals...),
		Body:    fn.Body,
		Env:     fn.Env,
	}
	return &Value{Kind: KindFunction, Fun: partial}
}

// bindVariadic validates that exactly one symbol follows a `&` marker
// in a formals list.
func bindVariadic(after []*Value) (*Value, *Value) {
	if len(after) != 1 {
		return nil, Error("Function format invalid. Symbol '&' not followed by single symbol.")
	}
	return after[0], nil
}

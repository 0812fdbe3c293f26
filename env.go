package lispy

// Environment is an ordered symbol -> value table with an optional
// parent link. It is deliberately a plain slice, not a map: Get/Put/Def
// never need better than linear scan at the scale a single call frame
// or a REPL session reaches, and a slice preserves "most recently
// inserted binding wins" without needing tombstones the way a map
// replacement does implicitly anyway.
type Environment struct {
	binds  []binding
	parent *Environment
}

type binding struct {
	sym string
	val *Value
}

// NewEnvironment creates a fresh, empty, parentless environment. Used
// once for the global session environment, and again each time a
// Lambda value is constructed.
func NewEnvironment() *Environment {
	return &Environment{}
}

// NewChildEnvironment creates an empty environment whose parent is
// parent. Lambda application re-parents the Lambda's captured
// environment to the caller's environment at each call and does not
// use this constructor; it is for callers that want a fresh child
// scope instead.
func NewChildEnvironment(parent *Environment) *Environment {
	return &Environment{parent: parent}
}

// SetParent re-seats env's parent link. The Applier calls this on a
// Lambda's captured environment at every invocation rather than
// chaining a new child each time, to avoid pathological depth on
// recursive calls.
func (env *Environment) SetParent(parent *Environment) { env.parent = parent }

// Get searches env, then its parent chain, for sym. If not found it
// returns an Error value; a copy is returned in either case so that
// later mutation of the caller's copy can never alias back into a
// binding slot.
func (env *Environment) Get(sym string) *Value {
	for e := env; e != nil; e = e.parent {
		for i := len(e.binds) - 1; i >= 0; i-- {
			if e.binds[i].sym == sym {
				return e.binds[i].val.Copy()
			}
		}
	}
	return Error("Unbound symbol '%s'", sym)
}

// Put writes a local binding: if sym is already bound in env (not a
// parent), its value is replaced; otherwise a new binding is appended.
func (env *Environment) Put(sym string, v *Value) {
	for i := range env.binds {
		if env.binds[i].sym == sym {
			env.binds[i].val = v
			return
		}
	}
	env.binds = append(env.binds, binding{sym: sym, val: v})
}

// Def walks to the root of the parent chain and Puts there, the way
// the `def` builtin needs globals visible from any scope.
func (env *Environment) Def(sym string, v *Value) {
	root := env
	for root.parent != nil {
		root = root.parent
	}
	root.Put(sym, v)
}

// Copy deep-clones env, including every bound value. The parent link
// is carried by reference: this is unobservable in practice because
// the global environment is effectively immortal for the lifetime of
// a session.
func (env *Environment) Copy() *Environment {
	if env == nil {
		return nil
	}
	cp := &Environment{parent: env.parent, binds: make([]binding, len(env.binds))}
	for i, b := range env.binds {
		cp.binds[i] = binding{sym: b.sym, val: b.val.Copy()}
	}
	return cp
}

// Bindings returns the symbol/value pairs visible from env, nearest
// scope first, in the order a lookup would find them. It backs the
// supplemental `env` builtin, which sits alongside the closed builtin
// set rather than replacing any member of it.
func (env *Environment) Bindings() []*Value {
	var out []*Value
	for e := env; e != nil; e = e.parent {
		for i := len(e.binds) - 1; i >= 0; i-- {
			out = append(out, QExpr(Sym(e.binds[i].sym), e.binds[i].val.Copy()))
		}
	}
	return out
}

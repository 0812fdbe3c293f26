package lispy

import "testing"

func evalSource(t *testing.T, env *Environment, src string) *Value {
	t.Helper()
	exprs, err := readAllForTest(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	var last *Value = SExpr()
	for _, e := range exprs {
		last = Eval(env, e)
	}
	return last
}

func TestBuiltinArithmetic(t *testing.T) {
	env := newTestEnv()
	tests := []struct {
		src  string
		want *Value
	}{
		{"(+ 1 2 3)", Number(6)},
		{"(- 5)", Number(-5)},
		{"(- 5 2)", Number(3)},
		{"(* 2 3 4)", Number(24)},
		{"(/ 10 2)", Number(5)},
		{"(% 10 3)", Number(1)},
	}
	for _, tt := range tests {
		if got := evalSource(t, env, tt.src); !got.IsEqual(tt.want) {
			t.Errorf("%s = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestBuiltinDivisionByZero(t *testing.T) {
	env := newTestEnv()
	got := evalSource(t, env, "(/ 10 0)")
	if got.String() != "Error: Division by zero" {
		t.Fatalf("(/ 10 0) = %v, want Error: Division by zero", got)
	}
}

func TestBuiltinComparisons(t *testing.T) {
	env := newTestEnv()
	tests := []struct {
		src  string
		want int64
	}{
		{"(== 1 1)", 1}, {"(== 1 2)", 0},
		{"(!= 1 2)", 1}, {"(!= 1 1)", 0},
		{"(< 1 2)", 1}, {"(<= 2 2)", 1},
		{"(> 2 1)", 1}, {"(>= 1 2)", 0},
	}
	for _, tt := range tests {
		got := evalSource(t, env, tt.src)
		if got.Num != tt.want {
			t.Errorf("%s = %v, want %d", tt.src, got, tt.want)
		}
	}
}

func TestBuiltinListOps(t *testing.T) {
	env := newTestEnv()
	tests := []struct {
		src  string
		want *Value
	}{
		{"(list 1 2 3)", QExpr(Number(1), Number(2), Number(3))},
		{"(head {1 2 3})", QExpr(Number(1))},
		{"(tail {1 2 3})", QExpr(Number(2), Number(3))},
		{"(cons 0 {1 2})", QExpr(Number(0), Number(1), Number(2))},
		{"(join {1} {2} {3})", QExpr(Number(1), Number(2), Number(3))},
		{"(len {a b c})", Number(3)},
	}
	for _, tt := range tests {
		if got := evalSource(t, env, tt.src); !got.IsEqual(tt.want) {
			t.Errorf("%s = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestBuiltinHeadTailEmptyError(t *testing.T) {
	env := newTestEnv()
	for _, src := range []string{"(head {})", "(tail {})"} {
		got := evalSource(t, env, src)
		if !got.IsError() {
			t.Errorf("%s should error on empty list, got %v", src, got)
		}
	}
}

func TestBuiltinIf(t *testing.T) {
	env := newTestEnv()
	got := evalSource(t, env, `(if (> 2 1) {"yes"} {"no"})`)
	if got.Str != "yes" {
		t.Fatalf(`if-true = %v, want "yes"`, got)
	}
	got = evalSource(t, env, `(if (> 1 2) {"yes"} {"no"})`)
	if got.Str != "no" {
		t.Fatalf(`if-false = %v, want "no"`, got)
	}
}

func TestBuiltinDefAndScoping(t *testing.T) {
	env := newTestEnv()
	evalSource(t, env, "(def {x} 42)")
	if got := evalSource(t, env, "x"); got.Num != 42 {
		t.Fatalf("x = %v, want 42", got)
	}
}

func TestBuiltinPutDoesNotLeakOutOfLambda(t *testing.T) {
	env := newTestEnv()
	evalSource(t, env, "(def {f} (-> {x} {= {y} x}))")
	evalSource(t, env, "(f 99)")
	got := env.Get("y")
	if !got.IsError() {
		t.Fatalf("expected y to be unbound outside the lambda, got %v", got)
	}
}

func TestBuiltinLambdaAndCall(t *testing.T) {
	env := newTestEnv()
	evalSource(t, env, "(= {f} (-> {x y} {+ x y}))")
	got := evalSource(t, env, "(f 3 4)")
	if got.Num != 7 {
		t.Fatalf("(f 3 4) = %v, want 7", got)
	}
}

func TestBuiltinErrorAndType(t *testing.T) {
	env := newTestEnv()
	got := evalSource(t, env, `(error "bad")`)
	if !got.IsError() || got.Msg != "bad" {
		t.Fatalf(`(error "bad") = %v, want Error: bad`, got)
	}
	got = evalSource(t, env, "(type 5)")
	if got.Str != "number" {
		t.Fatalf("(type 5) = %v, want \"number\"", got)
	}
}

func TestBuiltinArityErrors(t *testing.T) {
	env := newTestEnv()
	got := evalSource(t, env, "(head {1} {2})")
	want := "Function 'head' passed incorrect number of arguments. Got 2, expected 1."
	if got.Msg != want {
		t.Fatalf("got %q, want %q", got.Msg, want)
	}
}

func TestBuiltinTypeErrors(t *testing.T) {
	env := newTestEnv()
	got := evalSource(t, env, "(head 5)")
	want := "Function 'head' passed incorrect type for argument 1. Got number, expected qexpr."
	if got.Msg != want {
		t.Fatalf("got %q, want %q", got.Msg, want)
	}
}

package lispy

import "testing"

func TestReadNumber(t *testing.T) {
	n, err := parseOneForTest("42")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	v := Read(n)
	if v.Kind != KindNumber || v.Num != 42 {
		t.Fatalf("Read(42) = %v", v)
	}
}

func TestReadString(t *testing.T) {
	n, err := parseOneForTest(`"a\nb"`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	v := Read(n)
	if v.Kind != KindString || v.Str != "a\nb" {
		t.Fatalf("Read(\"a\\nb\") = %v", v)
	}
}

func TestReadStringWithEmbeddedQuote(t *testing.T) {
	n, err := parseOneForTest(`"she said \"hi\""`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	v := Read(n)
	if v.Kind != KindString || v.Str != `she said "hi"` {
		t.Fatalf(`Read("she said \"hi\"") = %v`, v)
	}
}

func TestReadSExprSkipsDelimiters(t *testing.T) {
	n, err := parseOneForTest("(+ 1 2)")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	v := Read(n)
	if v.Kind != KindSExpr {
		t.Fatalf("expected SExpr, got %v", v.Kind)
	}
	want := SExpr(Sym("+"), Number(1), Number(2))
	if !v.IsEqual(want) {
		t.Fatalf("Read((+ 1 2)) = %v, want %v (delimiter tokens should be skipped)", v, want)
	}
}

func TestReadQExpr(t *testing.T) {
	n, err := parseOneForTest("{1 2 3}")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	v := Read(n)
	want := QExpr(Number(1), Number(2), Number(3))
	if !v.IsEqual(want) {
		t.Fatalf("Read({1 2 3}) = %v, want %v", v, want)
	}
}

func TestReadInvalidNumberOverflow(t *testing.T) {
	n, err := parseOneForTest("99999999999999999999")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	v := Read(n)
	if !v.IsError() {
		t.Fatalf("expected an Error for overflow, got %v", v)
	}
}

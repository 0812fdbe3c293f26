package parser

import "testing"

func childTags(n *Node) []string {
	tags := make([]string, len(n.Children))
	for i, c := range n.Children {
		tags[i] = c.Tag
	}
	return tags
}

func TestParseAtoms(t *testing.T) {
	root, err := Parse("42 -3 foo \"hi\"")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(root.Children) != 4 {
		t.Fatalf("expected 4 top-level nodes, got %d", len(root.Children))
	}
	want := []struct{ tag, contents string }{
		{"number", "42"}, {"number", "-3"}, {"symbol", "foo"}, {"string", `"hi"`},
	}
	for i, w := range want {
		if root.Children[i].Tag != w.tag || root.Children[i].Contents != w.contents {
			t.Errorf("child %d = %+v, want tag=%s contents=%s", i, root.Children[i], w.tag, w.contents)
		}
	}
}

func TestParseSExprAndQExpr(t *testing.T) {
	root, err := Parse("(+ 1 2) {1 2}")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 top-level nodes, got %d", len(root.Children))
	}
	sexpr, qexpr := root.Children[0], root.Children[1]
	if sexpr.Tag != "sexpr" {
		t.Errorf("expected sexpr tag, got %s", sexpr.Tag)
	}
	if qexpr.Tag != "qexpr" {
		t.Errorf("expected qexpr tag, got %s", qexpr.Tag)
	}
	// sexpr children: symbol "+", number 1, number 2, trailing regex ")"
	if len(sexpr.Children) != 4 {
		t.Fatalf("sexpr children = %v, want 4", childTags(sexpr))
	}
}

func TestParseComment(t *testing.T) {
	root, err := Parse("1 ; trailing comment\n2")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	tags := childTags(root)
	want := []string{"number", "comment", "number"}
	if len(tags) != len(want) {
		t.Fatalf("tags = %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("tags[%d] = %s, want %s", i, tags[i], want[i])
		}
	}
}

func TestParseUnmatchedDelimiterIsIncomplete(t *testing.T) {
	_, err := Parse("(+ 1 2")
	if err == nil {
		t.Fatal("expected an error for an unmatched '('")
	}
	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if perr.Message == "" {
		t.Fatal("expected a non-empty message")
	}
}

func TestParseUnexpectedCloseDelimiter(t *testing.T) {
	if _, err := Parse(")"); err == nil {
		t.Fatal("expected an error for a stray ')'")
	}
}

func TestParseNegativeNumberVsMinusSymbol(t *testing.T) {
	root, err := Parse("(- 5)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sexpr := root.Children[0]
	if sexpr.Children[0].Tag != "symbol" || sexpr.Children[0].Contents != "-" {
		t.Fatalf("expected leading '-' symbol, got %+v", sexpr.Children[0])
	}
	if sexpr.Children[1].Tag != "number" || sexpr.Children[1].Contents != "5" {
		t.Fatalf("expected number 5, got %+v", sexpr.Children[1])
	}
}

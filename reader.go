package lispy

import (
	"strconv"
	"strings"

	"github.com/lispy-lang/lispy/parser"
)

// Read converts a parser.Node into a Value by a tag-substring mapping:
// "number"/"string"/"symbol" become leaves, "sexpr"/"qexpr"/"lispy"
// (root) become sequences built up by recursing into children, and
// "regex" or "comment" tagged children are skipped entirely rather
// than recursed into.
func Read(n *parser.Node) *Value {
	switch {
	case strings.Contains(n.Tag, "number"):
		num, err := strconv.ParseInt(n.Contents, 10, 64)
		if err != nil {
			return Error("invalid number '%s'", n.Contents)
		}
		return Number(num)
	case strings.Contains(n.Tag, "string"):
		unescaped, err := unescapeString(n.Contents[1 : len(n.Contents)-1])
		if err != nil {
			return Error("invalid string literal '%s'", n.Contents)
		}
		return newString(unescaped)
	case strings.Contains(n.Tag, "symbol"):
		return Sym(n.Contents)
	case strings.Contains(n.Tag, "comment"):
		return nil
	case n.Tag == "regex":
		return nil
	case strings.Contains(n.Tag, "qexpr"):
		return QExpr(readChildren(n)...)
	default: // "sexpr" and root ("lispy")
		return SExpr(readChildren(n)...)
	}
}

func readChildren(n *parser.Node) []*Value {
	elems := make([]*Value, 0, len(n.Children))
	for _, c := range n.Children {
		v := Read(c)
		if v != nil {
			elems = append(elems, v)
		}
	}
	return elems
}

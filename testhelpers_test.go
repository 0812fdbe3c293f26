package lispy

import (
	"os"
	"testing"

	"github.com/lispy-lang/lispy/parser"
)

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// parseOneForTest parses src (expected to be exactly one top-level
// expression) and returns its single child node, for tests that want
// to build Values from Lispy source rather than constructing them by
// hand.
func parseOneForTest(src string) (*parser.Node, error) {
	root, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	return root.Children[0], nil
}

// readAllForTest parses src as a full program and reads every
// top-level expression into a Value.
func readAllForTest(src string) ([]*Value, error) {
	root, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	return readChildren(root), nil
}

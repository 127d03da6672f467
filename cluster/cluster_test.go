package cluster

import (
	"testing"

	"github.com/lang-tools/dtree/d/parser"
)

func leaves(n int) []*parser.Entity {
	out := make([]*parser.Entity, n)
	for i := range out {
		out[i] = &parser.Entity{Head: "x", Token: parser.KindOther}
	}
	return out
}

func TestClusterNoOpBelowBinSize(t *testing.T) {
	root := &parser.Entity{Children: leaves(2)}
	Optimize(root)
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 children unchanged, got %d", len(root.Children))
	}
}

func TestClusterBisectsWideList(t *testing.T) {
	root := &parser.Entity{Children: leaves(5)}
	Optimize(root)
	if len(root.Children) > binSize {
		t.Fatalf("root has %d children after optimize, want <= %d", len(root.Children), binSize)
	}
	for _, c := range root.Children {
		if len(c.Children) > binSize && c.Token == parser.KindNone {
			t.Fatalf("bin %#v exceeds bin size", c)
		}
	}
}

func TestClusterPreservesAllLeaves(t *testing.T) {
	root := &parser.Entity{Children: leaves(7)}
	var before []*parser.Entity
	before = append(before, root.Children...)

	Optimize(root)

	var after []*parser.Entity
	root.Walk(func(e *parser.Entity) {
		if e.Token == parser.KindOther {
			after = append(after, e)
		}
	})
	if len(after) != len(before) {
		t.Fatalf("lost leaves during clustering: before %d after %d", len(before), len(after))
	}
}

func TestClusterRecursesIntoChildren(t *testing.T) {
	inner := &parser.Entity{Children: leaves(5)}
	root := &parser.Entity{Children: []*parser.Entity{inner}}
	Optimize(root)
	if len(inner.Children) > binSize {
		t.Fatalf("nested list not clustered: %d children", len(inner.Children))
	}
}

package parser

import "testing"

func TestEntityTextLeaf(t *testing.T) {
	e := &Entity{Head: "foo", Tail: ";"}
	if got := e.Text(); got != "foo;" {
		t.Fatalf("Text() = %q, want %q", got, "foo;")
	}
}

func TestEntityTextNested(t *testing.T) {
	inner := &Entity{Head: "x"}
	e := &Entity{Head: "(", Children: []*Entity{inner}, Tail: ")"}
	if got := e.Text(); got != "(x)" {
		t.Fatalf("Text() = %q, want %q", got, "(x)")
	}
}

func TestEntityCommentPair(t *testing.T) {
	e := &Entity{IsPair: true, Token: KindLBrace}
	if got := e.Comment(); got != "Pair" {
		t.Fatalf("Comment() = %q, want Pair", got)
	}
}

func TestEntityCommentOperator(t *testing.T) {
	e := &Entity{Token: KindPlus}
	if got := e.Comment(); got != "+" {
		t.Fatalf("Comment() = %q, want +", got)
	}
}

func TestEntityIsSynthetic(t *testing.T) {
	group := &Entity{Token: KindNone}
	leaf := &Entity{Token: KindOther}
	if !group.IsSynthetic() {
		t.Errorf("group entity should be synthetic")
	}
	if leaf.IsSynthetic() {
		t.Errorf("leaf entity should not be synthetic")
	}
}

func TestAddDependencyDeduplicatesAndRejectsSelf(t *testing.T) {
	a := &Entity{Head: "a"}
	b := &Entity{Head: "b"}
	a.AddDependency(b)
	a.AddDependency(b)
	a.AddDependency(a)
	a.AddDependency(nil)
	if len(a.Dependencies) != 1 || a.Dependencies[0] != b {
		t.Fatalf("Dependencies = %v, want [b]", a.Dependencies)
	}
}

func TestWalkVisitsAllDescendants(t *testing.T) {
	leaf1 := &Entity{Head: "a"}
	leaf2 := &Entity{Head: "b"}
	root := &Entity{Children: []*Entity{leaf1, leaf2}}

	var seen []*Entity
	root.Walk(func(e *Entity) { seen = append(seen, e) })

	if len(seen) != 3 || seen[0] != root || seen[1] != leaf1 || seen[2] != leaf2 {
		t.Fatalf("Walk order = %v", seen)
	}
}

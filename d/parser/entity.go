package parser

import "strings"

// Entity is the sole tree node produced by this package: a contiguous
// slice of source text, annotated with a structural role, together with
// its ordered children.
//
// The concatenation of Head, the serialization of each child in order,
// and Tail always equals the source range the entity represents (modulo
// explicit comment stripping); see Text.
type Entity struct {
	Head     string
	Children []*Entity
	Tail     string

	// Filename is set only on file-root entities: immediate children of
	// a directory root, or the singleton root of a single-file load.
	Filename string
	// Contents holds the entire original file text; set only on file
	// roots, alongside Filename.
	Contents string

	Token Kind // KindNone iff this entity was synthesised by grouping

	IsPair   bool // wraps a brace-paired statement
	NoRemove bool // this entity itself must never be deleted

	// Removed, ID and Descendants are reducer-owned bookkeeping fields;
	// the splitter never reads or writes them beyond zero-initializing.
	Removed     bool
	ID          int
	Descendants int

	// Dependencies are non-owning back-references to entities whose
	// removal must imply this entity's removal too. They form a DAG
	// over entity identity and are never serialized as duplicate
	// sub-trees.
	Dependencies []*Entity
}

// newLeaf builds an unclassified leaf entity carrying head as its whole
// text, with the given originating token kind.
func newLeaf(head string, tok Kind) *Entity {
	return &Entity{Head: head, Token: tok}
}

// newGroup builds a synthetic container entity with no token of its own.
func newGroup(children []*Entity) *Entity {
	return &Entity{Children: children, Token: KindNone}
}

// AddDependency records a non-owning edge from e to target: removing
// target must imply removing e.
func (e *Entity) AddDependency(target *Entity) {
	if target == nil || target == e {
		return
	}
	for _, d := range e.Dependencies {
		if d == target {
			return
		}
	}
	e.Dependencies = append(e.Dependencies, target)
}

// Text reconstructs the exact source range this entity represents.
func (e *Entity) Text() string {
	if len(e.Children) == 0 {
		return e.Head + e.Tail
	}
	var b strings.Builder
	b.WriteString(e.Head)
	for _, c := range e.Children {
		b.WriteString(c.Text())
	}
	b.WriteString(e.Tail)
	return b.String()
}

// Comment yields a short diagnostic label for e: "Pair" for a brace-pair
// grouping, the operator/keyword spelling for a terminal token, or "" for
// an ordinary synthetic grouping or plain-text leaf.
func (e *Entity) Comment() string {
	if e.IsPair {
		return "Pair"
	}
	return Text(e.Token)
}

// Walk visits e and every descendant, in pre-order.
func (e *Entity) Walk(visit func(*Entity)) {
	visit(e)
	for _, c := range e.Children {
		c.Walk(visit)
	}
}

// IsSynthetic reports whether e was produced by grouping rather than by
// a terminal token, per invariant 2.
func (e *Entity) IsSynthetic() bool {
	return e.Token == KindNone
}

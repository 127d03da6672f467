// Package cluster rebalances wide entity fan-outs into binary trees so a
// bisecting reducer makes logarithmic progress per pass instead of
// linear.
package cluster

import "github.com/lang-tools/dtree/d/parser"

// binSize is the fixed cluster width; every synthetic bin holds at most
// this many original siblings once optimize finishes.
const binSize = 2

// Optimize rebalances root's entire tree in place: every entity's
// children are clustered, deepest first, so the resulting bin entities
// never themselves need re-clustering by a later step.
func Optimize(root *parser.Entity) {
	optimizeChildren(root)
}

func optimizeChildren(e *parser.Entity) {
	for _, c := range e.Children {
		optimizeChildren(c)
	}
	e.Children = cluster(e.Children)
}

// cluster repeatedly bisects a child list until every level of the
// result has at most binSize siblings.
func cluster(children []*parser.Entity) []*parser.Entity {
	for len(children) > binSize {
		children = bisect(children)
	}
	return children
}

// bisect performs one round of grouping: bins of binSize members when
// the list holds at least two full bins, otherwise bins of half the list
// (rounded up); any leftover members form one final, smaller bin.
func bisect(children []*parser.Entity) []*parser.Entity {
	n := len(children)
	size := binSize
	if n < 2*binSize {
		size = (n + 1) / 2
	}

	numBins := n / size
	remainder := n % size

	bins := make([][]*parser.Entity, 0, numBins+1)
	for i := 0; i < numBins; i++ {
		bins = append(bins, children[i*size:(i+1)*size])
	}
	if remainder > 0 {
		// A lone leftover stands as its own bin of one (group leaves a
		// singleton unwrapped) rather than folding into the last full
		// bin, which would push that bin's children past binSize; the
		// outer cluster loop re-bisects it on the next pass since it
		// grows the top-level count back above binSize.
		bins = append(bins, children[numBins*size:])
	}

	out := make([]*parser.Entity, 0, len(bins))
	for _, b := range bins {
		out = append(out, group(b))
	}
	return out
}

// group mirrors the parser's own synthetic-wrapper convention: a single
// member passes through unchanged, more than one is wrapped.
func group(xs []*parser.Entity) *parser.Entity {
	if len(xs) == 1 {
		return xs[0]
	}
	return &parser.Entity{Children: xs, Token: parser.KindNone}
}

package parser

// PostProcess refines the raw tree produced by ParseScope into the shape
// consumers actually want: trivial wrappers collapsed, binary operators
// carrying a dependency edge to their right operand, block keywords
// grouped with their arguments and bodies, related statements (if/else,
// do/while, try/catch/finally) merged into one unit, and brace pairs
// marked. It is idempotent: running it twice produces the same tree as
// running it once.
func PostProcess(root *Entity) {
	root.Children = processList(root.Children)
}

// processList recurses bottom-up (children before siblings) and then
// applies each pass, in order, to this one sibling list.
func processList(items []*Entity) []*Entity {
	for _, e := range items {
		e.Children = processList(e.Children)
	}
	items = simplify(items)
	items = dependency(items)
	items = blockKeywordGroup(items)
	items = blockStatementGroup(items)
	items = pairFormation(items)
	return items
}

// simplify drops empty synthetic wrappers and inlines single-child ones,
// repeating until the list stops changing: inlining can expose another
// trivial wrapper that was previously hidden inside one.
func simplify(items []*Entity) []*Entity {
	for {
		out := make([]*Entity, 0, len(items))
		changed := false
		for _, e := range items {
			if e.Token == KindNone && e.Head == "" && e.Tail == "" && len(e.Dependencies) == 0 {
				switch len(e.Children) {
				case 0:
					changed = true
					continue
				case 1:
					out = append(out, e.Children[0])
					changed = true
					continue
				}
			}
			out = append(out, e)
		}
		items = out
		if !changed {
			return items
		}
	}
}

// dependency finds the median binary-separator entity carrying leftover
// children (its former left operand), detaches those children into a
// sibling group, and records a single dependency edge from the operator
// to whatever remains on its right so that removing the right side
// cascades to removing the operator too.
func dependency(items []*Entity) []*Entity {
	if len(items) < 2 {
		return items
	}

	var points []int
	for i, e := range items {
		if SeparatorOf(e.Token) == SepBinary && len(e.Children) > 0 {
			points = append(points, i)
		}
	}
	if len(points) == 0 {
		return items
	}

	i := points[len(points)/2]
	e := items[i]

	left := e.Children
	e.Children = nil

	headMembers := make([]*Entity, 0, i+1)
	headMembers = append(headMembers, items[:i]...)
	headMembers = append(headMembers, group(left)...)
	headMembers = dependency(headMembers)
	headGroup := group(headMembers)

	combined := append(append([]*Entity{}, headGroup...), e)
	finalHead := group(combined)

	tailMembers := dependency(items[i+1:])
	tailGroup := group(tailMembers)

	if len(tailGroup) > 0 {
		e.AddDependency(tailGroup[0])
	}

	out := make([]*Entity, 0, len(finalHead)+len(tailGroup))
	out = append(out, finalHead...)
	out = append(out, tailGroup...)
	return out
}

// isParenArg reports whether e is a "(...)" pair, the shape block-keyword
// grouping recognizes as an optional argument list.
func isParenArg(e *Entity) bool {
	return e.Token == KindLParen
}

// isBraceBody reports whether e is a "{...}" pair, the shape recognized
// as a keyword's or signature's body.
func isBraceBody(e *Entity) bool {
	return e.Token == KindLBrace
}

// isBlockKeyword reports whether tok leads a construct with an optional
// argument list and a mandatory trailing body or terminator.
func isBlockKeyword(tok Kind) bool {
	switch tok {
	case KindIf, KindStaticIf, KindWhile, KindDo, KindTry, KindCatchKw,
		KindFinally, KindElse, KindIn, KindOut, KindBody:
		return true
	}
	return false
}

// blockKeywordGroup merges a block keyword with its optional "(...)"
// argument and its trailing body (a "{...}" pair or a bare ";") into one
// entity. When the body is a brace pair the merged entity is itself
// marked as a pair, since it now reads as "signature { body }".
func blockKeywordGroup(items []*Entity) []*Entity {
	var out []*Entity
	i := 0
	for i < len(items) {
		e := items[i]
		if !isBlockKeyword(e.Token) {
			out = append(out, e)
			i++
			continue
		}

		j := i + 1
		if j < len(items) && isParenArg(items[j]) {
			j++
		}
		if j >= len(items) {
			out = append(out, e)
			i++
			continue
		}
		j++ // consume the trailing body/terminator

		sig := group(append([]*Entity{}, items[i:j-1]...))
		body := items[j-1]
		merged := group(append(append([]*Entity{}, sig...), body))
		if len(merged) == 1 && isBraceBody(body) {
			merged[0].IsPair = true
		}
		out = append(out, merged...)
		i = j
	}
	return out
}

// firstToken drills through a chain of single-purpose synthetic wrappers
// to find the token that actually opened this sub-tree.
func firstToken(e *Entity) Kind {
	if e.Token != KindNone {
		return e.Token
	}
	if len(e.Children) > 0 {
		return firstToken(e.Children[0])
	}
	return KindNone
}

// isKeywordLed reports whether e is exactly the shape blockKeywordGroup
// produces: a synthetic pair of [signature, body] whose signature leads
// with k.
func isKeywordLed(e *Entity, k Kind) bool {
	return e.Token == KindNone && len(e.Children) == 2 && firstToken(e.Children[0]) == k
}

// blockStatementGroup fuses adjacent keyword-led statements that belong
// together: if/else chains, do/while loops, try/catch/finally chains,
// and — per the fallback rule, preserved verbatim even though it also
// fires on ordinary statements — any item followed by contract clauses.
func blockStatementGroup(items []*Entity) []*Entity {
	at := func(idx int, k Kind) bool {
		return idx < len(items) && isKeywordLed(items[idx], k)
	}

	var out []*Entity
	i := 0
	for i < len(items) {
		var j int
		switch {
		case at(i, KindIf) || at(i, KindStaticIf):
			j = i + 1
			if at(j, KindElse) {
				j++
			}
		case at(i, KindDo):
			j = i + 1
			if at(j, KindWhile) {
				j++
			}
		case at(i, KindTry):
			j = i + 1
			for at(j, KindCatchKw) {
				j++
			}
			if at(j, KindFinally) {
				j++
			}
		default:
			j = i + 1
			for at(j, KindIn) || at(j, KindOut) || at(j, KindBody) {
				j++
			}
		}

		if j > i+1 {
			out = append(out, group(append([]*Entity{}, items[i:j]...))...)
		} else {
			out = append(out, items[i])
		}
		i = j
	}
	return out
}

// pairFormation catches brace pairs that blockKeywordGroup left alone
// because nothing block-keyword-shaped led them: a function body, a
// struct/class body, or any other "signature { ... }" construct. It
// walks the list, and whenever it meets a "{" pair not immediately after
// another pair, it groups everything since the last statement boundary
// with that pair and marks the result a pair.
func pairFormation(items []*Entity) []*Entity {
	var out []*Entity
	lastBoundary := 0
	i := 0
	for i < len(items) {
		e := items[i]
		if isBraceBody(e) {
			if i >= lastBoundary+1 {
				sig := append([]*Entity{}, items[lastBoundary:i]...)
				merged := group(append(sig, e))
				if len(merged) == 1 {
					merged[0].IsPair = true
				}
				out = out[:len(out)-(i-lastBoundary)]
				out = append(out, merged...)
			} else {
				out = append(out, e)
			}
			lastBoundary = i + 1
			i++
			continue
		}
		out = append(out, e)
		if e.Token == KindSemicolon {
			lastBoundary = i + 1
		}
		i++
	}
	return out
}

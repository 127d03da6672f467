package parser

// levelZero is the sentinel level above precedence row 0; nothing is
// ever enqueued there directly, it only seeds the final flush.
// levelText is the dedicated bottom level, one step below row 20, where
// ordinary (non-separator) tokens accumulate as flat leaves.
const (
	levelZero = -1
	levelText = 20 + 1
)

// scopeBuilder holds the fixed array of level queues used while parsing
// a single scope (the token span between an opener, or the start of the
// file, and its matching closer or EOF).
type scopeBuilder struct {
	lex    *Lexer
	queues [][]*Entity // index 0 == row 0 .. index 20 == row 20, index 21 == text
}

func newScopeBuilder(lex *Lexer) *scopeBuilder {
	return &scopeBuilder{lex: lex, queues: make([][]*Entity, levelText+1)}
}

// terminateLevel flushes everything queued strictly below L: the items
// resting exactly at level L+1, followed by one grouped entity wrapping
// everything strictly deeper than L+1. Both queue[L+1] and everything
// below it are cleared as a side effect.
func (b *scopeBuilder) terminateLevel(L int) []*Entity {
	next := L + 1
	if next > levelText {
		return nil
	}
	own := b.queues[next]
	b.queues[next] = nil
	finer := group(b.terminateLevel(next))
	out := make([]*Entity, 0, len(own)+len(finer))
	out = append(out, own...)
	out = append(out, finer...)
	return out
}

// group returns xs unchanged when it has zero or one elements; otherwise
// it wraps xs in a single new synthetic entity.
func group(xs []*Entity) []*Entity {
	if len(xs) <= 1 {
		return xs
	}
	return []*Entity{newGroup(xs)}
}

// matchingCloser returns the Kind that closes an opener kind.
func matchingCloser(opener Kind) Kind {
	switch opener {
	case KindLBrace:
		return KindRBrace
	case KindLParen:
		return KindRParen
	case KindLBracket:
		return KindRBracket
	}
	return KindNone
}

// ParseScope builds result.Children from the token stream, stopping when
// it reads a token whose Kind is scopeEnd (setting result.Tail to that
// token's span) or when the lexer reaches EOF (leaving Tail empty).
// scopeEnd is KindNone to mean "parse to EOF" (used for the file-level
// scope; the lexer itself never produces KindNone). Matching on Kind
// rather than the next raw byte means a closer preceded by un-consumed
// line indentation — the normal shape of a nested block's closing
// brace on its own line — still ends the scope instead of being
// absorbed into it as plain text.
func ParseScope(lex *Lexer, result *Entity, scopeEnd Kind) {
	b := newScopeBuilder(lex)

	for {
		kind, span := lex.ReadToken()
		if kind == KindEnd {
			result.Children = b.terminateLevel(levelZero)
			return
		}
		if scopeEnd != KindNone && kind == scopeEnd {
			result.Tail = span
			result.Children = b.terminateLevel(levelZero)
			return
		}

		e := &Entity{Token: kind}
		level := levelText

		if row, ok := Row(kind); ok {
			level = row
			e.Children = b.terminateLevel(level)
		}

		var after *Entity
		switch SeparatorOf(kind) {
		case SepPrefix, SepPair:
			if len(e.Children) > 0 {
				after = &Entity{Head: span, Token: kind}
				e.Token = KindNone
				if SeparatorOf(kind) == SepPair {
					ParseScope(lex, after, matchingCloser(kind))
				}
			} else {
				e.Head = span
				if SeparatorOf(kind) == SepPair {
					ParseScope(lex, e, matchingCloser(kind))
				}
			}
		case SepPostfix, SepBinary:
			e.Tail = span
		default:
			e.Head = span
		}

		b.queues[level] = append(b.queues[level], e)
		if after != nil {
			b.queues[level] = append(b.queues[level], after)
		}
	}
}

// ParseSource builds a complete entity tree for a whole file's contents,
// tolerating unterminated scopes (a stray '}' simply never arrives, so
// the outermost ParseScope call runs to EOF with an empty Tail).
func ParseSource(contents []byte) *Entity {
	root := &Entity{Token: KindNone}
	lex := NewLexer(contents)
	ParseScope(lex, root, KindNone)
	return root
}

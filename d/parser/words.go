package parser

// SplitWords breaks contents into (word, trailing-non-word) pairs: a run
// of word bytes (identifiers, numbers) starts a new word, and the run of
// non-word bytes that follows it — whitespace, punctuation, operators,
// all of it — attaches to that word's end, so a word and everything that
// separates it from the next one are removed together. A non-word run at
// the very start of contents, with no preceding word to attach to,
// becomes its own leading word.
func SplitWords(contents []byte) []string {
	var words []string
	i := 0
	n := len(contents)
	for i < n {
		start := i
		if isWordByte(contents[i]) {
			for i < n && isWordByte(contents[i]) {
				i++
			}
			words = append(words, string(contents[start:i]))
			continue
		}

		for i < n && !isWordByte(contents[i]) {
			i++
		}
		if len(words) > 0 {
			words[len(words)-1] += string(contents[start:i])
		} else {
			words = append(words, string(contents[start:i]))
		}
	}
	return words
}

// WordsToEntities lifts the output of SplitWords into leaf entities, for
// callers that want the tree shape as their minimal reduction unit
// instead of a plain string slice (e.g. a word-granularity fallback when
// the language-aware parser fails outright on a file).
func WordsToEntities(contents []byte) []*Entity {
	words := SplitWords(contents)
	out := make([]*Entity, 0, len(words))
	for _, w := range words {
		out = append(out, newLeaf(w, KindOther))
	}
	return out
}

// ParseToWords is the language-aware counterpart to WordsToEntities: it
// drives the D lexer instead of scanning raw bytes, so a multi-byte
// operator or a quoted string counts as a single indivisible run rather
// than fragmenting on whatever bytes happen to make it up. Every
// KindOther token becomes its own entity; every other token (operators,
// keywords, whitespace, comments) attaches to the tail of the entity
// before it, or starts a leaf of its own if none precedes it yet.
func ParseToWords(contents []byte) []*Entity {
	lex := NewLexer(contents)
	var out []*Entity
	for {
		kind, text := lex.SkipTokenOrWS()
		if kind == KindEnd {
			return out
		}
		if kind == KindOther {
			out = append(out, newLeaf(text, KindOther))
			continue
		}
		if len(out) == 0 {
			out = append(out, newLeaf(text, KindOther))
			continue
		}
		out[len(out)-1].Tail += text
	}
}

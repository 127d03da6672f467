// Package ebnfword drives word splitting from a user-supplied EBNF
// grammar instead of the fixed byte-class rule in d/parser: a grammar
// defines what a "word" looks like for some embedded or foreign syntax,
// and every other lexeme collapses onto the tail of the preceding word
// entity, mirroring how the source-aware splitter folds separators onto
// the entity before them.
package ebnfword

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/ebnf"

	"github.com/lang-tools/dtree/d/parser"
	"github.com/lang-tools/dtree/ebnflex"
)

// DefaultWordProduction is the grammar production name treated as a
// word when the caller does not name one explicitly.
const DefaultWordProduction = "Word"

// LoadGrammar reads an EBNF grammar file and, when it defines a
// DefaultWordProduction, verifies it from that production.
func LoadGrammar(path string) (ebnf.Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ebnfword: open grammar: %w", err)
	}
	defer f.Close()

	grammar, err := ebnf.Parse(path, f)
	if err != nil {
		return nil, fmt.Errorf("ebnfword: parse grammar: %w", err)
	}
	if _, ok := grammar[DefaultWordProduction]; ok {
		if err := ebnf.Verify(grammar, DefaultWordProduction); err != nil {
			return nil, fmt.Errorf("ebnfword: verify grammar: %w", err)
		}
	}
	return grammar, nil
}

// Split tokenizes contents against grammar, turning every match of
// wordProduction into its own leaf entity and folding every other
// token's literal onto the Tail of the entity before it. A leading run
// of non-word tokens becomes a leaf of its own, since there is no prior
// entity to absorb it into.
func Split(grammar ebnf.Grammar, contents []byte, filename, wordProduction string) ([]*parser.Entity, error) {
	if wordProduction == "" {
		wordProduction = DefaultWordProduction
	}

	lex := ebnflex.NewLexer(grammar, contents, filename)
	var out []*parser.Entity
	leading := false

	for {
		tok, err := lex.NextToken()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("ebnfword: %w", err)
		}

		if tok.Kind == wordProduction {
			out = append(out, &parser.Entity{Head: tok.Literal, Token: parser.KindOther})
			leading = false
			continue
		}

		if len(out) == 0 {
			out = append(out, &parser.Entity{Head: tok.Literal, Token: parser.KindOther})
			leading = true
			continue
		}
		last := out[len(out)-1]
		if leading {
			last.Head += tok.Literal
			continue
		}
		last.Tail += tok.Literal
	}
}

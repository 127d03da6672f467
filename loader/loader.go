// Package loader turns a path on disk into an entity tree, choosing a
// splitter per file by matching its base name against user-supplied and
// default glob rules. It owns no parsing logic of its own; it dispatches
// to the d/parser package (or treats a file as opaque) and wires the
// results into a single root.
package loader

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/ebnf"

	"github.com/lang-tools/dtree/d/parser"
	"github.com/lang-tools/dtree/internal/ebnfword"
)

// Splitter names one of the three ways a file's contents can become
// entities.
type Splitter int

const (
	SplitterD Splitter = iota
	SplitterWords
	SplitterFiles
)

func (s Splitter) String() string {
	switch s {
	case SplitterD:
		return "D"
	case SplitterWords:
		return "Words"
	case SplitterFiles:
		return "Files"
	}
	return "unknown"
}

// Mode selects which D pipeline runs on a file classified as SplitterD:
// the full scope-parser-plus-post-processing tree, the byte-class word
// splitter, or the lexer-driven word splitter that keeps multi-byte
// operators and quoted strings intact as single words.
type Mode int

const (
	ModeSource Mode = iota
	ModeWords
	ModeLexWords
)

// Rule maps a base-name glob to the splitter that should handle it. User
// rules are consulted before the built-in defaults.
type Rule struct {
	Glob     string
	Splitter Splitter
}

// Options configures a Load call.
type Options struct {
	StripComments bool
	Rules         []Rule
	Mode          Mode

	// Grammar, when set, drives word splitting through ebnfword instead
	// of the plain byte-class rule; WordProduction names the production
	// that counts as a word, defaulting to ebnfword.DefaultWordProduction.
	Grammar        ebnf.Grammar
	WordProduction string
}

var defaultRules = []Rule{
	{Glob: "*.d", Splitter: SplitterD},
	{Glob: "*.di", Splitter: SplitterD},
	{Glob: "*", Splitter: SplitterFiles},
}

// classify matches base against opts.Rules then the defaults; the
// trailing "*" default rule always matches, so a caller never needs a
// fallback for the return value here.
func classify(base string, opts Options) Splitter {
	for _, r := range opts.Rules {
		if ok, _ := filepath.Match(r.Glob, base); ok {
			return r.Splitter
		}
	}
	for _, r := range defaultRules {
		if ok, _ := filepath.Match(r.Glob, base); ok {
			return r.Splitter
		}
	}
	return SplitterFiles
}

// Load reads path and returns the adjusted path (extension stripped, for
// single-file loads) alongside the resulting entity tree.
func Load(path string, opts Options) (string, *parser.Entity, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", nil, fmt.Errorf("loader: stat %s: %w", path, err)
	}

	if info.IsDir() {
		root, err := loadDir(path, opts)
		if err != nil {
			return "", nil, err
		}
		return path, root, nil
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("loader: read %s: %w", path, err)
	}
	root := loadFile(filepath.Base(path), contents, opts)
	adjusted := strings.TrimSuffix(path, filepath.Ext(path))
	return adjusted, root, nil
}

func loadDir(root string, opts Options) (*parser.Entity, error) {
	result := &parser.Entity{Token: parser.KindNone}

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("loader: relativize %s: %w", path, err)
		}
		rel = filepath.ToSlash(rel)

		contents, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("loader: read %s: %w", path, err)
		}

		child := loadFile(filepath.Base(path), contents, opts)
		child.Filename = rel
		result.Children = append(result.Children, child)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// loadFile builds one file's root entity: Filename is set to base (loadDir
// then overwrites it with the directory-relative path), Contents always
// holds the untouched bytes.
func loadFile(base string, contents []byte, opts Options) *parser.Entity {
	root := &parser.Entity{
		Filename: base,
		Contents: string(contents),
		Token:    parser.KindNone,
	}

	switch classify(base, opts) {
	case SplitterD:
		if bytes.HasPrefix(contents, []byte("Ddoc")) {
			root.Children = opaqueLeaf(contents)
			return root
		}
		data := contents
		if opts.StripComments {
			data = parser.StripComments(data)
		}
		if opts.Mode != ModeSource {
			root.Children = splitWords(data, base, opts)
			return root
		}
		lex := parser.NewLexer(data)
		parser.ParseScope(lex, root, parser.KindNone)
		parser.PostProcess(root)

	case SplitterWords:
		root.Children = splitWords(contents, base, opts)

	case SplitterFiles:
		root.Children = opaqueLeaf(contents)
	}

	return root
}

// splitWords picks among the three word splitters, in order of
// precedence: opts.Grammar (grammar-driven, C10) if set, then
// ModeLexWords (D-lexer driven, keeps operators and strings intact),
// then the plain byte-class rule. A grammar error demotes to the next
// splitter rather than failing the whole load, since word splitting is
// advisory, not load-bearing.
func splitWords(contents []byte, filename string, opts Options) []*parser.Entity {
	if opts.Grammar != nil {
		if entities, err := ebnfword.Split(opts.Grammar, contents, filename, opts.WordProduction); err == nil {
			return entities
		}
	}
	if opts.Mode == ModeLexWords {
		return parser.ParseToWords(contents)
	}
	return parser.WordsToEntities(contents)
}

func opaqueLeaf(contents []byte) []*parser.Entity {
	return []*parser.Entity{{Head: string(contents)}}
}

// Package format renders an entity tree for external consumption: JSON
// for tooling, and a flat text dump for humans skimming a split.
package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lang-tools/dtree/d/parser"
)

// JSONEncoder writes an entity tree as indented JSON.
type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(root *parser.Entity) error {
	text, err := json.MarshalIndent(entityToJSON(root), "", "  ")
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	if err != nil {
		return err
	}
	_, err = e.w.Write([]byte("\n"))
	return err
}

type jsonEntity struct {
	Filename string        `json:"filename,omitempty"`
	Comment  string        `json:"comment,omitempty"`
	Head     string        `json:"head,omitempty"`
	Tail     string        `json:"tail,omitempty"`
	IsPair   bool          `json:"isPair,omitempty"`
	Children []*jsonEntity `json:"children,omitempty"`
}

func entityToJSON(e *parser.Entity) *jsonEntity {
	je := &jsonEntity{
		Filename: e.Filename,
		Comment:  e.Comment(),
		Head:     e.Head,
		Tail:     e.Tail,
		IsPair:   e.IsPair,
	}
	for _, c := range e.Children {
		je.Children = append(je.Children, entityToJSON(c))
	}
	return je
}

// LineEncoder writes one line per entity, indented by tree depth, as a
// quick human-readable outline.
type LineEncoder struct {
	w io.Writer
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(root *parser.Entity) error {
	return writeLines(e.w, root, 0)
}

func writeLines(w io.Writer, e *parser.Entity, depth int) error {
	label := e.Comment()
	if label == "" {
		label = "·"
	}
	if _, err := fmt.Fprintf(w, "%*s%s\n", depth*2, "", label); err != nil {
		return err
	}
	for _, c := range e.Children {
		if err := writeLines(w, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}

package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lang-tools/dtree/d/parser"
)

func sampleTree() *parser.Entity {
	return &parser.Entity{
		Filename: "foo.d",
		Token:    parser.KindNone,
		Children: []*parser.Entity{
			{Head: "a", Token: parser.KindOther},
			{Head: ";", Token: parser.KindSemicolon},
		},
	}
}

func TestJSONEncoderProducesValidJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(sampleTree()); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode output: %v\n%s", err, buf.String())
	}
	if decoded["filename"] != "foo.d" {
		t.Errorf("filename = %v", decoded["filename"])
	}
	children, ok := decoded["children"].([]any)
	if !ok || len(children) != 2 {
		t.Fatalf("children = %v", decoded["children"])
	}
}

func TestLineEncoderIndentsByDepth(t *testing.T) {
	var buf bytes.Buffer
	if err := NewLineEncoder(&buf).Encode(sampleTree()); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), lines)
	}
	if strings.HasPrefix(lines[0], " ") {
		t.Errorf("root line should not be indented: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "  ") {
		t.Errorf("child line should be indented: %q", lines[1])
	}
}

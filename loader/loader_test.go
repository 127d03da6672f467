package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lang-tools/dtree/d/parser"
)

func TestClassifyDefaults(t *testing.T) {
	cases := map[string]Splitter{
		"foo.d":    SplitterD,
		"foo.di":   SplitterD,
		"README":   SplitterFiles,
		"Makefile": SplitterFiles,
	}
	for name, want := range cases {
		if got := classify(name, Options{}); got != want {
			t.Errorf("classify(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestClassifyUserRuleWins(t *testing.T) {
	opts := Options{Rules: []Rule{{Glob: "*.d", Splitter: SplitterWords}}}
	if got := classify("foo.d", opts); got != SplitterWords {
		t.Fatalf("classify with user rule = %v, want SplitterWords", got)
	}
}

func TestLoadSingleFileStripsExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "foo.d")
	if err := os.WriteFile(path, []byte("a;b;"), 0o644); err != nil {
		t.Fatal(err)
	}

	adjusted, root, err := Load(path, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if adjusted != filepath.Join(dir, "foo") {
		t.Errorf("adjusted path = %q", adjusted)
	}
	if len(root.Children) != 2 {
		t.Errorf("expected 2 top level entities, got %d", len(root.Children))
	}
	if root.Filename != "foo.d" {
		t.Errorf("Filename = %q", root.Filename)
	}
}

func TestLoadDirectoryWithOpaqueReadme(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "x.d"), []byte("a;"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "README"), []byte("read this"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, root, err := Load(dir, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 file children, got %d", len(root.Children))
	}

	var readme *parser.Entity
	for _, c := range root.Children {
		if c.Filename == "README" {
			readme = c
		}
	}
	if readme == nil {
		t.Fatal("README child not found")
	}
	if len(readme.Children) != 1 || readme.Children[0].Head != "read this" {
		t.Fatalf("README children = %#v", readme.Children)
	}
}

func TestLoadDdocFileIsOpaque(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.d")
	if err := os.WriteFile(path, []byte("Ddoc\nsome text"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, root, err := Load(path, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(root.Children) != 1 || root.Children[0].Head != "Ddoc\nsome text" {
		t.Fatalf("Ddoc file children = %#v", root.Children)
	}
}

func TestLoadStripsCommentsWhenRequested(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "foo.d")
	src := "a; // trailing\nb;"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	_, root, err := Load(path, Options{StripComments: true})
	if err != nil {
		t.Fatal(err)
	}
	if root.Text() != "a; \nb;" {
		t.Fatalf("Text() = %q", root.Text())
	}
}

package parser

import "testing"

func TestParseSourceRoundTrip(t *testing.T) {
	srcs := []string{
		"a;b;",
		"if(x){y;}",
		"a+b*c",
		"try{a;}catch(e){b;}finally{c;}",
		"void f(){g();}",
	}
	for _, src := range srcs {
		root := ParseSource([]byte(src))
		if got := root.Text(); got != src {
			t.Errorf("round trip for %q: got %q", src, got)
		}
	}
}

func TestParseSourceTwoStatements(t *testing.T) {
	root := ParseSource([]byte("a;b;"))
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 top level entities, got %d: %#v", len(root.Children), root.Children)
	}
}

func TestParseScopeBracePair(t *testing.T) {
	root := ParseSource([]byte("{y;}"))
	if len(root.Children) != 1 {
		t.Fatalf("expected 1 top level entity, got %d", len(root.Children))
	}
	brace := root.Children[0]
	if brace.Head != "{" || brace.Tail != "}" {
		t.Fatalf("brace entity head/tail = %q/%q", brace.Head, brace.Tail)
	}
}

func TestParseScopeDependencyChain(t *testing.T) {
	root := ParseSource([]byte("a+b*c"))
	if len(root.Children) != 1 {
		t.Fatalf("expected a single top level entity before post-processing, got %d", len(root.Children))
	}
}

func TestMatchingCloser(t *testing.T) {
	cases := map[Kind]Kind{KindLBrace: KindRBrace, KindLParen: KindRParen, KindLBracket: KindRBracket}
	for k, want := range cases {
		if got := matchingCloser(k); got != want {
			t.Errorf("matchingCloser(%v) = %v, want %v", k, got, want)
		}
	}
}

func TestParseScopeClosesOnIndentedBrace(t *testing.T) {
	root := ParseSource([]byte("if(x){\n  y;\n  }"))
	// Before post-processing, "if", the "(x)" container and the "{...}"
	// pair are three separate row-0 entities.
	if len(root.Children) != 3 {
		t.Fatalf("expected 3 top level entities, got %d: %#v", len(root.Children), root.Children)
	}
	var brace *Entity
	root.Walk(func(e *Entity) {
		if e.Token == KindLBrace {
			brace = e
		}
	})
	if brace == nil {
		t.Fatalf("expected a '{' entity in the tree")
	}
	if brace.Tail == "" {
		t.Fatalf("brace entity closed at EOF instead of the indented '}': %#v", brace)
	}
}

package parser

import "testing"

func TestSplitWordsAttachesTrailingNonWordRunToPreviousWord(t *testing.T) {
	words := SplitWords([]byte("foo  bar,baz"))
	want := []string{"foo  ", "bar,", "baz"}
	if len(words) != len(want) {
		t.Fatalf("SplitWords = %#v, want %#v", words, want)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("word[%d] = %q, want %q", i, words[i], want[i])
		}
	}
}

func TestSplitWordsLeadingWhitespaceIsItsOwnWord(t *testing.T) {
	words := SplitWords([]byte("  foo"))
	if len(words) != 2 || words[0] != "  " || words[1] != "foo" {
		t.Fatalf("SplitWords(leading ws) = %#v", words)
	}
}

func TestWordsToEntitiesRoundTrips(t *testing.T) {
	src := "foo(bar);"
	entities := WordsToEntities([]byte(src))
	var rebuilt string
	for _, e := range entities {
		rebuilt += e.Head + e.Tail
	}
	if rebuilt != src {
		t.Fatalf("round trip = %q, want %q", rebuilt, src)
	}
}

func TestParseToWordsKeepsMultiByteOperatorIntact(t *testing.T) {
	entities := ParseToWords([]byte("a += b"))
	if len(entities) != 2 {
		t.Fatalf("expected 2 words, got %d: %#v", len(entities), entities)
	}
	if entities[0].Head != "a" || entities[0].Tail != " += " {
		t.Errorf("entity[0] = %+v", entities[0])
	}
	if entities[1].Head != "b" {
		t.Errorf("entity[1] = %+v", entities[1])
	}
}

func TestParseToWordsCoalescesCommentOntoPreviousWord(t *testing.T) {
	entities := ParseToWords([]byte("foo /* c */ bar"))
	if len(entities) != 2 {
		t.Fatalf("expected 2 words, got %d: %#v", len(entities), entities)
	}
	if entities[0].Head != "foo" || entities[0].Tail != " /* c */ " {
		t.Errorf("entity[0] = %+v", entities[0])
	}
	if entities[1].Head != "bar" {
		t.Errorf("entity[1] = %+v", entities[1])
	}
}

func TestParseToWordsLeadingSeparatorBecomesOwnLeaf(t *testing.T) {
	entities := ParseToWords([]byte("(foo)"))
	if len(entities) != 2 {
		t.Fatalf("expected 2 words, got %d: %#v", len(entities), entities)
	}
	if entities[0].Head != "(" {
		t.Errorf("entity[0] = %+v", entities[0])
	}
	if entities[1].Head != "foo" || entities[1].Tail != ")" {
		t.Errorf("entity[1] = %+v", entities[1])
	}
}

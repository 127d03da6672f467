package parser

import "testing"

func TestSeparatorOfOpeners(t *testing.T) {
	for _, k := range []Kind{KindLBrace, KindLParen, KindLBracket} {
		if got := SeparatorOf(k); got != SepPair {
			t.Errorf("SeparatorOf(%v) = %v, want SepPair", k, got)
		}
	}
}

func TestSeparatorOfSemicolon(t *testing.T) {
	if got := SeparatorOf(KindSemicolon); got != SepPostfix {
		t.Errorf("SeparatorOf(semicolon) = %v, want SepPostfix", got)
	}
}

func TestSeparatorOfKeywords(t *testing.T) {
	for _, k := range []Kind{KindImport, KindIf, KindWhile, KindTry, KindElse} {
		if got := SeparatorOf(k); got != SepPrefix {
			t.Errorf("SeparatorOf(%v) = %v, want SepPrefix", k, got)
		}
	}
}

func TestSeparatorOfBinary(t *testing.T) {
	for _, k := range []Kind{KindPlus, KindMul, KindEq, KindAndAnd} {
		if got := SeparatorOf(k); got != SepBinary {
			t.Errorf("SeparatorOf(%v) = %v, want SepBinary", k, got)
		}
	}
}

func TestSeparatorOfOther(t *testing.T) {
	if got := SeparatorOf(KindOther); got != SepNone {
		t.Errorf("SeparatorOf(other) = %v, want SepNone", got)
	}
}

func TestRowOrdering(t *testing.T) {
	semiRow, _ := Row(KindSemicolon)
	plusRow, _ := Row(KindPlus)
	mulRow, _ := Row(KindMul)
	if !(semiRow < plusRow && plusRow < mulRow) {
		t.Errorf("expected semicolon < plus < mul rows, got %d, %d, %d", semiRow, plusRow, mulRow)
	}
}

func TestRowUnknown(t *testing.T) {
	if _, ok := Row(KindOther); ok {
		t.Errorf("Row(KindOther) should not be present in the table")
	}
}

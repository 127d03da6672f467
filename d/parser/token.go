package parser

// Kind identifies the lexical category of a token. The zero-value set
// (End, Whitespace, Comment, Other) covers everything the lexer produces
// that never participates in precedence-based splitting; the remaining
// values name individual operators and keywords from the precedence
// table below.
type Kind int

const (
	KindEnd Kind = iota
	KindWhitespace
	KindComment
	KindOther
	KindNone // entity was synthesised by grouping, not by a terminal token

	KindSemicolon
	KindLBrace
	KindRBrace
	KindLParen
	KindRParen
	KindLBracket
	KindRBracket

	KindImport

	KindDotDot

	KindComma

	KindFatArrow

	KindAssign
	KindMinusAssign
	KindPlusAssign
	KindShlAssign
	KindShrAssign
	KindUShrAssign
	KindMulAssign
	KindModAssign
	KindXorAssign
	KindPowAssign
	KindCatAssign

	KindQuestion
	KindColon

	KindOrOr
	KindAndAnd
	KindOr
	KindXor
	KindAmp

	KindEq
	KindNe
	KindGt
	KindLt
	KindGe
	KindLe
	KindNotGt
	KindNotLt
	KindNotGe
	KindNotLe
	KindLtGt
	KindNotLtGt
	KindLtGtEq
	KindNotLtGtEq
	KindIn
	KindNotIn
	KindIs
	KindNotIs

	KindShl
	KindShr
	KindUShr

	KindPlus
	KindMinus
	KindCat

	KindMul
	KindDiv
	KindMod

	KindIncr
	KindDecr

	KindPow

	KindDot

	KindNot

	KindTry
	KindCatchKw
	KindFinally
	KindWhile
	KindDo
	KindOut
	KindBody
	KindIf
	KindStaticIf
	KindElse
)

var kindNames = map[Kind]string{
	KindEnd:        "end",
	KindWhitespace: "whitespace",
	KindComment:    "comment",
	KindOther:      "other",
	KindNone:       "none",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	if text, ok := kindText[k]; ok {
		return text
	}
	return "unknown"
}

// Separator categorizes a token for the scope parser (C2): whether it
// opens a brace pair, closes a statement, precedes a body, joins two
// operands, or does none of the above.
type Separator int

const (
	SepNone Separator = iota
	SepPair
	SepPrefix
	SepPostfix
	SepBinary
)

// opEntry pairs a literal token spelling with the Kind it lexes to. The
// table is exhaustive and static, built once at package init, per the
// design note that the operator/keyword set is compile-time data.
type opEntry struct {
	text string
	kind Kind
}

// precedenceRows lists the operator/keyword table in split-priority
// order: row 0 splits outermost (coarsest grain), row 20 splits
// innermost. Where a literal spelling is ambiguous between two rows in
// the prose specification (e.g. "&" as bitwise-and versus address-of,
// "in" as a comparison operator versus a contract-clause keyword), it is
// placed at its first-listed row only; the token stream carries no
// syntactic context to disambiguate further, so the earliest (coarsest)
// row wins deterministically.
var precedenceRows = [][]opEntry{
	{ // 0
		{";", KindSemicolon}, {"{", KindLBrace},
		{"try", KindTry}, {"catch", KindCatchKw}, {"finally", KindFinally},
		{"while", KindWhile}, {"do", KindDo},
		{"in", KindIn}, {"out", KindOut}, {"body", KindBody},
		{"if", KindIf}, {"static if", KindStaticIf}, {"else", KindElse},
	},
	{{"import", KindImport}},                    // 1
	{{"..", KindDotDot}},                        // 2
	{{",", KindComma}},                          // 3
	{{"=>", KindFatArrow}},                      // 4
	{ // 5
		{"=", KindAssign}, {"-=", KindMinusAssign}, {"+=", KindPlusAssign},
		{"<<=", KindShlAssign}, {">>=", KindShrAssign}, {">>>=", KindUShrAssign},
		{"*=", KindMulAssign}, {"%=", KindModAssign}, {"^=", KindXorAssign},
		{"^^=", KindPowAssign}, {"~=", KindCatAssign},
	},
	{{"?", KindQuestion}, {":", KindColon}}, // 6
	{{"||", KindOrOr}},                      // 7
	{{"&&", KindAndAnd}},                    // 8
	{{"|", KindOr}},                         // 9
	{{"^", KindXor}},                        // 10
	{{"&", KindAmp}},                        // 11
	{ // 12
		{"==", KindEq}, {"!=", KindNe}, {">", KindGt}, {"<", KindLt},
		{">=", KindGe}, {"<=", KindLe}, {"!>", KindNotGt}, {"!<", KindNotLt},
		{"!>=", KindNotGe}, {"!<=", KindNotLe}, {"<>", KindLtGt},
		{"!<>", KindNotLtGt}, {"<>=", KindLtGtEq}, {"!<>=", KindNotLtGtEq},
		{"!in", KindNotIn}, {"is", KindIs}, {"!is", KindNotIs},
	},
	{{"<<", KindShl}, {">>", KindShr}, {">>>", KindUShr}}, // 13
	{{"+", KindPlus}, {"-", KindMinus}, {"~", KindCat}},   // 14
	{{"*", KindMul}, {"/", KindDiv}, {"%", KindMod}},      // 15
	{{"++", KindIncr}, {"--", KindDecr}},                  // 16
	{{"^^", KindPow}},                                     // 17
	{{".", KindDot}},                                      // 18
	{{"!", KindNot}},                                      // 19
	{{"(", KindLParen}, {"[", KindLBracket}},              // 20
}

// closerEntries lists the operator-table entries for the three
// brace/bracket/paren closers: they lex to their own Kind exactly like
// any other token (matchOperator finds them, ReadToken returns them)
// even though they never participate in a split themselves and so are
// deliberately left out of rowOf. This lets ParseScope compare a
// lexed Kind against the expected closer instead of peeking a raw,
// unprocessed byte, which would miss a closer sitting behind
// un-consumed line indentation.
var closerEntries = []opEntry{
	{"}", KindRBrace},
	{")", KindRParen},
	{"]", KindRBracket},
}

var (
	rowOf    = map[Kind]int{}
	kindText = map[Kind]string{}
	opByLen  [][]opEntry // precedenceRows and closerEntries bucketed by descending text length
	maxOpLen int
)

func init() {
	for row, entries := range precedenceRows {
		for _, e := range entries {
			if _, seen := rowOf[e.kind]; !seen {
				rowOf[e.kind] = row
			}
			kindText[e.kind] = e.text
			if len(e.text) > maxOpLen {
				maxOpLen = len(e.text)
			}
		}
	}
	for _, e := range closerEntries {
		kindText[e.kind] = e.text
		if len(e.text) > maxOpLen {
			maxOpLen = len(e.text)
		}
	}
	for l := maxOpLen; l >= 1; l-- {
		var bucket []opEntry
		for _, entries := range precedenceRows {
			for _, e := range entries {
				if len(e.text) == l {
					bucket = append(bucket, e)
				}
			}
		}
		for _, e := range closerEntries {
			if len(e.text) == l {
				bucket = append(bucket, e)
			}
		}
		if len(bucket) > 0 {
			opByLen = append(opByLen, bucket)
		}
	}
}

// Row returns the precedence-table row for kind and whether it appears
// in the table at all (closers and terminal-literal kinds do not).
func Row(kind Kind) (int, bool) {
	row, ok := rowOf[kind]
	return row, ok
}

// Text returns the canonical operator/keyword spelling for kind, or "" if
// kind was not produced by a table entry (e.g. KindOther).
func Text(kind Kind) string {
	return kindText[kind]
}

// SeparatorOf classifies kind per the token classifier (C2). Order
// matters: an opener is always Pair even though "{" also sits at
// precedence row 0, and import/keywords are Prefix even though several
// of them also sit at row 0.
func SeparatorOf(kind Kind) Separator {
	switch kind {
	case KindLBrace, KindLParen, KindLBracket:
		return SepPair
	case KindSemicolon:
		return SepPostfix
	case KindImport, KindTry, KindCatchKw, KindFinally, KindWhile, KindDo,
		KindIn, KindOut, KindBody, KindIf, KindStaticIf, KindElse:
		return SepPrefix
	}
	if _, ok := rowOf[kind]; ok {
		return SepBinary
	}
	return SepNone
}

// isWordKind reports whether kind's canonical spelling ends in a
// word character, meaning the lexer must confirm a word boundary before
// accepting a match (so "important" does not lex as KindImport + "ant").
func isWordKind(kind Kind) bool {
	text := kindText[kind]
	if text == "" {
		return false
	}
	last := text[len(text)-1]
	return isWordByte(last)
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

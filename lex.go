package numeric

import (
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input. It is always the last token.
	tokenEOF
	// tokenOp is a run of one or more operator runes.
	tokenOp
	// tokenLit is a run of runes that are neither whitespace nor operators.
	tokenLit
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenOp:
		return "Op"
	case tokenLit:
		return "Lit"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are considered to be operators. Brackets
// count as operators.
const Operators = "+-*/()"

// runeClass returns the token kind a rune belongs to, or tokenNone for
// whitespace.
func runeClass(r rune) tokenKind {
	switch {
	case unicode.IsSpace(r):
		return tokenNone
	case strings.ContainsRune(Operators, r):
		return tokenOp
	default:
		return tokenLit
	}
}

// lex splits src into tokens. A token is a maximal run of operator runes or a
// maximal run of literal runes; whitespace separates tokens and is dropped.
// Adjacent operator runes form a single token, so "1++2" scans as "1", "++",
// "2". The result always ends with a tokenEOF.
func lex(src string) []lexToken {
	var toks []lexToken
	var cur lexToken
	var b strings.Builder
	col := 0
	flush := func() {
		if cur.kind == tokenNone {
			return
		}
		cur.text = b.String()
		toks = append(toks, cur)
		cur = lexToken{}
		b.Reset()
	}
	for _, r := range src {
		col++
		k := runeClass(r)
		if k != cur.kind {
			flush()
			cur = lexToken{kind: k, pos: col}
		}
		if k != tokenNone {
			b.WriteRune(r)
		}
	}
	flush()
	return append(toks, lexToken{kind: tokenEOF, pos: col + 1})
}

// Tokenize splits an expression into operator and literal tokens. Empty input
// and input containing only whitespace yield no tokens.
func Tokenize(text string) []string {
	toks := lex(text)
	r := make([]string, 0, len(toks)-1)
	for _, tok := range toks {
		if tok.kind == tokenEOF {
			break
		}
		r = append(r, tok.text)
	}
	return r
}

package scanner

import (
	"bytes"

	"github.com/minic-lang/minic/token"
)

// Match describes the best catalog match at an offset.
type Match struct {
	Kind      token.Kind // kind produced when the match is emitted as a token
	Length    int        // bytes matched, always >= 1
	Ignorable bool       // whitespace, newlines and comments are consumed silently
}

// A rule pairs a lexical class with its recognizer. The match func reports
// how many bytes of src the rule consumes starting at off, or 0 when the
// rule does not apply there. Ignorable rules have no kind.
type rule struct {
	kind      token.Kind
	ignorable bool
	match     func(src []byte, off int) int
}

// catalog is the fixed, priority-ordered rule table. Row order is the
// tie-break between equal-length matches; the longest match still wins
// overall, which is how ">=" beats ">" and "10.5" beats "10".
var catalog = []rule{
	{ignorable: true, match: matchLineComment},
	{ignorable: true, match: matchBlockComment},
	{kind: token.FloatLiteral, match: matchFloat},
	{kind: token.IntegerLiteral, match: matchInteger},
	{kind: token.StringLiteral, match: matchString},
	{kind: token.Identifier, match: matchIdentifier},
	{kind: token.GreaterEqual, match: matchExact(">=")},
	{kind: token.LessEqual, match: matchExact("<=")},
	{kind: token.Equal, match: matchExact("==")},
	{kind: token.NotEqual, match: matchExact("!=")},
	{kind: token.Assign, match: matchExact("=")},
	{kind: token.Plus, match: matchExact("+")},
	{kind: token.Minus, match: matchExact("-")},
	{kind: token.Star, match: matchExact("*")},
	{kind: token.Slash, match: matchExact("/")},
	{kind: token.Less, match: matchExact("<")},
	{kind: token.Greater, match: matchExact(">")},
	{kind: token.LParen, match: matchExact("(")},
	{kind: token.RParen, match: matchExact(")")},
	{kind: token.LBrace, match: matchExact("{")},
	{kind: token.RBrace, match: matchExact("}")},
	{kind: token.Semicolon, match: matchExact(";")},
	{kind: token.Comma, match: matchExact(",")},
	{ignorable: true, match: matchSpaces},
	{ignorable: true, match: matchNewline},
}

// MatchAt evaluates every catalog rule at offset and returns the longest
// match, with earlier table rows winning length ties. It is a pure function
// of (src, offset) and safe for concurrent use. The second return value is
// false when no rule matches there; the scanner then consumes one byte as
// token.Unrecognized. offset must be non-negative.
func MatchAt(src []byte, offset int) (Match, bool) {
	var best Match
	for i := range catalog {
		if n := catalog[i].match(src, offset); n > best.Length {
			best = Match{Kind: catalog[i].kind, Length: n, Ignorable: catalog[i].ignorable}
		}
	}
	return best, best.Length > 0
}

// matchExact builds a recognizer for a fixed operator or delimiter.
func matchExact(lit string) func(src []byte, off int) int {
	pat := []byte(lit)
	return func(src []byte, off int) int {
		if off >= len(src) || !bytes.HasPrefix(src[off:], pat) {
			return 0
		}
		return len(pat)
	}
}

// matchLineComment recognizes // through the end of the line. The
// terminating newline is not part of the comment.
func matchLineComment(src []byte, off int) int {
	if off+1 >= len(src) || src[off] != '/' || src[off+1] != '/' {
		return 0
	}
	end := off + 2
	for end < len(src) && src[end] != '\n' {
		end++
	}
	return end - off
}

// matchBlockComment recognizes /* through the first */, across lines.
// Block comments do not nest. With no closing */ the comment runs to the
// end of input.
func matchBlockComment(src []byte, off int) int {
	if off+1 >= len(src) || src[off] != '/' || src[off+1] != '*' {
		return 0
	}
	if i := bytes.Index(src[off+2:], []byte("*/")); i >= 0 {
		return i + 4
	}
	return len(src) - off
}

// matchFloat recognizes digits '.' digits. A trailing dot with no
// fractional digits is not a float; the integer rule then claims the
// leading digits on its own.
func matchFloat(src []byte, off int) int {
	whole := matchInteger(src, off)
	if whole == 0 {
		return 0
	}
	dot := off + whole
	if dot >= len(src) || src[dot] != '.' {
		return 0
	}
	frac := matchInteger(src, dot+1)
	if frac == 0 {
		return 0
	}
	return whole + 1 + frac
}

// matchInteger recognizes a run of decimal digits.
func matchInteger(src []byte, off int) int {
	end := off
	for end < len(src) && isDigit(src[end]) {
		end++
	}
	return end - off
}

// matchString recognizes '"' through the next '"'. The literal may span
// newlines. With no closing quote the literal runs to the end of input.
func matchString(src []byte, off int) int {
	if off >= len(src) || src[off] != '"' {
		return 0
	}
	if i := bytes.IndexByte(src[off+1:], '"'); i >= 0 {
		return i + 2
	}
	return len(src) - off
}

// matchIdentifier recognizes a letter or underscore followed by letters,
// digits and underscores. Keyword classification happens after the greedy
// match, so "ifx" stays a single identifier.
func matchIdentifier(src []byte, off int) int {
	if off >= len(src) || !isLetter(src[off]) {
		return 0
	}
	end := off + 1
	for end < len(src) && (isLetter(src[end]) || isDigit(src[end])) {
		end++
	}
	return end - off
}

// matchSpaces recognizes a run of spaces and tabs.
func matchSpaces(src []byte, off int) int {
	end := off
	for end < len(src) && (src[end] == ' ' || src[end] == '\t') {
		end++
	}
	return end - off
}

// matchNewline recognizes a single line feed.
func matchNewline(src []byte, off int) int {
	if off < len(src) && src[off] == '\n' {
		return 1
	}
	return 0
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

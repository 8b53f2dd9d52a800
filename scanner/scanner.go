// Package scanner turns minic source text into a stream of classified
// tokens. It walks the input once, left to right, consulting a fixed
// priority-ordered rule catalog at each position; whitespace and comments
// are consumed without ever reaching the output, and every other byte ends
// up in exactly one token. Scanning is total: input that matches no rule
// degrades to Unrecognized tokens rather than an error.
package scanner

import (
	"bytes"

	"github.com/minic-lang/minic/token"
)

// Scanner holds the cursor state for a single pass over one input. A
// Scanner is not safe for concurrent use, but independent Scanners may run
// in parallel: the rule catalog is immutable and shared freely.
type Scanner struct {
	src    []byte
	offset int // byte offset of the next unconsumed byte
	line   int // 1-based line of the next unconsumed byte
	column int // 1-based column of the next unconsumed byte
}

// New creates a Scanner over src, positioned at line 1, column 1.
func New(src []byte) *Scanner {
	return &Scanner{src: src, line: 1, column: 1}
}

// Next scans and returns the next token. Ignorable spans are skipped; the
// returned token carries the position of its first character. Once the
// input is exhausted Next returns an EndOfInput token with the final
// position, and keeps returning it on every further call.
func (s *Scanner) Next() token.Token {
	for s.offset < len(s.src) {
		m, ok := MatchAt(s.src, s.offset)
		if !ok {
			tok := token.Token{
				Kind:   token.Unrecognized,
				Lexeme: string(s.src[s.offset : s.offset+1]),
				Line:   s.line,
				Column: s.column,
			}
			s.advance(1)
			return tok
		}
		if m.Ignorable {
			s.advance(m.Length)
			continue
		}
		tok := token.Token{
			Kind:   m.Kind,
			Lexeme: string(s.src[s.offset : s.offset+m.Length]),
			Line:   s.line,
			Column: s.column,
		}
		if tok.Kind == token.Identifier {
			tok.Kind = token.LookupIdent(tok.Lexeme)
		}
		s.advance(m.Length)
		return tok
	}
	return token.Token{Kind: token.EndOfInput, Line: s.line, Column: s.column}
}

// Tokenize drains the scanner and returns the complete token sequence,
// terminated by exactly one EndOfInput token.
func (s *Scanner) Tokenize() []token.Token {
	var tokens []token.Token
	for {
		tok := s.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EndOfInput {
			return tokens
		}
	}
}

// advance consumes n bytes and updates the position counters. A span
// containing newlines (a bare newline, a multi-line comment or string
// literal) bumps the line count once per newline and restarts the column
// after the last one.
func (s *Scanner) advance(n int) {
	span := s.src[s.offset : s.offset+n]
	s.offset += n
	if last := bytes.LastIndexByte(span, '\n'); last >= 0 {
		s.line += bytes.Count(span, []byte{'\n'})
		s.column = n - last
	} else {
		s.column += n
	}
}

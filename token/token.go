// Package token defines the lexical token kinds of the minic language and
// the Token value produced by the scanner for each matched lexeme.
package token

import (
	"fmt"
	"maps"
	"slices"
)

// Kind is the lexical category of a token. Its value is the name rendered
// by diagnostic output.
type Kind string

// Token represents a lexical token. Lexeme is an owned copy of the matched
// source text; Line and Column are 1-based and refer to the position of the
// lexeme's first character.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
	Column int
}

// String renders the token in the diagnostic form <KIND, 'lexeme', Line:L, Col:C>.
func (t Token) String() string {
	return fmt.Sprintf("<%s, '%s', Line:%d, Col:%d>", t.Kind, t.Lexeme, t.Line, t.Column)
}

const (
	// Special tokens
	Unrecognized Kind = "UNRECOGNIZED" // a character no lexical rule matches
	EndOfInput   Kind = "EOF"          // terminal end-of-input marker

	// Identifiers and literals
	Keyword        Kind = "KEYWORD"    // if, else, while, ...
	Identifier     Kind = "IDENTIFIER" // x, count, _tmp
	IntegerLiteral Kind = "INTEGER"    // 10
	FloatLiteral   Kind = "FLOAT"      // 20.5
	StringLiteral  Kind = "STRING"     // "hello"

	// Operators
	Plus         Kind = "PLUS"          // +
	Minus        Kind = "MINUS"         // -
	Star         Kind = "STAR"          // *
	Slash        Kind = "SLASH"         // /
	Assign       Kind = "ASSIGN"        // =
	Equal        Kind = "EQUAL"         // ==
	NotEqual     Kind = "NOT_EQUAL"     // !=
	Less         Kind = "LESS"          // <
	Greater      Kind = "GREATER"       // >
	LessEqual    Kind = "LESS_EQUAL"    // <=
	GreaterEqual Kind = "GREATER_EQUAL" // >=

	// Delimiters
	LParen    Kind = "LPAREN"    // (
	RParen    Kind = "RPAREN"    // )
	LBrace    Kind = "LBRACE"    // {
	RBrace    Kind = "RBRACE"    // }
	Semicolon Kind = "SEMICOLON" // ;
	Comma     Kind = "COMMA"     // ,
)

var keywords = map[string]struct{}{
	"if":     {},
	"else":   {},
	"while":  {},
	"for":    {},
	"int":    {},
	"float":  {},
	"return": {},
	"void":   {},
	"main":   {},
	"print":  {},
	"class":  {},
	"public": {},
}

// LookupIdent checks the keyword table for an identifier lexeme.
// If the lexeme is a reserved word, it returns Keyword.
// Otherwise, it returns Identifier.
func LookupIdent(ident string) Kind {
	if _, ok := keywords[ident]; ok {
		return Keyword
	}
	return Identifier
}

// Keywords returns the reserved words of the language in sorted order.
func Keywords() []string {
	return slices.Sorted(maps.Keys(keywords))
}

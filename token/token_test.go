package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected Kind
	}{
		{"if", Keyword},
		{"else", Keyword},
		{"while", Keyword},
		{"for", Keyword},
		{"int", Keyword},
		{"float", Keyword},
		{"return", Keyword},
		{"void", Keyword},
		{"main", Keyword},
		{"print", Keyword},
		{"class", Keyword},
		{"public", Keyword},
		{"foobar", Identifier},
		{"my_var", Identifier},
		{"r2d2", Identifier},
		{"ifx", Identifier},
		{"returns", Identifier},
		{"If", Identifier},
		{"INT", Identifier},
		{"", Identifier},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			actual := LookupIdent(tt.input)
			require.Equal(t, tt.expected, actual)
		})
	}
}

func TestKeywords(t *testing.T) {
	words := Keywords()
	require.Len(t, words, 12)
	require.IsIncreasing(t, words)
	for _, w := range words {
		require.Equal(t, Keyword, LookupIdent(w))
	}

	// The returned slice is a copy; callers cannot poison the table.
	words[0] = "not_a_keyword"
	require.Equal(t, Identifier, LookupIdent("not_a_keyword"))
	require.NotEqual(t, words[0], Keywords()[0])
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		name     string
		tok      Token
		expected string
	}{
		{
			name:     "keyword",
			tok:      Token{Kind: Keyword, Lexeme: "int", Line: 1, Column: 1},
			expected: "<KEYWORD, 'int', Line:1, Col:1>",
		},
		{
			name:     "operator",
			tok:      Token{Kind: GreaterEqual, Lexeme: ">=", Line: 3, Column: 7},
			expected: "<GREATER_EQUAL, '>=', Line:3, Col:7>",
		},
		{
			name:     "end of input has empty lexeme",
			tok:      Token{Kind: EndOfInput, Line: 2, Column: 5},
			expected: "<EOF, '', Line:2, Col:5>",
		},
		{
			name:     "unrecognized",
			tok:      Token{Kind: Unrecognized, Lexeme: "@", Line: 1, Column: 4},
			expected: "<UNRECOGNIZED, '@', Line:1, Col:4>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.tok.String())
		})
	}
}

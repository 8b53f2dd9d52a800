package minic_test

import (
	"testing"

	"github.com/minic-lang/minic"
	"github.com/minic-lang/minic/token"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tokens := minic.Tokenize([]byte("int x = 10;"))

	expected := []token.Token{
		{Kind: token.Keyword, Lexeme: "int", Line: 1, Column: 1},
		{Kind: token.Identifier, Lexeme: "x", Line: 1, Column: 5},
		{Kind: token.Assign, Lexeme: "=", Line: 1, Column: 7},
		{Kind: token.IntegerLiteral, Lexeme: "10", Line: 1, Column: 9},
		{Kind: token.Semicolon, Lexeme: ";", Line: 1, Column: 11},
		{Kind: token.EndOfInput, Line: 1, Column: 12},
	}
	require.Equal(t, expected, tokens)
}

func TestTokenizeNeverEmpty(t *testing.T) {
	for _, src := range []string{"", " ", "\n", "// gone", "/* gone */"} {
		t.Run(src, func(t *testing.T) {
			tokens := minic.Tokenize([]byte(src))
			require.Len(t, tokens, 1)
			require.Equal(t, token.EndOfInput, tokens[0].Kind)
		})
	}
}

func TestTokenizeArbitraryBytes(t *testing.T) {
	// Input that is nothing like the language must still terminate
	// with every byte accounted for as some token.
	src := []byte{0x00, 0xff, 0xfe, '@', '\n', 0x01}
	tokens := minic.Tokenize(src)

	require.Equal(t, token.EndOfInput, tokens[len(tokens)-1].Kind)
	for _, tok := range tokens[:len(tokens)-1] {
		require.Equal(t, token.Unrecognized, tok.Kind)
		require.Len(t, tok.Lexeme, 1)
	}
}

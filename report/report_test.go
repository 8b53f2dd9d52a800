package report_test

import (
	"strings"
	"testing"

	"github.com/minic-lang/minic/report"
	"github.com/minic-lang/minic/token"
	"github.com/stretchr/testify/require"
)

var sampleTokens = []token.Token{
	{Kind: token.Keyword, Lexeme: "int", Line: 1, Column: 1},
	{Kind: token.Identifier, Lexeme: "x", Line: 1, Column: 5},
	{Kind: token.Assign, Lexeme: "=", Line: 1, Column: 7},
	{Kind: token.IntegerLiteral, Lexeme: "10", Line: 1, Column: 9},
	{Kind: token.Semicolon, Lexeme: ";", Line: 1, Column: 11},
	{Kind: token.EndOfInput, Line: 1, Column: 12},
}

func sp(n int) string { return strings.Repeat(" ", n) }

func TestTable(t *testing.T) {
	banner := strings.Repeat("=", 70)
	dashes := strings.Repeat("-", 70)

	expected := strings.Join([]string{
		banner,
		"LEXICAL ANALYSIS RESULTS",
		banner,
		"Token Type" + sp(11) + "Lexeme" + sp(15) + "Line" + sp(5) + "Column",
		dashes,
		"KEYWORD" + sp(14) + "int" + sp(18) + "1" + sp(8) + "1",
		"IDENTIFIER" + sp(11) + "x" + sp(20) + "1" + sp(8) + "5",
		"ASSIGN" + sp(15) + "=" + sp(20) + "1" + sp(8) + "7",
		"INTEGER" + sp(14) + "10" + sp(19) + "1" + sp(8) + "9",
		"SEMICOLON" + sp(12) + ";" + sp(20) + "1" + sp(8) + "11",
		banner,
		"Total Tokens: 5",
		banner,
	}, "\n") + "\n"

	require.Equal(t, expected, report.Table(sampleTokens))
}

func TestTableEmpty(t *testing.T) {
	got := report.Table([]token.Token{{Kind: token.EndOfInput, Line: 1, Column: 1}})

	require.Contains(t, got, "LEXICAL ANALYSIS RESULTS")
	require.Contains(t, got, "Total Tokens: 0")
	require.NotContains(t, got, "EOF")
}

func TestTableNoTrailingSpaces(t *testing.T) {
	for _, line := range strings.Split(report.Table(sampleTokens), "\n") {
		require.Equal(t, strings.TrimRight(line, " "), line)
	}
}

func TestList(t *testing.T) {
	expected := "<KEYWORD, 'int', Line:1, Col:1>\n" +
		"<IDENTIFIER, 'x', Line:1, Col:5>\n" +
		"<ASSIGN, '=', Line:1, Col:7>\n" +
		"<INTEGER, '10', Line:1, Col:9>\n" +
		"<SEMICOLON, ';', Line:1, Col:11>\n"

	require.Equal(t, expected, report.List(sampleTokens))
}

func TestListEmpty(t *testing.T) {
	require.Empty(t, report.List(nil))
	require.Empty(t, report.List([]token.Token{{Kind: token.EndOfInput, Line: 1, Column: 1}}))
}

func TestCount(t *testing.T) {
	require.Equal(t, 5, report.Count(sampleTokens))
	require.Equal(t, 0, report.Count(nil))
	require.Equal(t, 0, report.Count([]token.Token{{Kind: token.EndOfInput, Line: 1, Column: 1}}))
}

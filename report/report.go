// Package report renders token streams for human consumption.
//
// All functions are pure: they format the tokens they are given and
// never print, log, or mutate anything. The terminal end-of-input
// marker is bookkeeping rather than source text, so it is excluded
// from every rendering and from Count.
package report

import (
	"fmt"
	"strings"

	"github.com/minic-lang/minic/token"
)

const bannerWidth = 70

// Table renders tokens as a fixed-width table with a banner, a column
// header, and a trailing total.
func Table(tokens []token.Token) string {
	var sb strings.Builder

	banner := strings.Repeat("=", bannerWidth)
	sb.WriteString(banner + "\n")
	sb.WriteString("LEXICAL ANALYSIS RESULTS\n")
	sb.WriteString(banner + "\n")
	header := fmt.Sprintf("%-20s %-20s %-8s %-8s", "Token Type", "Lexeme", "Line", "Column")
	sb.WriteString(strings.TrimRight(header, " "))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", bannerWidth) + "\n")

	for _, tok := range tokens {
		if tok.Kind == token.EndOfInput {
			continue
		}
		row := fmt.Sprintf("%-20s %-20s %-8d %-8d", tok.Kind, tok.Lexeme, tok.Line, tok.Column)
		sb.WriteString(strings.TrimRight(row, " "))
		sb.WriteString("\n")
	}

	sb.WriteString(banner + "\n")
	sb.WriteString(fmt.Sprintf("Total Tokens: %d\n", Count(tokens)))
	sb.WriteString(banner + "\n")

	return sb.String()
}

// List renders one token per line in the token's own String format.
func List(tokens []token.Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		if tok.Kind == token.EndOfInput {
			continue
		}
		sb.WriteString(tok.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// Count reports how many tokens carry source text.
func Count(tokens []token.Token) int {
	var n int
	for _, tok := range tokens {
		if tok.Kind != token.EndOfInput {
			n++
		}
	}
	return n
}

package cmd

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/minic-lang/minic/token"
)

// Color palette for token classes.
var (
	colorKeyword      = lipgloss.Color("#8B5CF6") // Violet
	colorIdentifier   = lipgloss.Color("#F8FAFC") // Slate 50
	colorNumber       = lipgloss.Color("#06B6D4") // Cyan
	colorString       = lipgloss.Color("#10B981") // Emerald
	colorOperator     = lipgloss.Color("#F59E0B") // Amber
	colorDelimiter    = lipgloss.Color("#94A3B8") // Slate 400
	colorUnrecognized = lipgloss.Color("#EF4444") // Red
)

var (
	keywordStyle      = lipgloss.NewStyle().Foreground(colorKeyword).Bold(true)
	identifierStyle   = lipgloss.NewStyle().Foreground(colorIdentifier)
	numberStyle       = lipgloss.NewStyle().Foreground(colorNumber)
	stringStyle       = lipgloss.NewStyle().Foreground(colorString)
	operatorStyle     = lipgloss.NewStyle().Foreground(colorOperator)
	delimiterStyle    = lipgloss.NewStyle().Foreground(colorDelimiter)
	unrecognizedStyle = lipgloss.NewStyle().Foreground(colorUnrecognized).Bold(true)
)

// styleFor maps a token kind to its display style.
func styleFor(kind token.Kind) lipgloss.Style {
	switch kind {
	case token.Keyword:
		return keywordStyle
	case token.Identifier:
		return identifierStyle
	case token.IntegerLiteral, token.FloatLiteral:
		return numberStyle
	case token.StringLiteral:
		return stringStyle
	case token.LParen, token.RParen, token.LBrace, token.RBrace,
		token.Semicolon, token.Comma:
		return delimiterStyle
	case token.Unrecognized:
		return unrecognizedStyle
	default:
		return operatorStyle
	}
}

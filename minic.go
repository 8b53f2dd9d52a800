package minic

import (
	"github.com/minic-lang/minic/scanner"
	"github.com/minic-lang/minic/token"
)

// Tokenize scans src and returns its complete token stream. The result
// always holds at least one element: the terminal end-of-input token.
func Tokenize(src []byte) []token.Token {
	return scanner.New(src).Tokenize()
}

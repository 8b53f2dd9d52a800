/*
Package minic provides lexical analysis for a small C-like teaching
language. It turns source text into a flat stream of classified tokens,
each carrying its lexeme and the 1-based line and column where it
begins.

The package offers two workflows depending on the use case:

1. One-Shot Tokenization

For the common task of scanning a complete source file, Tokenize
returns every token in the input at once. The slice always ends with a
single end-of-input token marking the position just past the last
character.

	src := []byte(`int x = 10;`)

	for _, tok := range minic.Tokenize(src) {
		fmt.Println(tok)
	}
	// <KEYWORD, 'int', Line:1, Col:1>
	// <IDENTIFIER, 'x', Line:1, Col:5>
	// <ASSIGN, '=', Line:1, Col:7>
	// <INTEGER, '10', Line:1, Col:9>
	// <SEMICOLON, ';', Line:1, Col:11>
	// <EOF, '', Line:1, Col:12>

2. Streaming

Consumers that want tokens on demand, such as a parser, construct a
scanner.Scanner and pull tokens one at a time:

	s := scanner.New(src)
	for {
		tok := s.Next()
		if tok.Kind == token.EndOfInput {
			break
		}
		// process tok
	}

Scanning never fails: characters that match no rule of the language are
returned as tokens of kind token.Unrecognized rather than reported as
errors, so downstream tooling decides how strict to be. Comments and
whitespace are consumed for position tracking but never returned.
*/
package minic

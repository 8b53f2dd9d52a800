package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/minic-lang/minic"
	"github.com/minic-lang/minic/internal/logging"
	"github.com/minic-lang/minic/report"
	"github.com/minic-lang/minic/token"
	"github.com/spf13/cobra"
)

var lexFormat string

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a source file and print its token stream",
	Long: `Tokenize reads mini-C source from a file, or from stdin when no file
is given or the file is "-", and prints every token.

Formats:
  table  - the tabular listing with a trailing token count (default)
  list   - one <KIND, 'lexeme', Line:L, Col:C> entry per line
  json   - the full stream for tool consumption

The human formats omit the terminal end-of-input marker; json keeps it
so consumers see where the input ended.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	lexCmd.Flags().StringVarP(&lexFormat, "format", "f", "", "output format: table, list or json")
	rootCmd.AddCommand(lexCmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if lexFormat != "" {
		cfg.Output.Format = lexFormat
	}

	logger, closeLog, err := logging.New(cmd.ErrOrStderr(), logging.Options{
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	if err != nil {
		return err
	}
	defer closeLog()

	name, src, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	start := time.Now()
	tokens := minic.Tokenize(src)
	logger.Debug("scan complete",
		"source", name,
		"bytes", len(src),
		"tokens", report.Count(tokens),
		"elapsed", time.Since(start),
	)

	out := cmd.OutOrStdout()
	switch cfg.Output.Format {
	case "table":
		fmt.Fprint(out, report.Table(tokens))
	case "list":
		writeList(out, tokens, !cfg.Output.NoColor)
	case "json":
		return writeJSON(out, tokens)
	default:
		return fmt.Errorf("unknown output format %q", cfg.Output.Format)
	}
	return nil
}

func readSource(cmd *cobra.Command, args []string) (string, []byte, error) {
	if len(args) == 0 || args[0] == "-" {
		src, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", nil, fmt.Errorf("read stdin: %w", err)
		}
		return "stdin", src, nil
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		return "", nil, fmt.Errorf("read source: %w", err)
	}
	return args[0], src, nil
}

func writeList(w io.Writer, tokens []token.Token, colored bool) {
	if !colored {
		fmt.Fprint(w, report.List(tokens))
		return
	}
	for _, tok := range tokens {
		if tok.Kind == token.EndOfInput {
			continue
		}
		fmt.Fprintln(w, styleFor(tok.Kind).Render(tok.String()))
	}
}

// tokenJSON keeps the wire shape independent of the token type.
type tokenJSON struct {
	Kind   string `json:"kind"`
	Lexeme string `json:"lexeme"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

func writeJSON(w io.Writer, tokens []token.Token) error {
	out := make([]tokenJSON, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tokenJSON{
			Kind:   string(tok.Kind),
			Lexeme: tok.Lexeme,
			Line:   tok.Line,
			Column: tok.Column,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

package cmd

import (
	"github.com/minic-lang/minic/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	noColor  bool
	logLevel string
	logFile  string
)

var rootCmd = &cobra.Command{
	Use:   "minic",
	Short: "minic - lexical analyzer for a mini-C teaching language",
	Long: `minic tokenizes source written in a small C-like teaching language
and reports every token with its kind, lexeme, line and column.

Commands:
  lex       - tokenize a file or stdin
  keywords  - list the reserved words
  version   - show version information`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./"+config.FileName+", then $HOME/"+config.FileName+")")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "minimum log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also write JSON log records to this file")
}

// loadConfig resolves the configuration file and layers the global
// flags on top: an explicit flag always beats a file value.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.Discover()
	}
	if err != nil {
		return nil, err
	}

	if rootCmd.PersistentFlags().Changed("no-color") {
		cfg.Output.NoColor = noColor
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}
	return cfg, nil
}

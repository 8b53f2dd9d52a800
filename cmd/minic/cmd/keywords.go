package cmd

import (
	"fmt"

	"github.com/minic-lang/minic/token"
	"github.com/spf13/cobra"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "List the reserved words of the language",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, kw := range token.Keywords() {
			if cfg.Output.NoColor {
				fmt.Fprintln(out, kw)
			} else {
				fmt.Fprintln(out, keywordStyle.Render(kw))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keywordsCmd)
}

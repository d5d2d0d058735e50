package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Inspect the effective word list",
}

var wordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List words in match-priority order (longest first)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		words, err := resolveWords(cfg)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		r, err := newRedactor(cfg, words)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		if len(r.Words()) == 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), "No words configured.")
			return nil
		}
		for _, w := range r.Words() {
			fmt.Fprintln(cmd.OutOrStdout(), w)
		}
		return nil
	},
}

func init() {
	wordsCmd.AddCommand(wordsListCmd)
	addWordFlags(wordsListCmd)
}

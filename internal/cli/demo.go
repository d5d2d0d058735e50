package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dshills/censor/internal/wordlist"
	"github.com/spf13/cobra"
)

var flagNoPrompt bool

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Redact a sample sentence, then a line typed on stdin",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		r, err := newRedactor(cfg, wordlist.Sample())
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		out := cmd.OutOrStdout()
		rule := strings.Repeat("-", 50)
		text := wordlist.SampleText()

		redacted, err := r.Redact(text)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		fmt.Fprintln(out, rule)
		fmt.Fprintln(out, "ORIGINAL TEXT:")
		fmt.Fprintln(out, text)
		fmt.Fprintln(out, rule)
		fmt.Fprintln(out, "REDACTED TEXT:")
		fmt.Fprintln(out, redacted)
		fmt.Fprintln(out, rule)

		if flagNoPrompt {
			return nil
		}

		fmt.Fprintln(out, "\n--- Quick test ---")
		fmt.Fprint(out, "Type a sentence to test: ")
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error reading stdin: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			fmt.Fprintln(out)
			return nil
		}

		result, err := r.Redact(line)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		fmt.Fprintf(out, "\nResult: %s\n", result)
		return nil
	},
}

func init() {
	demoCmd.Flags().BoolVar(&flagNoPrompt, "no-prompt", false, "Skip the interactive step")
}

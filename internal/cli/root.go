package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes
const (
	ExitSuccess      = 0
	ExitMatches      = 1
	ExitUsageError   = 2
	ExitRuntimeError = 4
)

var flagVerbose bool

var logger = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "censor",
	Short: "Mask listed words in text",
	Long:  "Censor replaces whole-word, case-insensitive occurrences of listed words with asterisks of the same length.",
}

// Run executes the root command and returns an exit code.
func Run() int {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print censor version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "censor version %s\n", version)
	},
}

// setupLogger points the logger at the command's stderr and applies the
// configured level. --verbose always wins.
func setupLogger(cmd *cobra.Command, level string) {
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	lvl, err := logrus.ParseLevel(level)
	switch {
	case flagVerbose:
		lvl = logrus.DebugLevel
	case err != nil:
		lvl = logrus.WarnLevel
	}
	logger.SetLevel(lvl)
	if err != nil {
		logger.WithField("logLevel", level).Warn("unknown log level")
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging on stderr")

	rootCmd.AddCommand(redactCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

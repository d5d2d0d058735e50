package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dshills/censor/internal/cache"
	"github.com/dshills/censor/internal/config"
	"github.com/dshills/censor/internal/output"
	"github.com/dshills/censor/internal/redact"
	"github.com/dshills/censor/internal/wordlist"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Shared word flags
var (
	flagWords     string
	flagWordsFile string
)

// Redact flags
var (
	flagIn           string
	flagFormat       string
	flagOut          string
	flagFailOnMatch  bool
	flagMatchTimeout time.Duration
	flagNoCache      bool
)

func addWordFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagWords, "words", "", "Words to redact (comma-separated)")
	cmd.Flags().StringVar(&flagWordsFile, "words-file", "", "Word file (.txt, .json, .yaml)")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagWords != "" {
		m["words"] = flagWords
	}
	if flagWordsFile != "" {
		m["wordsFile"] = flagWordsFile
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagMatchTimeout > 0 {
		m["matchTimeoutMs"] = strconv.FormatInt(max(1, flagMatchTimeout.Milliseconds()), 10)
	}
	if flagNoCache {
		m["cache.enabled"] = "false"
	}
	return m
}

// loadConfig merges configuration and prepares the logger for cmd.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		return config.Config{}, err
	}
	setupLogger(cmd, cfg.LogLevel)
	return cfg, nil
}

// resolveWords combines the configured words with the word file, if any.
func resolveWords(cfg config.Config) ([]string, error) {
	fileWords, err := wordlist.Load(cfg.WordsFile)
	if err != nil {
		return nil, err
	}
	if cfg.WordsFile != "" {
		logger.WithFields(logrus.Fields{"file": cfg.WordsFile, "count": len(fileWords)}).Debug("loaded word file")
	}
	return wordlist.Merge(cfg.Words, fileWords), nil
}

var patterns *cache.Patterns

// newRedactor compiles words using the process pattern cache.
func newRedactor(cfg config.Config, words []string) (*redact.Redactor, error) {
	if patterns == nil {
		c, err := cache.New(cfg.Cache.Enabled, cfg.Cache.Size)
		if err != nil {
			return nil, err
		}
		patterns = c
	}
	r, err := redact.New(words,
		redact.WithCache(patterns),
		redact.WithMatchTimeout(cfg.MatchTimeout()),
	)
	if err != nil {
		return nil, err
	}
	stats := patterns.GetStats()
	logger.WithFields(logrus.Fields{
		"words":   len(r.Words()),
		"entries": stats.Entries,
		"hits":    stats.Hits,
		"misses":  stats.Misses,
	}).Debug("pattern ready")
	return r, nil
}

// readInput returns the text to redact and a name for where it came from.
func readInput(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), "args", nil
	}
	if flagIn != "" && flagIn != "-" {
		data, err := os.ReadFile(flagIn)
		if err != nil {
			return "", "", fmt.Errorf("reading input file: %w", err)
		}
		return string(data), flagIn, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), "stdin", nil
}

var redactCmd = &cobra.Command{
	Use:   "redact [text...]",
	Short: "Redact listed words from text",
	Long: "Redact listed words from the text given as arguments, from --in, or from stdin.\n" +
		"Each match is replaced by one asterisk per character.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if _, err := output.GetWriter(cfg.Format); err != nil {
			return err
		}
		runRedact(cmd, args, cfg)
		return nil
	},
}

func runRedact(cmd *cobra.Command, args []string, cfg config.Config) {
	stderr := cmd.ErrOrStderr()

	words, err := resolveWords(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}
	if len(words) == 0 {
		logger.Warn("no words configured; text is passed through unchanged")
	}

	text, source, err := readInput(cmd, args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	r, err := newRedactor(cfg, words)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	start := time.Now()
	res, err := r.Apply(text)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}
	logger.WithFields(logrus.Fields{
		"source":     source,
		"redactions": res.Count(),
		"elapsed":    time.Since(start),
	}).Debug("redacted input")

	report := output.NewReport(version, source, len(r.Words()), text, res)
	if err := output.WriteReport(report, cfg.Format, flagOut, cmd.OutOrStdout()); err != nil {
		fmt.Fprintf(stderr, "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	if flagFailOnMatch && res.Count() > 0 {
		exitCode = ExitMatches
	}
}

func init() {
	addWordFlags(redactCmd)
	redactCmd.Flags().StringVar(&flagIn, "in", "", "Input file path (default: stdin)")
	redactCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json, markdown, sarif)")
	redactCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	redactCmd.Flags().BoolVar(&flagFailOnMatch, "fail-on-match", false, "Exit with code 1 when anything was redacted")
	redactCmd.Flags().DurationVar(&flagMatchTimeout, "match-timeout", 0, "Abort matching after this long (e.g. 500ms)")
	redactCmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "Disable the compiled pattern cache")
}

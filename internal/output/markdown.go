package output

import (
	"io"
	"strings"
)

// MarkdownWriter outputs a summary table and the redacted text.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, report *Report) error {
	ew := &errWriter{w: w}

	ew.print("## Censor Report\n\n")
	ew.print("| Source | Words | Redactions |\n")
	ew.print("|--------|-------|------------|\n")
	ew.printf("| `%s` | %d | %d |\n\n", report.Source, report.Words, report.Redactions)

	if report.Redactions == 0 {
		ew.print("No listed words found. :white_check_mark:\n\n")
	}

	text := report.Result.Text
	fence := codeFence(text)
	ew.printf("%s\n%s", fence, text)
	if !strings.HasSuffix(text, "\n") {
		ew.print("\n")
	}
	ew.printf("%s\n", fence)

	return ew.err
}

// codeFence returns a backtick fence longer than any backtick run in s.
func codeFence(s string) string {
	longest, run := 0, 0
	for _, c := range s {
		if c == '`' {
			run++
			longest = max(longest, run)
			continue
		}
		run = 0
	}
	return strings.Repeat("`", max(3, longest+1))
}

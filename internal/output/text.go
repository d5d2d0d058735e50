package output

import (
	"io"
	"strings"
)

// TextWriter outputs the redacted text, ending with a newline.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, report *Report) error {
	ew := &errWriter{w: w}
	text := report.Result.Text
	ew.print(text)
	if !strings.HasSuffix(text, "\n") {
		ew.print("\n")
	}
	return ew.err
}

package output

import (
	"fmt"
	"io"
	"os"

	"github.com/dshills/censor/internal/redact"
)

// Formats lists the supported output formats.
var Formats = []string{"text", "json", "markdown", "sarif"}

// Report is the outcome of one redaction run.
type Report struct {
	Tool       string        `json:"tool"`
	Version    string        `json:"version"`
	Source     string        `json:"source"`
	Words      int           `json:"words"`
	Redactions int           `json:"redactions"`
	Result     redact.Result `json:"result"`

	// Input is the original text. It is never written out; the sarif writer
	// uses it to place span ends.
	Input string `json:"-"`
}

// NewReport builds a Report for res, produced from input by a word list of
// the given size.
func NewReport(version, source string, words int, input string, res redact.Result) *Report {
	return &Report{
		Tool:       "censor",
		Version:    version,
		Source:     source,
		Words:      words,
		Redactions: res.Count(),
		Result:     res,
		Input:      input,
	}
}

// Writer writes a report in a specific format.
type Writer interface {
	Write(w io.Writer, report *Report) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "text", "":
		return &TextWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	case "markdown", "md":
		return &MarkdownWriter{}, nil
	case "sarif":
		return &SARIFWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteReport writes the report to outPath, or to stdout when outPath is empty.
func WriteReport(report *Report, format, outPath string, stdout io.Writer) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}

	var w io.Writer
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	} else {
		w = stdout
	}

	return writer.Write(w, report)
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) print(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}

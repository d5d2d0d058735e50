package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dshills/censor/internal/redact"
)

const sarifRuleID = "censor/listed-word"

// SARIFWriter outputs redacted spans in SARIF v2.1.0 format.
type SARIFWriter struct{}

func (s *SARIFWriter) Write(w io.Writer, report *Report) error {
	sarif := buildSARIF(report)
	data, err := json.MarshalIndent(sarif, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling SARIF: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing SARIF: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}

// SARIF schema types (v2.1.0)

type sarifLog struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri"`
	Rules          []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	ShortDescription sarifMessage       `json:"shortDescription"`
	DefaultConfig    sarifDefaultConfig `json:"defaultConfiguration"`
}

type sarifDefaultConfig struct {
	Level string `json:"level"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations,omitempty"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           sarifRegion           `json:"region"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

// sarifRegion columns are 1-based and endColumn is exclusive.
type sarifRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn"`
	EndLine     int `json:"endLine"`
	EndColumn   int `json:"endColumn"`
}

func buildSARIF(report *Report) sarifLog {
	input := []rune(report.Input)
	results := make([]sarifResult, 0, len(report.Result.Spans))

	for _, span := range report.Result.Spans {
		endLine, endColumn := spanEnd(input, span)
		results = append(results, sarifResult{
			RuleID:  sarifRuleID,
			Level:   "warning",
			Message: sarifMessage{Text: fmt.Sprintf("Listed word redacted (%d characters)", span.Length)},
			Locations: []sarifLocation{{
				PhysicalLocation: sarifPhysicalLocation{
					ArtifactLocation: sarifArtifactLocation{URI: report.Source},
					Region: sarifRegion{
						StartLine:   span.Line,
						StartColumn: span.Column,
						EndLine:     endLine,
						EndColumn:   endColumn,
					},
				},
			}},
		})
	}

	return sarifLog{
		Version: "2.1.0",
		Schema:  "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/main/sarif-2.1/schema/sarif-schema-2.1.0.json",
		Runs: []sarifRun{
			{
				Tool: sarifTool{
					Driver: sarifDriver{
						Name:           "censor",
						Version:        report.Version,
						InformationURI: "https://github.com/dshills/censor",
						Rules: []sarifRule{{
							ID:               sarifRuleID,
							Name:             "ListedWord",
							ShortDescription: sarifMessage{Text: "Text contains a word from the redaction list"},
							DefaultConfig:    sarifDefaultConfig{Level: "warning"},
						}},
					},
				},
				Results: results,
			},
		},
	}
}

// spanEnd returns the line and exclusive column just past span. Words may
// contain newlines, so the end is found by walking the matched runes.
func spanEnd(input []rune, span redact.Span) (int, int) {
	line, column := span.Line, span.Column
	end := min(span.Offset+span.Length, len(input))
	for i := span.Offset; i < end; i++ {
		if input[i] == '\n' {
			line++
			column = 1
			continue
		}
		column++
	}
	return line, column
}

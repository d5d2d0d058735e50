// Package output formats redaction reports for display or machine consumption.
//
// Four formats are supported:
//   - text     — the redacted text alone (default)
//   - json     — full structured JSON report with every redacted span
//   - markdown — summary table followed by the redacted text in a code fence
//   - sarif    — SARIF v2.1.0, one result per redacted span, for CI upload
//
// Use [GetWriter] to obtain a [Writer] for a given format string, then call
// [Writer.Write] with an [io.Writer] and a [*Report]. [WriteReport] handles
// destination selection.
package output

package redact

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"github.com/dshills/censor/internal/cache"
)

// Mask is the character written once per redacted character.
const Mask = "*"

var defaultCache *cache.Patterns

func init() {
	var err error
	defaultCache, err = cache.New(true, cache.DefaultSize)
	if err != nil {
		panic(fmt.Sprintf("creating default pattern cache: %v", err))
	}
}

// Redact replaces every whole-word, case-insensitive occurrence of words in
// text with asterisks of the same length. An empty word list returns text
// unchanged.
//
// Compiled patterns are shared through a process-wide cache. Redact panics
// only if the matcher reports an error, which cannot happen without a match
// timeout.
func Redact(text string, words []string) string {
	if len(words) == 0 || text == "" {
		return text
	}
	r, err := New(words, WithCache(defaultCache))
	if err != nil {
		panic(fmt.Sprintf("redact: %v", err))
	}
	out, err := r.Redact(text)
	if err != nil {
		panic(fmt.Sprintf("redact: %v", err))
	}
	return out
}

// Span is one redacted occurrence. Offset and Length count characters
// (runes); Line and Column are 1-based positions in the input.
type Span struct {
	Offset int `json:"offset"`
	Length int `json:"length"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Result is the outcome of redacting one text.
type Result struct {
	Text  string `json:"text"`
	Spans []Span `json:"spans"`
}

// Count returns the number of redacted occurrences.
func (r Result) Count() int {
	return len(r.Spans)
}

// Option configures a Redactor.
type Option func(*options)

type options struct {
	timeout time.Duration
	cache   *cache.Patterns
}

// WithMatchTimeout bounds the time spent matching a single input. Zero
// disables the bound.
func WithMatchTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithCache reuses compiled patterns from c.
func WithCache(c *cache.Patterns) Option {
	return func(o *options) {
		o.cache = c
	}
}

// Redactor is a compiled matcher for one word list.
type Redactor struct {
	words   []string
	pattern string
	re      *regexp2.Regexp
}

// New compiles a Redactor for words. Empty words are ignored and repeated
// words are collapsed; neither changes what gets redacted.
func New(words []string, opts ...Option) (*Redactor, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	prepared := prepareWords(words)
	r := &Redactor{words: prepared}
	if len(prepared) == 0 {
		return r, nil
	}
	r.pattern = buildPattern(prepared)

	key := cache.BuildKey(prepared, fmt.Sprintf("timeout=%d", o.timeout))
	if o.cache != nil {
		if re, ok := o.cache.Get(key); ok {
			r.re = re
			return r, nil
		}
	}

	re, err := regexp2.Compile(r.pattern, regexp2.IgnoreCase)
	if err != nil {
		return nil, fmt.Errorf("compiling word pattern: %w", err)
	}
	if o.timeout > 0 {
		re.MatchTimeout = o.timeout
	}
	if o.cache != nil {
		o.cache.Add(key, re)
	}
	r.re = re
	return r, nil
}

// Words returns the effective words in match-priority order.
func (r *Redactor) Words() []string {
	return slices.Clone(r.words)
}

// Pattern returns the alternation pattern used for matching, or "" when the
// word list is empty.
func (r *Redactor) Pattern() string {
	return r.pattern
}

// Redact returns text with every listed word masked. The error is non-nil
// only when a match timeout was configured and exceeded.
func (r *Redactor) Redact(text string) (string, error) {
	res, err := r.Apply(text)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// Apply redacts text and reports where each redaction happened.
func (r *Redactor) Apply(text string) (Result, error) {
	if r.re == nil || text == "" {
		return Result{Text: text}, nil
	}

	offsets := runeOffsets(text)

	var b strings.Builder
	b.Grow(len(text))
	var spans []Span
	pos := position{line: 1, column: 1}
	last := 0

	m, err := r.re.FindStringMatch(text)
	for m != nil && err == nil {
		start, end := offsets[m.Index], offsets[m.Index+m.Length]
		b.WriteString(text[offsets[last]:start])
		b.WriteString(strings.Repeat(Mask, m.Length))

		pos.advance(text[offsets[last]:start])
		spans = append(spans, Span{
			Offset: m.Index,
			Length: m.Length,
			Line:   pos.line,
			Column: pos.column,
		})
		pos.advance(text[start:end])

		last = m.Index + m.Length
		m, err = r.re.FindNextMatch(m)
	}
	if err != nil {
		return Result{}, fmt.Errorf("matching words: %w", err)
	}
	b.WriteString(text[offsets[last]:])

	return Result{Text: b.String(), Spans: spans}, nil
}

// prepareWords drops empty and repeated words and orders the rest longest
// first. The sort is stable so equal-length words keep their input order.
func prepareWords(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	slices.SortStableFunc(out, func(a, b string) int {
		return cmp.Compare(utf8.RuneCountInString(b), utf8.RuneCountInString(a))
	})
	return out
}

func buildPattern(words []string) string {
	escaped := make([]string, len(words))
	for i, w := range words {
		escaped[i] = regexp2.Escape(w)
	}
	return `\b(?:` + strings.Join(escaped, "|") + `)\b`
}

// runeOffsets maps each rune index of s to its byte offset, plus a final
// entry for len(s). Invalid bytes count as one rune each, which is how the
// matcher indexes them.
func runeOffsets(s string) []int {
	offsets := make([]int, 0, utf8.RuneCountInString(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	return append(offsets, len(s))
}

type position struct {
	line   int
	column int
}

func (p *position) advance(s string) {
	for _, c := range s {
		if c == '\n' {
			p.line++
			p.column = 1
			continue
		}
		p.column++
	}
}

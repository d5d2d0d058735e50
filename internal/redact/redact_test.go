package redact

import (
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/dshills/censor/internal/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedact(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		words []string
		want  string
	}{
		{"empty word list", "nothing to hide", nil, "nothing to hide"},
		{"empty text", "", []string{"x"}, ""},
		{"case insensitive", "BAD word", []string{"bad"}, "*** word"},
		{"mixed case", "Bad bAd baD", []string{"BAD"}, "*** *** ***"},
		{"no partial match", "category", []string{"cat"}, "category"},
		{"word inside punctuation", "a cat, a dog.", []string{"cat", "dog"}, "a ***, a ***."},
		{"multiple occurrences", "bad bad", []string{"bad"}, "*** ***"},
		{"longest first", "ruinzinho", []string{"ruim", "ruinzinho"}, "*********"},
		{"shorter word still matches alone", "ruim ruinzinho", []string{"ruim", "ruinzinho"}, "**** *********"},
		{"prefix word listed first", "foobar foo", []string{"foo", "foobar"}, "****** ***"},
		{"literal dot", "a.b axb", []string{"a.b"}, "*** axb"},
		{"literal alternation", "a b a|b", []string{"a|b"}, "a b ***"},
		{"literal plus", "1+1 = 2", []string{"1+1"}, "*** = 2"},
		{"unbalanced bracket", "x [ y", []string{"[", "y"}, "x [ *"},
		{"word with space", "say hello world now", []string{"hello world"}, "say *********** now"},
		{"accented word", "dados sensíveis aqui", []string{"sensíveis"}, "dados ********* aqui"},
		{"accented uppercase", "DADOS SENSÍVEIS", []string{"sensíveis"}, "DADOS *********"},
		{"accent at word end", "um café.", []string{"café"}, "um ****."},
		{"accent inside longer word", "cafés", []string{"café"}, "cafés"},
		{"underscore is a word character", "bad_word bad", []string{"bad"}, "bad_word ***"},
		{"digits are word characters", "bad1 bad", []string{"bad"}, "bad1 ***"},
		{"empty word ignored", "keep me", []string{""}, "keep me"},
		{"multiline", "bad\nbad", []string{"bad"}, "***\n***"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Redact(tt.text, tt.words)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, utf8.RuneCountInString(tt.text), utf8.RuneCountInString(got))
		})
	}
}

func TestRedact_SampleSentence(t *testing.T) {
	text := "Este é um texto com palavras sensíveis que precisam ser bloqueadas. O sistema é muito ruim e feio."
	words := []string{"sensíveis", "ruim", "feio", "bloqueadas"}
	want := "Este é um texto com palavras ********* que precisam ser **********. O sistema é muito **** e ****."

	assert.Equal(t, want, Redact(text, words))
}

func TestRedact_EmptyListIsIdentity(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"  leading and trailing  ",
		"multi\nline\ttext",
		"ünïcödé",
		"\xff\xfe invalid bytes",
	}
	for _, in := range inputs {
		assert.Equal(t, in, Redact(in, nil))
		assert.Equal(t, in, Redact(in, []string{}))
	}
}

func TestRedact_PreservesUnmatchedBytes(t *testing.T) {
	text := "\xffbad\xfe ok"
	got := Redact(text, []string{"bad"})
	assert.Equal(t, "\xff***\xfe ok", got)
}

func TestRedact_DoesNotModifyWords(t *testing.T) {
	words := []string{"a", "ccc", "bb"}
	Redact("a bb ccc", words)
	assert.Equal(t, []string{"a", "ccc", "bb"}, words)
}

func TestRedact_Concurrent(t *testing.T) {
	words := []string{"ruim", "feio"}
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if got := Redact("muito ruim e feio", words); got != "muito **** e ****" {
					t.Errorf("Redact = %q", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestNew_WordOrder(t *testing.T) {
	r, err := New([]string{"ab", "abcd", "xy", "", "abc", "ab"})
	require.NoError(t, err)

	assert.Equal(t, []string{"abcd", "abc", "ab", "xy"}, r.Words())
	assert.Equal(t, `\b(?:abcd|abc|ab|xy)\b`, r.Pattern())
}

func TestNew_RuneLengthOrdering(t *testing.T) {
	// "sensíveis" is 9 runes but 10 bytes; "bloqueadas" is 10 runes.
	r, err := New([]string{"sensíveis", "bloqueadas"})
	require.NoError(t, err)
	assert.Equal(t, []string{"bloqueadas", "sensíveis"}, r.Words())
}

func TestNew_EmptyList(t *testing.T) {
	r, err := New(nil)
	require.NoError(t, err)
	assert.Empty(t, r.Pattern())

	res, err := r.Apply("untouched")
	require.NoError(t, err)
	assert.Equal(t, "untouched", res.Text)
	assert.Zero(t, res.Count())
}

func TestRedactor_Apply_Spans(t *testing.T) {
	r, err := New([]string{"bad"})
	require.NoError(t, err)

	res, err := r.Apply("ok bad\nsad bad")
	require.NoError(t, err)

	assert.Equal(t, "ok ***\nsad ***", res.Text)
	require.Equal(t, 2, res.Count())
	assert.Equal(t, Span{Offset: 3, Length: 3, Line: 1, Column: 4}, res.Spans[0])
	assert.Equal(t, Span{Offset: 11, Length: 3, Line: 2, Column: 5}, res.Spans[1])
}

func TestRedactor_Apply_RuneOffsets(t *testing.T) {
	r, err := New([]string{"feio"})
	require.NoError(t, err)

	res, err := r.Apply("é feio")
	require.NoError(t, err)
	require.Len(t, res.Spans, 1)
	assert.Equal(t, 2, res.Spans[0].Offset)
	assert.Equal(t, 3, res.Spans[0].Column)
}

func TestRedactor_Redact(t *testing.T) {
	r, err := New([]string{"fornax", "kerfuffle"}, WithMatchTimeout(time.Second))
	require.NoError(t, err)

	got, err := r.Redact("What a Kerfuffle near Fornax!")
	require.NoError(t, err)
	assert.Equal(t, "What a ********* near ******!", got)
}

func TestRedactor_LongInput(t *testing.T) {
	r, err := New([]string{"bad"})
	require.NoError(t, err)

	text := strings.Repeat("good bad ", 1000)
	got, err := r.Redact(text)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("good *** ", 1000), got)
}

func TestNew_UsesCache(t *testing.T) {
	c, err := cache.New(true, 4)
	require.NoError(t, err)

	_, err = New([]string{"ruim"}, WithCache(c))
	require.NoError(t, err)
	_, err = New([]string{"ruim"}, WithCache(c))
	require.NoError(t, err)

	stats := c.GetStats()
	assert.Equal(t, 1, stats.Entries)
	assert.EqualValues(t, 1, stats.Hits)
	assert.EqualValues(t, 1, stats.Misses)

	_, err = New([]string{"ruim"}, WithCache(c), WithMatchTimeout(time.Second))
	require.NoError(t, err)
	assert.Equal(t, 2, c.GetStats().Entries, "timeout is part of the cache key")
}

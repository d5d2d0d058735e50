package wordlist

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Format identifies a word file encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor returns the format implied by a file path's extension.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatText
	}
}

// document is the object form accepted by YAML and JSON word files.
type document struct {
	Words []string `json:"words" yaml:"words"`
}

// Load reads a word file. Returns nil and no error if path is empty.
func Load(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word file: %w", err)
	}
	defer f.Close()

	words, err := Parse(f, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("parsing word file %s: %w", path, err)
	}
	return words, nil
}

// Parse decodes words from r and normalizes them.
func Parse(r io.Reader, format Format) ([]string, error) {
	switch format {
	case FormatYAML:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return parseYAML(data)
	case FormatJSON:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return parseJSON(data)
	case FormatText, "":
		return parseText(r)
	default:
		return nil, fmt.Errorf("unsupported word file format: %s", format)
	}
}

func parseYAML(data []byte) ([]string, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return nil, nil
	}
	root := node.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var words []string
		if err := root.Decode(&words); err != nil {
			return nil, err
		}
		return Normalize(words), nil
	case yaml.MappingNode:
		var doc document
		if err := root.Decode(&doc); err != nil {
			return nil, err
		}
		return Normalize(doc.Words), nil
	default:
		return nil, errors.New("expected a list of words or a mapping with a words key")
	}
}

func parseJSON(data []byte) ([]string, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var words []string
		if err := json.Unmarshal(data, &words); err != nil {
			return nil, err
		}
		return Normalize(words), nil
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return Normalize(doc.Words), nil
}

func parseText(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return Normalize(words), nil
}

// Normalize trims each word, converts it to NFC and drops empty words. Order
// is preserved.
func Normalize(words []string) []string {
	var out []string
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		out = append(out, norm.NFC.String(w))
	}
	return out
}

// Split splits a comma-separated list of words, as given on the command line
// or in an environment variable.
func Split(s string) []string {
	return Normalize(strings.Split(s, ","))
}

// Merge concatenates word lists, keeping the first occurrence of each word.
func Merge(lists ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, list := range lists {
		for _, w := range list {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}
	return out
}

// Sample returns the word list used by the demo command.
func Sample() []string {
	return []string{"sensíveis", "ruim", "feio", "bloqueadas"}
}

// SampleText returns the sentence used by the demo command.
func SampleText() string {
	return "Este é um texto com palavras sensíveis que precisam ser bloqueadas. O sistema é muito ruim e feio."
}

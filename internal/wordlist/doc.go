// Package wordlist loads and normalizes the words to redact.
//
// Word files may be YAML, JSON or plain text; the format is chosen from the
// file extension. YAML and JSON files hold either a bare list of strings or an
// object with a "words" key. Plain text files hold one word per line, and
// lines starting with # are comments.
//
// Every loaded word is trimmed and converted to Unicode NFC so that a word
// typed with combining accents matches the precomposed form used by most text.
package wordlist

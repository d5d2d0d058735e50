// Censor masks listed words in text.
//
// Every whole-word, case-insensitive occurrence of a listed word is replaced
// by one asterisk per character, so redacted text keeps its length and
// layout.
//
// Usage:
//
//	censor redact --words ruim,feio "muito ruim"   # redact arguments
//	censor redact --words-file words.yaml < in.txt # redact stdin
//	censor redact --in notes.txt --format sarif    # report redacted spans
//	censor words list --words-file words.txt       # show match order
//	censor demo                                    # sample run plus prompt
//	censor config show                             # effective configuration
package main

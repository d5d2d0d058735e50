// Package redact masks listed words in free-form text.
//
// Every whole-word, case-insensitive occurrence of a listed word is replaced
// by asterisks, one per character of the matched text, so the redacted text
// has exactly as many characters as the input and every unmatched span is
// returned byte-for-byte.
//
// Words are matched longest first: given "ruim" and "ruinzinho", the text
// "ruinzinho" becomes nine asterisks. Special characters in words are matched
// literally. Word boundaries follow Unicode word characters (letters, marks,
// digits and connector punctuation), so "cat" never matches inside "category"
// and accented words such as "sensíveis" are matched as a whole.
//
// Use [Redact] for one-off calls, or [New] to compile a [Redactor] once and
// reuse it. A Redactor is immutable and safe for concurrent use.
package redact

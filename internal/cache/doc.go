// Package cache provides an in-memory LRU cache for compiled redaction
// patterns.
//
// Building a pattern means sorting, escaping and compiling the whole word
// list, so callers that redact many inputs with the same list reuse the
// compiled matcher. Entries are keyed by [BuildKey] over the ordered word list
// and the matching options. A disabled cache always misses and never stores.
package cache

// Package config loads and merges censor configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (CENSOR_WORDS, CENSOR_WORDS_FILE, CENSOR_FORMAT, etc.)
//  3. Config file ($XDG_CONFIG_HOME/censor/config.json)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config], [Save] to write a config file, and
// [SetField] to update a single key.
package config

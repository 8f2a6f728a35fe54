// Package config loads watcherknight configuration, merging defaults, the
// JSON config file, WKNIGHT_* environment variables, and CLI flag overrides,
// in that order.
package config

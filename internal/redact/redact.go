package redact

import "regexp"

const placeholder = "[REDACTED]"

// pattern pairs a label (for diagnostics) with its matcher.
type pattern struct {
	name string
	re   *regexp.Regexp
}

// patterns are heuristics for secret material that commonly leaks into
// diffs. They favor false positives: a redacted token still diffs fine, a
// leaked one does not.
var patterns = []pattern{
	{"assignment", regexp.MustCompile(`(?i)(api[_-]?key|secret|token|password|passwd|credential)\s*[:=]\s*["']?[^\s"']{8,}["']?`)},
	{"aws-key-id", regexp.MustCompile(`AKIA[0-9A-Z]{16}`)},
	{"bearer", regexp.MustCompile(`(?i)Bearer\s+[A-Za-z0-9._-]{20,}`)},
	{"jwt", regexp.MustCompile(`eyJ[A-Za-z0-9_-]{10,}\.eyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}`)},
	{"private-key", regexp.MustCompile(`-----BEGIN[A-Z ]*PRIVATE KEY-----`)},
	{"github-token", regexp.MustCompile(`gh[pousr]_[A-Za-z0-9_]{36,}`)},
	{"anthropic-key", regexp.MustCompile(`sk-ant-[A-Za-z0-9_-]{20,}`)},
	{"generic-sk", regexp.MustCompile(`sk-[A-Za-z0-9]{20,}`)},
}

// Diff replaces detected secrets in diff text with [REDACTED].
func Diff(text string) string {
	out := text
	for _, p := range patterns {
		out = p.re.ReplaceAllString(out, placeholder)
	}
	return out
}

package marker

import "strings"

// commentPrefixes are the single-line comment markers the scanner understands.
// Order matters only for display; no prefix is a prefix of another.
var commentPrefixes = []string{"//", "#", "--", "%", ";"}

// tagOpeners are the accepted tag spellings. `<wk` is the short alias.
var tagOpeners = []string{"<watcher-knight", "<wk"}

// CommentPrefixes returns a copy of the recognized comment markers.
func CommentPrefixes() []string {
	out := make([]string, len(commentPrefixes))
	copy(out, commentPrefixes)
	return out
}

// StripComment checks whether line, after leading whitespace, begins with a
// recognized comment marker. When expect is non-empty only that exact marker
// is accepted; this keeps multi-line annotation bodies in the comment style
// that opened them. Returns the text after the marker, the matched marker,
// and whether a marker matched.
func StripComment(line, expect string) (rest, prefix string, ok bool) {
	trimmed := strings.TrimLeft(line, " \t")
	if expect != "" {
		if after, found := strings.CutPrefix(trimmed, expect); found {
			return after, expect, true
		}
		return "", "", false
	}
	for _, pfx := range commentPrefixes {
		if after, found := strings.CutPrefix(trimmed, pfx); found {
			return after, pfx, true
		}
	}
	return "", "", false
}

// StripTagOpener checks whether comment text (the remainder after a comment
// marker) begins a watcherknight tag. Returns the text after the opener.
func StripTagOpener(text string) (rest string, ok bool) {
	trimmed := strings.TrimLeft(text, " \t")
	for _, opener := range tagOpeners {
		if after, found := strings.CutPrefix(trimmed, opener); found {
			return after, true
		}
	}
	return "", false
}

package marker

import (
	"path"
	"path/filepath"
	"strings"
	"unicode"
)

const closeMarker = "/>"

// ParseFile scans one file's text for annotations and returns them in source
// order. relPath is the file's repository-relative path; repoRoot is used to
// expand scope globs. Parsing is purely syntactic and never fails: malformed
// or unterminated tags simply produce no annotation.
func ParseFile(contents, relPath, repoRoot string) []Annotation {
	lines := strings.Split(contents, "\n")
	parent := path.Dir(filepath.ToSlash(relPath))

	var anns []Annotation
	i := 0
	for i < len(lines) {
		rest, prefix, ok := StripComment(lines[i], "")
		if !ok {
			i++
			continue
		}
		afterTag, ok := StripTagOpener(rest)
		if !ok {
			i++
			continue
		}

		startLine := i + 1
		name, afterName := parseName(afterTag)
		inlineScope, afterScope := parseInlineScope(afterName)

		// Single-line form: the rest of the opening line ends with "/>".
		if before, found := strings.CutSuffix(strings.TrimSpace(afterScope), closeMarker); found {
			anns = append(anns, Annotation{
				Name:        name,
				File:        relPath,
				Line:        startLine,
				Instruction: strings.TrimSpace(before),
				Scope:       resolveEntries(inlineScope, parent, repoRoot),
			})
			i++
			continue
		}

		// Multi-line form: consume continuation lines written with the same
		// comment prefix as the opener, until the close marker.
		var body []string
		terminated := false
		j := i + 1
		for j < len(lines) {
			rest, _, ok := StripComment(lines[j], prefix)
			if !ok {
				break
			}
			text := strings.TrimSpace(rest)
			if idx := strings.Index(text, closeMarker); idx >= 0 {
				if before := strings.TrimSpace(text[:idx]); before != "" {
					body = append(body, before)
				}
				j++
				terminated = true
				break
			}
			body = append(body, text)
			j++
		}
		if !terminated {
			// The continuation chain broke before a close marker. Drop the
			// partial annotation and rescan from the breaking line.
			i = j
			continue
		}

		scopeLines, instruction := splitScopeLines(body)
		entries := append(inlineScope, scopeLines...)
		anns = append(anns, Annotation{
			Name:        name,
			File:        relPath,
			Line:        startLine,
			Instruction: strings.Join(instruction, "\n"),
			Scope:       resolveEntries(entries, parent, repoRoot),
		})
		i = j
	}
	return anns
}

// parseName extracts an optional ": name" segment following the tag opener.
// Without a leading colon the name is empty and the input is untouched.
func parseName(s string) (name, rest string) {
	after, ok := strings.CutPrefix(strings.TrimLeft(s, " \t"), ":")
	if !ok {
		return "", s
	}
	after = strings.TrimLeft(after, " \t")
	end := strings.IndexFunc(after, func(r rune) bool {
		return unicode.IsSpace(r) || r == '/' || r == '['
	})
	if end < 0 {
		end = len(after)
	}
	return after[:end], after[end:]
}

// parseInlineScope extracts an optional "[a, b]" scope segment. Without a
// well-formed bracket pair the input is untouched.
func parseInlineScope(s string) (entries []string, rest string) {
	inner, ok := strings.CutPrefix(strings.TrimLeft(s, " \t"), "[")
	if !ok {
		return nil, s
	}
	end := strings.Index(inner, "]")
	if end < 0 {
		return nil, s
	}
	return splitList(inner[:end]), inner[end+1:]
}

// splitScopeLines separates "files = { ... }" declarations from instruction
// text within a multi-line body.
func splitScopeLines(body []string) (entries, instruction []string) {
	for _, line := range body {
		if inner, ok := parseFilesLine(line); ok {
			entries = append(entries, splitList(inner)...)
			continue
		}
		if line != "" {
			instruction = append(instruction, line)
		}
	}
	return entries, instruction
}

// parseFilesLine matches `files = { a, b }` and returns the brace contents.
func parseFilesLine(line string) (inner string, ok bool) {
	s, ok := strings.CutPrefix(strings.TrimSpace(line), "files")
	if !ok {
		return "", false
	}
	s, ok = strings.CutPrefix(strings.TrimLeft(s, " \t"), "=")
	if !ok {
		return "", false
	}
	s, ok = strings.CutPrefix(strings.TrimLeft(s, " \t"), "{")
	if !ok {
		return "", false
	}
	s, ok = strings.CutSuffix(s, "}")
	if !ok {
		return "", false
	}
	return strings.TrimSpace(s), true
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func resolveEntries(entries []string, parentDir, repoRoot string) []string {
	var out []string
	for _, entry := range entries {
		out = append(out, ResolveScope(entry, parentDir, repoRoot)...)
	}
	return out
}

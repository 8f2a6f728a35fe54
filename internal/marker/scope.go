package marker

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ResolveScope expands one scope entry into repository-relative file paths.
// The entry is joined onto the annotation's parent directory, normalized
// lexically, then glob-expanded against the repository root (doublestar
// semantics, so `**` works). When nothing on disk matches (the referenced
// file may not exist yet) or the glob syntax is malformed, the literal
// normalized pattern is returned instead so the relevance filter can still
// compare it against changed-file paths by string equality.
func ResolveScope(entry, parentDir, repoRoot string) []string {
	pattern := normalizePattern(parentDir + "/" + entry)
	if pattern == "" {
		return nil
	}

	matches, err := doublestar.FilepathGlob(filepath.Join(repoRoot, filepath.FromSlash(pattern)))
	if err != nil || len(matches) == 0 {
		return []string{pattern}
	}

	var out []string
	for _, m := range matches {
		rel, err := filepath.Rel(repoRoot, m)
		if err != nil {
			continue
		}
		out = append(out, filepath.ToSlash(rel))
	}
	if len(out) == 0 {
		return []string{pattern}
	}
	return out
}

// normalizePattern resolves "." and ".." components lexically, without
// touching the filesystem. A ".." at the root is discarded.
func normalizePattern(p string) string {
	var parts []string
	for _, seg := range strings.Split(filepath.ToSlash(p), "/") {
		switch seg {
		case "", ".":
		case "..":
			if len(parts) > 0 {
				parts = parts[:len(parts)-1]
			}
		default:
			parts = append(parts, seg)
		}
	}
	return strings.Join(parts, "/")
}

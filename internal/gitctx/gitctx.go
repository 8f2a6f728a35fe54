package gitctx

import (
	"bytes"
	"fmt"
	"io/fs"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DiscoverRoot returns the absolute path of the enclosing repository's
// working tree.
func DiscoverRoot() (string, error) {
	out, err := gitOutput("", "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not inside a git repository: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// Diff returns the textual diff between the given commit and the working
// tree, as an opaque string. The caller decides what to do with hunks; this
// package never parses them.
func Diff(root, commit string) (string, error) {
	out, err := gitOutput(root, "diff", commit)
	if err != nil {
		return "", fmt.Errorf("git diff %s: %w", commit, err)
	}
	return out, nil
}

// ChangedFiles returns the repository-relative paths touched between the
// given commit and the working tree.
func ChangedFiles(root, commit string) ([]string, error) {
	out, err := gitOutput(root, "diff", commit, "--name-only")
	if err != nil {
		return nil, fmt.Errorf("git diff %s --name-only: %w", commit, err)
	}
	return splitLines(out), nil
}

// Untracked returns files present in the working tree but unknown to git.
// Used only for a pre-dispatch warning, so git failures yield nil rather
// than an error.
func Untracked(root string) []string {
	out, err := gitOutput(root, "ls-files", "--others", "--exclude-standard")
	if err != nil {
		return nil
	}
	return splitLines(out)
}

// Truncate caps a diff at maxBytes, appending a note when it was cut.
// maxBytes <= 0 disables truncation.
func Truncate(diff string, maxBytes int) string {
	if maxBytes <= 0 || len(diff) <= maxBytes {
		return diff
	}
	return diff[:maxBytes] + "\n... (diff truncated at max-diff-bytes limit)\n"
}

// WalkFiles enumerates regular files under root, repository-relative with
// forward slashes, skipping the .git directory and anything filtered by the
// include/exclude doublestar patterns. It walks the working tree rather than
// asking git, so annotations in not-yet-committed files are still found.
func WalkFiles(root string, include, exclude []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if len(include) > 0 && !MatchesAny(rel, include) {
			return nil
		}
		if MatchesAny(rel, exclude) {
			return nil
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return files, nil
}

// MatchesAny reports whether the slash-separated path matches any of the
// doublestar patterns. Malformed patterns never match.
func MatchesAny(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, path); err == nil && ok {
			return true
		}
	}
	return false
}

// IsBinary sniffs contents for a NUL byte, the same heuristic git uses to
// decide a file is not text.
func IsBinary(data []byte) bool {
	return bytes.IndexByte(data, 0) >= 0
}

func splitLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func gitOutput(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return string(out), fmt.Errorf("%s: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", err
	}
	return string(out), nil
}

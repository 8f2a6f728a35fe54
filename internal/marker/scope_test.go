package marker

import (
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"
)

func writeFile(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveScope_LiteralFallback(t *testing.T) {
	root := t.TempDir()
	// Nothing on disk matches: the normalized literal pattern is the sole
	// entry, so the relevance filter can still match it by string equality.
	got := ResolveScope("./missing.go", "pkg", root)
	want := []string{"pkg/missing.go"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ResolveScope = %v, want %v", got, want)
	}
}

func TestResolveScope_GlobExpansion(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "pkg/a.go")
	writeFile(t, root, "pkg/b.go")
	writeFile(t, root, "pkg/c.txt")

	got := ResolveScope("./*.go", "pkg", root)
	sort.Strings(got)
	want := []string{"pkg/a.go", "pkg/b.go"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ResolveScope = %v, want %v", got, want)
	}
}

func TestResolveScope_DoublestarGlob(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/deep/nested/x.ts")
	writeFile(t, root, "src/y.ts")

	got := ResolveScope("./**/*.ts", "src", root)
	sort.Strings(got)
	want := []string{"src/deep/nested/x.ts", "src/y.ts"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ResolveScope = %v, want %v", got, want)
	}
}

func TestResolveScope_ParentTraversal(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "lib/util.go")

	got := ResolveScope("../lib/util.go", "cmd", root)
	want := []string{"lib/util.go"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ResolveScope = %v, want %v", got, want)
	}
}

func TestResolveScope_MalformedGlobKeepsLiteral(t *testing.T) {
	root := t.TempDir()
	got := ResolveScope("bad[pattern.go", "pkg", root)
	want := []string{"pkg/bad[pattern.go"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ResolveScope = %v, want %v", got, want)
	}
}

func TestNormalizePattern(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"./a/b.go", "a/b.go"},
		{"a/./b.go", "a/b.go"},
		{"a/b/../c.go", "a/c.go"},
		{"../../x.go", "x.go"},
		{".", ""},
		{"a//b", "a/b"},
	}
	for _, tt := range tests {
		if got := normalizePattern(tt.in); got != tt.want {
			t.Errorf("normalizePattern(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

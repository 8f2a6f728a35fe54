package cli

import (
	"os"
	"path/filepath"
	"testing"

	"watcherknight/internal/config"
)

func TestSplitComma(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{"a, b , c", []string{"a", "b", "c"}},
		{"a,,b", []string{"a", "b"}},
		{"", nil},
		{" , ", nil},
		{"src/**/*.go", []string{"src/**/*.go"}},
	}

	for _, tt := range tests {
		got := splitComma(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitComma(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitComma(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}

func TestBuildOverrides(t *testing.T) {
	flagModel = "sonnet"
	flagCommit = "main"
	flagConcurrency = 8
	flagMaxDiffBytes = 1024
	defer func() {
		flagModel = ""
		flagCommit = ""
		flagConcurrency = 0
		flagMaxDiffBytes = 0
	}()

	m := buildOverrides()

	if m["model"] != "sonnet" {
		t.Errorf("model = %q, want sonnet", m["model"])
	}
	if m["commit"] != "main" {
		t.Errorf("commit = %q, want main", m["commit"])
	}
	if m["concurrency"] != "8" {
		t.Errorf("concurrency = %q, want 8", m["concurrency"])
	}
	if m["maxDiffBytes"] != "1024" {
		t.Errorf("maxDiffBytes = %q, want 1024", m["maxDiffBytes"])
	}
	if _, ok := m["format"]; ok {
		t.Error("unset format flag should not appear in overrides")
	}
}

func TestScanAnnotations(t *testing.T) {
	root := t.TempDir()

	writeFile(t, root, "pkg/handler.go", "package pkg\n\n// <watcher-knight: auth-check all handlers verify the session token />\nfunc Handle() {}\n")
	writeFile(t, root, "scripts/deploy.sh", "#!/bin/sh\n# <wk deploy only via the release pipeline />\necho deploy\n")
	writeFile(t, root, "vendor/dep/dep.go", "package dep\n\n// <wk: vendored should never be scanned />\n")
	writeFile(t, root, "assets/blob.bin", "\x00\x01\x02binary")

	cfg := config.Default()
	anns, err := scanAnnotations(root, cfg)
	if err != nil {
		t.Fatalf("scanAnnotations: %v", err)
	}

	if len(anns) != 2 {
		t.Fatalf("expected 2 annotations, got %d: %+v", len(anns), anns)
	}
	names := map[string]bool{}
	for _, a := range anns {
		names[a.Name] = true
	}
	if !names["auth-check"] {
		t.Error("missing named annotation from pkg/handler.go")
	}
	if !names[""] {
		t.Error("missing unnamed annotation from scripts/deploy.sh")
	}
}

func TestScanAnnotations_IncludeFilter(t *testing.T) {
	root := t.TempDir()

	writeFile(t, root, "a.go", "// <wk: in-scope keep exports stable />\n")
	writeFile(t, root, "b.py", "# <wk: out-of-scope keep exports stable />\n")

	cfg := config.Default()
	cfg.Include = []string{"**/*.go"}

	anns, err := scanAnnotations(root, cfg)
	if err != nil {
		t.Fatalf("scanAnnotations: %v", err)
	}
	if len(anns) != 1 || anns[0].Name != "in-scope" {
		t.Fatalf("expected only the .go annotation, got %+v", anns)
	}
}

func writeFile(t *testing.T, root, rel, contents string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

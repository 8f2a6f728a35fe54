package judge

import (
	"strings"
	"testing"

	"watcherknight/internal/marker"
)

func TestBuildPrompt(t *testing.T) {
	a := marker.Annotation{
		Name:        "schema",
		File:        "db/schema.sql",
		Line:        12,
		Instruction: "users table keeps its primary key",
	}
	p := BuildPrompt(a, "diff --git a/db/schema.sql b/db/schema.sql")

	for _, want := range []string{
		"Invariant name: schema\n",
		"File: db/schema.sql (line 12)\n",
		"Instruction: users table keeps its primary key\n",
		"ONLY a JSON object",
		"```diff\ndiff --git a/db/schema.sql b/db/schema.sql\n```",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q:\n%s", want, p)
		}
	}
}

func TestBuildPrompt_TrailingNewlinePreserved(t *testing.T) {
	a := marker.Annotation{Name: "x", File: "f", Line: 1}
	p := BuildPrompt(a, "line\n")
	if strings.Contains(p, "line\n\n```") {
		t.Error("diff with trailing newline must not gain a blank line before the fence")
	}
	if !strings.Contains(p, "line\n```") {
		t.Error("fence must close right after the diff")
	}
}

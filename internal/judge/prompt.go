package judge

import (
	"fmt"
	"strings"

	"watcherknight/internal/marker"
)

// BuildPrompt renders the validation request for one annotation. The judge is
// told to treat the diff as the change under review, to verify the invariant
// against the live repository (a referenced file that no longer exists is a
// violation), and to answer with only a JSON verdict object.
func BuildPrompt(a marker.Annotation, diff string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are validating a code invariant against a diff.\n\n")
	fmt.Fprintf(&b, "Invariant name: %s\n", a.Name)
	fmt.Fprintf(&b, "File: %s (line %d)\n", a.File, a.Line)
	fmt.Fprintf(&b, "Instruction: %s\n\n", a.Instruction)

	b.WriteString("Check whether the current state of the code satisfies this invariant.\n")
	b.WriteString("Use the diff to understand what changed, then ALWAYS use Read/Grep/Glob to ")
	b.WriteString("verify the invariant against the actual codebase. You must confirm that any ")
	b.WriteString("files or code referenced by the invariant actually exist. If a file referenced ")
	b.WriteString("by the invariant does not exist, the invariant is violated.\n\n")

	b.WriteString("Respond with ONLY a JSON object, no other text:\n")
	b.WriteString("- {\"is_valid\": true} if the invariant holds\n")
	b.WriteString("- {\"is_valid\": false, \"reason\": \"...\"} if it is violated\n\n")

	b.WriteString("IMPORTANT: Your reason will be shown directly to the end user. ")
	b.WriteString("Write it as a clear, actionable description of the problem. ")
	b.WriteString("Do NOT reference diffs, HEAD, commits, or the validation process itself. ")
	b.WriteString("Just describe what is wrong with the code.\n")

	b.WriteString("\n## Diff (base commit to working tree)\n")
	b.WriteString("```diff\n")
	b.WriteString(diff)
	if !strings.HasSuffix(diff, "\n") {
		b.WriteByte('\n')
	}
	b.WriteString("```\n")

	return b.String()
}

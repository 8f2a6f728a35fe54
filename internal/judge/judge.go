package judge

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Judge is the external judgment capability. Validate sends one rendered
// prompt and returns the raw textual output. An error means the invocation
// itself failed (could not start, abnormal exit, I/O failure); the caller
// turns that into a failing verdict.
type Judge interface {
	Validate(ctx context.Context, prompt string) (string, error)
}

// ClaudeCLI runs the claude command-line client as a subprocess, one
// invocation per validation. The prompt is written to stdin; stdout is the
// response. stderr is discarded.
type ClaudeCLI struct {
	// Binary is the executable to run. Defaults to "claude".
	Binary string
	// Model is passed through via --model.
	Model string
}

// NewClaudeCLI returns a ClaudeCLI judge for the given model.
func NewClaudeCLI(binary, model string) *ClaudeCLI {
	if binary == "" {
		binary = "claude"
	}
	return &ClaudeCLI{Binary: binary, Model: model}
}

// Validate implements Judge.
func (c *ClaudeCLI) Validate(ctx context.Context, prompt string) (string, error) {
	cmd := exec.CommandContext(ctx, c.Binary,
		"-p",
		"--model", c.Model,
		"--permission-mode", "dontAsk",
		"--allowedTools", "Read,Grep,Glob",
	)
	// The judge must not inherit a nested-session marker from a claude
	// process that may be running this tool.
	cmd.Env = envWithout(os.Environ(), "CLAUDECODE")
	cmd.Stdin = strings.NewReader(prompt)
	cmd.Stderr = io.Discard

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("%s exited with %s", c.Binary, exitErr.ProcessState)
		}
		return "", fmt.Errorf("running %s: %w", c.Binary, err)
	}
	return strings.TrimSpace(out.String()), nil
}

func envWithout(env []string, key string) []string {
	out := make([]string, 0, len(env))
	for _, kv := range env {
		if name, _, _ := strings.Cut(kv, "="); name == key {
			continue
		}
		out = append(out, kv)
	}
	return out
}

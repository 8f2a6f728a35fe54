package output

import (
	"fmt"
	"io"

	"watcherknight/internal/judge"
)

const (
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// TextWriter renders the human-readable report: every verdict with its
// status, a detail section for each failure, then the pass/fail summary.
type TextWriter struct {
	// Color toggles ANSI escapes; off for file output.
	Color bool
}

func (t *TextWriter) Write(w io.Writer, report *judge.Report) error {
	ew := &errWriter{w: w}

	ew.println("")
	ew.println("---- RESULTS ----")
	ew.println("")
	for _, v := range report.Verdicts {
		ew.printf("watcher %s... %s\n", v.Name, t.status(v.Valid))
	}

	failures := report.Failures()
	if len(failures) > 0 {
		ew.println("")
		ew.printf("%s---- FAILURES ----\n", t.color(ansiRed))
		for _, f := range failures {
			ew.println("")
			ew.printf("---- %s (%s) ----\n", f.Name, f.Location)
			ew.println("")
			ew.println(f.Reason)
		}
		ew.printf("%s", t.color(ansiReset))
	}

	ew.println("")
	if report.OK() {
		ew.printf("watcherknight result: %s. %d passed; 0 failed\n",
			t.colored(ansiGreen, "OK"), report.Passed)
	} else {
		ew.printf("watcherknight result: %s. %d passed; %d failed\n",
			t.colored(ansiRed, "FAILED"), report.Passed, report.Failed)
	}

	return ew.err
}

func (t *TextWriter) status(valid bool) string {
	if valid {
		return t.colored(ansiGreen, "OK")
	}
	return t.colored(ansiRed, "FAILED")
}

func (t *TextWriter) colored(code, s string) string {
	if !t.Color {
		return s
	}
	return code + s + ansiReset
}

func (t *TextWriter) color(code string) string {
	if !t.Color {
		return ""
	}
	return code
}

// errWriter captures the first write error so the render path stays linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}

package output

import (
	"encoding/json"
	"io"

	"watcherknight/internal/judge"
)

// JSONWriter renders the report as indented JSON, for machine consumers.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, report *judge.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

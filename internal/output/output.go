package output

import (
	"fmt"
	"io"
	"os"

	"watcherknight/internal/judge"
)

// Writer renders a report in one format.
type Writer interface {
	Write(w io.Writer, report *judge.Report) error
}

// GetWriter returns the writer for the named format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "text":
		return &TextWriter{Color: true}, nil
	case "json":
		return &JSONWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteReport renders the report to outPath, or stdout when outPath is empty.
// File output is written without ANSI color.
func WriteReport(report *judge.Report, format, outPath string) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}

	var w io.Writer
	if outPath != "" {
		if tw, ok := writer.(*TextWriter); ok {
			tw.Color = false
		}
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	} else {
		w = os.Stdout
	}

	return writer.Write(w, report)
}

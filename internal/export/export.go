// Package export writes a task collection as JSON, CSV or PDF.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"todo/internal/api"
	"todo/internal/service"
)

// Formats lists the accepted format names.
var Formats = []string{"json", "csv", "pdf"}

// Write encodes tasks to w in the named format.
func Write(w io.Writer, tasks []service.Task, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(api.FromServiceList(tasks))
	case "csv":
		cw := csv.NewWriter(w)
		_ = cw.Write([]string{"id", "title", "description"})
		for _, t := range tasks {
			_ = cw.Write([]string{t.ID, t.Title, t.Description})
		}
		cw.Flush()
		return cw.Error()
	case "pdf":
		return writePDF(w, tasks)
	default:
		return fmt.Errorf("unknown format %s", format)
	}
}

func writePDF(w io.Writer, tasks []service.Task) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "TODO")
	pdf.Ln(12)

	if len(tasks) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.Cell(40, 6, "No tasks")
	}
	for i, t := range tasks {
		pdf.SetFont("Arial", "B", 11)
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("%d. %s", i+1, t.Title)), "0", "L", false)
		if strings.TrimSpace(t.Description) != "" {
			pdf.SetFont("Arial", "", 10)
			pdf.MultiCell(0, 5, tr(t.Description), "0", "L", false)
		}
		pdf.Ln(2)
	}
	return pdf.Output(w)
}

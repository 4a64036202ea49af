package pdi

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF renders the plan summary, goals and tasks as an A4 document.
func WritePDF(w io.Writer, p Plan) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(p.Title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(p.Title))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Employee: %s (%s)", p.Employee.Name, p.Employee.Position)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s", p.StartDate.Format("Jan 2, 2006"), p.EndDate.Format("Jan 2, 2006")))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s", p.Status.Style().Label))
	pdf.Ln(7)
	completed, total := p.TaskCounts()
	pdf.Cell(0, 8, fmt.Sprintf("Progress: %d%% (%d of %d tasks)", p.Progress(), completed, total))
	pdf.Ln(10)
	if p.Description != "" {
		pdf.MultiCell(0, 6, tr(p.Description), "", "L", false)
		pdf.Ln(4)
	}

	for i, g := range p.Goals {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, tr(fmt.Sprintf("%d. %s", i+1, g.Title)))
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.Cell(0, 6, fmt.Sprintf("%s - %d%%", g.Status().Style().Label, g.Progress()))
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 11)
		for _, t := range g.Tasks {
			mark := "[ ]"
			if t.Completed {
				mark = "[x]"
			}
			pdf.Cell(0, 6, tr(fmt.Sprintf("    %s %s", mark, t.Description)))
			pdf.Ln(6)
		}
		pdf.Ln(3)
	}

	if len(p.Reviews) > 0 {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, "Review notes")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, r := range p.Reviews {
			pdf.MultiCell(0, 6, tr(fmt.Sprintf("%s, %s: %s", r.Date.Format("Jan 2, 2006"), r.Author, r.Content)), "", "L", false)
			pdf.Ln(2)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render plan %d: %w", p.ID, err)
	}
	return nil
}

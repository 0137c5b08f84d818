package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/dmagallanes2/coldcallingassistant/internal/stats"
)

// renderPDF lays the report sections out as a titled A4 document. Purely
// presentational: the numbers come from the same reportSections as the text
// renderer.
func renderPDF(s *stats.Summary, day string) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle(reportTitle, false)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 10, fmt.Sprintf("%s - %s", reportTitle, day), "", 1, "L", false, 0, "")
	doc.Ln(4)

	sections := reportSections(s)
	if sections == nil {
		doc.SetFont("Helvetica", "", 11)
		doc.CellFormat(0, 8, emptyReportBody, "", 1, "L", false, 0, "")
	}

	for _, sec := range sections {
		doc.SetFont("Helvetica", "B", 12)
		doc.CellFormat(0, 8, sec.title, "B", 1, "L", false, 0, "")
		doc.Ln(1)

		doc.SetFont("Helvetica", "", 11)
		for _, ln := range sec.lines {
			doc.CellFormat(55, 6, ln.label+":", "", 0, "L", false, 0, "")
			doc.CellFormat(0, 6, ln.value, "", 1, "L", false, 0, "")
		}
		doc.Ln(4)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("export: pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

package report

import (
	"fmt"

	"github.com/phpdave11/gofpdf"
)

// ExportPDF writes a one-page analysis report.
func ExportPDF(rec Record, filename string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Ponding Stability Analysis", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Member: %s", rec.Member), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	section := func(title string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, title, "B", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.Ln(1)
	}
	row := func(label, value string) {
		pdf.CellFormat(70, 6, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
	}

	section("Input")
	row("Section", rec.Section)
	row("Support", rec.Support)
	row("Span", fmt.Sprintf("%.2f ft", rec.Span))
	row("Slope", fmt.Sprintf("%.3f in/ft", rec.Slope))
	row("Dead load", fmt.Sprintf("%.1f psf", rec.DeadLoad))
	row("Static head", fmt.Sprintf("%.2f in", rec.StaticHead))
	row("Hydraulic head", fmt.Sprintf("%.2f in", rec.HydraulicHead))
	row("Tributary width", fmt.Sprintf("%.2f ft", rec.TributaryWidth))
	if rec.OverflowDepth > 0 {
		row("Overflow depth", fmt.Sprintf("%.2f in", rec.OverflowDepth))
	}
	pdf.Ln(4)

	section("Result")
	row("Verdict", rec.Verdict)
	if rec.AmplificationFactor > 0 {
		row("Amplification factor", fmt.Sprintf("%.3f", rec.AmplificationFactor))
	}
	row("Final max deflection", fmt.Sprintf("%.3f in", rec.FinalMaxDeflection))
	row("Iterations run", fmt.Sprintf("%d", rec.IterationsRun))
	row("Governing combination", rec.GoverningCombination)
	row("Factored load", fmt.Sprintf("%.1f plf", rec.FactoredLoad))
	pdf.Ln(4)

	section("Iteration History")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(30, 6, "Cycle", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 6, "Max deflection (in)", "1", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, c := range rec.History {
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", c.Cycle), "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 6, fmt.Sprintf("%.4f", c.MaxDeflection), "1", 1, "R", false, 0, "")
	}

	return pdf.OutputFileAndClose(filename)
}

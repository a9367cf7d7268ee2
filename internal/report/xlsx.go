package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportXLSX writes the record to a spreadsheet: an Inputs sheet and a
// History sheet with one row per cycle.
func ExportXLSX(rec Record, filename string) error {
	f := excelize.NewFile()
	defer f.Close()

	const inputs = "Inputs"
	if err := f.SetSheetName("Sheet1", inputs); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Member", rec.Member},
		{"Section", rec.Section},
		{"Support", rec.Support},
		{"Span (ft)", rec.Span},
		{"Slope (in/ft)", rec.Slope},
		{"Dead load (psf)", rec.DeadLoad},
		{"Static head (in)", rec.StaticHead},
		{"Hydraulic head (in)", rec.HydraulicHead},
		{"Tributary width (ft)", rec.TributaryWidth},
		{"Overflow depth (in)", rec.OverflowDepth},
		{},
		{"Verdict", rec.Verdict},
		{"Amplification factor", rec.AmplificationFactor},
		{"Final max deflection (in)", rec.FinalMaxDeflection},
		{"Iterations run", rec.IterationsRun},
		{"Governing combination", rec.GoverningCombination},
		{"Factored load (plf)", rec.FactoredLoad},
	}
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(inputs, cell, v); err != nil {
				return err
			}
		}
	}

	const history = "History"
	if _, err := f.NewSheet(history); err != nil {
		return err
	}
	if err := f.SetCellValue(history, "A1", "Cycle"); err != nil {
		return err
	}
	if err := f.SetCellValue(history, "B1", "Max deflection (in)"); err != nil {
		return err
	}
	for i, c := range rec.History {
		if err := f.SetCellValue(history, fmt.Sprintf("A%d", i+2), c.Cycle); err != nil {
			return err
		}
		if err := f.SetCellValue(history, fmt.Sprintf("B%d", i+2), c.MaxDeflection); err != nil {
			return err
		}
	}

	return f.SaveAs(filename)
}

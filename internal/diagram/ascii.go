package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// ProfileData holds everything needed to draw a ponded roof bay: station
// positions in feet, roof elevations and deflections in inches (deflection
// downward positive), and the design water surface datum in inches.
type ProfileData struct {
	Stations   []float64
	Elevations []float64
	Deflection []float64
	Datum      float64
}

// DrawASCIIProfile renders the deflected member and the ponded water
// between its surface and the datum.
func DrawASCIIProfile(data ProfileData) string {
	const (
		widthChars  = 64
		heightChars = 16
	)

	n := len(data.Stations)
	if n < 2 {
		return ""
	}

	// Surface elevation after deflection, sampled to the character grid.
	surface := make([]float64, widthChars)
	for col := 0; col < widthChars; col++ {
		idx := col * (n - 1) / (widthChars - 1)
		surface[col] = data.Elevations[idx] - data.Deflection[idx]
	}

	minY, maxY := data.Datum, data.Datum
	for _, y := range surface {
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}
	minY = math.Floor(minY) - 1
	maxY = math.Ceil(maxY) + 1
	scale := float64(heightChars) / (maxY - minY)

	row := func(y float64) int {
		r := heightChars - int((y-minY)*scale)
		if r < 0 {
			r = 0
		}
		if r > heightChars {
			r = heightChars
		}
		return r
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  PONDED DEPTH PROFILE\n")
	sb.WriteString("  ────────────────────\n")

	datumRow := row(data.Datum)
	for r := 0; r <= heightChars; r++ {
		y := maxY - float64(r)/scale
		sb.WriteString(fmt.Sprintf("  %6.1f │", y))
		for col := 0; col < widthChars; col++ {
			surfRow := row(surface[col])
			switch {
			case r == surfRow:
				sb.WriteString("█")
			case r > surfRow:
				sb.WriteString(" ")
			case r >= datumRow:
				sb.WriteString("░")
			default:
				sb.WriteString(" ")
			}
		}
		if r == datumRow {
			sb.WriteString(" ◄─ datum")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("         └%s\n", strings.Repeat("─", widthChars)))
	sb.WriteString(fmt.Sprintf("          0 ft%sspan %.0f ft\n", strings.Repeat(" ", widthChars-18), data.Stations[n-1]))
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ███ = Deflected member\n")
	sb.WriteString("  ░░░ = Ponded water\n")
	sb.WriteString(fmt.Sprintf("  Datum (static + hydraulic head) = %.2f in\n", data.Datum))

	return sb.String()
}

// DrawHistoryChart plots the max deflection of each cycle.
func DrawHistoryChart(maxima []float64) string {
	if len(maxima) < 2 {
		return ""
	}
	chart := asciigraph.Plot(
		maxima,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("Max deflection per cycle (in)"),
	)
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  CONVERGENCE HISTORY\n")
	sb.WriteString("  ───────────────────\n")
	for _, line := range strings.Split(chart, "\n") {
		sb.WriteString("  " + line + "\n")
	}
	return sb.String()
}

// DrawSummaryBox creates a summary box for results.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportProfile exports the deflected member and datum to an image file.
// The format follows the file extension (png, svg, pdf); anything else
// falls back to png.
func ExportProfile(data ProfileData, filename string) error {
	p := plot.New()
	p.Title.Text = "Ponded Depth Profile"
	p.X.Label.Text = "Location (ft)"
	p.Y.Label.Text = "Elevation (in)"

	n := len(data.Stations)

	roof := make(plotter.XYs, n)
	deflected := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		roof[i] = plotter.XY{X: data.Stations[i], Y: data.Elevations[i]}
		deflected[i] = plotter.XY{X: data.Stations[i], Y: data.Elevations[i] - data.Deflection[i]}
	}

	roofLine, err := plotter.NewLine(roof)
	if err != nil {
		return err
	}
	roofLine.LineStyle.Width = vg.Points(1.5)
	roofLine.LineStyle.Color = color.Black
	p.Add(roofLine)
	p.Legend.Add("Original shape", roofLine)

	deflLine, err := plotter.NewLine(deflected)
	if err != nil {
		return err
	}
	deflLine.LineStyle.Width = vg.Points(1.5)
	deflLine.LineStyle.Color = color.Black
	deflLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(deflLine)
	p.Legend.Add("Deflected shape", deflLine)

	datumLine, err := plotter.NewLine(plotter.XYs{
		{X: data.Stations[0], Y: data.Datum},
		{X: data.Stations[n-1], Y: data.Datum},
	})
	if err != nil {
		return err
	}
	datumLine.LineStyle.Width = vg.Points(1)
	datumLine.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	datumLine.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(4)}
	p.Add(datumLine)
	p.Legend.Add("Datum", datumLine)

	p.Legend.Top = true

	return savePlot(p, filename, 8*vg.Inch, 4*vg.Inch)
}

// ExportHistory exports the max-deflection-per-cycle trace to an image file.
func ExportHistory(maxima []float64, filename string) error {
	p := plot.New()
	p.Title.Text = "Ponding Iteration History"
	p.X.Label.Text = "Cycle"
	p.Y.Label.Text = "Max deflection (in)"

	pts := make(plotter.XYs, len(maxima))
	for i, m := range maxima {
		pts[i] = plotter.XY{X: float64(i + 1), Y: m}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	p.Add(line)

	points, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	points.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	points.GlyphStyle.Radius = vg.Points(3)
	points.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(points)

	return savePlot(p, filename, 6*vg.Inch, 4*vg.Inch)
}

func savePlot(p *plot.Plot, filename string, width, height vg.Length) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

// Package rain computes the hydraulic head over roof drainage devices,
// after ASCE 7 Chapter 8 commentary. Heads are linearly interpolated from
// the published scupper tables.
package rain

import "fmt"

// FlowRate returns the flow to a drainage device in gal/min for a drained
// roof area in square feet and a rainfall intensity in in/hr (ASCE Eq. C8.3-1).
func FlowRate(drainageArea, rainfallIntensity float64) float64 {
	return 0.0104 * drainageArea * rainfallIntensity
}

// headTable holds hydraulic head values on a (flow, size) grid.
type headTable struct {
	flows []float64   // gal/min, ascending
	sizes []float64   // in, ascending
	head  [][]float64 // [size][flow], in
}

// Channel (open) scuppers, head vs flow and scupper width.
var openScupper = headTable{
	flows: []float64{50, 100, 150, 200, 250, 500, 1000},
	sizes: []float64{6, 12, 24},
	head: [][]float64{
		{2.5, 3.5, 4.5, 5.5, 6.0, 9.5, 15.0},
		{1.5, 2.5, 3.0, 3.5, 4.0, 6.5, 10.0},
		{1.0, 1.5, 2.0, 2.5, 3.0, 4.5, 7.0},
	},
}

// Closed (three-sided) scuppers of 4 in opening height.
var closedScupper4 = headTable{
	flows: []float64{50, 100, 150, 200, 250, 500, 1000},
	sizes: []float64{6, 12, 24},
	head: [][]float64{
		{2.5, 3.5, 5.0, 6.5, 7.5, 12.5, 21.0},
		{1.5, 2.5, 3.3, 4.0, 4.8, 8.0, 13.5},
		{1.0, 1.5, 2.2, 2.8, 3.3, 5.5, 9.0},
	},
}

// Closed scuppers of 6 in opening height.
var closedScupper6 = headTable{
	flows: []float64{50, 100, 150, 200, 250, 500, 1000},
	sizes: []float64{6, 12, 24},
	head: [][]float64{
		{2.5, 3.5, 4.6, 5.8, 6.8, 11.0, 18.0},
		{1.5, 2.5, 3.1, 3.7, 4.3, 7.2, 12.0},
		{1.0, 1.5, 2.1, 2.6, 3.1, 5.0, 8.0},
	},
}

// Circular scuppers (pipes through a parapet), head vs flow and diameter.
var circularScupper = headTable{
	flows: []float64{50, 100, 150, 200, 250, 500},
	sizes: []float64{6, 8, 10, 12},
	head: [][]float64{
		{2.8, 4.5, 6.2, 8.0, 9.8, 18.5},
		{2.2, 3.4, 4.5, 5.6, 6.7, 12.0},
		{1.8, 2.7, 3.5, 4.3, 5.0, 8.8},
		{1.5, 2.2, 2.9, 3.5, 4.1, 7.0},
	},
}

// OpenScupperHead returns the hydraulic head in inches for a channel
// scupper of the given width (in) at the given flow (gal/min).
func OpenScupperHead(flow, width float64) (float64, error) {
	return openScupper.lookup(flow, width)
}

// ClosedScupperHead returns the hydraulic head for a closed scupper of the
// given width and opening height, interpolating between the tabulated
// 4 in and 6 in heights.
func ClosedScupperHead(flow, width, height float64) (float64, error) {
	if height < 4 || height > 6 {
		return 0, fmt.Errorf("closed scupper height %.1f in outside tabulated range [4, 6]", height)
	}
	low, err := closedScupper4.lookup(flow, width)
	if err != nil {
		return 0, err
	}
	high, err := closedScupper6.lookup(flow, width)
	if err != nil {
		return 0, err
	}
	t := (height - 4) / 2
	return low + t*(high-low), nil
}

// CircularScupperHead returns the hydraulic head for a circular scupper of
// the given diameter (in).
func CircularScupperHead(flow, diameter float64) (float64, error) {
	return circularScupper.lookup(flow, diameter)
}

// lookup bilinearly interpolates the table at (flow, size).
func (t headTable) lookup(flow, size float64) (float64, error) {
	fi, ft, err := bracket(t.flows, flow, "flow rate", "gal/min")
	if err != nil {
		return 0, err
	}
	si, st, err := bracket(t.sizes, size, "scupper size", "in")
	if err != nil {
		return 0, err
	}

	low := t.head[si][fi] + ft*(t.head[si][fi+1]-t.head[si][fi])
	high := t.head[si+1][fi] + ft*(t.head[si+1][fi+1]-t.head[si+1][fi])
	return low + st*(high-low), nil
}

// bracket finds the interval of xs containing x and the interpolation
// fraction within it.
func bracket(xs []float64, x float64, name, unit string) (int, float64, error) {
	if x < xs[0] || x > xs[len(xs)-1] {
		return 0, 0, fmt.Errorf("%s %.1f %s outside tabulated range [%.0f, %.0f]", name, x, unit, xs[0], xs[len(xs)-1])
	}
	for i := 0; i < len(xs)-1; i++ {
		if x <= xs[i+1] {
			return i, (x - xs[i]) / (xs[i+1] - xs[i]), nil
		}
	}
	return len(xs) - 2, 1, nil
}

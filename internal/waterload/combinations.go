package waterload

// Combination represents a load combination applied to the unfactored
// dead, rain, and ponding line loads. Ponding analysis itself always runs
// with unfactored (ASD-level) loads; factored combinations are reported
// for member checks downstream.
type Combination struct {
	ID          string
	Description string
	// Load factors
	Dead    float64 // D
	Rain    float64 // R, static plus hydraulic head
	Ponding float64 // P, ponding increment
}

// ASDCombinations are the allowable stress combinations relevant to a
// rain-on-roof check.
var ASDCombinations = []Combination{
	{ID: "A1", Description: "D+R", Dead: 1.0, Rain: 1.0},
	{ID: "A2", Description: "D+R+P", Dead: 1.0, Rain: 1.0, Ponding: 1.0},
}

// LRFDCombinations are the strength design combinations relevant to a
// rain-on-roof check.
var LRFDCombinations = []Combination{
	{ID: "L1", Description: "1.4D", Dead: 1.4},
	{ID: "L2", Description: "1.2D+1.6R", Dead: 1.2, Rain: 1.6},
	{ID: "L3", Description: "1.2D+1.6R+1.6P", Dead: 1.2, Rain: 1.6, Ponding: 1.6},
}

// Factored applies the combination's factors to unfactored loads. Units
// are preserved; callers typically pass plf.
func (c Combination) Factored(dead, rain, ponding float64) float64 {
	return c.Dead*dead + c.Rain*rain + c.Ponding*ponding
}

// Governing finds the combination producing the largest factored load.
func Governing(dead, rain, ponding float64, combinations []Combination) (float64, Combination) {
	var governing Combination
	var max float64
	for _, c := range combinations {
		if f := c.Factored(dead, rain, ponding); f > max {
			max = f
			governing = c
		}
	}
	return max, governing
}

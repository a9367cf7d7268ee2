package section

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Properties holds the resolved section and material values a ponding
// analysis needs. The solver reads MomentOfInertia and Modulus; the rest
// is carried for reporting.
type Properties struct {
	Designation     string
	MomentOfInertia float64 // in⁴, strong axis
	Area            float64 // in²
	Weight          float64 // plf, self weight
	Modulus         float64 // ksi
}

// wShape holds catalog values for a rolled W-shape.
type wShape struct {
	ix     float64 // in⁴
	area   float64 // in²
	weight float64 // plf
}

// AISC W-shapes commonly used as roof beams.
var wShapes = map[string]wShape{
	"W8X10":  {ix: 30.8, area: 2.96, weight: 10},
	"W10X12": {ix: 53.8, area: 3.54, weight: 12},
	"W12X14": {ix: 88.6, area: 4.16, weight: 14},
	"W12X19": {ix: 130, area: 5.57, weight: 19},
	"W14X22": {ix: 199, area: 6.49, weight: 22},
	"W16X26": {ix: 301, area: 7.68, weight: 26},
	"W16X31": {ix: 375, area: 9.13, weight: 31},
	"W18X35": {ix: 510, area: 10.3, weight: 35},
	"W21X44": {ix: 843, area: 13.0, weight: 44},
	"W24X55": {ix: 1350, area: 16.2, weight: 55},
}

// kJoist holds catalog values for an SJI open-web steel joist. The moment
// of inertia of a joist depends on its span; the SJI approximation
// I = 26.767e-6 · wLL · (L - 0.33)³ uses the L/360 load wLL in plf and the
// span L in feet.
type kJoist struct {
	depth  float64 // in
	wll360 float64 // plf, load producing L/360 deflection
	area   float64 // in², equivalent chord area
	weight float64 // plf
}

var kJoists = map[string]kJoist{
	"12K3":   {depth: 12, wll360: 214, area: 0.80, weight: 5.7},
	"14K4":   {depth: 14, wll360: 246, area: 0.98, weight: 6.7},
	"16K5":   {depth: 16, wll360: 271, area: 1.16, weight: 7.5},
	"18K7":   {depth: 18, wll360: 322, area: 1.53, weight: 9.0},
	"20K7":   {depth: 20, wll360: 331, area: 1.57, weight: 9.3},
	"22K9":   {depth: 22, wll360: 386, area: 1.97, weight: 11.3},
	"24K9":   {depth: 24, wll360: 398, area: 2.01, weight: 12.0},
	"16KCS2": {depth: 16, wll360: 264, area: 1.22, weight: 8.1},
	"18KCS3": {depth: 18, wll360: 340, area: 1.71, weight: 10.0},
}

var (
	wShapePattern = regexp.MustCompile(`(?i)^w[0-9]+x[0-9]+$`)
	kJoistPattern = regexp.MustCompile(`(?i)^[0-9]+k(cs)?[0-9]+$`)
)

// Resolve looks up the section properties for a W-shape or SJI joist
// designation. Joist inertia is span-dependent, so the member span in feet
// is required. Unknown designations fail with a *LookupError.
func Resolve(designation string, span float64) (Properties, error) {
	des := strings.ToUpper(strings.TrimSpace(designation))

	switch {
	case wShapePattern.MatchString(des):
		shape, ok := wShapes[des]
		if !ok {
			return Properties{}, &LookupError{Designation: des}
		}
		return Properties{
			Designation:     des,
			MomentOfInertia: shape.ix,
			Area:            shape.area,
			Weight:          shape.weight,
			Modulus:         SteelE,
		}, nil

	case kJoistPattern.MatchString(des):
		joist, ok := kJoists[des]
		if !ok {
			return Properties{}, &LookupError{Designation: des}
		}
		if span <= 0 {
			return Properties{}, fmt.Errorf("joist %s requires a positive span to resolve inertia, got %.2f ft", des, span)
		}
		return Properties{
			Designation:     des,
			MomentOfInertia: joistInertia(joist, span),
			Area:            joist.area,
			Weight:          joist.weight,
			Modulus:         SteelE,
		}, nil
	}

	return Properties{}, &LookupError{Designation: des}
}

// joistInertia applies the SJI effective moment of inertia approximation.
func joistInertia(j kJoist, span float64) float64 {
	l := span - 0.33
	if l <= 0 {
		l = span
	}
	return 26.767e-6 * j.wll360 * l * l * l
}

// Designations lists every catalog entry, W-shapes first, both sorted.
func Designations() []string {
	shapes := make([]string, 0, len(wShapes))
	for des := range wShapes {
		shapes = append(shapes, des)
	}
	sort.Strings(shapes)

	joists := make([]string, 0, len(kJoists))
	for des := range kJoists {
		joists = append(joists, des)
	}
	sort.Strings(joists)

	return append(shapes, joists...)
}

// LookupError reports a designation missing from the section catalog.
type LookupError struct {
	Designation string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("unknown section designation %q: expected a W-shape, K-joist, or KCS-joist", e.Designation)
}

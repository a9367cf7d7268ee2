package ponding

import "math"

// Verdict is the outcome of a ponding stability run.
type Verdict int

const (
	// Converged means deflection stabilized: the member is ponding-stable
	// under the given scenario.
	Converged Verdict = iota
	// Diverged means deflection grew without bound: the member is
	// ponding-unstable under the given scenario.
	Diverged
	// IndeterminateAtLimit means the iteration cap was reached without
	// satisfying either rule. It is a first-class outcome, not an error,
	// and must not be mistaken for a passing result.
	IndeterminateAtLimit
)

func (v Verdict) String() string {
	switch v {
	case Converged:
		return "converged"
	case Diverged:
		return "diverged"
	case IndeterminateAtLimit:
		return "indeterminate-at-limit"
	}
	return "unknown"
}

// deflectionFloor is the numeric floor below which a max deflection is
// treated as zero when forming growth ratios, so a rigid member does not
// divide by zero and does not register spurious growth.
const deflectionFloor = 1e-9

// Cycle records the outcome of one iteration cycle. The history is an
// append-only log; entries are never mutated after append.
type Cycle struct {
	Index         int     // 0-based iteration index
	MaxDeflection float64 // in
}

// Classify applies the termination rule to an iteration history. It is
// pure: the same history and config always produce the same answer. The
// second return value reports whether a verdict was reached; when it is
// false the loop continues.
//
// The rule, evaluated on the two most recent entries:
//   - relative change below Tolerance: Converged;
//   - growth at or above DivergenceRatio for DivergenceCycles consecutive
//     cycles: Diverged;
//   - limit reached with neither satisfied: IndeterminateAtLimit.
func Classify(history []Cycle, cfg Config, limitReached bool) (Verdict, bool) {
	n := len(history)
	if n < 2 {
		// The first cycle always proceeds to the second.
		if limitReached {
			return IndeterminateAtLimit, true
		}
		return 0, false
	}

	delta := growth(history[n-1].MaxDeflection, history[n-2].MaxDeflection)
	if math.Abs(delta) < cfg.Tolerance {
		return Converged, true
	}

	if n >= cfg.DivergenceCycles+1 {
		diverged := true
		for k := 0; k < cfg.DivergenceCycles; k++ {
			d := growth(history[n-1-k].MaxDeflection, history[n-2-k].MaxDeflection)
			if d < cfg.DivergenceRatio {
				diverged = false
				break
			}
		}
		if diverged {
			return Diverged, true
		}
	}

	if limitReached {
		return IndeterminateAtLimit, true
	}
	return 0, false
}

// growth returns the relative change from prev to cur. A prev below the
// numeric floor counts as growth only if cur itself is above the floor.
func growth(cur, prev float64) float64 {
	if prev < deflectionFloor {
		if cur < deflectionFloor {
			return 0
		}
		return math.Inf(1)
	}
	return (cur - prev) / prev
}

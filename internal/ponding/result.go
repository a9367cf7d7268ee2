package ponding

// AnalysisResult is the immutable outcome of a ponding run. It is the only
// object exposed to downstream consumers; the iteration state it was
// derived from is discarded when the run ends.
type AnalysisResult struct {
	Verdict Verdict

	// AmplificationFactor is the ratio of the final max deflection to the
	// first-cycle (dead plus static water) max deflection. It is zero on
	// Diverged, where no stable final deflection exists.
	AmplificationFactor float64

	FinalMaxDeflection float64 // in
	IterationsRun      int
	History            []Cycle
}

func newResult(verdict Verdict, history []Cycle) *AnalysisResult {
	final := history[len(history)-1].MaxDeflection
	result := &AnalysisResult{
		Verdict:            verdict,
		FinalMaxDeflection: final,
		IterationsRun:      len(history),
		History:            append([]Cycle(nil), history...),
	}
	if verdict != Diverged {
		reference := history[0].MaxDeflection
		if reference < deflectionFloor {
			result.AmplificationFactor = 1.0
		} else {
			result.AmplificationFactor = final / reference
		}
	}
	return result
}

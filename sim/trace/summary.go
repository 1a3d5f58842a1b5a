package trace

// TraceSummary aggregates statistics from a Trace.
type TraceSummary struct {
	Algorithm       string
	Size            int
	TotalSteps      int
	Comparisons     int
	Mutations       int
	Partitions      int
	Pivots          int
	TotalWrites     int
	TouchedIndices  int         // distinct positions highlighted by any step
	IndexHeat       map[int]int // position → number of steps highlighting it
	HottestIndex    int         // -1 when no step highlights anything
	HottestIndexHit int
}

// Summarize computes aggregate statistics from a Trace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(t *Trace) *TraceSummary {
	summary := &TraceSummary{
		IndexHeat:    make(map[int]int),
		HottestIndex: -1,
	}
	if t == nil {
		return summary
	}

	summary.Algorithm = t.Algorithm
	summary.Size = t.Size
	summary.TotalSteps = len(t.Steps)
	for _, s := range t.Steps {
		switch s.Kind {
		case KindCompare:
			summary.Comparisons++
		case KindMutate:
			summary.Mutations++
		case KindPartition:
			summary.Partitions++
		case KindPivot:
			summary.Pivots++
		}
		summary.TotalWrites += len(s.Writes)
		for _, idx := range s.Highlighted() {
			summary.IndexHeat[idx]++
		}
	}

	for idx, hits := range summary.IndexHeat {
		// Lowest index wins ties so the result does not depend on map order.
		if hits > summary.HottestIndexHit || (hits == summary.HottestIndexHit && idx < summary.HottestIndex) {
			summary.HottestIndex = idx
			summary.HottestIndexHit = hits
		}
	}
	summary.TouchedIndices = len(summary.IndexHeat)

	return summary
}

// Package stats computes latency summaries over a rolling window of probe
// samples. Calculation is a pure function of the window contents; nothing is
// carried between calls.
package stats

import "sort"

// Statistics summarizes the successful latency samples of one probe window.
// Percentiles are computed only over samples that carry a latency value;
// SuccessRate uses the full window length (failures included) as denominator,
// so it decays as old successes age out of the window.
type Statistics struct {
	Mean        float64
	Median      float64
	Min         float64
	Max         float64
	P25         float64
	P75         float64
	P90         float64
	P95         float64
	P99         float64
	SuccessRate float64
	TotalCount  int
}

// Calculate computes a Statistics summary from the successful latency samples
// (milliseconds) and the total number of attempts in the window. totalCount
// counts every entry in the window, failures included. With no successful
// samples all latency fields are zero and only SuccessRate/TotalCount carry
// information.
func Calculate(samples []float64, totalCount int) Statistics {
	s := Statistics{TotalCount: totalCount}
	if totalCount > 0 {
		s.SuccessRate = float64(len(samples)) / float64(totalCount) * 100
	}
	if len(samples) == 0 {
		return s
	}

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range samples {
		sum += v
	}

	s.Mean = sum / float64(len(samples))
	s.Median = Percentile(sorted, 50)
	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.P25 = Percentile(sorted, 25)
	s.P75 = Percentile(sorted, 75)
	s.P90 = Percentile(sorted, 90)
	s.P95 = Percentile(sorted, 95)
	s.P99 = Percentile(sorted, 99)

	return s
}

// Percentile returns the p-th percentile of sorted (ascending) values using
// linear interpolation: rank = (p/100)·(n−1); fractional ranks interpolate
// between the neighboring elements. An empty slice yields 0 and a single
// sample is returned for every p.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}

	rank := (p / 100) * float64(len(sorted)-1)
	lower := int(rank)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := rank - float64(lower)
	if weight == 0 {
		return sorted[lower]
	}
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

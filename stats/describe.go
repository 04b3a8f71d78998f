package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Description holds descriptive statistics of a sample.
type Description struct {
	N      int
	Mean   float64
	Std    float64 // sample standard deviation (n-1 denominator)
	Min    float64
	Max    float64
	Median float64
}

// Describe summarizes values. Empty input yields N == 0 and NaN statistics.
func Describe(values []float64) Description {
	n := len(values)
	if n == 0 {
		nan := math.NaN()
		return Description{Mean: nan, Std: nan, Min: nan, Max: nan, Median: nan}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	std := 0.0
	if n > 1 {
		std = stat.StdDev(values, nil)
	}

	return Description{
		N:      n,
		Mean:   stat.Mean(values, nil),
		Std:    std,
		Min:    floats.Min(values),
		Max:    floats.Max(values),
		Median: median(sorted),
	}
}

// median expects sorted input.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

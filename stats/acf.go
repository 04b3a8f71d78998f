// Package stats provides statistical helpers for line fits and their residuals.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// ACF calculates the sample autocorrelation of values.
// Returns ACF values for lags 0 to maxLag, or nil for constant or empty input.
func ACF(values []float64, maxLag int) []float64 {
	n := len(values)
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 0 {
		return nil
	}

	mean := stat.Mean(values, nil)
	variance := 0.0
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}

	if variance == 0 {
		return nil
	}

	acf := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		sum := 0.0
		for i := k; i < n; i++ {
			sum += (values[i] - mean) * (values[i-k] - mean)
		}
		acf[k] = sum / variance
	}

	return acf
}

// ACFResult represents the result of ACF analysis.
type ACFResult struct {
	Lags       []int
	Values     []float64
	ConfBounds float64 // approximate 95% bounds, ±1.96/sqrt(n)
}

// ACFWithConfidence calculates ACF together with approximate 95% bounds.
func ACFWithConfidence(values []float64, maxLag int) *ACFResult {
	acf := ACF(values, maxLag)
	if acf == nil {
		return nil
	}

	lags := make([]int, len(acf))
	for i := range lags {
		lags[i] = i
	}

	return &ACFResult{
		Lags:       lags,
		Values:     acf,
		ConfBounds: 1.96 / math.Sqrt(float64(len(values))),
	}
}

// SignificantLags returns the lags (excluding lag 0) whose values exceed confBound.
func SignificantLags(values []float64, confBound float64) []int {
	var significant []int
	for i := 1; i < len(values); i++ {
		if math.Abs(values[i]) > confBound {
			significant = append(significant, i)
		}
	}
	return significant
}

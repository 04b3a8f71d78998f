package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// JarqueBeraResult represents the result of a Jarque-Bera normality test.
type JarqueBeraResult struct {
	Statistic float64
	PValue    float64
	Skewness  float64
	Kurtosis  float64 // Pearson kurtosis, 3 for a normal distribution
}

// JarqueBera tests whether values have the skewness and kurtosis of a normal
// distribution. Moments are the biased (population) estimates.
// Returns nil for fewer than three values or constant input.
func JarqueBera(values []float64) *JarqueBeraResult {
	n := len(values)
	if n < 3 {
		return nil
	}

	m2 := stat.Moment(2, values, nil)
	if m2 == 0 {
		return nil
	}
	m3 := stat.Moment(3, values, nil)
	m4 := stat.Moment(4, values, nil)

	skew := m3 / math.Pow(m2, 1.5)
	kurt := m4 / (m2 * m2)

	jb := float64(n) / 6 * (skew*skew + (kurt-3)*(kurt-3)/4)

	return &JarqueBeraResult{
		Statistic: jb,
		PValue:    chiSquaredSurvival(jb, 2),
		Skewness:  skew,
		Kurtosis:  kurt,
	}
}

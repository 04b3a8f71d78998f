package stats

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// minPortmanteauObs is the smallest sample the portmanteau tests accept.
const minPortmanteauObs = 10

// LjungBoxResult represents the result of a Ljung-Box test.
type LjungBoxResult struct {
	Statistic float64
	PValue    float64
	Lags      int
	DOF       int // Degrees of freedom
}

// LjungBox performs the Ljung-Box test for autocorrelation in residuals.
// The null hypothesis is that there is no autocorrelation up to the given lag.
// fitdf is the number of parameters estimated by the model (2 for a line fit).
// Returns nil when fewer than 10 residuals are given or lags < 1.
func LjungBox(residuals []float64, lags, fitdf int) *LjungBoxResult {
	n := len(residuals)
	if n < minPortmanteauObs || lags < 1 {
		return nil
	}

	if lags >= n {
		lags = n - 1
	}

	acf := ACF(residuals, lags)
	if acf == nil {
		return nil
	}

	q := 0.0
	for k := 1; k <= lags; k++ {
		q += (acf[k] * acf[k]) / float64(n-k)
	}
	q *= float64(n * (n + 2))

	dof := portmanteauDOF(lags, fitdf)

	return &LjungBoxResult{
		Statistic: q,
		PValue:    chiSquaredSurvival(q, dof),
		Lags:      lags,
		DOF:       dof,
	}
}

// BoxPierceResult represents the result of a Box-Pierce test.
type BoxPierceResult struct {
	Statistic float64
	PValue    float64
	Lags      int
	DOF       int
}

// BoxPierce performs the Box-Pierce test for autocorrelation.
// Same contract as LjungBox with the unweighted Q statistic.
func BoxPierce(residuals []float64, lags, fitdf int) *BoxPierceResult {
	n := len(residuals)
	if n < minPortmanteauObs || lags < 1 {
		return nil
	}

	if lags >= n {
		lags = n - 1
	}

	acf := ACF(residuals, lags)
	if acf == nil {
		return nil
	}

	q := 0.0
	for k := 1; k <= lags; k++ {
		q += acf[k] * acf[k]
	}
	q *= float64(n)

	dof := portmanteauDOF(lags, fitdf)

	return &BoxPierceResult{
		Statistic: q,
		PValue:    chiSquaredSurvival(q, dof),
		Lags:      lags,
		DOF:       dof,
	}
}

func portmanteauDOF(lags, fitdf int) int {
	dof := lags - fitdf
	if dof < 1 {
		dof = 1
	}
	return dof
}

// chiSquaredSurvival returns P(X > x) for a chi-squared variable with k degrees of freedom.
func chiSquaredSurvival(x float64, k int) float64 {
	if x <= 0 {
		return 1
	}
	return distuv.ChiSquared{K: float64(k)}.Survival(x)
}

// DurbinWatsonResult holds the Durbin-Watson statistic of a residual series.
type DurbinWatsonResult struct {
	// Statistic lies in [0, 4]; values well below 2 indicate positively
	// correlated neighbouring residuals, values above 2 alternating ones.
	Statistic float64
}

// PositiveAutocorrelation reports whether the statistic is below the
// conventional lower threshold of 1.5.
func (d *DurbinWatsonResult) PositiveAutocorrelation() bool {
	return d.Statistic < 1.5
}

// DurbinWatson computes sum((e[i]-e[i-1])^2) / sum(e[i]^2) over the residuals
// in observation order. It is nil for fewer than two residuals or an exact fit.
func DurbinWatson(residuals []float64) *DurbinWatsonResult {
	if len(residuals) < 2 {
		return nil
	}

	ss := floats.Dot(residuals, residuals)
	if ss == 0 {
		return nil
	}

	diffs := make([]float64, len(residuals)-1)
	floats.SubTo(diffs, residuals[1:], residuals[:len(residuals)-1])

	return &DurbinWatsonResult{Statistic: floats.Dot(diffs, diffs) / ss}
}

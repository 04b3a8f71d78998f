package regression

import (
	"github.com/sartorproj/golinfit/stats"
)

// DefaultDiagnosticLags is the maximum lag of the Ljung-Box residual test.
const DefaultDiagnosticLags = 10

// fittedParams is the number of estimated parameters, intercept and slope.
const fittedParams = 2

// Diagnostics collects residual checks of a fit. Tests that need more
// residuals than available are nil.
type Diagnostics struct {
	Residuals    stats.Description
	DurbinWatson *stats.DurbinWatsonResult
	LjungBox     *stats.LjungBoxResult
	BoxPierce    *stats.BoxPierceResult
	JarqueBera   *stats.JarqueBeraResult

	// ACF of the residuals up to DefaultDiagnosticLags; nil for an exact fit.
	ACF *stats.ACFResult
	// SignificantLags lists lags whose autocorrelation exceeds the ACF bounds.
	SignificantLags []int
}

// Diagnostics runs the residual checks on the residuals in input order.
func (r *Result) Diagnostics() *Diagnostics {
	d := &Diagnostics{
		Residuals:    stats.Describe(r.residuals),
		DurbinWatson: stats.DurbinWatson(r.residuals),
		LjungBox:     stats.LjungBox(r.residuals, DefaultDiagnosticLags, fittedParams),
		BoxPierce:    stats.BoxPierce(r.residuals, DefaultDiagnosticLags, fittedParams),
		JarqueBera:   stats.JarqueBera(r.residuals),
		ACF:          stats.ACFWithConfidence(r.residuals, DefaultDiagnosticLags),
	}
	if d.ACF != nil {
		d.SignificantLags = stats.SignificantLags(d.ACF.Values, d.ACF.ConfBounds)
	}

	return d
}

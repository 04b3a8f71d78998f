// Package stats provides statistical helpers for line fits and their residuals.
//
// # Critical Values
//
// Two-sided Student's t critical values and p-values:
//
//	tval, err := stats.TCritical(0.05, n-2)
//	p := stats.TwoSidedPValue(tstat, n-2)
//
// # Residual Diagnostics
//
// Test residuals for autocorrelation:
//
//	// Ljung-Box test; fitdf is 2 for intercept and slope
//	lb := stats.LjungBox(residuals, 5, 2)
//	if lb != nil && lb.PValue > 0.05 {
//	    // no evidence of autocorrelation
//	}
//
//	// Durbin-Watson statistic, about 2 without autocorrelation
//	dw := stats.DurbinWatson(residuals)
//
// Test residuals for normality:
//
//	jb := stats.JarqueBera(residuals)
//	// jb.Skewness, jb.Kurtosis, jb.PValue
//
// Tests that need more data than supplied return nil rather than an error.
package stats

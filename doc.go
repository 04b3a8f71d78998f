// Package golinfit fits straight lines by ordinary least squares and reports
// how much to trust them.
//
// GoLinFit computes the closed-form least-squares line y = a + b*x for paired
// samples, with confidence intervals for intercept and slope, residual
// statistics and prediction intervals for new observations. The estimator is
// a pure function; printing and exporting results are separate packages.
//
// # Features
//
//   - Least-squares line fit with confidence intervals (Student's t)
//   - Prediction intervals and confidence bands for the mean response
//   - Goodness of fit: R², F test, coefficient t tests
//   - Residual diagnostics (Durbin-Watson, Ljung-Box, Jarque-Bera)
//   - Paired samples from CSV with explicit missing-value handling
//   - Reference datasets (Altman, Anscombe's quartet)
//
// # Quick Start
//
//	pair, _ := dataset.Altman().DropMissing()
//	res, err := regression.FitLine(pair.X, pair.Y,
//	    regression.WithAlpha(0.01),
//	    regression.WithNewX(1, 4.5),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report.WriteText(os.Stdout, "altman", res)
//
// # Packages
//
//   - regression: the line fit, predictions, bands and summaries
//   - stats: t critical values and residual tests
//   - dataset: paired samples, CSV loading and built-in data
//   - report: text, JSON and CSV output
//   - errs: sentinel errors
//
// # References
//
//   - Altman, D. G. (1991). Practical Statistics for Medical Research
//   - Anscombe, F. J. (1973). Graphs in Statistical Analysis
package golinfit

// Package regression fits straight lines by ordinary least squares.
//
// FitLine computes the closed-form fit of y = a + b*x together with
// confidence intervals for intercept and slope, residual statistics and,
// on request, prediction intervals for new x-values.
//
// # Basic Usage
//
//	res, err := regression.FitLine(x, y,
//	    regression.WithAlpha(0.01),
//	    regression.WithNewX(1, 4.5),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("a=%.4f %v, b=%.4f %v\n",
//	    res.Intercept, res.InterceptCI, res.Slope, res.SlopeCI)
//	for _, p := range res.Predictions() {
//	    fmt.Printf("x=%g: %.3f [%.3f, %.3f]\n", p.X, p.Fitted, p.Lower, p.Upper)
//	}
//
// # Errors
//
// Invalid input (fewer than three points, unequal lengths, NaN or Inf
// values, constant x, alpha outside (0, 1)) fails with an error wrapping
// errs.ErrInvalidInput. Nothing is filtered silently.
//
// # Bands and Summaries
//
// A Result can be evaluated further without refitting:
//
//	band, _ := res.DataBand()       // 100 points over the data range
//	summary := res.Summary()        // R², F test, coefficient t tests
//	diag := res.Diagnostics()       // Durbin-Watson, Ljung-Box, Jarque-Bera
//
// A Result never changes after FitLine returns and is safe for concurrent use.
package regression

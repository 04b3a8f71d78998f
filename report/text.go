// Package report renders line fits for people and for plotting tools.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/sartorproj/golinfit/regression"
)

const ruleWidth = 64

// WriteText writes a human-readable report of res titled with name.
// Predictions are included when the fit carries any.
func WriteText(w io.Writer, name string, res *regression.Result) error {
	pw := &printer{w: w}

	rule := strings.Repeat("=", ruleWidth)
	pw.printf("%s\n%s\n%s\n", rule, name, rule)

	level := (1 - res.Alpha) * 100
	pw.printf("Fit:        y = %.4f + %.4f x   (n=%d)\n", res.Intercept, res.Slope, res.N)
	pw.printf("Intercept:  %.4f ± %.4f   %.1f%% CI [%.4f, %.4f]\n",
		res.Intercept, res.TCritical*res.InterceptSE, level, res.InterceptCI.Lower, res.InterceptCI.Upper)
	pw.printf("Slope:      %.4f ± %.4f   %.1f%% CI [%.4f, %.4f]\n",
		res.Slope, res.TCritical*res.SlopeSE, level, res.SlopeCI.Lower, res.SlopeCI.Upper)
	pw.printf("Residuals:  variance=%.4f  sd=%.4f\n", res.ResidualVariance, res.ResidualSD)
	pw.printf("alpha=%.3f  t=%.4f  df=%d\n", res.Alpha, res.TCritical, res.DF)
	if pw.err != nil {
		return pw.err
	}

	if err := writeSummary(w, res.Summary()); err != nil {
		return err
	}
	if err := writeDiagnostics(w, res.Diagnostics()); err != nil {
		return err
	}

	if preds := res.Predictions(); len(preds) > 0 {
		return writePredictions(w, res, preds)
	}

	return nil
}

func writeSummary(w io.Writer, s *regression.Summary) error {
	pw := &printer{w: w}
	pw.printf("\nR²=%.4f  adj. R²=%.4f  F(1,%d)=%.4f  p=%.4g\n",
		s.RSquared, s.AdjRSquared, s.DF, s.FStatistic, s.FPValue)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	tp := &printer{w: tw}
	tp.printf("\tcoef\tstd err\tt\tP>|t|\tlower\tupper\t\n")
	for _, c := range []regression.CoefficientTest{s.Intercept, s.Slope} {
		tp.printf("%s\t%.4f\t%.4f\t%.3f\t%.3f\t%.4f\t%.4f\t\n",
			c.Name, c.Estimate, c.StdErr, c.TStat, c.PValue, c.CI.Lower, c.CI.Upper)
	}
	if tp.err != nil {
		return tp.err
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	return pw.err
}

func writeDiagnostics(w io.Writer, d *regression.Diagnostics) error {
	pw := &printer{w: w}
	pw.printf("\nResidual diagnostics:\n")

	if d.DurbinWatson != nil {
		pw.printf("  Durbin-Watson:  %.4f\n", d.DurbinWatson.Statistic)
	}
	if d.LjungBox != nil {
		pw.printf("  Ljung-Box:      Q=%.4f  lags=%d  p=%.4f\n", d.LjungBox.Statistic, d.LjungBox.Lags, d.LjungBox.PValue)
	}
	if d.BoxPierce != nil {
		pw.printf("  Box-Pierce:     Q=%.4f  lags=%d  p=%.4f\n", d.BoxPierce.Statistic, d.BoxPierce.Lags, d.BoxPierce.PValue)
	}
	if d.ACF != nil {
		pw.printf("  ACF bounds:     ±%.4f  significant lags: %v\n", d.ACF.ConfBounds, d.SignificantLags)
	}
	if d.JarqueBera != nil {
		pw.printf("  Jarque-Bera:    JB=%.4f  p=%.4f  skew=%.4f  kurtosis=%.4f\n",
			d.JarqueBera.Statistic, d.JarqueBera.PValue, d.JarqueBera.Skewness, d.JarqueBera.Kurtosis)
	}

	return pw.err
}

func writePredictions(w io.Writer, res *regression.Result, preds []regression.Prediction) error {
	pw := &printer{w: w}
	pw.printf("\nPredictions (%.1f%% prediction interval):\n", (1-res.Alpha)*100)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	tp := &printer{w: tw}
	tp.printf("x\tfitted\tse fit\tse predict\tlower\tupper\t\n")
	for _, p := range preds {
		tp.printf("%g\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t\n",
			p.X, p.Fitted, res.SEFit(p.X), res.SEPredict(p.X), p.Lower, p.Upper)
	}
	if pw.err != nil {
		return pw.err
	}
	if tp.err != nil {
		return tp.err
	}

	return tw.Flush()
}

// printer remembers the first write error so formatting code can stay linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Package regression fits straight lines by ordinary least squares.
package regression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/golinfit/errs"
	"github.com/sartorproj/golinfit/stats"
)

// MinSamples is the smallest sample FitLine accepts; n-2 degrees of freedom
// must be positive.
const MinSamples = 3

// Interval is a closed interval [Lower, Upper].
type Interval struct {
	Lower float64
	Upper float64
}

// Width returns Upper - Lower.
func (iv Interval) Width() float64 {
	return iv.Upper - iv.Lower
}

// Contains reports whether v lies within the interval.
func (iv Interval) Contains(v float64) bool {
	return v >= iv.Lower && v <= iv.Upper
}

func symmetric(center, halfWidth float64) Interval {
	return Interval{Lower: center - halfWidth, Upper: center + halfWidth}
}

// Prediction is the fitted value at X with its prediction interval.
type Prediction struct {
	X      float64
	Fitted float64
	Lower  float64
	Upper  float64
}

// Result is an immutable snapshot of a line fit y = Intercept + Slope*x.
// Slices are only reachable through accessors that return copies.
type Result struct {
	N           int
	Intercept   float64
	Slope       float64
	InterceptCI Interval
	SlopeCI     Interval
	InterceptSE float64
	SlopeSE     float64

	ResidualVariance float64 // SSE / (n-2)
	ResidualSD       float64

	Alpha     float64
	TCritical float64 // two-sided Student's t value at Alpha
	DF        int     // n - 2

	MeanX float64
	MeanY float64
	Sxx   float64 // corrected sum of squares of x

	x           []float64
	y           []float64
	residuals   []float64
	predictions []Prediction
}

// FitLine fits a least-squares line to the paired samples x and y.
//
// x and y must have equal length n >= 3, contain only finite values and x
// must not be constant. Every failure wraps errs.ErrInvalidInput. Missing
// values are not filtered here; see dataset.Pair.DropMissing.
func FitLine(x, y []float64, opts ...Option) (*Result, error) {
	cfg := defaultConfig()
	if err := applyOptions(cfg, opts); err != nil {
		return nil, err
	}

	if err := validateSample(x, y); err != nil {
		return nil, err
	}
	if err := validateFinite("new x", cfg.newX); err != nil {
		return nil, err
	}

	n := len(x)
	nf := float64(n)

	if floats.Min(x) == floats.Max(x) {
		return nil, fmt.Errorf("%w: x has zero variance, slope is undefined", errs.ErrInvalidInput)
	}

	meanX := stat.Mean(x, nil)
	meanY := stat.Mean(y, nil)

	// Corrected sums from centered data; the raw-sum form cancels
	// catastrophically when x sits far from zero.
	dx := append([]float64(nil), x...)
	floats.AddConst(-meanX, dx)
	dy := append([]float64(nil), y...)
	floats.AddConst(-meanY, dy)

	sxx := floats.Dot(dx, dx)
	sxy := floats.Dot(dx, dy)
	if math.IsInf(sxx, 0) || math.IsNaN(sxx) || math.IsInf(sxy, 0) || math.IsNaN(sxy) {
		return nil, fmt.Errorf("%w: sums of squares overflow float64", errs.ErrInvalidInput)
	}
	if !(sxx > 0) {
		return nil, fmt.Errorf("%w: x has zero variance, slope is undefined", errs.ErrInvalidInput)
	}

	slope := sxy / sxx
	intercept := meanY - slope*meanX

	residuals := make([]float64, n)
	for i := range x {
		residuals[i] = y[i] - (intercept + slope*x[i])
	}

	df := n - 2
	variance := floats.Dot(residuals, residuals) / float64(df)
	sd := math.Sqrt(variance)

	seSlope := sd / math.Sqrt(sxx)
	seIntercept := sd * math.Sqrt(1/nf+meanX*meanX/sxx)

	tval, err := stats.TCritical(cfg.alpha, df)
	if err != nil {
		return nil, err
	}

	r := &Result{
		N:                n,
		Intercept:        intercept,
		Slope:            slope,
		InterceptCI:      symmetric(intercept, tval*seIntercept),
		SlopeCI:          symmetric(slope, tval*seSlope),
		InterceptSE:      seIntercept,
		SlopeSE:          seSlope,
		ResidualVariance: variance,
		ResidualSD:       sd,
		Alpha:            cfg.alpha,
		TCritical:        tval,
		DF:               df,
		MeanX:            meanX,
		MeanY:            meanY,
		Sxx:              sxx,
		x:                append([]float64(nil), x...),
		y:                append([]float64(nil), y...),
		residuals:        residuals,
	}

	if len(cfg.newX) > 0 {
		r.predictions = r.predict(cfg.newX)
	}

	return r, nil
}

func validateSample(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: x has %d values, y has %d", errs.ErrInvalidInput, len(x), len(y))
	}
	if len(x) < MinSamples {
		return fmt.Errorf("%w: %d samples, need at least %d", errs.ErrInvalidInput, len(x), MinSamples)
	}
	if err := validateFinite("x", x); err != nil {
		return err
	}

	return validateFinite("y", y)
}

func validateFinite(name string, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s[%d] is not finite (%v)", errs.ErrInvalidInput, name, i, v)
		}
	}

	return nil
}

// Fit returns the fitted value a + b*x0.
func (r *Result) Fit(x0 float64) float64 {
	return r.Intercept + r.Slope*x0
}

// SEFit returns the standard error of the mean response at x0.
func (r *Result) SEFit(x0 float64) float64 {
	d := x0 - r.MeanX
	return r.ResidualSD * math.Sqrt(1/float64(r.N)+d*d/r.Sxx)
}

// SEPredict returns the standard error of a single new observation at x0.
func (r *Result) SEPredict(x0 float64) float64 {
	d := x0 - r.MeanX
	return r.ResidualSD * math.Sqrt(1+1/float64(r.N)+d*d/r.Sxx)
}

// ConfidenceInterval returns the interval for the mean response at x0.
func (r *Result) ConfidenceInterval(x0 float64) Interval {
	return symmetric(r.Fit(x0), r.TCritical*r.SEFit(x0))
}

// PredictionInterval returns the interval for a single new observation at x0.
func (r *Result) PredictionInterval(x0 float64) Interval {
	return symmetric(r.Fit(x0), r.TCritical*r.SEPredict(x0))
}

// Predict returns fitted values and prediction intervals at newX.
// An empty newX yields an empty result.
func (r *Result) Predict(newX ...float64) ([]Prediction, error) {
	if err := validateFinite("new x", newX); err != nil {
		return nil, err
	}

	return r.predict(newX), nil
}

func (r *Result) predict(newX []float64) []Prediction {
	out := make([]Prediction, len(newX))
	for i, x0 := range newX {
		iv := r.PredictionInterval(x0)
		out[i] = Prediction{
			X:      x0,
			Fitted: r.Fit(x0),
			Lower:  iv.Lower,
			Upper:  iv.Upper,
		}
	}

	return out
}

// Predictions returns the predictions requested with WithNewX, or nil.
func (r *Result) Predictions() []Prediction {
	if r.predictions == nil {
		return nil
	}
	return append([]Prediction(nil), r.predictions...)
}

// Residuals returns y_i - (a + b*x_i) in input order.
func (r *Result) Residuals() []float64 {
	return append([]float64(nil), r.residuals...)
}

// X returns a copy of the fitted x-values.
func (r *Result) X() []float64 {
	return append([]float64(nil), r.x...)
}

// Y returns a copy of the fitted y-values.
func (r *Result) Y() []float64 {
	return append([]float64(nil), r.y...)
}

// FittedValues returns a + b*x_i for every sample.
func (r *Result) FittedValues() []float64 {
	out := make([]float64, len(r.x))
	for i, v := range r.x {
		out[i] = r.Fit(v)
	}
	return out
}

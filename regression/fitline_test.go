package regression

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sartorproj/golinfit/errs"
)

// altmanX and altmanY are the 23 complete pairs of the Altman reference
// dataset (the 16th pair has a missing y and is left out).
var (
	altmanX = []float64{
		15.3, 10.8, 8.1, 19.5, 7.2, 5.3, 9.3, 11.1, 7.5, 12.2,
		6.7, 5.2, 19.0, 15.1, 6.7, 4.2, 10.3, 12.5, 16.1,
		13.3, 4.9, 8.8, 9.5,
	}
	altmanY = []float64{
		1.76, 1.34, 1.27, 1.47, 1.27, 1.49, 1.31, 1.09, 1.18, 1.22,
		1.25, 1.19, 1.95, 1.28, 1.52, 1.12, 1.37, 1.19, 1.05,
		1.32, 1.03, 1.12, 1.70,
	}
)

func fitAltman(t *testing.T, opts ...Option) *Result {
	t.Helper()

	res, err := FitLine(altmanX, altmanY, opts...)
	require.NoError(t, err)
	require.NotNil(t, res)

	return res
}

func TestFitLine_ReferenceDataset(t *testing.T) {
	res := fitAltman(t, WithAlpha(0.01))

	require.Equal(t, 23, res.N)
	require.Equal(t, 21, res.DF)
	require.Equal(t, 0.01, res.Alpha)
	require.InDelta(t, 1.09781487777, res.Intercept, 1e-10)
	require.InDelta(t, 0.02196252226, res.Slope, 1e-10)
	require.InDelta(t, 0.046956966704, res.ResidualVariance, 1e-10)
	require.InDelta(t, 0.216695562263, res.ResidualSD, 1e-10)
	require.InDelta(t, 0.117481183724, res.InterceptSE, 1e-10)
	require.InDelta(t, 0.010453582317, res.SlopeSE, 1e-10)
	require.InDelta(t, 2.831360, res.TCritical, 1e-5)

	require.InDelta(t, res.Slope-res.TCritical*res.SlopeSE, res.SlopeCI.Lower, 1e-12)
	require.InDelta(t, res.Slope+res.TCritical*res.SlopeSE, res.SlopeCI.Upper, 1e-12)
	require.InDelta(t, res.Intercept-res.TCritical*res.InterceptSE, res.InterceptCI.Lower, 1e-12)
	require.InDelta(t, res.Intercept+res.TCritical*res.InterceptSE, res.InterceptCI.Upper, 1e-12)

	// At the 1% level the slope is not distinguishable from zero.
	require.True(t, res.SlopeCI.Contains(0))
	require.Nil(t, res.Predictions())
}

func TestFitLine_DefaultAlpha(t *testing.T) {
	res := fitAltman(t)

	require.Equal(t, DefaultAlpha, res.Alpha)
	require.InDelta(t, 2.079614, res.TCritical, 1e-5)
}

func TestFitLine_NoiselessRecovery(t *testing.T) {
	tests := []struct {
		name      string
		intercept float64
		slope     float64
		x         []float64
	}{
		{"integers", 2, 3, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{"negative slope", -1.5, -0.25, []float64{-3, -1, 0, 2, 4, 8}},
		{"fractional", 0.1, 0.7, []float64{0.3, 1.7, 2.2, 5.9, 6.1}},
		{"three points", 10, 0.5, []float64{1, 2, 4}},
		{"large offset", -1e8, 1, []float64{1e8, 1e8 + 1, 1e8 + 2, 1e8 + 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y := make([]float64, len(tt.x))
			for i, v := range tt.x {
				y[i] = tt.intercept + tt.slope*v
			}

			res, err := FitLine(tt.x, y)
			require.NoError(t, err)
			require.InDelta(t, tt.intercept, res.Intercept, 1e-12)
			require.InDelta(t, tt.slope, res.Slope, 1e-12)
			require.InDelta(t, 0.0, res.ResidualSD, 1e-7)
			for _, e := range res.Residuals() {
				require.InDelta(t, 0.0, e, 1e-12)
			}
		})
	}
}

func TestFitLine_ExactIntegerFit(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	y := []float64{2, 5, 8, 11, 14, 17, 20, 23, 26, 29}

	res, err := FitLine(x, y)
	require.NoError(t, err)
	require.Equal(t, 2.0, res.Intercept)
	require.Equal(t, 3.0, res.Slope)
	require.Equal(t, 0.0, res.ResidualSD)
	require.Equal(t, Interval{Lower: 3, Upper: 3}, res.SlopeCI)
}

func TestFitLine_LargeOffset(t *testing.T) {
	res, err := FitLine([]float64{1e8, 1e8 + 1, 1e8 + 2, 1e8 + 3}, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, 5.0, res.Sxx)
	require.Equal(t, 1.0, res.Slope)
	require.InDelta(t, -99999999.0, res.Intercept, 1e-6)
}

func TestFitLine_OverflowMessage(t *testing.T) {
	_, err := FitLine([]float64{1e200, 2e200, 3e200}, []float64{1, 2, 3})
	require.ErrorIs(t, err, errs.ErrInvalidInput)
	require.ErrorContains(t, err, "overflow")
	require.NotContains(t, err.Error(), "zero variance")
}

func TestFitLine_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		y    []float64
		opts []Option
	}{
		{"empty", nil, nil, nil},
		{"two points", []float64{1, 2}, []float64{3, 4}, nil},
		{"length mismatch", []float64{1, 2, 3, 4}, []float64{1, 2, 3}, nil},
		{"constant x", []float64{2, 2, 2, 2}, []float64{1, 2, 3, 4}, nil},
		{"constant fractional x", []float64{0.1, 0.1, 0.1}, []float64{1, 2, 3}, nil},
		{"overflowing x", []float64{1e200, 2e200, 3e200}, []float64{1, 2, 3}, nil},
		{"nan in x", []float64{1, math.NaN(), 3}, []float64{1, 2, 3}, nil},
		{"nan in y", []float64{1, 2, 3}, []float64{1, 2, math.NaN()}, nil},
		{"inf in y", []float64{1, 2, 3}, []float64{math.Inf(-1), 2, 3}, nil},
		{"alpha zero", []float64{1, 2, 3}, []float64{1, 2, 4}, []Option{WithAlpha(0)}},
		{"alpha one", []float64{1, 2, 3}, []float64{1, 2, 4}, []Option{WithAlpha(1)}},
		{"alpha negative", []float64{1, 2, 3}, []float64{1, 2, 4}, []Option{WithAlpha(-0.05)}},
		{"alpha nan", []float64{1, 2, 3}, []float64{1, 2, 4}, []Option{WithAlpha(math.NaN())}},
		{"nan new x", []float64{1, 2, 3}, []float64{1, 2, 4}, []Option{WithNewX(1, math.NaN())}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := FitLine(tt.x, tt.y, tt.opts...)
			require.ErrorIs(t, err, errs.ErrInvalidInput)
			require.Nil(t, res)
		})
	}
}

func TestFitLine_WiderAlphaNarrowerIntervals(t *testing.T) {
	strict := fitAltman(t, WithAlpha(0.01), WithNewX(1, 4.5, 10, 25))
	loose := fitAltman(t, WithAlpha(0.10), WithNewX(1, 4.5, 10, 25))

	require.Less(t, loose.TCritical, strict.TCritical)
	require.Less(t, loose.InterceptCI.Width(), strict.InterceptCI.Width())
	require.Less(t, loose.SlopeCI.Width(), strict.SlopeCI.Width())

	sp := strict.Predictions()
	lp := loose.Predictions()
	require.Len(t, lp, len(sp))
	for i := range sp {
		require.Equal(t, sp[i].Fitted, lp[i].Fitted)
		require.Less(t, lp[i].Upper-lp[i].Lower, sp[i].Upper-sp[i].Lower)
	}
}

func TestFitLine_Predictions(t *testing.T) {
	res := fitAltman(t, WithAlpha(0.01), WithNewX(1, 4.5))

	preds := res.Predictions()
	require.Len(t, preds, 2)

	for _, p := range preds {
		fitted := res.Intercept + res.Slope*p.X
		half := res.TCritical * res.SEPredict(p.X)
		require.InDelta(t, fitted, p.Fitted, 1e-12)
		require.InDelta(t, fitted-half, p.Lower, 1e-12)
		require.InDelta(t, fitted+half, p.Upper, 1e-12)
		require.InDelta(t, p.Fitted-p.Lower, p.Upper-p.Fitted, 1e-12)
	}
	require.Equal(t, 1.0, preds[0].X)
	require.Equal(t, 4.5, preds[1].X)

	// Predict after the fit agrees with predictions requested up front.
	again, err := res.Predict(1, 4.5)
	require.NoError(t, err)
	require.Equal(t, preds, again)
}

func TestFitLine_WithNewXAppends(t *testing.T) {
	res := fitAltman(t, WithNewX(1), WithNewX(2, 3))

	preds := res.Predictions()
	require.Len(t, preds, 3)
	require.Equal(t, []float64{1, 2, 3}, []float64{preds[0].X, preds[1].X, preds[2].X})
}

func TestFitLine_EmptyNewX(t *testing.T) {
	res := fitAltman(t, WithNewX())
	require.Nil(t, res.Predictions())

	preds, err := res.Predict()
	require.NoError(t, err)
	require.Empty(t, preds)
}

func TestPredict_InvalidInput(t *testing.T) {
	res := fitAltman(t)

	_, err := res.Predict(2, math.Inf(1))
	require.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestFitLine_NarrowestPredictionAtMean(t *testing.T) {
	res := fitAltman(t)

	atMean := res.PredictionInterval(res.MeanX).Width()
	for _, x0 := range []float64{0, 4.2, 8, 10, 10.3, 10.5, 12, 19.5, 40} {
		require.Greater(t, res.PredictionInterval(x0).Width(), atMean, "x0=%v", x0)
		require.Greater(t, res.ConfidenceInterval(x0).Width(), res.ConfidenceInterval(res.MeanX).Width(), "x0=%v", x0)
	}

	// Prediction intervals are always wider than the mean-response interval.
	require.Greater(t, atMean, res.ConfidenceInterval(res.MeanX).Width())
	require.InDelta(t, res.ResidualSD/math.Sqrt(float64(res.N)), res.SEFit(res.MeanX), 1e-12)
}

func TestFitLine_Deterministic(t *testing.T) {
	a := fitAltman(t, WithAlpha(0.05), WithNewX(1, 4.5))
	b := fitAltman(t, WithAlpha(0.05), WithNewX(1, 4.5))

	require.Equal(t, a, b)
	require.Equal(t, math.Float64bits(a.Slope), math.Float64bits(b.Slope))
	require.Equal(t, math.Float64bits(a.Intercept), math.Float64bits(b.Intercept))
	require.Equal(t, math.Float64bits(a.TCritical), math.Float64bits(b.TCritical))
}

func TestFitLine_DoesNotAliasInput(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{2, 4, 5, 9}
	newX := []float64{5}

	res, err := FitLine(x, y, WithNewX(newX...))
	require.NoError(t, err)

	slope := res.Slope
	x[0], y[0], newX[0] = 100, 100, 100

	require.Equal(t, slope, res.Slope)
	require.Equal(t, 1.0, res.X()[0])
	require.Equal(t, 2.0, res.Y()[0])
	require.Equal(t, 5.0, res.Predictions()[0].X)

	residuals := res.Residuals()
	residuals[0] = 42
	require.NotEqual(t, 42.0, res.Residuals()[0])
}

func TestFitLine_ResidualsSumToZero(t *testing.T) {
	res := fitAltman(t)

	sum := 0.0
	for _, e := range res.Residuals() {
		sum += e
	}
	require.InDelta(t, 0.0, sum, 1e-12)

	fitted := res.FittedValues()
	y := res.Y()
	residuals := res.Residuals()
	for i := range y {
		require.InDelta(t, y[i]-fitted[i], residuals[i], 1e-15)
	}
}

func TestInterval(t *testing.T) {
	iv := Interval{Lower: -1, Upper: 3}
	require.Equal(t, 4.0, iv.Width())
	require.True(t, iv.Contains(-1))
	require.True(t, iv.Contains(3))
	require.False(t, iv.Contains(3.5))
}

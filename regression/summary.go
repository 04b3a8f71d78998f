package regression

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/golinfit/stats"
)

// CoefficientTest is the t test of a single coefficient against zero.
type CoefficientTest struct {
	Name     string
	Estimate float64
	StdErr   float64
	TStat    float64
	PValue   float64 // two-sided
	CI       Interval
}

// Summary holds goodness-of-fit statistics of a line fit.
type Summary struct {
	N           int
	DF          int
	SST         float64 // total sum of squares
	SSR         float64 // regression sum of squares
	SSE         float64 // residual sum of squares
	RSquared    float64
	AdjRSquared float64
	FStatistic  float64
	FPValue     float64
	Intercept   CoefficientTest
	Slope       CoefficientTest
}

// Summary computes R², the overall F test and coefficient t tests.
// A constant y makes R² and the F test undefined (NaN).
func (r *Result) Summary() *Summary {
	sst := 0.0
	for _, v := range r.y {
		d := v - r.MeanY
		sst += d * d
	}
	sse := r.ResidualVariance * float64(r.DF)
	ssr := r.Slope * r.Slope * r.Sxx

	s := &Summary{
		N:         r.N,
		DF:        r.DF,
		SST:       sst,
		SSR:       ssr,
		SSE:       sse,
		Intercept: r.coefficientTest("intercept", r.Intercept, r.InterceptSE, r.InterceptCI),
		Slope:     r.coefficientTest("slope", r.Slope, r.SlopeSE, r.SlopeCI),
	}

	if sst == 0 {
		nan := math.NaN()
		s.RSquared, s.AdjRSquared, s.FStatistic, s.FPValue = nan, nan, nan, nan
		return s
	}

	s.RSquared = 1 - sse/sst
	s.AdjRSquared = 1 - (1-s.RSquared)*float64(r.N-1)/float64(r.DF)

	switch {
	case sse == 0:
		s.FStatistic = math.Inf(1)
		s.FPValue = 0
	default:
		s.FStatistic = ssr / r.ResidualVariance
		s.FPValue = distuv.F{D1: 1, D2: float64(r.DF)}.Survival(s.FStatistic)
	}

	return s
}

func (r *Result) coefficientTest(name string, estimate, se float64, ci Interval) CoefficientTest {
	var tstat float64
	switch {
	case se > 0:
		tstat = estimate / se
	case estimate == 0:
		tstat = math.NaN()
	default:
		tstat = math.Copysign(math.Inf(1), estimate)
	}

	return CoefficientTest{
		Name:     name,
		Estimate: estimate,
		StdErr:   se,
		TStat:    tstat,
		PValue:   stats.TwoSidedPValue(tstat, r.DF),
		CI:       ci,
	}
}

package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/golinfit/errs"
)

// studentsT returns a standard Student's t distribution with df degrees of freedom.
func studentsT(df int) distuv.StudentsT {
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}
}

// TCritical returns the two-sided critical value of Student's t distribution,
// i.e. the (1 - alpha/2) quantile with df degrees of freedom.
func TCritical(alpha float64, df int) (float64, error) {
	if !(alpha > 0 && alpha < 1) {
		return 0, fmt.Errorf("%w: alpha %v outside (0, 1)", errs.ErrInvalidInput, alpha)
	}
	if df < 1 {
		return 0, fmt.Errorf("%w: %d degrees of freedom, need at least 1", errs.ErrInvalidInput, df)
	}

	return studentsT(df).Quantile(1 - alpha/2), nil
}

// TwoSidedPValue returns P(|T| >= |t|) for a t statistic with df degrees of freedom.
// A NaN statistic or df < 1 yields NaN.
func TwoSidedPValue(t float64, df int) float64 {
	if df < 1 || math.IsNaN(t) {
		return math.NaN()
	}
	if math.IsInf(t, 0) {
		return 0
	}

	return 2 * studentsT(df).Survival(math.Abs(t))
}

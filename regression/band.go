package regression

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/sartorproj/golinfit/errs"
)

// DefaultGridPoints is the number of grid points used for bands over the data range.
const DefaultGridPoints = 100

// BandPoint holds the fitted value at X together with the confidence
// interval of the mean response and the prediction interval.
type BandPoint struct {
	X          float64
	Fitted     float64
	Confidence Interval
	Prediction Interval
}

// Band is the fitted line evaluated over a grid of x-values.
type Band struct {
	Alpha  float64
	Points []BandPoint
}

// Grid returns points evenly spaced x-values from the smallest to the largest
// fitted x. points must be at least 2.
func (r *Result) Grid(points int) ([]float64, error) {
	if points < 2 {
		return nil, fmt.Errorf("%w: grid needs at least 2 points, got %d", errs.ErrInvalidInput, points)
	}

	return floats.Span(make([]float64, points), floats.Min(r.x), floats.Max(r.x)), nil
}

// Band evaluates the confidence and prediction bands at xs.
func (r *Result) Band(xs []float64) (*Band, error) {
	if err := validateFinite("band x", xs); err != nil {
		return nil, err
	}

	points := make([]BandPoint, len(xs))
	for i, x0 := range xs {
		points[i] = BandPoint{
			X:          x0,
			Fitted:     r.Fit(x0),
			Confidence: r.ConfidenceInterval(x0),
			Prediction: r.PredictionInterval(x0),
		}
	}

	return &Band{Alpha: r.Alpha, Points: points}, nil
}

// DataBand evaluates the bands on DefaultGridPoints points spanning the data.
func (r *Result) DataBand() (*Band, error) {
	xs, err := r.Grid(DefaultGridPoints)
	if err != nil {
		return nil, err
	}

	return r.Band(xs)
}

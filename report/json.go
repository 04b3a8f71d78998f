package report

import (
	"encoding/json"
	"io"
	"math"

	"github.com/sartorproj/golinfit/regression"
)

// IntervalJSON is a closed interval.
type IntervalJSON struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// CoefficientJSON holds one estimated coefficient and its t test.
// Undefined statistics (NaN, ±Inf) are null.
type CoefficientJSON struct {
	Estimate float64      `json:"estimate"`
	StdErr   float64      `json:"std_err"`
	TStat    *float64     `json:"t_stat"`
	PValue   *float64     `json:"p_value"`
	CI       IntervalJSON `json:"ci"`
}

// PredictionJSON is one prediction with its prediction interval.
type PredictionJSON struct {
	X      float64 `json:"x"`
	Fitted float64 `json:"fitted"`
	Lower  float64 `json:"lower"`
	Upper  float64 `json:"upper"`
}

// DiagnosticsJSON holds residual test statistics; absent tests are omitted.
type DiagnosticsJSON struct {
	DurbinWatson *float64 `json:"durbin_watson,omitempty"`
	LjungBoxQ    *float64 `json:"ljung_box_q,omitempty"`
	LjungBoxP    *float64 `json:"ljung_box_p,omitempty"`
	JarqueBera   *float64 `json:"jarque_bera,omitempty"`
	JarqueBeraP  *float64 `json:"jarque_bera_p,omitempty"`
}

// FitJSON is the exported form of a line fit.
type FitJSON struct {
	Name             string           `json:"name"`
	N                int              `json:"n"`
	Alpha            float64          `json:"alpha"`
	TCritical        float64          `json:"t_critical"`
	DegreesOfFreedom int              `json:"degrees_of_freedom"`
	Intercept        CoefficientJSON  `json:"intercept"`
	Slope            CoefficientJSON  `json:"slope"`
	ResidualVariance float64          `json:"residual_variance"`
	ResidualSD       float64          `json:"residual_sd"`
	RSquared         *float64         `json:"r_squared"`
	FStatistic       *float64         `json:"f_statistic"`
	FPValue          *float64         `json:"f_p_value"`
	X                []float64        `json:"x"`
	Y                []float64        `json:"y"`
	Residuals        []float64        `json:"residuals"`
	Predictions      []PredictionJSON `json:"predictions,omitempty"`
	Diagnostics      DiagnosticsJSON  `json:"diagnostics"`
}

// OutputJSON holds every fit of a run.
type OutputJSON struct {
	Fits []FitJSON `json:"fits"`
}

// NewFitJSON converts res into its exported form.
func NewFitJSON(name string, res *regression.Result) FitJSON {
	s := res.Summary()
	d := res.Diagnostics()

	out := FitJSON{
		Name:             name,
		N:                res.N,
		Alpha:            res.Alpha,
		TCritical:        res.TCritical,
		DegreesOfFreedom: res.DF,
		Intercept:        coefficientJSON(s.Intercept),
		Slope:            coefficientJSON(s.Slope),
		ResidualVariance: res.ResidualVariance,
		ResidualSD:       res.ResidualSD,
		RSquared:         number(s.RSquared),
		FStatistic:       number(s.FStatistic),
		FPValue:          number(s.FPValue),
		X:                res.X(),
		Y:                res.Y(),
		Residuals:        res.Residuals(),
	}

	for _, p := range res.Predictions() {
		out.Predictions = append(out.Predictions, PredictionJSON(p))
	}

	if d.DurbinWatson != nil {
		out.Diagnostics.DurbinWatson = number(d.DurbinWatson.Statistic)
	}
	if d.LjungBox != nil {
		out.Diagnostics.LjungBoxQ = number(d.LjungBox.Statistic)
		out.Diagnostics.LjungBoxP = number(d.LjungBox.PValue)
	}
	if d.JarqueBera != nil {
		out.Diagnostics.JarqueBera = number(d.JarqueBera.Statistic)
		out.Diagnostics.JarqueBeraP = number(d.JarqueBera.PValue)
	}

	return out
}

// WriteJSON writes the indented JSON form of out.
func WriteJSON(w io.Writer, out OutputJSON) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func coefficientJSON(c regression.CoefficientTest) CoefficientJSON {
	return CoefficientJSON{
		Estimate: c.Estimate,
		StdErr:   c.StdErr,
		TStat:    number(c.TStat),
		PValue:   number(c.PValue),
		CI:       IntervalJSON(c.CI),
	}
}

// number returns nil for values JSON cannot represent.
func number(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

package report

import (
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/sartorproj/golinfit/regression"
)

// NamedFit pairs a fit with the name of its dataset.
type NamedFit struct {
	Name   string
	Result *regression.Result
}

// WriteComparison writes one table row per fit so that datasets with
// similar lines but different shapes can be compared side by side.
func WriteComparison(w io.Writer, fits []NamedFit) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	tp := &printer{w: tw}

	tp.printf("dataset\tn\tintercept\tslope\tR²\tresidual sd\tDurbin-Watson\n")
	for _, f := range fits {
		s := f.Result.Summary()
		dw := "-"
		if d := f.Result.Diagnostics().DurbinWatson; d != nil {
			dw = formatFloat(d.Statistic)
		}
		tp.printf("%s\t%d\t%.3f\t%.3f\t%.3f\t%.3f\t%s\n",
			f.Name, f.Result.N, f.Result.Intercept, f.Result.Slope, s.RSquared, f.Result.ResidualSD, dw)
	}
	if tp.err != nil {
		return tp.err
	}

	return tw.Flush()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

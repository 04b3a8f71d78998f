package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sartorproj/golinfit/dataset"
	"github.com/sartorproj/golinfit/regression"
	"github.com/sartorproj/golinfit/report"
)

func (a *app) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fit a line to one dataset",
		Example: `  fitline run --alpha 0.01 --newx 1,4.5
  fitline run --csv data.csv --x-col age --y-col weight --band-csv band.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.String("dataset", "altman", "built-in dataset: "+strings.Join(dataset.Names(), ", "))
	f.String("csv", "", "CSV file with paired samples, overrides --dataset")
	f.String("x-col", "x", "CSV column holding x")
	f.String("y-col", "y", "CSV column holding y")
	f.String("newx", "", "comma-separated x-values to predict at")
	f.String("band-csv", "", "write confidence and prediction bands to this CSV file")
	f.Int("grid", regression.DefaultGridPoints, "number of band points over the data range")

	return cmd
}

func (a *app) run(out io.Writer) error {
	pair, err := a.loadPair()
	if err != nil {
		return err
	}

	res, err := a.fit(pair)
	if err != nil {
		return err
	}

	if err := report.WriteText(out, pair.Name, res); err != nil {
		return err
	}

	if path := a.v.GetString("band-csv"); path != "" {
		grid, err := res.Grid(a.v.GetInt("grid"))
		if err != nil {
			return fmt.Errorf("--grid: %w", err)
		}
		band, err := res.Band(grid)
		if err != nil {
			return err
		}
		if err := report.SaveBandCSV(band, path); err != nil {
			return err
		}
		a.logger.Info("exported bands", zap.String("file", path), zap.Int("points", len(band.Points)))
	}

	return a.exportJSON(report.NewFitJSON(pair.Name, res))
}

func (a *app) loadPair() (*dataset.Pair, error) {
	if path := a.v.GetString("csv"); path != "" {
		opts := dataset.DefaultCSVOptions()
		opts.XColumn = a.v.GetString("x-col")
		opts.YColumn = a.v.GetString("y-col")

		pair, err := dataset.LoadCSV(path, opts)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("loaded csv", zap.String("file", path), zap.Int("rows", pair.Len()))
		return pair, nil
	}

	return dataset.Builtin(a.v.GetString("dataset"))
}

// fit drops incomplete observations and fits the remaining ones.
func (a *app) fit(pair *dataset.Pair) (*regression.Result, error) {
	clean, dropped := pair.DropMissing()
	if dropped > 0 {
		a.logger.Info("dropped incomplete observations",
			zap.String("dataset", pair.Name),
			zap.Int("dropped", dropped),
			zap.Int("remaining", clean.Len()))
	}

	opts, err := a.fitOptions()
	if err != nil {
		return nil, err
	}

	res, err := regression.FitLine(clean.X, clean.Y, opts...)
	if err != nil {
		a.logger.Error("fit failed", zap.String("dataset", pair.Name), zap.Error(err))
		return nil, fmt.Errorf("fit %s: %w", pair.Name, err)
	}

	a.logger.Debug("fitted line",
		zap.String("dataset", pair.Name),
		zap.Float64("intercept", res.Intercept),
		zap.Float64("slope", res.Slope),
		zap.Float64("residual_sd", res.ResidualSD),
		zap.Int("df", res.DF))

	return res, nil
}

func (a *app) exportJSON(fits ...report.FitJSON) error {
	path := a.v.GetString("json")
	if path == "" {
		return nil
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.WriteJSON(file, report.OutputJSON{Fits: fits}); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}

	a.logger.Info("exported results", zap.String("file", path), zap.Int("fits", len(fits)))
	return nil
}

// parseFloats parses a comma-separated list; blank input yields nil.
func parseFloats(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	values := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	return values, nil
}

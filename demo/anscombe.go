package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sartorproj/golinfit/dataset"
	"github.com/sartorproj/golinfit/report"
)

func (a *app) newAnscombeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "anscombe",
		Short: "Fit Anscombe's quartet and compare the four lines",
		Long: `Anscombe's quartet consists of four datasets whose least-squares lines,
R² and residual spread are nearly identical although the data look
entirely different. The residual diagnostics tell them apart.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.anscombe(cmd.OutOrStdout())
		},
	}
}

func (a *app) anscombe(out io.Writer) error {
	quartet := dataset.Anscombe()

	fits := make([]report.NamedFit, 0, len(quartet))
	exported := make([]report.FitJSON, 0, len(quartet))
	for _, pair := range quartet {
		res, err := a.fit(pair)
		if err != nil {
			return err
		}
		fits = append(fits, report.NamedFit{Name: pair.Name, Result: res})
		exported = append(exported, report.NewFitJSON(pair.Name, res))
	}

	if err := report.WriteComparison(out, fits); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return err
	}

	return a.exportJSON(exported...)
}

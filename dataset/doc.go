// Package dataset provides paired samples and the ways to obtain them.
//
// # Creating a Pair
//
//	pair, err := dataset.NewPair(x, y)
//
// # Missing Values
//
// The estimator rejects NaN and infinite values. Drop incomplete
// observations before fitting:
//
//	clean, dropped := pair.DropMissing()
//	res, err := regression.FitLine(clean.X, clean.Y)
//
// # Loading from CSV
//
//	opts := dataset.DefaultCSVOptions()
//	opts.XColumn, opts.YColumn = "age", "weight"
//	pair, err := dataset.LoadCSV("data.csv", opts)
//
// Empty cells and NA, NaN, nan or null load as NaN.
//
// # Built-in Data
//
//	altman := dataset.Altman()        // 24 observations, one missing y
//	quartet := dataset.Anscombe()     // Anscombe's quartet
//	pair, err := dataset.Builtin("anscombe-ii")
package dataset

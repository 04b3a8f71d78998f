// Package main is the fitline command: least-squares line fits with
// confidence and prediction intervals on built-in or CSV data.
// Based on: D. Altman, "Practical Statistics for Medical Research".
package main

import (
	"os"
)

func main() {
	if err := newApp(nil).execute(nil, os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

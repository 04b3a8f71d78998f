package dataset

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/sartorproj/golinfit/errs"
)

// Altman returns the reference dataset from D. Altman, "Practical Statistics
// for Medical Research". The 16th observation has a missing y (NaN).
func Altman() *Pair {
	return &Pair{
		Name: "altman",
		X: []float64{
			15.3, 10.8, 8.1, 19.5, 7.2, 5.3, 9.3, 11.1, 7.5, 12.2,
			6.7, 5.2, 19.0, 15.1, 6.7, 8.6, 4.2, 10.3, 12.5, 16.1,
			13.3, 4.9, 8.8, 9.5,
		},
		Y: []float64{
			1.76, 1.34, 1.27, 1.47, 1.27, 1.49, 1.31, 1.09, 1.18, 1.22,
			1.25, 1.19, 1.95, 1.28, 1.52, math.NaN(), 1.12, 1.37, 1.19, 1.05,
			1.32, 1.03, 1.12, 1.70,
		},
	}
}

var anscombeX = []float64{10, 8, 13, 9, 11, 14, 6, 4, 12, 7, 5}

// Anscombe returns Anscombe's quartet: four datasets with (nearly) identical
// line fits and very different shapes.
func Anscombe() []*Pair {
	return []*Pair{
		{
			Name: "anscombe-i",
			X:    append([]float64(nil), anscombeX...),
			Y:    []float64{8.04, 6.95, 7.58, 8.81, 8.33, 9.96, 7.24, 4.26, 10.84, 4.82, 5.68},
		},
		{
			Name: "anscombe-ii",
			X:    append([]float64(nil), anscombeX...),
			Y:    []float64{9.14, 8.14, 8.74, 8.77, 9.26, 8.10, 6.13, 3.10, 9.13, 7.26, 4.74},
		},
		{
			Name: "anscombe-iii",
			X:    append([]float64(nil), anscombeX...),
			Y:    []float64{7.46, 6.77, 12.74, 7.11, 7.81, 8.84, 6.08, 5.39, 8.15, 6.42, 5.73},
		},
		{
			Name: "anscombe-iv",
			X:    []float64{8, 8, 8, 8, 8, 8, 8, 19, 8, 8, 8},
			Y:    []float64{6.58, 5.76, 7.71, 8.84, 8.47, 7.04, 5.25, 12.50, 5.56, 7.91, 6.89},
		},
	}
}

func builtins() map[string]*Pair {
	m := map[string]*Pair{"altman": Altman()}
	for _, p := range Anscombe() {
		m[p.Name] = p
	}
	return m
}

// Builtin returns the built-in dataset with the given name (case-insensitive).
func Builtin(name string) (*Pair, error) {
	p, ok := builtins()[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %s)", errs.ErrUnknownDataset, name, strings.Join(Names(), ", "))
	}
	return p, nil
}

// Names lists the built-in dataset names in sorted order.
func Names() []string {
	m := builtins()
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

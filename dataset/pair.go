// Package dataset provides paired samples and the ways to obtain them.
package dataset

import (
	"fmt"
	"math"
	"sort"

	"github.com/sartorproj/golinfit/errs"
	"github.com/sartorproj/golinfit/stats"
)

// Pair holds paired observations (X[i], Y[i]).
type Pair struct {
	X    []float64
	Y    []float64
	Name string
}

// NewPair creates a pair from x and y. The slices are not copied.
func NewPair(x, y []float64) (*Pair, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: x has %d values, y has %d", errs.ErrInvalidInput, len(x), len(y))
	}
	return &Pair{X: x, Y: y}, nil
}

// Len returns the number of observations.
func (p *Pair) Len() int {
	return len(p.X)
}

// Copy creates a deep copy of the pair.
func (p *Pair) Copy() *Pair {
	x := make([]float64, len(p.X))
	copy(x, p.X)

	y := make([]float64, len(p.Y))
	copy(y, p.Y)

	return &Pair{X: x, Y: y, Name: p.Name}
}

// DropMissing returns a new pair without the observations in which x or y
// is NaN or infinite, and the number of observations removed. Values past the
// end of the shorter column have no partner and count as removed.
func (p *Pair) DropMissing() (*Pair, int) {
	n := min(len(p.X), len(p.Y))
	x := make([]float64, 0, n)
	y := make([]float64, 0, n)

	for i := 0; i < n; i++ {
		if !finite(p.X[i]) || !finite(p.Y[i]) {
			continue
		}
		x = append(x, p.X[i])
		y = append(y, p.Y[i])
	}

	return &Pair{X: x, Y: y, Name: p.Name}, max(len(p.X), len(p.Y)) - len(x)
}

// HasMissing reports whether any observation contains NaN or infinity or
// lacks a partner in the other column.
func (p *Pair) HasMissing() bool {
	if len(p.X) != len(p.Y) {
		return true
	}
	for i := range p.X {
		if !finite(p.X[i]) || !finite(p.Y[i]) {
			return true
		}
	}
	return false
}

// SortedByX returns a copy of the pair ordered by ascending x.
// Ties keep their original order.
func (p *Pair) SortedByX() *Pair {
	idx := make([]int, len(p.X))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return p.X[idx[a]] < p.X[idx[b]]
	})

	x := make([]float64, len(idx))
	y := make([]float64, len(idx))
	for i, j := range idx {
		x[i] = p.X[j]
		y[i] = p.Y[j]
	}

	return &Pair{X: x, Y: y, Name: p.Name}
}

// Describe returns descriptive statistics of both columns.
func (p *Pair) Describe() (x, y stats.Description) {
	return stats.Describe(p.X), stats.Describe(p.Y)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

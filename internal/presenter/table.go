package presenter

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"lognormal-go/pkg/lognormal"
)

// TableHeader names the columns of the tables built here.
var TableHeader = []string{"x", "pdf", "cdf"}

// Tabulate evaluates d on n logarithmically spaced points in [min, max].
// Each row holds x, PDF(x) and CDF(x).
func Tabulate(d *lognormal.Distribution, min, max float64, n int) (*mat.Dense, error) {
	if !(min > 0) || min >= max {
		return nil, errors.Errorf("invalid grid [%g, %g]", min, max)
	}
	if n < 2 {
		return nil, errors.Errorf("grid needs at least 2 points, got %d", n)
	}
	return Evaluate(d, floats.LogSpan(make([]float64, n), min, max))
}

// Evaluate builds the same table as Tabulate for the given points.
func Evaluate(d *lognormal.Distribution, xs []float64) (*mat.Dense, error) {
	if len(xs) == 0 {
		return nil, errors.New("no points to evaluate")
	}
	table := mat.NewDense(len(xs), len(TableHeader), nil)
	for i, x := range xs {
		pdf, err := d.PDF(x)
		if err != nil {
			return nil, errors.Wrapf(err, "point %d", i)
		}
		cdf, err := d.CDF(x)
		if err != nil {
			return nil, errors.Wrapf(err, "point %d", i)
		}
		table.SetRow(i, []float64{x, pdf, cdf})
	}
	return table, nil
}

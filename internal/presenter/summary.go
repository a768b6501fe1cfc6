package presenter

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"

	"lognormal-go/pkg/lognormal"
)

// WriteSummary prints the parameters and moments of d.
func WriteSummary(w io.Writer, d *lognormal.Distribution) error {
	if err := d.Validate(); err != nil {
		return err
	}
	stats := []struct {
		name string
		f    func() (float64, error)
	}{
		{"mean", d.Mean},
		{"median", d.Median},
		{"mode", d.Mode},
		{"variance", d.Variance},
		{"std dev", d.StdDeviation},
		{"skewness", d.Skewness},
		{"ex. kurtosis", d.Kurtosis},
		{"entropy (bits)", d.Entropy},
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "mu\t%.6g\n", d.Mu())
	fmt.Fprintf(tw, "sigma\t%.6g\n", d.Sigma())
	for _, s := range stats {
		v, err := s.f()
		if err != nil {
			return errors.Wrap(err, s.name)
		}
		fmt.Fprintf(tw, "%s\t%.6g\n", s.name, v)
	}
	return tw.Flush()
}

// WriteQuantiles prints the quantile of every probability in probs. A search
// that does not converge is reported in place of the value.
func WriteQuantiles(w io.Writer, d *lognormal.Distribution, probs []float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "p\tx")
	for _, p := range probs {
		x, err := d.Quantile(p)
		switch {
		case errors.Is(err, lognormal.ErrNonConvergence):
			fmt.Fprintf(tw, "%g\tno convergence\n", p)
		case err != nil:
			return errors.Wrapf(err, "quantile of %g", p)
		default:
			fmt.Fprintf(tw, "%g\t%.6g\n", p, x)
		}
	}
	return tw.Flush()
}

package lognormal

import (
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Defaults for SearchSettings.
const (
	DefaultSearchLow     = -16.0
	DefaultSearchHigh    = 16.0
	DefaultTolerance     = 1e-7
	DefaultMaxIterations = 70
)

// SearchSettings control the bisection run by Quantile. Low and High bound
// the search in the log domain, i.e. on ln(x).
type SearchSettings struct {
	Low           float64 `json:"low"`
	High          float64 `json:"high"`
	Tolerance     float64 `json:"tolerance"`
	MaxIterations int     `json:"max_iterations"`
}

// DefaultSearch returns a bracket of [-16, 16], a tolerance of 1e-7 on the
// cumulative probability and at most 70 iterations.
func DefaultSearch() SearchSettings {
	return SearchSettings{
		Low:           DefaultSearchLow,
		High:          DefaultSearchHigh,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// Validate checks if the settings describe a usable bracket.
func (s SearchSettings) Validate() error {
	if math.IsNaN(s.Low) || math.IsNaN(s.High) || math.IsInf(s.Low, 0) || math.IsInf(s.High, 0) {
		return errors.Wrapf(ErrInvalidSearch, "bounds must be finite, got [%g, %g]", s.Low, s.High)
	}
	if s.Low >= s.High {
		return errors.Wrapf(ErrInvalidSearch, "low must be less than high, got [%g, %g]", s.Low, s.High)
	}
	if !(s.Tolerance > 0) {
		return errors.Wrapf(ErrInvalidSearch, "tolerance must be positive, got %g", s.Tolerance)
	}
	if s.MaxIterations <= 0 {
		return errors.Wrapf(ErrInvalidSearch, "max iterations must be positive, got %d", s.MaxIterations)
	}
	return nil
}

// Quantile returns x such that CDF(x) = p.
//
// Probabilities at or below 0 return the lower search bound and probabilities
// at or above 1 the upper one, both unchanged (-16 and 16 by default). Any
// other p is located by bisection on ln(x) inside the bracket until the
// cumulative probability is within the tolerance of p. When the computed
// probability equals p the lower bound moves up.
//
// If the tolerance is not reached within the iteration limit, which happens
// when the answer lies outside the bracket, the error wraps ErrNonConvergence.
func (d *Distribution) Quantile(p float64) (float64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	s := d.search
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if math.IsNaN(p) {
		return 0, errors.Wrap(ErrDomain, "p is NaN")
	}
	if p <= 0 {
		return s.Low, nil
	}
	if p >= 1 {
		return s.High, nil
	}

	low, high := s.Low, s.High
	for i := 1; i <= s.MaxIterations; i++ {
		mid := (low + high) / 2
		x := math.Exp(mid)
		pr := d.cdf(x)
		eps := math.Abs(pr - p)

		if d.log != nil {
			d.log.WithFields(logrus.Fields{
				"iter": i,
				"low":  low,
				"high": high,
				"mid":  mid,
				"cdf":  pr,
				"eps":  eps,
			}).Debug("quantile bisection step")
		}

		if pr > p {
			high = mid
		} else {
			low = mid
		}
		if eps <= s.Tolerance {
			return x, nil
		}
	}
	return 0, errors.Wrapf(ErrNonConvergence, "p=%g after %d iterations in [%g, %g]", p, s.MaxIterations, s.Low, s.High)
}

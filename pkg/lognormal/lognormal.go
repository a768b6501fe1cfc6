// Package lognormal implements the log-normal distribution of a variable whose
// natural logarithm is normally distributed with mean Mu and standard
// deviation Sigma.
//
// A Distribution never fails on construction. A non-positive Sigma is recorded
// and every statistic then returns an error wrapping ErrInvalidParameter until
// a valid Sigma is set again. Density and cumulative functions are defined on
// x > 0 only, anything else yields ErrDomain.
//
// A Distribution is not safe for concurrent use, callers that share one across
// goroutines must serialize access themselves.
package lognormal

import (
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Distribution holds the parameters of a log-normal distribution.
type Distribution struct {
	mu    float64
	sigma float64
	valid bool

	search SearchSettings
	log    logrus.FieldLogger
}

// Option configures a Distribution at construction.
type Option func(*Distribution)

// WithSearch replaces the default quantile search settings.
func WithSearch(s SearchSettings) Option {
	return func(d *Distribution) {
		d.search = s
	}
}

// WithLogger traces every quantile bisection step at debug level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(d *Distribution) {
		d.log = l
	}
}

// New creates a Distribution with location mu and scale sigma.
func New(mu, sigma float64, opts ...Option) *Distribution {
	d := &Distribution{
		mu:     mu,
		search: DefaultSearch(),
	}
	d.SetSigma(sigma)
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Mu returns the location parameter.
func (d *Distribution) Mu() float64 {
	return d.mu
}

// Sigma returns the scale parameter, even when it is invalid.
func (d *Distribution) Sigma() float64 {
	return d.sigma
}

// SetMu overwrites the location parameter. Validity is unaffected.
func (d *Distribution) SetMu(mu float64) {
	d.mu = mu
}

// SetSigma stores sigma and re-validates the distribution. An invalid sigma is
// kept so that callers can inspect it.
func (d *Distribution) SetSigma(sigma float64) {
	d.valid = sigma > 0
	d.sigma = sigma
}

// Valid reports whether the most recently set sigma is strictly positive.
func (d *Distribution) Valid() bool {
	return d.valid
}

// Validate returns an error wrapping ErrInvalidParameter when sigma is not
// strictly positive.
func (d *Distribution) Validate() error {
	if !d.valid {
		return errors.Wrapf(ErrInvalidParameter, "sigma=%g", d.sigma)
	}
	return nil
}

// Search returns the settings used by Quantile.
func (d *Distribution) Search() SearchSettings {
	return d.search
}

// SetSearch replaces the settings used by Quantile. They are checked on use.
func (d *Distribution) SetSearch(s SearchSettings) {
	d.search = s
}

// PDF returns the probability density at x.
func (d *Distribution) PDF(x float64) (float64, error) {
	if err := d.checkX(x); err != nil {
		return 0, err
	}
	z := (math.Log(x) - d.mu) / d.sigma
	return math.Exp(-0.5*z*z) / (x * d.sigma * math.Sqrt(2*math.Pi)), nil
}

// CDF returns the probability that a draw is less than or equal to x.
func (d *Distribution) CDF(x float64) (float64, error) {
	if err := d.checkX(x); err != nil {
		return 0, err
	}
	return d.cdf(x), nil
}

// Survival returns the probability that a draw is greater than x.
func (d *Distribution) Survival(x float64) (float64, error) {
	p, err := d.CDF(x)
	if err != nil {
		return 0, err
	}
	return 1 - p, nil
}

func (d *Distribution) cdf(x float64) float64 {
	return 0.5 * (1 + math.Erf((math.Log(x)-d.mu)/(d.sigma*math.Sqrt2)))
}

func (d *Distribution) checkX(x float64) error {
	if err := d.Validate(); err != nil {
		return err
	}
	// written so that NaN fails too
	if !(x > 0) {
		return errors.Wrapf(ErrDomain, "x=%g, want x > 0", x)
	}
	return nil
}

// Mean returns exp(mu + sigma^2/2).
func (d *Distribution) Mean() (float64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	return math.Exp(d.mu + 0.5*d.sigma*d.sigma), nil
}

// Median returns exp(mu).
func (d *Distribution) Median() (float64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	return math.Exp(d.mu), nil
}

// Mode returns exp(mu - sigma^2).
func (d *Distribution) Mode() (float64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	return math.Exp(d.mu - d.sigma*d.sigma), nil
}

// Variance returns exp(sigma^2 - 1) * exp(2*mu + sigma^2).
//
// This is the historical formula kept for compatibility. It is not the usual
// (exp(sigma^2) - 1) * exp(2*mu + sigma^2), and StdDeviation is therefore not
// the square root of Variance.
func (d *Distribution) Variance() (float64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	s2 := d.sigma * d.sigma
	return math.Exp(s2-1) * math.Exp(2*d.mu+s2), nil
}

// StdDeviation returns sqrt((exp(sigma^2) - 1) * exp(2*mu + sigma^2)), the
// standard deviation of the distribution. See Variance for the mismatch
// between the two.
func (d *Distribution) StdDeviation() (float64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	s2 := d.sigma * d.sigma
	return math.Sqrt((math.Exp(s2) - 1) * math.Exp(2*d.mu+s2)), nil
}

// Skewness returns (exp(sigma^2) + 2) * sqrt(exp(sigma^2) - 1).
func (d *Distribution) Skewness() (float64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	e := math.Exp(d.sigma * d.sigma)
	return (e + 2) * math.Sqrt(e-1), nil
}

// Kurtosis returns the excess kurtosis
// exp(4*sigma^2) + 2*exp(3*sigma^2) + 3*exp(2*sigma^2) - 6.
func (d *Distribution) Kurtosis() (float64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	s2 := d.sigma * d.sigma
	return math.Exp(4*s2) + 2*math.Exp(3*s2) + 3*math.Exp(2*s2) - 6, nil
}

// Entropy returns the differential entropy in bits,
// log2(sigma * exp(mu + 1/2) * sqrt(2*pi)).
func (d *Distribution) Entropy() (float64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	return math.Log2(d.sigma * math.Exp(d.mu+0.5) * math.Sqrt(2*math.Pi)), nil
}

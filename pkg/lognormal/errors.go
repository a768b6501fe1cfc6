package lognormal

import "github.com/pkg/errors"

// Errors returned by Distribution methods are wrapped around one of these,
// test for the kind with errors.Is.
var (
	// ErrInvalidParameter is returned by every statistic while sigma is not strictly positive.
	ErrInvalidParameter = errors.New("lognormal: sigma must be positive")
	// ErrNonConvergence is returned when the quantile search runs out of iterations.
	ErrNonConvergence = errors.New("lognormal: quantile search did not converge")
	// ErrDomain is returned for arguments outside the support of the distribution.
	ErrDomain = errors.New("lognormal: argument outside the domain")
	// ErrInvalidSearch is returned when the quantile search settings cannot bracket a root.
	ErrInvalidSearch = errors.New("lognormal: invalid quantile search settings")
	// ErrSamplerExhausted is returned when a bounded sampler rejects too many draws in a row.
	ErrSamplerExhausted = errors.New("lognormal: no draw fell inside the sampler bounds")
)

package lognormal

import (
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultMaxRejections is the number of consecutive out of range draws after
// which Sampler.Rand gives up.
const DefaultMaxRejections = 1 << 20

// Rand draws one value from the distribution. A nil src uses the global source.
func (d *Distribution) Rand(src rand.Source) (float64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	dist := distuv.LogNormal{Mu: d.mu, Sigma: d.sigma, Src: src}
	return dist.Rand(), nil
}

// Sampler draws values of a log-normal distribution restricted to [min, max].
// It holds a copy of the parameters, later changes to the Distribution do not
// affect it.
type Sampler struct {
	dist distuv.LogNormal
	min  float64
	max  float64

	maxRejections int
}

// NewSampler creates a sampler for d bounded to [min, max].
func NewSampler(d *Distribution, src rand.Source, min, max float64) (*Sampler, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if !(min < max) {
		return nil, errors.Errorf("min must be less than max, got [%g, %g]", min, max)
	}
	return &Sampler{
		dist: distuv.LogNormal{
			Mu:    d.mu,
			Sigma: d.sigma,
			Src:   src,
		},
		min:           min,
		max:           max,
		maxRejections: DefaultMaxRejections,
	}, nil
}

// Rand draws one value in [min, max].
func (s *Sampler) Rand() (float64, error) {
	for i := 0; i < s.maxRejections; i++ {
		val := s.dist.Rand()
		if val >= s.min && val <= s.max {
			return val, nil
		}
	}
	return 0, errors.Wrapf(ErrSamplerExhausted, "%d draws outside [%g, %g]", s.maxRejections, s.min, s.max)
}

func (s *Sampler) Min() float64 {
	return s.min
}

func (s *Sampler) Max() float64 {
	return s.max
}

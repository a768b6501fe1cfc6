package presenter

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const barWidth = 50

// Histogram counts samples falling in equal width bins between min and max.
// Samples outside the range are counted in Outside.
func Histogram(samples []float64, min, max float64, bins int) (dividers, counts []float64, outside int, err error) {
	if bins < 1 {
		return nil, nil, 0, errors.Errorf("bins must be positive, got %d", bins)
	}
	if !(min < max) {
		return nil, nil, 0, errors.Errorf("invalid range [%g, %g]", min, max)
	}
	dividers = floats.Span(make([]float64, bins+1), min, max)
	// include max itself in the last bin
	dividers[bins] = math.Nextafter(max, math.Inf(1))

	in := make([]float64, 0, len(samples))
	for _, s := range samples {
		if s >= min && s <= max {
			in = append(in, s)
		} else {
			outside++
		}
	}
	slices.Sort(in)
	counts = stat.Histogram(nil, dividers, in, nil)
	return dividers, counts, outside, nil
}

// WriteHistogram prints a text bar chart of samples.
func WriteHistogram(w io.Writer, samples []float64, min, max float64, bins int) error {
	dividers, counts, outside, err := Histogram(samples, min, max, bins)
	if err != nil {
		return err
	}

	maxCount := floats.Max(counts)
	for i, count := range counts {
		n := 0
		if maxCount > 0 {
			n = int(count / maxCount * barWidth)
		}
		bar := strings.Repeat("█", n)
		fmt.Fprintf(w, "%8.4g-%-8.4g: %s %d\n", dividers[i], dividers[i+1], bar, int(count))
	}
	if outside > 0 {
		fmt.Fprintf(w, "outside range: %d\n", outside)
	}
	return nil
}

package readpoints

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ReadPoints reads the numbers of a text file. Values may be separated by
// tabs, spaces or new lines. Empty lines and lines starting with # are
// skipped, and a first line that is not entirely numeric is taken as a header.
func ReadPoints(filename string) ([]float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads points the same way ReadPoints does from r.
func Parse(r io.Reader) ([]float64, error) {
	var points []float64
	scanner := bufio.NewScanner(r)
	line := 0
	first := true

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())

		if len(text) == 0 || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)

		if first {
			first = false
			if !allNumeric(fields) {
				continue
			}
		}

		for i, field := range fields {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to parse float at line %d, column %d", line, i+1)
			}
			points = append(points, val)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "error reading points")
	}
	return points, nil
}

func allNumeric(fields []string) bool {
	for _, field := range fields {
		if _, err := strconv.ParseFloat(field, 64); err != nil {
			return false
		}
	}
	return true
}

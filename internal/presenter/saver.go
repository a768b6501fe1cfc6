package presenter

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// SaveDenseToCSV writes m to filename, preceded by a header row when header
// is not empty.
func SaveDenseToCSV(m *mat.Dense, header []string, filename string) error {
	rows, cols := m.Dims()
	if len(header) > 0 && len(header) != cols {
		return errors.Errorf("header has %d fields for %d columns", len(header), cols)
	}

	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "failed to create csv")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if len(header) > 0 {
		if err := writer.Write(header); err != nil {
			return errors.Wrap(err, "failed to write csv header")
		}
	}

	record := make([]string, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			record[j] = strconv.FormatFloat(m.At(i, j), 'g', -1, 64)
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrapf(err, "failed to write csv row %d", i)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrap(err, "failed to flush csv")
	}
	return file.Close()
}

package curveplotter

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func curves() *mat.Dense {
	m := mat.NewDense(20, 3, nil)
	for i := 0; i < 20; i++ {
		x := 0.1 * float64(i+1)
		m.Set(i, 0, x)
		m.Set(i, 1, math.Exp(-x))
		m.Set(i, 2, 1-math.Exp(-x))
	}
	return m
}

func TestMakeCurvePlot(t *testing.T) {
	tt := []struct {
		file  string
		magic []byte
	}{
		{file: "curves.png", magic: []byte("\x89PNG")},
		{file: "curves.pdf", magic: []byte("%PDF")},
	}
	for _, tc := range tt {
		t.Run(tc.file, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tc.file)
			require.NoError(t, MakeCurvePlot(curves(), []string{"PDF", "CDF"}, "test", path))

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(data, tc.magic))
		})
	}
}

func TestMakeCurvePlotErrors(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, MakeCurvePlot(mat.NewDense(5, 1, nil), nil, "", filepath.Join(dir, "a.png")))
	assert.Error(t, MakeCurvePlot(curves(), []string{"PDF"}, "", filepath.Join(dir, "b.png")))
	assert.Error(t, MakeCurvePlot(curves(), []string{"PDF", "CDF"}, "", filepath.Join(dir, "missing", "c.png")))
}

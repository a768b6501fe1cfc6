package curveplotter

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
)

// MakeCurvePlot plots every column of data after the first against the first
// one, on a logarithmic x axis. names labels those columns in the legend. The
// output format follows the extension of filename: .pdf, anything else is PNG.
func MakeCurvePlot(data *mat.Dense, names []string, title, filename string) error {
	rows, cols := data.Dims()
	if cols < 2 || rows < 2 {
		return errors.Errorf("need at least 2 rows and 2 columns, got %dx%d", rows, cols)
	}
	if len(names) != cols-1 {
		return errors.Errorf("got %d names for %d curves", len(names), cols-1)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "Probability"
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Legend.Top = true

	pal := palette.Rainbow(max(cols-1, 2), palette.Blue, palette.Red, 1, 1, 1).Colors()
	for c := 1; c < cols; c++ {
		line, err := plotter.NewLine(matrixToXYs(data, c))
		if err != nil {
			return errors.Wrapf(err, "failed to build curve %q", names[c-1])
		}
		line.LineStyle.Color = pal[c-1]
		line.LineStyle.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(names[c-1], line)
	}
	p.Add(plotter.NewGrid())

	w, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "failed to create plot file")
	}
	if err := render(p, w, filename); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func render(p *plot.Plot, w io.Writer, filename string) error {
	width, height := vg.Points(400), vg.Points(250)
	if strings.EqualFold(filepath.Ext(filename), ".pdf") {
		img := vgpdf.New(width, height)
		p.Draw(draw.New(img))
		_, err := img.WriteTo(w)
		return errors.Wrap(err, "failed to write pdf")
	}

	img := vgimg.New(width, height)
	p.Draw(draw.New(img))
	png := vgimg.PngCanvas{Canvas: img}
	_, err := png.WriteTo(w)
	return errors.Wrap(err, "failed to write png")
}

func matrixToXYs(m *mat.Dense, col int) plotter.XYer {
	return column{Matrix: m, Col: col}
}

type column struct {
	Matrix *mat.Dense
	Col    int
}

func (c column) Len() int                { return c.Matrix.RawMatrix().Rows }
func (c column) XY(i int) (x, y float64) { return c.Matrix.At(i, 0), c.Matrix.At(i, c.Col) }

package presenter

import (
	"lognormal-go/pkg/curveplotter"

	"gonum.org/v1/gonum/mat"
)

// GeneratePlot draws the PDF and CDF columns of a table built by Tabulate.
func GeneratePlot(outputPath string, title string, table *mat.Dense) error {
	return curveplotter.MakeCurvePlot(table, TableHeader[1:], title, outputPath)
}

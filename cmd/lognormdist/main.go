package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"lognormal-go/internal/config"
	"lognormal-go/internal/presenter"
	"lognormal-go/pkg/lognormal"
	"lognormal-go/pkg/readpoints"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal("Error parsing configuration: ", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	opts := []lognormal.Option{lognormal.WithSearch(cfg.Search.Settings())}
	if level >= log.DebugLevel {
		opts = append(opts, lognormal.WithLogger(log.StandardLogger()))
	}
	d := lognormal.New(cfg.Mu, cfg.Sigma, opts...)
	if err := d.Validate(); err != nil {
		log.WithFields(log.Fields{"mu": cfg.Mu, "sigma": cfg.Sigma}).Fatal(err)
	}
	log.WithFields(log.Fields{"mu": d.Mu(), "sigma": d.Sigma()}).Info("Log-normal distribution")

	// Moments and quantiles
	if err := presenter.WriteSummary(os.Stdout, d); err != nil {
		log.Fatal("Error computing moments: ", err)
	}
	fmt.Println()
	if err := presenter.WriteQuantiles(os.Stdout, d, cfg.Probabilities); err != nil {
		log.Fatal("Error computing quantiles: ", err)
	}

	if cfg.PointsFile != "" {
		evaluatePoints(d, cfg.PointsFile)
	}

	if cfg.CSVPath != "" || cfg.PlotPath != "" {
		writeTable(d, cfg)
	}

	if cfg.Sampling.Count > 0 {
		sample(d, cfg.Sampling)
	}
}

func evaluatePoints(d *lognormal.Distribution, filename string) {
	xs, err := readpoints.ReadPoints(filename)
	if err != nil {
		log.Fatal("Error reading points: ", err)
	}
	table, err := presenter.Evaluate(d, xs)
	if err != nil {
		log.Fatal("Error evaluating points: ", err)
	}

	fmt.Println()
	fmt.Printf("%12s %12s %12s\n", "x", "pdf", "cdf")
	rows, _ := table.Dims()
	for i := 0; i < rows; i++ {
		fmt.Printf("%12.6g %12.6g %12.6g\n", table.At(i, 0), table.At(i, 1), table.At(i, 2))
	}
}

func writeTable(d *lognormal.Distribution, cfg *config.Config) {
	table, err := presenter.Tabulate(d, cfg.Grid.Min, cfg.Grid.Max, cfg.Grid.Points)
	if err != nil {
		log.Fatal("Error tabulating distribution: ", err)
	}

	if cfg.CSVPath != "" {
		if err := presenter.SaveDenseToCSV(table, presenter.TableHeader, cfg.CSVPath); err != nil {
			log.Fatal("Error saving table: ", err)
		}
		log.WithField("file", cfg.CSVPath).Info("Table saved")
	}

	if cfg.PlotPath != "" {
		title := fmt.Sprintf("Log-normal, mu=%g sigma=%g", d.Mu(), d.Sigma())
		if err := presenter.GeneratePlot(cfg.PlotPath, title, table); err != nil {
			log.Fatal("Error plotting distribution: ", err)
		}
		log.WithField("file", cfg.PlotPath).Info("Plot saved")
	}
}

func sample(d *lognormal.Distribution, cfg config.Sampling) {
	src := rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)
	gen, err := lognormal.NewSampler(d, src, cfg.Min, cfg.Max)
	if err != nil {
		log.Fatal("Error creating sampler: ", err)
	}

	samples := make([]float64, cfg.Count)
	for i := range samples {
		if samples[i], err = gen.Rand(); err != nil {
			log.Fatal("Error sampling: ", err)
		}
	}

	fmt.Println()
	fmt.Printf("Histogram of %d draws (%d bins):\n", cfg.Count, cfg.Bins)
	if err := presenter.WriteHistogram(os.Stdout, samples, gen.Min(), gen.Max(), cfg.Bins); err != nil {
		log.Fatal("Error building histogram: ", err)
	}
}

package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"lognormal-go/pkg/lognormal"
)

type Search struct {
	Low           float64 `yaml:"low"`
	High          float64 `yaml:"high"`
	Tolerance     float64 `yaml:"tolerance"`
	MaxIterations int     `yaml:"max_iterations"`
}

// Settings converts the section to quantile search settings.
func (s Search) Settings() lognormal.SearchSettings {
	return lognormal.SearchSettings{
		Low:           s.Low,
		High:          s.High,
		Tolerance:     s.Tolerance,
		MaxIterations: s.MaxIterations,
	}
}

type Grid struct {
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
	Points int     `yaml:"points"`
}

type Sampling struct {
	Count int     `yaml:"count"`
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Seed  uint64  `yaml:"seed"`
	Bins  int     `yaml:"bins"`
}

type Config struct {
	Mu            float64   `yaml:"mu"`
	Sigma         float64   `yaml:"sigma"`
	Search        Search    `yaml:"search"`
	Probabilities []float64 `yaml:"probabilities"`
	Grid          Grid      `yaml:"grid"`
	Sampling      Sampling  `yaml:"sampling"`
	PointsFile    string    `yaml:"points_file"`
	CSVPath       string    `yaml:"csv"`
	PlotPath      string    `yaml:"plot"`
	LogLevel      string    `yaml:"log_level"`
}

// Default returns the configuration used when neither a file nor flags say otherwise.
func Default() *Config {
	s := lognormal.DefaultSearch()
	return &Config{
		Mu:    0,
		Sigma: 1,
		Search: Search{
			Low:           s.Low,
			High:          s.High,
			Tolerance:     s.Tolerance,
			MaxIterations: s.MaxIterations,
		},
		Probabilities: []float64{0.01, 0.05, 0.25, 0.5, 0.75, 0.95, 0.99},
		Grid:          Grid{Min: 0.01, Max: 10, Points: 200},
		Sampling:      Sampling{Count: 0, Min: 0.01, Max: 10, Seed: 1, Bins: 20},
		LogLevel:      "info",
	}
}

// Load reads a YAML file on top of the defaults. Keys missing from the file
// keep their default value.
func Load(filename string) (*Config, error) {
	cfg := Default()
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open config")
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "failed to decode config %s", filename)
	}
	return cfg, nil
}

// Parse builds the configuration from command line arguments. When --config
// names a file it is loaded first and the other flags override its values.
func Parse(args []string) (*Config, error) {
	configPath, err := lookupConfigPath(args)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if configPath != "" {
		if cfg, err = Load(configPath); err != nil {
			return nil, err
		}
	}

	fs := pflag.NewFlagSet("lognormdist", pflag.ContinueOnError)
	fs.String("config", configPath, "YAML configuration file")

	// define flags
	fs.Float64Var(&cfg.Mu, "mu", cfg.Mu, "location parameter, mean of ln(x)")
	fs.Float64Var(&cfg.Sigma, "sigma", cfg.Sigma, "scale parameter, standard deviation of ln(x)")
	fs.Float64Var(&cfg.Search.Low, "search-low", cfg.Search.Low, "lower quantile search bound on ln(x)")
	fs.Float64Var(&cfg.Search.High, "search-high", cfg.Search.High, "upper quantile search bound on ln(x)")
	fs.Float64Var(&cfg.Search.Tolerance, "tolerance", cfg.Search.Tolerance, "quantile search tolerance on the probability")
	fs.IntVar(&cfg.Search.MaxIterations, "max-iterations", cfg.Search.MaxIterations, "quantile search iteration limit")
	fs.Float64SliceVar(&cfg.Probabilities, "probabilities", cfg.Probabilities, "probabilities to print quantiles for")
	fs.StringVar(&cfg.PointsFile, "points-file", cfg.PointsFile, "file with x values to evaluate the PDF and CDF at")
	fs.Float64Var(&cfg.Grid.Min, "grid-min", cfg.Grid.Min, "smallest x of the tabulation grid")
	fs.Float64Var(&cfg.Grid.Max, "grid-max", cfg.Grid.Max, "largest x of the tabulation grid")
	fs.IntVar(&cfg.Grid.Points, "grid-points", cfg.Grid.Points, "number of log spaced grid points")
	fs.StringVar(&cfg.CSVPath, "csv", cfg.CSVPath, "write the tabulated PDF and CDF to this CSV file")
	fs.StringVar(&cfg.PlotPath, "plot", cfg.PlotPath, "plot the PDF and CDF to this .pdf or .png file")
	fs.IntVar(&cfg.Sampling.Count, "samples", cfg.Sampling.Count, "number of random draws to histogram, 0 disables")
	fs.Float64Var(&cfg.Sampling.Min, "sample-min", cfg.Sampling.Min, "smallest accepted draw")
	fs.Float64Var(&cfg.Sampling.Max, "sample-max", cfg.Sampling.Max, "largest accepted draw")
	fs.Uint64Var(&cfg.Sampling.Seed, "seed", cfg.Sampling.Seed, "random seed")
	fs.IntVar(&cfg.Sampling.Bins, "bins", cfg.Sampling.Bins, "number of histogram bins")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// lookupConfigPath finds --config before the real parse so that the file can
// provide the flag defaults.
func lookupConfigPath(args []string) (string, error) {
	fs := pflag.NewFlagSet("config", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	path := fs.String("config", "", "")
	if err := fs.Parse(args); err != nil && err != pflag.ErrHelp {
		return "", err
	}
	return *path, nil
}

// Validate checks the parts of the configuration the command relies on.
// Sigma is left to the distribution.
func (c *Config) Validate() error {
	if err := c.Search.Settings().Validate(); err != nil {
		return err
	}
	if !(c.Grid.Min > 0) {
		return errors.Errorf("grid min must be positive, got %g", c.Grid.Min)
	}
	if c.Grid.Min >= c.Grid.Max {
		return errors.Errorf("grid min must be less than grid max, got [%g, %g]", c.Grid.Min, c.Grid.Max)
	}
	if c.Grid.Points < 2 {
		return errors.Errorf("grid needs at least 2 points, got %d", c.Grid.Points)
	}
	if c.Sampling.Count < 0 {
		return errors.Errorf("samples must not be negative, got %d", c.Sampling.Count)
	}
	if c.Sampling.Count > 0 {
		if c.Sampling.Min >= c.Sampling.Max {
			return errors.Errorf("sample min must be less than sample max, got [%g, %g]", c.Sampling.Min, c.Sampling.Max)
		}
		if c.Sampling.Bins < 1 {
			return errors.Errorf("bins must be positive, got %d", c.Sampling.Bins)
		}
	}
	return nil
}

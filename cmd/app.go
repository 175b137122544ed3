// Package cmd implements the CLI application to replay trade sheets.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
	"github.com/tradepoint/momentum"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&replayCmd{}, "replay")
	c.Register(&monthlyCmd{}, "replay")
	c.Register(&checkCmd{}, "validation")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "config.json", "Path to the configuration file (JSON)")
var verbose = flag.Bool("v", false, "Enable verbose (debug) logging")

// loadConfig reads the configuration file and applies command-line overrides.
// A zero override leaves the configured value in place.
func loadConfig(initialCapital float64, maxStocks int) (momentum.Config, error) {
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	cfg, err := momentum.LoadConfig(*configFile)
	if err != nil {
		return cfg, err
	}
	if initialCapital > 0 {
		cfg.InitialCapital = momentum.M(initialCapital)
	}
	if maxStocks > 0 {
		cfg.MaxStocks = maxStocks
	}
	return cfg, nil
}

// findInputFile resolves the input sheet: the explicit path when given,
// otherwise the first .csv (then .txt) file found in the configured input
// directory.
func findInputFile(cfg momentum.Config, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	for _, pattern := range []string{"*.csv", "*.txt"} {
		matches, err := filepath.Glob(filepath.Join(cfg.InputDir, pattern))
		if err != nil {
			return "", err
		}
		if len(matches) > 0 {
			if len(matches) > 1 {
				fmt.Fprintf(os.Stderr, "Multiple input files found, using %s. Use -i to pick another.\n", matches[0])
			}
			return matches[0], nil
		}
	}
	return "", fmt.Errorf("no input file given and no CSV files found in %q", cfg.InputDir)
}

// decodeTradesFile reads and decodes the input sheet, printing per-row data
// errors to stderr. Row errors do not fail the decode.
func decodeTradesFile(path string) ([]momentum.Trade, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open input %q: %w", path, err)
	}
	defer f.Close()

	trades, rowErrs := momentum.DecodeTrades(f)
	for _, e := range rowErrs {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", e)
	}
	return trades, nil
}

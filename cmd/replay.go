package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"github.com/tradepoint/momentum"
	"github.com/tradepoint/momentum/renderer"
)

// replayCmd holds the flags for the 'replay' subcommand.
type replayCmd struct {
	input          string
	initialCapital float64
	maxStocks      int
	noWrite        bool
}

func (*replayCmd) Name() string     { return "replay" }
func (*replayCmd) Synopsis() string { return "replay a trade sheet and settle taxes per exit date" }
func (*replayCmd) Usage() string {
	return `tmt replay [-i <input.csv>] [-x <initial-capital>] [-n <max-stocks>]

  Replays the trades of the input sheet in date order, settles each exit
  date's taxes, and writes the per-trade result sheet to the output
  directory.
`
}

func (c *replayCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Input sheet. Defaults to the first CSV found in the input directory.")
	f.Float64Var(&c.initialCapital, "x", 0, "Initial capital, overrides the config file.")
	f.IntVar(&c.maxStocks, "n", 0, "Maximum stock count, overrides the config file.")
	f.BoolVar(&c.noWrite, "no-write", false, "Only print the report, do not write the output sheet.")
}

func (c *replayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig(c.initialCapital, c.maxStocks)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	input, err := findInputFile(cfg, c.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	trades, err := decodeTradesFile(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	replay, err := momentum.Run(trades, cfg.Replay())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if !c.noWrite {
		output := filepath.Join(cfg.OutputDir, momentum.ReportFilename(input))
		if err := writeReport(output, replay); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Output written to %s\n", output)
	}

	printMarkdown(renderer.ReplayMarkdown(replay, cfg.Replay()))
	return subcommands.ExitSuccess
}

func writeReport(path string, replay *momentum.Replay) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create output %q: %w", path, err)
	}
	defer f.Close()
	if err := momentum.EncodeReport(f, replay); err != nil {
		return fmt.Errorf("could not write output %q: %w", path, err)
	}
	return nil
}

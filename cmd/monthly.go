package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tradepoint/momentum"
	"github.com/tradepoint/momentum/renderer"
)

type monthlyCmd struct {
	input          string
	initialCapital float64
	maxStocks      int
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display a month-by-month settlement summary" }
func (*monthlyCmd) Usage() string {
	return `tmt monthly [-i <input.csv>] [-x <initial-capital>] [-n <max-stocks>]

  Replays the trades and displays the settlements rolled up per calendar
  month.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Input sheet. Defaults to the first CSV found in the input directory.")
	f.Float64Var(&c.initialCapital, "x", 0, "Initial capital, overrides the config file.")
	f.IntVar(&c.maxStocks, "n", 0, "Maximum stock count, overrides the config file.")
}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.MonthlyMarkdown(replay.MonthlyReport()))
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tradepoint/momentum"
)

type checkCmd struct {
	input string
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validate an input sheet without writing output" }
func (*checkCmd) Usage() string {
	return `tmt check [-i <input.csv>]

  Decodes and validates the input sheet, reporting malformed rows, invalid
  records, and how many trades would be scheduled. Nothing is written.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Input sheet. Defaults to the first CSV found in the input directory.")
}

func (c *checkCmd) Execute(_ context.Context, fs *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig(0, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	input, err := findInputFile(cfg, c.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	f, err := os.Open(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open %q: %v\n", input, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	trades, rowErrs := momentum.DecodeTrades(f)
	for _, e := range rowErrs {
		fmt.Fprintf(os.Stderr, "row error: %v\n", e)
	}

	schedule, dataErrs := momentum.NewSchedule(trades)
	for _, e := range dataErrs {
		fmt.Fprintf(os.Stderr, "data error: %v\n", e)
	}

	open := 0
	for _, t := range trades {
		if !t.IsClosed() {
			open++
		}
	}
	fmt.Printf("%s: %d trades (%d still open) over %d active dates, %d rows rejected\n",
		input, len(trades), open, schedule.Len(), len(rowErrs)+len(dataErrs))

	if len(rowErrs)+len(dataErrs) > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

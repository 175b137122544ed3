package renderer

import (
	"fmt"
	"strings"

	"github.com/tradepoint/momentum"
)

// ReplayMarkdown renders the outcome of a full replay: a headline summary,
// the per-date settlement table, and anything the run flagged.
func ReplayMarkdown(replay *momentum.Replay, cfg momentum.ReplayConfig) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Replay Report\n\n")
	fmt.Fprintf(&b, "Initial capital: %s, max stocks: %d\n\n", cfg.InitialCapital, cfg.MaxStocks)
	fmt.Fprintf(&b, "- Settled trades: %d\n", len(replay.Settled))
	fmt.Fprintf(&b, "- Open positions: %d\n", len(replay.Open))
	fmt.Fprintf(&b, "- Final corpus: **%s**\n\n", replay.FinalCorpus)

	if len(replay.Settlements) > 0 {
		fmt.Fprint(&b, "## Settlements per Date\n\n")
		fmt.Fprintln(&b, "| Date | Exits | Loss | ST Profit | LT Profit | Tax | Net Post-Tax PNL |")
		fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|")
		for _, s := range replay.Settlements {
			fmt.Fprintf(&b, "| %s | %d | %s | %s | %s | %s | %s |\n",
				s.Date,
				len(s.Trades),
				s.Loss,
				s.STProfit,
				s.LTProfit,
				s.TotalTax,
				s.NetPostTaxPNL.SignedString(),
			)
		}
		fmt.Fprintln(&b)
	}

	renderNotes(&b, replay)
	return b.String()
}

func renderNotes(b *strings.Builder, replay *momentum.Replay) {
	if len(replay.DataErrors) > 0 {
		fmt.Fprint(b, "## Rejected Records\n\n")
		for _, err := range replay.DataErrors {
			fmt.Fprintf(b, "- %v\n", err)
		}
		fmt.Fprintln(b)
	}
	if len(replay.Violations) > 0 {
		fmt.Fprint(b, "## Validation Violations\n\n")
		for _, err := range replay.Violations {
			fmt.Fprintf(b, "- %v\n", err)
		}
		fmt.Fprintln(b)
	}
	if len(replay.Warnings) > 0 {
		fmt.Fprint(b, "## Warnings\n\n")
		for _, w := range replay.Warnings {
			fmt.Fprintf(b, "- %s\n", w)
		}
		fmt.Fprintln(b)
	}
}

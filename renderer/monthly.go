package renderer

import (
	"fmt"
	"strings"

	"github.com/tradepoint/momentum"
)

// MonthlyMarkdown renders the month-by-month settlement rollup.
func MonthlyMarkdown(months []momentum.MonthlySummary) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Monthly Settlement Summary\n\n")
	if len(months) == 0 {
		fmt.Fprint(&b, "No settled trades.\n")
		return b.String()
	}

	fmt.Fprintln(&b, "| Month | Exits | Gross PNL | Tax | Net Post-Tax PNL | Corpus at Month End |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|")
	for _, m := range months {
		fmt.Fprintf(&b, "| %s | %d | %s | %s | %s | %s |\n",
			m.Month.Format("2006-01"),
			m.Exits,
			m.GrossPNL.SignedString(),
			m.Tax,
			m.NetPostTaxPNL.SignedString(),
			m.CorpusEnd,
		)
	}
	return b.String()
}

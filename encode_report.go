package momentum

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// reportHeader is the column set of the output sheet, kept compatible with
// the sheets the replay results are reconciled against.
var reportHeader = []string{
	"Stock Name",
	"Entry date",
	"Entry price",
	"Entry Amount",
	"Quantity",
	"Exit date",
	"Exit price",
	"Exit amount",
	"PNL",
	"ST/LT",
	"Tax",
	"Corpus available",
}

// ReportFilename derives the output file name from the input file name:
// "trades-2021.csv" becomes "tax-trades-2021.csv".
func ReportFilename(inputPath string) string {
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return fmt.Sprintf("tax-%s.csv", base)
}

// EncodeReport writes the per-trade output of a replay as CSV: one row per
// settled trade, then one informational row per still-open position with
// the exit-side columns left blank.
func EncodeReport(w io.Writer, replay *Replay) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(reportHeader); err != nil {
		return err
	}

	for _, t := range replay.Settled {
		row := []string{
			t.Name,
			t.EntryDate.Report(),
			t.EntryPrice.Plain(),
			t.EntryAmount.Plain(),
			t.Quantity.String(),
			t.ExitDate.Report(),
			t.ExitPrice.Plain(),
			t.ExitAmount.Plain(),
			t.PNL.Plain(),
			t.Term.String(),
			t.Tax.Plain(),
			t.CorpusAfter.Plain(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	for _, p := range replay.Open {
		row := []string{
			p.Name,
			p.EntryDate.Report(),
			p.EntryPrice.Plain(),
			p.EntryAmount.Plain(),
			p.Quantity.String(),
			"", "", "", "", "", "", "",
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

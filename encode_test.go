package momentum

import (
	"strings"
	"testing"
	"time"
)

func TestDecodeTrades(t *testing.T) {
	input := strings.Join([]string{
		"Sr No,Stock Name,Entry Price,Exit Price,High,Low,Entry Date,Exit Date",
		`1,TCS,100,120,,,01-Nov-01,01-Dec-01`,
		`2,INFY,"1,500.50",,,,2001-11-01,`,
		"",
		"footer junk that must be ignored",
	}, "\n")

	trades, errs := DecodeTrades(strings.NewReader(input))
	if len(errs) != 0 {
		t.Fatalf("DecodeTrades() returned unexpected row errors: %v", errs)
	}
	if len(trades) != 2 {
		t.Fatalf("got %d trades, want 2", len(trades))
	}

	tcs := trades[0]
	if tcs.Name != "TCS" || !tcs.EntryPrice.Equal(M(100)) || !tcs.ExitPrice.Equal(M(120)) {
		t.Errorf("TCS decoded as %+v", tcs)
	}
	if tcs.EntryDate != NewDate(2001, time.November, 1) || tcs.ExitDate != NewDate(2001, time.December, 1) {
		t.Errorf("TCS dates decoded as %v, %v", tcs.EntryDate, tcs.ExitDate)
	}

	infy := trades[1]
	if !infy.EntryPrice.Equal(M("1500.50")) {
		t.Errorf("INFY entry price = %s, want 1500.50", infy.EntryPrice.Plain())
	}
	if infy.IsClosed() {
		t.Errorf("INFY should be open, got exit date %v", infy.ExitDate)
	}
}

func TestDecodeTrades_TabDelimited(t *testing.T) {
	input := "Sr\tStock\tEntry\tExit\tH\tL\tEntry Date\tExit Date\n" +
		"1\tWIPRO\t250\t\t\t\t15-Jan-20\t\n"
	trades, errs := DecodeTrades(strings.NewReader(input))
	if len(errs) != 0 {
		t.Fatalf("unexpected row errors: %v", errs)
	}
	if len(trades) != 1 || trades[0].Name != "WIPRO" {
		t.Fatalf("trades = %+v", trades)
	}
}

func TestDecodeTrades_RecoversPerRow(t *testing.T) {
	input := strings.Join([]string{
		"Sr,Stock,Entry,Exit,H,L,Entry Date,Exit Date",
		"1,GOOD,10,,,,01-Nov-01,",
		"2,BADPRICE,ten,,,,01-Nov-01,",
		"3,NODATE,10,,,,,",
		"4,SHORTROW,10",
		"5,ALSOGOOD,20,,,,02-Nov-01,",
	}, "\n")

	trades, errs := DecodeTrades(strings.NewReader(input))
	if len(trades) != 2 {
		t.Errorf("got %d trades, want 2 survivors", len(trades))
	}
	if len(errs) != 3 {
		t.Errorf("got %d row errors, want 3: %v", len(errs), errs)
	}
}

func TestDecodeTrades_PadsTrailingColumns(t *testing.T) {
	// A row whose empty exit-date column was dropped by the exporter is
	// still a valid open trade; only rows cut short of the entry date are
	// rejected.
	input := strings.Join([]string{
		"Sr,Stock,Entry,Exit,H,L,Entry Date,Exit Date",
		"1,OPEN,10,,,,01-Nov-01", // 7 columns, trailing exit date dropped
		"2,TOOSHORT,10,,,",       // 6 columns, entry date missing
	}, "\n")

	trades, errs := DecodeTrades(strings.NewReader(input))
	if len(trades) != 1 || len(errs) != 1 {
		t.Fatalf("got %d trades and %d errors, want 1 and 1: %v", len(trades), len(errs), errs)
	}
	if trades[0].Name != "OPEN" || trades[0].IsClosed() {
		t.Errorf("padded row decoded as %+v, want an open trade", trades[0])
	}
}

func TestDecodeTrades_BOM(t *testing.T) {
	input := "\ufeffSr,Stock,Entry,Exit,H,L,Entry Date,Exit Date\n1,TCS,100,,,,01-Nov-01,\n"
	trades, errs := DecodeTrades(strings.NewReader(input))
	if len(errs) != 0 || len(trades) != 1 {
		t.Fatalf("trades=%d errs=%v", len(trades), errs)
	}
}

func TestReportFilename(t *testing.T) {
	if got := ReportFilename("/data/in/trades-2021.csv"); got != "tax-trades-2021.csv" {
		t.Errorf("ReportFilename() = %q", got)
	}
}

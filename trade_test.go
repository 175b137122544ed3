package momentum

import (
	"testing"
	"time"
)

func TestTrade_Open(t *testing.T) {
	tr := Trade{Name: "TCS", EntryPrice: M(30), EntryDate: NewDate(2020, time.January, 15)}

	p := tr.open(M(500))
	if got, want := p.Quantity.Int64(), int64(16); got != want {
		t.Errorf("Quantity = %d, want %d", got, want)
	}
	if got, want := p.EntryAmount, M(480); !got.Equal(want) {
		t.Errorf("EntryAmount = %s, want %s", got.Plain(), want.Plain())
	}
	// floor never over-spends
	if p.EntryAmount.GreaterThan(M(500)) {
		t.Errorf("entry amount %s exceeds allocation", p.EntryAmount.Plain())
	}
}

func TestPosition_Close(t *testing.T) {
	tr := Trade{
		Name:       "TCS",
		EntryPrice: M(10),
		EntryDate:  NewDate(2020, time.January, 15),
		ExitPrice:  M(12),
		ExitDate:   NewDate(2020, time.June, 15),
	}
	s := tr.open(M(500)).close()
	if got, want := s.ExitAmount, M(600); !got.Equal(want) {
		t.Errorf("ExitAmount = %s, want %s", got.Plain(), want.Plain())
	}
	if got, want := s.PNL, M(100); !got.Equal(want) {
		t.Errorf("PNL = %s, want %s", got.Plain(), want.Plain())
	}
	if s.Term != ShortTerm {
		t.Errorf("Term = %v, want ST", s.Term)
	}
}

func TestTrade_Term(t *testing.T) {
	entry := NewDate(2020, time.January, 15)
	testCases := []struct {
		name string
		exit Date
		want Term
	}{
		{"exactly one year is long-term", NewDate(2021, time.January, 15), LongTerm},
		{"one day short is short-term", NewDate(2021, time.January, 14), ShortTerm},
		{"well past a year", NewDate(2022, time.June, 1), LongTerm},
		{"same day", entry, ShortTerm},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tr := Trade{Name: "X", EntryPrice: M(10), EntryDate: entry, ExitPrice: M(11), ExitDate: tc.exit}
			if got := tr.term(); got != tc.want {
				t.Errorf("term() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTrade_Validate(t *testing.T) {
	entry := NewDate(2020, time.January, 15)
	testCases := []struct {
		name    string
		trade   Trade
		wantErr bool
	}{
		{"valid open", Trade{Name: "A", EntryPrice: M(10), EntryDate: entry}, false},
		{"valid closed", Trade{Name: "A", EntryPrice: M(10), EntryDate: entry, ExitPrice: M(11), ExitDate: entry.Add(30)}, false},
		{"missing name", Trade{EntryPrice: M(10), EntryDate: entry}, true},
		{"missing entry date", Trade{Name: "A", EntryPrice: M(10)}, true},
		{"zero entry price", Trade{Name: "A", EntryDate: entry}, true},
		{"exit before entry", Trade{Name: "A", EntryPrice: M(10), EntryDate: entry, ExitPrice: M(11), ExitDate: entry.Add(-1)}, true},
		{"exit date without price", Trade{Name: "A", EntryPrice: M(10), EntryDate: entry, ExitDate: entry.Add(1)}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.trade.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

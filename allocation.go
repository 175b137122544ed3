package momentum

import "fmt"

// ErrTooManyPositions reports a date whose entries push the number of
// concurrently open positions past the configured maximum. The engine only
// detects and reports; whether to cap, proceed, or abort is the caller's
// policy.
type ErrTooManyPositions struct {
	Date Date
	Open int
	Max  int
}

func (e ErrTooManyPositions) Error() string {
	return fmt.Sprintf("%s: %d open positions exceed the configured maximum of %d", e.Date, e.Open, e.Max)
}

// PerStockAllocation is the identical amount granted to every entry of one
// date: the corpus available after that date's settlement, divided by the
// configured maximum stock count.
func PerStockAllocation(corpus *Corpus, maxStocks int) Money {
	return corpus.Available().DivN(maxStocks)
}

// EnterPositions opens every entry of a date against the corpus. All
// entries of the date receive the same allocation, computed once from the
// post-settlement balance; each debit is the frozen entry amount, so the
// floor-division remainder stays in the corpus unspent.
//
// A debit failure means the allocation math is broken and aborts the run.
func EnterPositions(entries []Trade, allocation Money, corpus *Corpus) ([]Position, error) {
	opened := make([]Position, 0, len(entries))
	for _, t := range entries {
		p := t.open(allocation)
		if err := corpus.Debit(p.EntryAmount); err != nil {
			return nil, fmt.Errorf("entering %q on %s: %w", t.Name, t.EntryDate, err)
		}
		opened = append(opened, p)
	}
	return opened, nil
}

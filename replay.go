package momentum

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
)

// ReplayConfig carries the two scalars the engine is parameterized on.
type ReplayConfig struct {
	InitialCapital Money
	MaxStocks      int
}

// Replay is the complete outcome of one pass over a trade list.
type Replay struct {
	Settled       []Settled      // closed trades, in settlement order
	Open          []Position     // positions never exited, excluded from settlement
	Settlements   []Settlement   // one per date that had exits
	FinalCorpus   Money          // corpus available after the last work unit
	CorpusHistory map[Date]Money // corpus available at the end of each active date
	DataErrors    []error        // records rejected before scheduling
	Violations    []error        // stock-count violations, reported but not corrected
	Warnings      []string       // non-fatal oddities, e.g. an exit with no open position

	cfg ReplayConfig
}

// Run replays the trades in date order against a fresh corpus.
//
// Each date is processed as one step taking the prior corpus value and the
// date's events and producing the new corpus value plus the finalized
// trades; no state survives a Run, so replaying the same input always
// yields the same trajectory.
func Run(trades []Trade, cfg ReplayConfig) (*Replay, error) {
	if cfg.MaxStocks <= 0 {
		return nil, fmt.Errorf("max stock count must be positive, got %d", cfg.MaxStocks)
	}
	if !cfg.InitialCapital.IsPositive() {
		return nil, fmt.Errorf("initial capital must be positive, got %s", cfg.InitialCapital.Plain())
	}

	schedule, dataErrs := NewSchedule(trades)
	replay := &Replay{DataErrors: dataErrs, cfg: cfg, CorpusHistory: make(map[Date]Money)}

	corpus := NewCorpus(cfg.InitialCapital)
	open := make(map[string]Position)

	for _, unit := range schedule.Units() {
		if err := replay.step(unit, corpus, open); err != nil {
			return nil, fmt.Errorf("replay aborted on %s: %w", unit.Date, err)
		}
	}

	for _, p := range open {
		replay.Open = append(replay.Open, p)
	}
	// open is a map, so impose an order for reproducible output files
	slices.SortFunc(replay.Open, func(a, b Position) int {
		if a.EntryDate.Before(b.EntryDate) {
			return -1
		}
		if a.EntryDate.After(b.EntryDate) {
			return 1
		}
		return strings.Compare(a.Name, b.Name)
	})
	replay.FinalCorpus = corpus.Available()
	return replay, nil
}

// step processes one date: settle its exits, then allocate its entries from
// the updated corpus. Exits strictly first, even when the same stock exits
// and re-enters on the same calendar date.
func (r *Replay) step(unit WorkUnit, corpus *Corpus, open map[string]Position) error {
	log := logrus.WithFields(logrus.Fields{
		"date":    unit.Date.String(),
		"exits":   len(unit.Exits),
		"entries": len(unit.Entries),
	})

	var closed []Settled
	for _, t := range unit.Exits {
		p, ok := open[t.Name]
		if !ok {
			r.Warnings = append(r.Warnings, fmt.Sprintf("%s: exit of %q but no such open position", unit.Date, t.Name))
			continue
		}
		delete(open, t.Name)
		closed = append(closed, p.close())
	}

	if len(closed) > 0 {
		s := SettleDay(unit.Date, closed, corpus)
		r.Settlements = append(r.Settlements, s)
		r.Settled = append(r.Settled, s.Trades...)
		log.WithFields(logrus.Fields{
			"net_post_tax_pnl": s.NetPostTaxPNL.Plain(),
			"capital_returned": s.CapitalReturned.Plain(),
			"tax":              s.TotalTax.Plain(),
		}).Debug("settled exits")
	}

	if len(unit.Entries) > 0 {
		allocation := PerStockAllocation(corpus, r.cfg.MaxStocks)
		entries := make([]Trade, 0, len(unit.Entries))
		for _, t := range unit.Entries {
			if _, alreadyOpen := open[t.Name]; alreadyOpen {
				r.Warnings = append(r.Warnings, fmt.Sprintf("%s: entry of %q while a position is already open, skipped", unit.Date, t.Name))
				continue
			}
			entries = append(entries, t)
		}
		opened, err := EnterPositions(entries, allocation, corpus)
		if err != nil {
			return err
		}
		for _, p := range opened {
			open[p.Name] = p
		}
	}

	if max := r.cfg.MaxStocks; len(open) > max {
		r.Violations = append(r.Violations, ErrTooManyPositions{Date: unit.Date, Open: len(open), Max: max})
	}

	// The snapshot each settled trade reports is the corpus at the end of
	// its exit date, once that date's entries have also been funded.
	after := corpus.Available()
	r.CorpusHistory[unit.Date] = after
	for i := range r.Settled {
		if r.Settled[i].ExitDate == unit.Date {
			r.Settled[i].CorpusAfter = after
		}
	}
	log.WithField("corpus", after.Plain()).Debug("date processed")
	return nil
}

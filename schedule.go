package momentum

import (
	"fmt"
	"slices"
	"strings"
)

// WorkUnit is one calendar date's worth of activity: the trades exiting
// that day and the trades entering that day. Within a date, exits always
// settle before any entry is processed; that ordering is the backbone of
// the whole replay.
type WorkUnit struct {
	Date    Date
	Exits   []Trade
	Entries []Trade
}

// Schedule is the strictly date-ordered sequence of work units for a replay.
type Schedule struct {
	units []WorkUnit
}

// Units returns the work units in ascending date order.
func (s Schedule) Units() []WorkUnit { return s.units }

// Len returns the number of active dates.
func (s Schedule) Len() int { return len(s.units) }

// NewSchedule orders trades into per-date work units. Invalid trades are
// rejected up front and reported in the returned slice of data errors; the
// remaining trades are scheduled normally.
//
// The tax formula only consumes per-date sums, so exits of one date need no
// defined sub-order, and entries all receive the identical allocation. The
// stock-name sort below exists purely so that two replays of the same input
// produce byte-identical output.
func NewSchedule(trades []Trade) (Schedule, []error) {
	var dataErrs []error
	byDate := make(map[Date]*WorkUnit)

	unit := func(on Date) *WorkUnit {
		u, ok := byDate[on]
		if !ok {
			u = &WorkUnit{Date: on}
			byDate[on] = u
		}
		return u
	}

	for i, t := range trades {
		if err := t.Validate(); err != nil {
			dataErrs = append(dataErrs, fmt.Errorf("record %d: %w", i+1, err))
			continue
		}
		unit(t.EntryDate).Entries = append(unit(t.EntryDate).Entries, t)
		if t.IsClosed() {
			unit(t.ExitDate).Exits = append(unit(t.ExitDate).Exits, t)
		}
	}

	units := make([]WorkUnit, 0, len(byDate))
	for _, u := range byDate {
		byName := func(a, b Trade) int { return strings.Compare(a.Name, b.Name) }
		slices.SortStableFunc(u.Exits, byName)
		slices.SortStableFunc(u.Entries, byName)
		units = append(units, *u)
	}
	slices.SortFunc(units, func(a, b WorkUnit) int {
		if a.Date.Before(b.Date) {
			return -1
		}
		if a.Date.After(b.Date) {
			return 1
		}
		return 0
	})

	return Schedule{units: units}, dataErrs
}

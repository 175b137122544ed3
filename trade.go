package momentum

import (
	"fmt"
)

// Term classifies a closed trade's holding period against the one-year
// threshold that drives the tax treatment.
type Term int

const (
	// ShortTerm means the position was held strictly less than one calendar year.
	ShortTerm Term = iota
	// LongTerm means the exit date is on or after the first anniversary of the entry.
	LongTerm
)

func (t Term) String() string {
	if t == LongTerm {
		return "LT"
	}
	return "ST"
}

// Trade holds the raw facts of one position as read from the input sheet:
// a stock name, the entry side, and, once the position was closed, the exit
// side. Everything else (quantity, amounts, pnl, tax) is derived during the
// replay.
type Trade struct {
	Name       string
	EntryPrice Money
	EntryDate  Date
	ExitPrice  Money // meaningful only when closed
	ExitDate   Date  // zero while the position is open
}

// IsClosed reports whether the trade carries an exit event.
func (t Trade) IsClosed() bool { return !t.ExitDate.IsZero() }

// Validate rejects trades that cannot be scheduled. A trade missing its
// entry date or carrying a non-positive entry price is a data error, not a
// crash: the caller skips it and keeps going.
func (t Trade) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("trade has no stock name")
	}
	if t.EntryDate.IsZero() {
		return fmt.Errorf("trade %q has no entry date", t.Name)
	}
	if !t.EntryPrice.IsPositive() {
		return fmt.Errorf("trade %q has non-positive entry price %s", t.Name, t.EntryPrice.Plain())
	}
	if t.IsClosed() {
		if !t.ExitPrice.IsPositive() {
			return fmt.Errorf("trade %q has exit date %s but non-positive exit price", t.Name, t.ExitDate)
		}
		if t.ExitDate.Before(t.EntryDate) {
			return fmt.Errorf("trade %q exits %s before it enters %s", t.Name, t.ExitDate, t.EntryDate)
		}
	}
	return nil
}

// term classifies the holding period. Long-term iff the exit falls on or
// after entry + exactly one calendar year.
func (t Trade) term() Term {
	if !t.ExitDate.Before(t.EntryDate.AddYears(1)) {
		return LongTerm
	}
	return ShortTerm
}

// Position is a Trade whose entry side has been executed: the quantity and
// entry amount are frozen from the corpus snapshot at entry time and never
// recomputed.
type Position struct {
	Trade
	Quantity    Quantity
	EntryAmount Money
}

// open freezes the entry side of a trade against the allocation granted for
// it. The entry amount is quantity*price, not the full allocation: the floor
// division leaves the unspent remainder in the corpus.
func (t Trade) open(allocation Money) Position {
	qty := SharesFor(allocation, t.EntryPrice)
	return Position{
		Trade:       t,
		Quantity:    qty,
		EntryAmount: t.EntryPrice.Mul(qty).Round(),
	}
}

// Settled is a Position whose exit side has been executed and whose date has
// been through tax settlement. It is immutable and exists only to feed
// output.
type Settled struct {
	Position
	ExitAmount  Money
	PNL         Money
	Term        Term
	Tax         Money // this trade's share of the date's total tax
	CorpusAfter Money // corpus available right after this trade's exit date settled
}

// close freezes the exit side. Tax and the corpus snapshot are filled in by
// the settlement step, which works on the whole date at once.
func (p Position) close() Settled {
	exitAmount := p.ExitPrice.Mul(p.Quantity).Round()
	return Settled{
		Position:   p,
		ExitAmount: exitAmount,
		PNL:        exitAmount.Sub(p.EntryAmount).Round(),
		Term:       p.term(),
	}
}

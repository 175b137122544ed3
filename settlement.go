package momentum

import (
	"github.com/shopspring/decimal"
)

// Tax rates applied on settlement. Short-term gains are netted against the
// day's losses before the rate applies; long-term gains only absorb the loss
// overflow that short-term profit could not cover.
var (
	shortTermTaxRate = decimal.NewFromFloat(0.2)
	longTermTaxRate  = decimal.NewFromFloat(0.1)
)

// dayAggregate accumulates one exit date's classification buckets. It lives
// only for the duration of settling that date.
type dayAggregate struct {
	loss     Money // negative pnl magnitudes
	stProfit Money // non-negative short-term pnl
	ltProfit Money // non-negative long-term pnl
}

func aggregate(exits []Settled) dayAggregate {
	var a dayAggregate
	for _, e := range exits {
		switch {
		case e.PNL.IsNegative():
			a.loss = a.loss.Add(e.PNL.Abs())
		case e.Term == LongTerm:
			a.ltProfit = a.ltProfit.Add(e.PNL)
		default:
			a.stProfit = a.stProfit.Add(e.PNL)
		}
	}
	a.loss = a.loss.Round()
	a.stProfit = a.stProfit.Round()
	a.ltProfit = a.ltProfit.Round()
	return a
}

// netPostTax applies the piecewise settlement formula to the day's buckets.
func (a dayAggregate) netPostTax() Money {
	netST := a.stProfit.Sub(a.loss)
	switch {
	case netST.IsPositive():
		// 20% on the net short-term gain, 10% on the long-term gain.
		st := netST.MulRate(decimal.NewFromInt(1).Sub(shortTermTaxRate))
		lt := a.ltProfit.MulRate(decimal.NewFromInt(1).Sub(longTermTaxRate))
		return st.Add(lt).Round()
	case netST.IsZero():
		return a.ltProfit.MulRate(decimal.NewFromInt(1).Sub(longTermTaxRate)).Round()
	default:
		remaining := netST.Abs()
		if remaining.GreaterThan(a.ltProfit) {
			// Losses exceed all profits: the net loss carries through untaxed.
			return remaining.Sub(a.ltProfit).Neg().Round()
		}
		// Long-term profit absorbs the uncovered loss, the rest is taxed at 10%.
		return a.ltProfit.Sub(remaining).MulRate(decimal.NewFromInt(1).Sub(longTermTaxRate)).Round()
	}
}

// Settlement is the outcome of settling all exits of one date.
type Settlement struct {
	Date            Date
	Loss            Money
	STProfit        Money
	LTProfit        Money
	STTax           Money
	LTTax           Money
	TotalTax        Money
	NetPostTaxPNL   Money
	CapitalReturned Money
	Trades          []Settled
}

// SettleDay settles every exit of one date against the corpus: it classifies
// the day's pnl into buckets, applies the tax formula, attributes the tax
// back to the individual trades, and credits the corpus once with the
// returned principal plus the after-tax result.
//
// The credit is a single update on purpose: the formula is a function of the
// date's aggregate, never of a single trade, so crediting incrementally
// would be wrong whenever losses and gains coexist.
func SettleDay(on Date, exits []Settled, corpus *Corpus) Settlement {
	a := aggregate(exits)
	net := a.netPostTax()

	var pnlSum, capitalReturned Money
	for _, e := range exits {
		pnlSum = pnlSum.Add(e.PNL)
		capitalReturned = capitalReturned.Add(e.EntryAmount)
	}
	// Defined as the gap between gross and after-tax pnl so that
	// sum(pnl) - sum(tax) == net holds exactly at cent precision.
	totalTax := pnlSum.Sub(net).Round()

	s := Settlement{
		Date:            on,
		Loss:            a.loss,
		STProfit:        a.stProfit,
		LTProfit:        a.ltProfit,
		TotalTax:        totalTax,
		NetPostTaxPNL:   net,
		CapitalReturned: capitalReturned.Round(),
		Trades:          attributeTax(exits, a, totalTax),
	}
	for _, e := range s.Trades {
		if e.Term == LongTerm && e.PNL.IsPositive() {
			s.LTTax = s.LTTax.Add(e.Tax)
		} else if e.PNL.IsPositive() {
			s.STTax = s.STTax.Add(e.Tax)
		}
	}

	corpus.Credit(s.CapitalReturned.Add(net))
	return s
}

// attributeTax prorates the day's tax over its profitable trades.
//
// Policy: the long-term bucket pays 10% of whatever long-term profit
// remained taxable; the short-term bucket pays the rest. Within a bucket
// each winner pays in proportion to its share of the bucket's profit.
// Losing trades pay nothing. Cent residues from per-trade rounding land on
// the last winner of each bucket so the date's aggregate identity is exact.
func attributeTax(exits []Settled, a dayAggregate, totalTax Money) []Settled {
	out := make([]Settled, len(exits))
	copy(out, exits)

	if !totalTax.IsPositive() {
		return out
	}

	// Taxable long-term profit after absorbing any loss overflow.
	ltTaxable := a.ltProfit
	if overflow := a.loss.Sub(a.stProfit); overflow.IsPositive() {
		ltTaxable = ltTaxable.Sub(overflow)
	}
	ltTax := Money{}
	if ltTaxable.IsPositive() {
		ltTax = ltTaxable.MulRate(longTermTaxRate).Round()
	}
	if ltTax.GreaterThan(totalTax) {
		ltTax = totalTax
	}
	stTax := totalTax.Sub(ltTax)

	spread(out, LongTerm, a.ltProfit, ltTax)
	spread(out, ShortTerm, a.stProfit, stTax)
	return out
}

// spread distributes a bucket's tax over its profitable trades, prorated by
// pnl share, fixing the rounding residue on the bucket's last winner.
func spread(exits []Settled, term Term, bucketProfit, bucketTax Money) {
	if !bucketTax.IsPositive() || !bucketProfit.IsPositive() {
		return
	}
	last := -1
	var assigned Money
	for i := range exits {
		if exits[i].Term != term || !exits[i].PNL.IsPositive() {
			continue
		}
		tax := bucketTax.MulRate(exits[i].PNL.ShareOf(bucketProfit)).Round()
		exits[i].Tax = tax
		assigned = assigned.Add(tax)
		last = i
	}
	if last >= 0 {
		exits[last].Tax = exits[last].Tax.Add(bucketTax.Sub(assigned)).Round()
	}
}

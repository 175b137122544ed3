package momentum

// MonthlySummary aggregates one calendar month of settlement activity.
type MonthlySummary struct {
	Month         Date // first day of the month
	Exits         int
	GrossPNL      Money
	Tax           Money
	NetPostTaxPNL Money
	CorpusEnd     Money // corpus after the month's last settled date
}

// MonthlyReport rolls the replay's settlements up per calendar month, in
// chronological order. Months with no exits do not appear.
func (r *Replay) MonthlyReport() []MonthlySummary {
	var out []MonthlySummary
	for _, s := range r.Settlements {
		month := s.Date.StartOfMonth()
		if len(out) == 0 || out[len(out)-1].Month != month {
			out = append(out, MonthlySummary{Month: month})
		}
		m := &out[len(out)-1]
		m.Exits += len(s.Trades)
		m.Tax = m.Tax.Add(s.TotalTax).Round()
		m.NetPostTaxPNL = m.NetPostTaxPNL.Add(s.NetPostTaxPNL).Round()
		for _, t := range s.Trades {
			m.GrossPNL = m.GrossPNL.Add(t.PNL)
		}
		m.GrossPNL = m.GrossPNL.Round()
		if corpus, ok := r.CorpusHistory[s.Date]; ok {
			m.CorpusEnd = corpus
		}
	}
	return out
}

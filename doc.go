// Package momentum replays a chronological ledger of stock entry and exit
// trades against a shared pool of capital, the corpus.
//
// Trades are walked in calendar order. On each active date every exit
// settles first: the date's profit and loss is aggregated, a tiered
// capital-gains tax formula is applied once to the aggregate, and the
// corpus is credited in a single step with the returned principal plus the
// after-tax result. Only then are the date's entries funded, each with an
// identical allocation of corpus/N. The corpus is the only channel between
// dates, which is what makes the tax-aware compounding correct: one date's
// post-tax proceeds are the next date's investable base.
//
// All monetary arithmetic is exact decimal; stored amounts are rounded to
// two places, half away from zero, and share quantities are truncated.
package momentum

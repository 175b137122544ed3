package momentum

import (
	"errors"
	"fmt"
)

// ErrOverAllocation signals a debit larger than the available corpus.
//
// Allocations are always derived from the available balance, so under a
// correct configuration this is unreachable; if it fires it exposes a logic
// defect and the replay of that run must abort rather than clamp.
var ErrOverAllocation = errors.New("over-allocation: debit exceeds available corpus")

// Corpus is the pool of investable capital. It is the only channel through
// which one date's results reach the next: settlement credits flow in, entry
// allocations flow out, and the balance carried forward is what compounds.
//
// A Corpus is only ever touched by the single goroutine driving the replay.
type Corpus struct {
	available Money
}

// NewCorpus creates a corpus holding the configured initial capital.
func NewCorpus(initial Money) *Corpus {
	return &Corpus{available: initial}
}

// Available returns the capital not yet committed to an open position.
func (c *Corpus) Available() Money { return c.available }

// Debit removes the entry amount of a new position from the pool.
func (c *Corpus) Debit(amount Money) error {
	if amount.IsNegative() {
		return fmt.Errorf("debit of negative amount %s", amount.Plain())
	}
	if amount.GreaterThan(c.available) {
		return fmt.Errorf("%w: need %s, have %s", ErrOverAllocation, amount.Plain(), c.available.Plain())
	}
	c.available = c.available.Sub(amount).Round()
	return nil
}

// Credit returns capital to the pool. A single settlement credit carries
// both the returned principal and the after-tax result, so the amount may
// be negative when a date closes at a net loss larger than zero tax relief.
func (c *Corpus) Credit(amount Money) {
	c.available = c.available.Add(amount).Round()
}

package momentum

import "github.com/shopspring/decimal"

// Quantity is a whole number of shares.
//
// Quantities are produced by truncating division of an allocation by a
// price; they are never rounded up.
type Quantity struct {
	value decimal.Decimal
}

// Q builds a Quantity from an integer share count.
func Q(n int64) Quantity { return Quantity{value: decimal.NewFromInt(n)} }

// SharesFor returns the number of whole shares an allocation buys at the
// given price: floor(allocation / price). Guaranteed non-negative for
// non-negative inputs.
func SharesFor(allocation, price Money) Quantity {
	return Quantity{value: allocation.value.Div(price.value).Floor()}
}

func (q Quantity) Equal(p Quantity) bool       { return q.value.Equal(p.value) }
func (q Quantity) LessThan(p Quantity) bool    { return q.value.LessThan(p.value) }
func (q Quantity) GreaterThan(p Quantity) bool { return q.value.GreaterThan(p.value) }
func (q Quantity) IsZero() bool                { return q.value.IsZero() }
func (q Quantity) IsNegative() bool            { return q.value.IsNegative() }
func (q Quantity) Int64() int64                { return q.value.IntPart() }
func (q Quantity) String() string              { return q.value.String() }

func (q Quantity) MarshalJSON() ([]byte, error) {
	return q.value.MarshalJSON()
}

func (q *Quantity) UnmarshalJSON(b []byte) error {
	return q.value.UnmarshalJSON(b)
}

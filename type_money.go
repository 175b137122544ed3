package momentum

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the currency every monetary value in a replay is denominated
// in. The engine is single-currency: the corpus, allocations and proceeds
// all share it.
const Currency = "INR"

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | string | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case string:
		return decimal.RequireFromString(v)
	default:
		panic("unsupported type")
	}
}

// Money represents an exact monetary value.
//
// Arithmetic is exact; rounding to cents happens only when a value is
// stored on a record, via Round.
type Money struct {
	value decimal.Decimal
}

// M builds a Money from any convenient numeric representation.
func M[T float32 | float64 | int | int32 | int64 | string | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// ParseMoney parses a monetary value from its decimal string form.
// Thousands separators ("1,234.50") are accepted.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(stripThousands(s))
	if err != nil {
		return Money{}, err
	}
	return Money{value: d}, nil
}

func stripThousands(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == ',' {
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}

// currency returns the full currency metadata.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, Currency).Currency()
}

// String formats the value with the currency symbol and grouping.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Plain returns the bare decimal form rounded to cents, without currency
// decoration. This is the form written to output files.
func (m Money) Plain() string { return m.Round().value.StringFixed(2) }

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) LessThanOrEqual(n Money) bool    { return m.value.LessThanOrEqual(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }
func (m Money) Abs() Money                      { return Money{value: m.value.Abs()} }
func (m Money) Add(n Money) Money               { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money               { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(q Quantity) Money            { return Money{value: m.value.Mul(q.value)} }

// MulRate multiplies by a plain ratio such as a tax retention rate.
func (m Money) MulRate(rate decimal.Decimal) Money { return Money{value: m.value.Mul(rate)} }

// DivN divides the value by an integer, e.g. a stock-count.
func (m Money) DivN(n int) Money { return Money{value: m.value.Div(decimal.NewFromInt(int64(n)))} }

// ShareOf returns the ratio m/total as an exact decimal.
// total must not be zero.
func (m Money) ShareOf(total Money) decimal.Decimal { return m.value.Div(total.value) }

// Round rounds to cents, ties away from zero. This is the rounding applied
// to every stored monetary field.
func (m Money) Round() Money { return Money{value: m.value.Round(2)} }

// Decimal exposes the underlying exact decimal.
func (m Money) Decimal() decimal.Decimal { return m.value }

// SignedString is like String but with an explicit sign, and "-" for zero.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) MarshalJSON() ([]byte, error) {
	return m.Round().value.MarshalJSON()
}

func (m *Money) UnmarshalJSON(b []byte) error {
	return m.value.UnmarshalJSON(b)
}

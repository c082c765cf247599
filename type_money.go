package profin

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary amount.
//
// Amounts carry no currency of their own: the whole tracker displays in the
// single currency selected on the Profile. On the wire an amount is a plain
// JSON number.
type Money struct {
	value decimal.Decimal
}

// M builds a Money amount from any numeric value.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64](value T) Money {
	switch v := any(value).(type) {
	case float32:
		return Money{decimal.NewFromFloat32(v)}
	case float64:
		return Money{decimal.NewFromFloat(v)}
	case int:
		return Money{decimal.NewFromInt(int64(v))}
	case int32:
		return Money{decimal.NewFromInt32(v)}
	case int64:
		return Money{decimal.NewFromInt(v)}
	case uint:
		return Money{decimal.NewFromUint64(uint64(v))}
	case uint32:
		return Money{decimal.NewFromUint64(uint64(v))}
	case uint64:
		return Money{decimal.NewFromUint64(v)}
	}
	return Money{} // unreachable, the type set is closed
}

// ParseMoney parses a decimal amount like "1250" or "99.90".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// String returns the plain decimal representation, without currency.
func (m Money) String() string { return m.value.String() }

// Display formats the amount in the given currency code, using the currency's
// symbol and fraction rules. Unknown codes fall back to a generic formatter.
func (m Money) Display(code string) string {
	cur := *money.New(0, code).Currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

func (m Money) Equal(n Money) bool    { return m.value.Equal(n.value) }
func (m Money) IsZero() bool          { return m.value.IsZero() }
func (m Money) IsNegative() bool      { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool { return m.value.LessThan(n.value) }
func (m Money) Add(n Money) Money     { return Money{m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money     { return Money{m.value.Sub(n.value)} }

// MarshalJSON writes the amount as a bare JSON number, the format the stored
// state has always used.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.String()), nil
}

// UnmarshalJSON accepts both bare numbers and quoted decimal strings.
func (m *Money) UnmarshalJSON(data []byte) error {
	return m.value.UnmarshalJSON(data)
}

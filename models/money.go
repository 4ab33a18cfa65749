package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is a fixed-point monetary amount with exactly two fractional
// digits. It marshals to JSON as a quoted string like "123.40".
type Money struct {
	decimal.Decimal
}

// NewMoney rounds d half-up to two decimal places.
func NewMoney(d decimal.Decimal) Money {
	return Money{d.Round(2)}
}

func MoneyFromFloat(f float64) Money {
	return NewMoney(decimal.NewFromFloat(f))
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.StringFixed(2) + `"`), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid monetary amount %q: %s", s, err)
	}
	m.Decimal = d
	return nil
}

func (m Money) String() string {
	return m.StringFixed(2)
}

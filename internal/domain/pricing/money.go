package pricing

import (
	"errors"
	"fmt"
	"math"
)

var ErrNegativeMoney = errors.New("money cannot be negative")

// Money is a currency amount in cents.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: cents}, nil
}

// MoneyFromAmount converts a decimal amount (e.g. 5.10) to cents with
// round-half-up at the second decimal place.
func MoneyFromAmount(amount float64) (Money, error) {
	if amount < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: int64(math.Floor(amount*100 + 0.5))}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Amount() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}

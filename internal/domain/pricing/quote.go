package pricing

import (
	"errors"
	"time"
)

var ErrNegativeEnergy = errors.New("energy cannot be negative")

// Quote is the outcome of a discount lookup: the effective per-kWh price and
// the discount that produced it.
type Quote struct {
	UnitPrice       float64
	DiscountPercent float64
}

// BestDiscount returns the discount percent in force at the given instant.
// When several rule windows overlap the same instant the highest discount
// wins; this keeps the result deterministic regardless of rule order.
func BestDiscount(rules []*Rule, at time.Time) float64 {
	best := 0.0
	for _, r := range rules {
		if r.Matches(at) && r.Percent() > best {
			best = r.Percent()
		}
	}
	return best
}

// UnitPriceFor computes the effective per-kWh price for a base price under
// the rules in force at the given instant. The unit price stays fractional;
// rounding happens only when a total cost is derived.
func UnitPriceFor(base Money, rules []*Rule, at time.Time) Quote {
	pct := BestDiscount(rules, at)
	return Quote{
		UnitPrice:       base.Amount() * (1 - pct/100),
		DiscountPercent: pct,
	}
}

// EstimatedCost prices the given energy at the quoted unit price, rounded to
// cents with round-half-up.
func EstimatedCost(q Quote, energyKwh float64) (Money, error) {
	if energyKwh < 0 {
		return Money{}, ErrNegativeEnergy
	}
	return MoneyFromAmount(q.UnitPrice * energyKwh)
}

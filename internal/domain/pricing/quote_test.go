//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"evcharge/internal/domain/pricing"
	"evcharge/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday 2025-06-02 15:00 UTC, inside the default 14-18 rule window.
var monday15h = time.Date(2025, 6, 2, 15, 0, 0, 0, time.UTC)

func mustRule(t *testing.T, mutate func(*builder.DiscountRuleBuilder)) *pricing.Rule {
	t.Helper()
	b := builder.NewDiscountRuleBuilder()
	if mutate != nil {
		b.With(mutate)
	}
	rule, err := b.BuildDomain()
	require.NoError(t, err)
	return rule
}

func TestBestDiscount(t *testing.T) {
	t.Run("no rules yields zero discount", func(t *testing.T) {
		assert.Equal(t, 0.0, pricing.BestDiscount(nil, monday15h))
	})

	t.Run("single matching rule applies", func(t *testing.T) {
		rules := []*pricing.Rule{mustRule(t, nil)}
		assert.Equal(t, 15.0, pricing.BestDiscount(rules, monday15h))
	})

	t.Run("highest discount wins when windows overlap", func(t *testing.T) {
		rules := []*pricing.Rule{
			mustRule(t, func(b *builder.DiscountRuleBuilder) { b.Percent = 10 }),
			mustRule(t, func(b *builder.DiscountRuleBuilder) { b.Percent = 25 }),
			mustRule(t, func(b *builder.DiscountRuleBuilder) { b.Percent = 15 }),
		}
		assert.Equal(t, 25.0, pricing.BestDiscount(rules, monday15h))

		// Order must not matter.
		reversed := []*pricing.Rule{rules[2], rules[1], rules[0]}
		assert.Equal(t, 25.0, pricing.BestDiscount(reversed, monday15h))
	})

	t.Run("inactive rule never matches", func(t *testing.T) {
		rules := []*pricing.Rule{mustRule(t, func(b *builder.DiscountRuleBuilder) { b.Active = false })}
		assert.Equal(t, 0.0, pricing.BestDiscount(rules, monday15h))
	})

	t.Run("hour bounds are inclusive on both ends", func(t *testing.T) {
		rules := []*pricing.Rule{mustRule(t, nil)}

		tests := []struct {
			name string
			at   time.Time
			want float64
		}{
			{"start hour 14:00 matches", monday15h.Add(-time.Hour), 15},
			{"last minute of end hour 18:59 matches", time.Date(2025, 6, 2, 18, 59, 0, 0, time.UTC), 15},
			{"13:59 does not match", time.Date(2025, 6, 2, 13, 59, 0, 0, time.UTC), 0},
			{"19:00 does not match", time.Date(2025, 6, 2, 19, 0, 0, 0, time.UTC), 0},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Equal(t, tt.want, pricing.BestDiscount(rules, tt.at))
			})
		}
	})

	t.Run("different weekday does not match", func(t *testing.T) {
		tuesday := monday15h.AddDate(0, 0, 1)
		rules := []*pricing.Rule{mustRule(t, nil)}
		assert.Equal(t, 0.0, pricing.BestDiscount(rules, tuesday))
	})
}

func TestUnitPriceFor(t *testing.T) {
	base, err := pricing.NewMoney(30) // 0.30 per kWh
	require.NoError(t, err)

	t.Run("no matching rule keeps the base price", func(t *testing.T) {
		got := pricing.UnitPriceFor(base, nil, monday15h)
		want := pricing.Quote{UnitPrice: 0.30, DiscountPercent: 0}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Quote mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("discount reduces the unit price", func(t *testing.T) {
		rules := []*pricing.Rule{mustRule(t, nil)}
		got := pricing.UnitPriceFor(base, rules, monday15h)
		assert.InDelta(t, 0.255, got.UnitPrice, 1e-9)
		assert.Equal(t, 15.0, got.DiscountPercent)
	})
}

func TestEstimatedCost(t *testing.T) {
	t.Run("20 kWh at 0.30 with 15 percent off costs 5.10", func(t *testing.T) {
		base, _ := pricing.NewMoney(30)
		rules := []*pricing.Rule{mustRule(t, nil)}

		quote := pricing.UnitPriceFor(base, rules, monday15h)
		cost, err := pricing.EstimatedCost(quote, 20)
		require.NoError(t, err)
		assert.Equal(t, int64(510), cost.Cents())
		assert.Equal(t, "5.10", cost.String())
	})

	t.Run("rounds half up at the cent", func(t *testing.T) {
		// 0.255 * 1 kWh = 0.255 -> 26 cents, not 25.
		cost, err := pricing.EstimatedCost(pricing.Quote{UnitPrice: 0.255}, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(26), cost.Cents())
	})

	t.Run("zero energy costs zero", func(t *testing.T) {
		cost, err := pricing.EstimatedCost(pricing.Quote{UnitPrice: 0.30}, 0)
		require.NoError(t, err)
		assert.True(t, cost.IsZero())
	})

	t.Run("negative energy is rejected", func(t *testing.T) {
		_, err := pricing.EstimatedCost(pricing.Quote{UnitPrice: 0.30}, -1)
		assert.ErrorIs(t, err, pricing.ErrNegativeEnergy)
	})
}

func TestMoneyFromAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		cents  int64
	}{
		{"exact amount", 5.10, 510},
		{"half cent rounds up", 0.125, 13},
		{"just below half cent rounds down", 0.1249, 12},
		{"zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := pricing.MoneyFromAmount(tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.cents, m.Cents())
		})
	}

	t.Run("negative amount is rejected", func(t *testing.T) {
		_, err := pricing.MoneyFromAmount(-0.01)
		assert.ErrorIs(t, err, pricing.ErrNegativeMoney)
	})
}
